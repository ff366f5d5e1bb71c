package card

import "github.com/rcc-emulator/server/internal/wire"

// ActionPointsTuningFields is the number of u32 tuning values
// LogicActionPoints carries before its buff threshold (spec.md §3).
const ActionPointsTuningFields = 7

// LogicActionPoints is the LogicActionPoints catalogue entry
// (category 0x16): seven tuning values, a buff threshold, and the buff
// bonuses record (spec.md §3).
type LogicActionPoints struct {
	ID string

	Tuning        [ActionPointsTuningFields]uint32
	BuffThreshold float32

	BuffBonuses Bonuses
}

// Category returns CategoryActionPoints.
func (c LogicActionPoints) Category() Category { return CategoryActionPoints }

// CardID returns the card's ID string.
func (c LogicActionPoints) CardID() string { return c.ID }

// Encode writes the seven tuning values, the buff threshold, the FF F0
// sentinel, then the buff bonuses (spec.md §3).
func (c LogicActionPoints) Encode(w *wire.Writer) {
	for _, v := range c.Tuning {
		w.WriteU32(v)
	}
	w.WriteF32(c.BuffThreshold)
	w.WriteBytes(sentinel)
	c.BuffBonuses.Encode(w)
}
