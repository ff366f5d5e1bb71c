package card

import "github.com/rcc-emulator/server/internal/wire"

// HairSkin pairs two RGBA colors (8 f32 total) describing a hair skin
// variant's primary and secondary tint (spec.md §3).
type HairSkin struct {
	Primary   [4]float32
	Secondary [4]float32
}

func (h HairSkin) encode(w *wire.Writer) {
	for _, v := range h.Primary {
		w.WriteF32(v)
	}
	for _, v := range h.Secondary {
		w.WriteF32(v)
	}
}

// LogicSkins is the LogicSkins catalogue entry (category 0x11): the
// four cosmetic skin lists (spec.md §3).
type LogicSkins struct {
	ID string

	HorseSkins  []string
	TailSkins   []string
	PlayerSkins []string
	HairSkins   []HairSkin
}

// Category returns CategorySkins.
func (c LogicSkins) Category() Category { return CategorySkins }

// CardID returns the card's ID string.
func (c LogicSkins) CardID() string { return c.ID }

func writeStringList(w *wire.Writer, items []string) {
	w.WriteVarInt(uint32(len(items)))
	for _, s := range items {
		w.WriteString(s)
	}
}

// Encode writes the four skin lists in order: horse, tail, player,
// then hair (each hair entry inlined, not length-prefixed beyond the
// list's own VarInt count) (spec.md §3).
func (c LogicSkins) Encode(w *wire.Writer) {
	writeStringList(w, c.HorseSkins)
	writeStringList(w, c.TailSkins)
	writeStringList(w, c.PlayerSkins)

	w.WriteVarInt(uint32(len(c.HairSkins)))
	for _, h := range c.HairSkins {
		h.encode(w)
	}
}
