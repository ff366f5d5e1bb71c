package card

import "github.com/rcc-emulator/server/internal/wire"

// LogicChat is the LogicChat catalogue entry (category 0x1E): message
// flood limits and the list of star-player IDs (spec.md §3).
type LogicChat struct {
	ID string

	MessageCountLimit int32
	TimeWindowSeconds float32
	SpamBanSeconds    float32

	StarPlayerIDs []uint32
}

// Category returns CategoryChat.
func (c LogicChat) Category() Category { return CategoryChat }

// CardID returns the card's ID string.
func (c LogicChat) CardID() string { return c.ID }

// Encode writes the flood-limit fields followed by the star-player ID
// list (spec.md §3).
func (c LogicChat) Encode(w *wire.Writer) {
	w.WriteI32(c.MessageCountLimit)
	w.WriteF32(c.TimeWindowSeconds)
	w.WriteF32(c.SpamBanSeconds)

	w.WriteVarInt(uint32(len(c.StarPlayerIDs)))
	for _, id := range c.StarPlayerIDs {
		w.WriteU32(id)
	}
}
