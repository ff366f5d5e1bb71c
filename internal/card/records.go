// Package card implements the category-tagged polymorphic serialization
// of catalogue entries described in spec.md §3–§4.3: a top-level
// Category tag + ID string, followed by category-specific fields, with
// three inline (unprefixed) sub-records — Reward, Price, Bonuses.
package card

import "github.com/rcc-emulator/server/internal/wire"

// Reward is the inline bonus record used for level-up and
// challenge-win payouts (spec.md §3). It never carries its own length
// prefix — it is inlined at the exact offset the reader expects
// (spec.md §9).
//
// The money bit is always set in this emulator (spec.md §3); Items
// holds item IDs, which are hashed to CRC32 on encode (spec.md §4.3).
type Reward struct {
	MoneyCoins        int32
	MoneySkillTickets int32
	XP                int32
	AP                int32
	Items             []string
}

// Encode writes the Reward fields into w in the documented order:
// BitField(1) · coins · tickets · XP · AP · item-hash list.
func (r Reward) Encode(w *wire.Writer) {
	w.WriteBitfield([]bool{true}) // money always present
	w.WriteI32(r.MoneyCoins)
	w.WriteI32(r.MoneySkillTickets)
	w.WriteI32(r.XP)
	w.WriteI32(r.AP)
	w.WriteVarInt(uint32(len(r.Items)))
	for _, id := range r.Items {
		w.WriteKey(id)
	}
}

// Price is the inline record for a purchasable price with an optional
// sale multiplier (spec.md §3).
type Price struct {
	Coins        int32
	SkillTickets int32
	// Sale is nil when no sale is active; the sale bit is then clear
	// and the trailing f32 is omitted entirely (spec.md §3, §9).
	Sale *float32
}

// Encode writes BitField(1) · coins · tickets · [sale f32 if present].
func (p Price) Encode(w *wire.Writer) {
	w.WriteBitfield([]bool{p.Sale != nil})
	w.WriteI32(p.Coins)
	w.WriteI32(p.SkillTickets)
	if p.Sale != nil {
		w.WriteF32(*p.Sale)
	}
}

// Bonuses is the inline record for premium/buff rate multipliers and
// stat maxima (spec.md §3).
type Bonuses struct {
	SkillTicketRate float32
	XPRate          float32
	LootRate        float32
	APCostRate      float32
	APRestoreRate   float32

	APMax        int32
	Strength     int32
	Timing       int32
	Speed        int32
	Acceleration int32
	Stamina      int32
	Obedience    int32
}

// Encode writes the five f32 rates followed by the seven i32 maxima,
// in field order (spec.md §3).
func (b Bonuses) Encode(w *wire.Writer) {
	w.WriteF32(b.SkillTicketRate)
	w.WriteF32(b.XPRate)
	w.WriteF32(b.LootRate)
	w.WriteF32(b.APCostRate)
	w.WriteF32(b.APRestoreRate)
	w.WriteI32(b.APMax)
	w.WriteI32(b.Strength)
	w.WriteI32(b.Timing)
	w.WriteI32(b.Speed)
	w.WriteI32(b.Acceleration)
	w.WriteI32(b.Stamina)
	w.WriteI32(b.Obedience)
}

// sentinel is the literal two-byte marker LogicMain and
// LogicActionPoints emit at a fixed point in their encoding. Its
// meaning is undocumented upstream; it is reproduced verbatim and
// should not be "cleaned up" without verifying against a live client
// (spec.md §9).
var sentinel = []byte{0xFF, 0xF0}
