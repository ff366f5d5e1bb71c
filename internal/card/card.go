package card

import (
	"github.com/rcc-emulator/server/internal/service"
	"github.com/rcc-emulator/server/internal/wire"
)

// Card is a catalogue entry expressed as a tagged variant: a category
// discriminator paired with a category-specific encoder. The
// top-level encoder dispatches on Category; each record exposes a
// single Encode capability. No inheritance is needed (spec.md §9).
type Card interface {
	// Category returns this card's one-byte category tag.
	Category() Category
	// CardID returns the card's ID string. The client keys the card
	// by the CRC32 of this string's UTF-8 bytes (spec.md §3, §4.8).
	CardID() string
	// Encode writes the category-specific fields only — the caller
	// (Encode, below) writes the category tag and ID string first.
	Encode(w *wire.Writer)
}

// Encode writes one full card: category tag (u8), ID (VarInt-length
// string), then the category-specific fields.
func Encode(w *wire.Writer, c Card) {
	w.WriteU8(uint8(c.Category()))
	w.WriteString(c.CardID())
	c.Encode(w)
}

// EncodeCatalogue produces the full Recv_Init message body: ServiceID
// byte (Cards=101) · FunctionID byte (0) · VarInt count · concatenated
// card encodings (spec.md §4.3). The caller (connection loop) wraps
// the result with the frame codec.
func EncodeCatalogue(cards []Card) []byte {
	w := wire.Get()
	defer w.Put()

	w.WriteU8(uint8(service.Cards))
	w.WriteU8(0) // FunctionID 0 == Recv_Init
	w.WriteVarInt(uint32(len(cards)))
	for _, c := range cards {
		Encode(w, c)
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out
}
