package card

// Category is the one-byte tag that precedes every card's ID string
// (spec.md §3).
type Category uint8

// Card categories implemented by this emulator (spec.md §3). The
// client keys cards by the CRC32 of their UTF-8 ID, not by category,
// so categories need not be contiguous or exhaustive here.
const (
	CategorySkins        Category = 0x11
	CategoryLogicMain    Category = 0x15
	CategoryActionPoints Category = 0x16
	CategoryChat         Category = 0x1E
)
