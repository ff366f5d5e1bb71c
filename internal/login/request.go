// Package login implements the login handshake of spec.md §4.5: parsing
// the fixed-shape authorization blob, resolving the player identity,
// and emitting the success or failure reply.
package login

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
)

// ExpectedProtocolVersion is the only known-good protocol version byte
// (spec.md §3). A mismatch is a warning, not a failure — the handshake
// proceeds regardless (spec.md §7).
const ExpectedProtocolVersion = 34

// minPayloadLength is the shortest a login payload can be and still
// carry protocol version + account ID (spec.md §4.5 step 1).
const minPayloadLength = 14

// accountIDOffset is the byte offset of the 8-byte little-endian
// Steam-style account identifier (spec.md §3).
const accountIDOffset = 6

// maxPlausibleTokenLength bounds what the length-prefix heuristic in
// parseToken will accept as a real length rather than raw token bytes
// (spec.md §4.5 step 4).
const maxPlausibleTokenLength = 10000

// Request is the decoded shape of a login payload.
type Request struct {
	ProtocolVersion byte
	SourceType      string
	SourceID        string
	TokenHash       string

	// Fallback is true when the payload was too short to parse and a
	// synthesized source-id was used instead (spec.md §7
	// LoginParseFailure). Login still proceeds to identity resolution
	// so a malformed-but-well-intentioned client keeps its session.
	Fallback bool
}

// ParseRequest decodes a login payload per spec.md §4.5. On a payload
// shorter than minPayloadLength it never returns an error — it
// synthesizes a fallback source-id from the raw bytes and lets the
// caller continue to identity resolution (spec.md §7).
func ParseRequest(payload []byte) Request {
	if len(payload) < minPayloadLength {
		return Request{
			SourceType: "Steam",
			SourceID:   fmt.Sprintf("steam_fallback_%x", payload),
			Fallback:   true,
		}
	}

	protocolVersion := payload[1]
	accountID := binary.LittleEndian.Uint64(payload[accountIDOffset : accountIDOffset+8])
	sourceID := strconv.FormatUint(accountID, 10)

	token := parseToken(payload[accountIDOffset+8:])
	sum := sha256.Sum256(token)

	return Request{
		ProtocolVersion: protocolVersion,
		SourceType:      "Steam",
		SourceID:        sourceID,
		TokenHash:       hex.EncodeToString(sum[:]),
	}
}

// parseToken implements spec.md §4.5 step 4: if the first 4 bytes of
// rest encode a plausible length (0 < L < len(rest) and L <
// maxPlausibleTokenLength) and L bytes fit after those 4 bytes, the 4
// bytes are a length prefix and the following L bytes are the token.
// Otherwise every remaining byte is the token.
func parseToken(rest []byte) []byte {
	if len(rest) >= 4 {
		length := binary.LittleEndian.Uint32(rest[:4])
		remaining := uint32(len(rest))
		if length > 0 && length < remaining && length < maxPlausibleTokenLength {
			end := 4 + length
			if end <= remaining {
				return rest[4:end]
			}
		}
	}
	return rest
}
