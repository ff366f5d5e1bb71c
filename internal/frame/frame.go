// Package frame implements the length-prefixed framing used on the TCP
// game channel (spec.md §4.1). A frame is a VarInt byte-length prefix
// followed by exactly that many payload bytes; framing is the only unit
// of I/O on that channel.
package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// MaxVarIntBytes is the longest a VarInt length prefix may be before
// the decoder gives up — five 7-bit groups cover a full uint32.
const MaxVarIntBytes = 5

// MaxPayloadSize caps an accepted frame payload (spec.md §4.6, ~2MB
// safety cap). Frames claiming a larger length are rejected without
// reading further.
const MaxPayloadSize = 2 << 20

// ErrMalformedFrame is returned for a VarInt that never terminates
// within MaxVarIntBytes, a payload read that hits EOF early, or a
// claimed payload length beyond MaxPayloadSize. The connection loop
// treats this as fatal and closes the socket without resynchronizing
// (spec.md §4.1, §7).
var ErrMalformedFrame = errors.New("frame: malformed frame")

// EncodeVarInt appends the VarInt encoding of n to dst and returns the
// extended slice. VarInt uses 7 data bits per byte, little-endian,
// with the high bit set on every byte but the last.
func EncodeVarInt(dst []byte, n uint32) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}
	return append(dst, byte(n))
}

// DecodeVarInt reads a VarInt from r, one byte at a time, stopping at
// the first byte with a clear high bit. It fails with ErrMalformedFrame
// if MaxVarIntBytes bytes are consumed without terminating, or on any
// read error (including io.EOF, which signals a truncated stream); the
// read error stays in the chain for errors.Is/errors.As.
func DecodeVarInt(r io.ByteReader) (uint32, error) {
	var result uint32
	for i := 0; i < MaxVarIntBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("frame: reading varint byte %d: %w: %w", i, ErrMalformedFrame, err)
		}
		result |= uint32(b&0x7F) << (7 * uint(i))
		if b&0x80 == 0 {
			return result, nil
		}
	}
	return 0, fmt.Errorf("frame: varint exceeds %d bytes: %w", MaxVarIntBytes, ErrMalformedFrame)
}

// Encode prepends the VarInt encoding of len(payload) to payload and
// returns the resulting frame bytes.
func Encode(payload []byte) []byte {
	out := make([]byte, 0, MaxVarIntBytes+len(payload))
	out = EncodeVarInt(out, uint32(len(payload)))
	return append(out, payload...)
}

// Decode reads one frame from r: a VarInt length prefix followed by
// exactly that many payload bytes. It returns ErrMalformedFrame on a
// bad VarInt, a truncated payload, or a payload exceeding
// MaxPayloadSize.
func Decode(r *bufio.Reader) ([]byte, error) {
	n, err := DecodeVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > MaxPayloadSize {
		return nil, fmt.Errorf("frame: payload length %d exceeds cap %d: %w", n, MaxPayloadSize, ErrMalformedFrame)
	}
	if n == 0 {
		return []byte{}, nil
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("frame: reading %d byte payload: %w: %w", n, ErrMalformedFrame, err)
	}
	return payload, nil
}
