package frame

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 127, 128, 300, 16384, 1 << 20, 1<<32 - 1}
	for _, n := range cases {
		buf := EncodeVarInt(nil, n)
		require.LessOrEqual(t, len(buf), MaxVarIntBytes)

		got, err := DecodeVarInt(bufio.NewReader(bytes.NewReader(buf)))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestDecodeVarIntRejectsFiveContinuationBytes(t *testing.T) {
	bad := []byte{0x80, 0x80, 0x80, 0x80, 0x80}
	_, err := DecodeVarInt(bufio.NewReader(bytes.NewReader(bad)))
	require.ErrorIs(t, err, ErrMalformedFrame)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xAB}, 1000),
	}
	for _, p := range payloads {
		encoded := Encode(p)
		r := bufio.NewReader(bytes.NewReader(encoded))
		got, err := Decode(r)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestEncodeLengthIsCorrect(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 200)
	encoded := Encode(payload)
	prefixLen := len(EncodeVarInt(nil, uint32(len(payload))))
	require.Equal(t, prefixLen+len(payload), len(encoded))
}

func TestDecodeTruncatedPayloadIsMalformed(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(EncodeVarInt(nil, 10))
	buf.Write([]byte{1, 2, 3}) // claims 10 bytes, only 3 present

	_, err := Decode(bufio.NewReader(&buf))
	require.ErrorIs(t, err, ErrMalformedFrame)
}

func TestDecodeOversizedFrameRejected(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(EncodeVarInt(nil, MaxPayloadSize+1))

	_, err := Decode(bufio.NewReader(&buf))
	require.ErrorIs(t, err, ErrMalformedFrame)
}

func TestDecodeEmptyPayload(t *testing.T) {
	buf := bufio.NewReader(bytes.NewReader(EncodeVarInt(nil, 0)))
	got, err := Decode(buf)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeInvalidFiveByteVarIntIsMalformed(t *testing.T) {
	// Literal scenario from spec.md §8: FF FF FF FF FF is an invalid VarInt.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	_, err := Decode(bufio.NewReader(bytes.NewReader(data)))
	require.ErrorIs(t, err, ErrMalformedFrame)
}
