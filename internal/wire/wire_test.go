package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	w := NewWriter(64)
	w.WriteU8(0xAB)
	w.WriteI8(-5)
	w.WriteU16(0x1234)
	w.WriteI16(-1000)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-123456)
	w.WriteU64(0x1122334455667788)
	w.WriteI64(-1)
	w.WriteF32(3.5)
	w.WriteF64(2.71828)

	r := NewReader(w.Bytes())

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	i8, err := r.ReadI8()
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	i16, err := r.ReadI16()
	require.NoError(t, err)
	require.Equal(t, int16(-1000), i16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	i32, err := r.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(-123456), i32)

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x1122334455667788), u64)

	i64, err := r.ReadI64()
	require.NoError(t, err)
	require.Equal(t, int64(-1), i64)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	require.Equal(t, 2.71828, f64)

	require.Zero(t, r.Remaining())
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter(32)
	w.WriteString("logic_main")
	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "logic_main", s)
	require.Zero(t, r.Remaining())
}

func TestStringU32LenRoundTrip(t *testing.T) {
	w := NewWriter(32)
	w.WriteStringU32Len("account suspended")
	r := NewReader(w.Bytes())
	s, err := r.ReadStringU32Len()
	require.NoError(t, err)
	require.Equal(t, "account suspended", s)
}

func TestBitfieldRoundTrip(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true, true}
	w := NewWriter(8)
	w.WriteBitfield(bits)
	require.Equal(t, 2, w.Len()) // ceil(9/8) == 2 bytes

	r := NewReader(w.Bytes())
	got, err := r.ReadBitfield(len(bits))
	require.NoError(t, err)
	require.Equal(t, bits, got)
}

func TestCRC32KeyOracle(t *testing.T) {
	require.Equal(t, uint32(3317978623), CRC32Key("logic_main"))
}

func TestWriterPoolResetsState(t *testing.T) {
	w := Get()
	w.WriteU8(1)
	w.WriteU8(2)
	w.Put()

	w2 := Get()
	require.Zero(t, w2.Len())
	w2.Put()
}
