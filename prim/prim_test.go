package prim_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
)

func TestScalarRoundTrip(t *testing.T) {
	w := buffer.Get()
	defer buffer.Put(w)

	prim.PackBool(w, true)
	prim.PackSByte(w, -12)
	prim.PackByte(w, 0xFE)
	prim.PackInt16(w, -1000)
	prim.PackUInt16(w, 0xBEEF)
	prim.PackInt32(w, -123456)
	prim.PackUInt32(w, 0xDEADBEEF)
	prim.PackInt64(w, -1234567890123)
	prim.PackUInt64(w, 0xCAFEBABEDEADBEEF)
	prim.PackFloat(w, 3.5)
	prim.PackDouble(w, 2.718281828)

	buf := buffer.New(w.Bytes())

	b, err := prim.UnpackBool(buf)
	require.NoError(t, err)
	require.True(t, b)

	sb, err := prim.UnpackSByte(buf)
	require.NoError(t, err)
	require.Equal(t, int8(-12), sb)

	by, err := prim.UnpackByte(buf)
	require.NoError(t, err)
	require.Equal(t, uint8(0xFE), by)

	i16, err := prim.UnpackInt16(buf)
	require.NoError(t, err)
	require.Equal(t, int16(-1000), i16)

	u16, err := prim.UnpackUInt16(buf)
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)

	i32, err := prim.UnpackInt32(buf)
	require.NoError(t, err)
	require.Equal(t, int32(-123456), i32)

	u32, err := prim.UnpackUInt32(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	i64, err := prim.UnpackInt64(buf)
	require.NoError(t, err)
	require.Equal(t, int64(-1234567890123), i64)

	u64, err := prim.UnpackUInt64(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(0xCAFEBABEDEADBEEF), u64)

	f32, err := prim.UnpackFloat(buf)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := prim.UnpackDouble(buf)
	require.NoError(t, err)
	require.Equal(t, 2.718281828, f64)

	require.Zero(t, buf.Remaining())
}

func TestUnpackBoolToleratesNonCanonicalTrue(t *testing.T) {
	buf := buffer.New([]byte{0x7F})

	v, err := prim.UnpackBool(buf)
	require.NoError(t, err)
	require.True(t, v)
}

func TestUnpackUnderflow(t *testing.T) {
	buf := buffer.New([]byte{0x01, 0x02})

	_, err := prim.UnpackUInt32(buf)
	require.ErrorIs(t, err, errs.ErrUnderflow)
}

func TestLittleEndianByteOrder(t *testing.T) {
	w := buffer.Get()
	defer buffer.Put(w)

	prim.PackUInt32(w, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, w.Bytes())
}

func TestArrayRoundTrip(t *testing.T) {
	w := buffer.Get()
	defer buffer.Put(w)

	values := []int32{1, -2, 3}
	err := prim.PackArray(w, values, prim.PackInt32)
	require.NoError(t, err)

	buf := buffer.New(w.Bytes())
	got, err := prim.UnpackArray(buf, prim.UnpackInt32)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestArrayAbsentVsEmpty(t *testing.T) {
	wAbsent := buffer.Get()
	defer buffer.Put(wAbsent)
	require.NoError(t, prim.PackArray[int32](wAbsent, nil, prim.PackInt32))

	bufAbsent := buffer.New(wAbsent.Bytes())
	gotAbsent, err := prim.UnpackArray(bufAbsent, prim.UnpackInt32)
	require.NoError(t, err)
	require.Nil(t, gotAbsent)

	wEmpty := buffer.Get()
	defer buffer.Put(wEmpty)
	require.NoError(t, prim.PackArray(wEmpty, []int32{}, prim.PackInt32))

	bufEmpty := buffer.New(wEmpty.Bytes())
	gotEmpty, err := prim.UnpackArray(bufEmpty, prim.UnpackInt32)
	require.NoError(t, err)
	require.NotNil(t, gotEmpty)
	require.Empty(t, gotEmpty)
}

func TestUnpackLengthRejectsNegativeOtherThanAbsent(t *testing.T) {
	buf := buffer.New([]byte{0xFE, 0xFF, 0xFF, 0xFF}) // -2

	_, _, err := prim.UnpackLength(buf)
	require.ErrorIs(t, err, errs.ErrBadLength)
}
