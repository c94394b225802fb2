// Package prim implements §4.1 of the codec: fixed-width little-endian scalar
// packing and the Int32 length-prefix convention arrays and variable-length
// builtins are layered on top of.
//
// Each OPC UA primitive type gets an explicit Pack/Unpack pair rather than a
// single generic function, mirroring the reference implementation's
// per-type table (Primitives.SByte, .Int16, .Int32, ... in
// original_source/opcua/ua/ua_binary.py) — the wire size and bit
// interpretation differ per type, so a generic numeric codec would need the
// same type switch internally anyway.
package prim

import (
	"fmt"
	"math"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/endian"
	"github.com/ua-stack/uacodec/errs"
)

var le = endian.LittleEndian()

// PackBool encodes a boolean as a single byte: 0x00 for false, 0x01 for true.
func PackBool(w *buffer.Writer, v bool) {
	if v {
		w.AppendByte(0x01)
	} else {
		w.AppendByte(0x00)
	}
}

// UnpackBool decodes a boolean byte. Per §4.1, any non-zero byte is tolerated
// as true; this is not treated as a decode error.
func UnpackBool(buf *buffer.Buffer) (bool, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return false, err
	}

	return b != 0x00, nil
}

// PackSByte encodes a signed 8-bit integer.
func PackSByte(w *buffer.Writer, v int8) {
	w.AppendByte(byte(v))
}

// UnpackSByte decodes a signed 8-bit integer.
func UnpackSByte(buf *buffer.Buffer) (int8, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}

	return int8(b), nil
}

// PackByte encodes an unsigned 8-bit integer.
func PackByte(w *buffer.Writer, v uint8) {
	w.AppendByte(v)
}

// UnpackByte decodes an unsigned 8-bit integer.
func UnpackByte(buf *buffer.Buffer) (uint8, error) {
	return buf.ReadByte()
}

// PackInt16 encodes a signed 16-bit integer in little-endian order.
func PackInt16(w *buffer.Writer, v int16) {
	PackUInt16(w, uint16(v))
}

// UnpackInt16 decodes a signed 16-bit integer.
func UnpackInt16(buf *buffer.Buffer) (int16, error) {
	v, err := UnpackUInt16(buf)
	return int16(v), err
}

// PackUInt16 encodes an unsigned 16-bit integer in little-endian order.
func PackUInt16(w *buffer.Writer, v uint16) {
	w.Grow(2)
	w.Append(le.AppendUint16(nil, v))
}

// UnpackUInt16 decodes an unsigned 16-bit integer.
func UnpackUInt16(buf *buffer.Buffer) (uint16, error) {
	b, err := buf.Read(2)
	if err != nil {
		return 0, err
	}

	return le.Uint16(b), nil
}

// PackInt32 encodes a signed 32-bit integer in little-endian order.
func PackInt32(w *buffer.Writer, v int32) {
	PackUInt32(w, uint32(v))
}

// UnpackInt32 decodes a signed 32-bit integer.
func UnpackInt32(buf *buffer.Buffer) (int32, error) {
	v, err := UnpackUInt32(buf)
	return int32(v), err
}

// PackUInt32 encodes an unsigned 32-bit integer in little-endian order.
func PackUInt32(w *buffer.Writer, v uint32) {
	w.Grow(4)
	w.Append(le.AppendUint32(nil, v))
}

// UnpackUInt32 decodes an unsigned 32-bit integer.
func UnpackUInt32(buf *buffer.Buffer) (uint32, error) {
	b, err := buf.Read(4)
	if err != nil {
		return 0, err
	}

	return le.Uint32(b), nil
}

// PackInt64 encodes a signed 64-bit integer in little-endian order.
func PackInt64(w *buffer.Writer, v int64) {
	PackUInt64(w, uint64(v))
}

// UnpackInt64 decodes a signed 64-bit integer.
func UnpackInt64(buf *buffer.Buffer) (int64, error) {
	v, err := UnpackUInt64(buf)
	return int64(v), err
}

// PackUInt64 encodes an unsigned 64-bit integer in little-endian order.
func PackUInt64(w *buffer.Writer, v uint64) {
	w.Grow(8)
	w.Append(le.AppendUint64(nil, v))
}

// UnpackUInt64 decodes an unsigned 64-bit integer.
func UnpackUInt64(buf *buffer.Buffer) (uint64, error) {
	b, err := buf.Read(8)
	if err != nil {
		return 0, err
	}

	return le.Uint64(b), nil
}

// PackFloat encodes an IEEE-754 single-precision float in little-endian order.
func PackFloat(w *buffer.Writer, v float32) {
	PackUInt32(w, math.Float32bits(v))
}

// UnpackFloat decodes an IEEE-754 single-precision float.
func UnpackFloat(buf *buffer.Buffer) (float32, error) {
	bits, err := UnpackUInt32(buf)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// PackDouble encodes an IEEE-754 double-precision float in little-endian order.
func PackDouble(w *buffer.Writer, v float64) {
	PackUInt64(w, math.Float64bits(v))
}

// UnpackDouble decodes an IEEE-754 double-precision float.
func UnpackDouble(buf *buffer.Buffer) (float64, error) {
	bits, err := UnpackUInt64(buf)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// PackLength encodes an array/string/byte-string length prefix: -1 for a nil
// (absent) sequence, otherwise the non-negative element count. It is the one
// place the array-length convention in §4.1/§3 is centralized.
func PackLength(w *buffer.Writer, n int, absent bool) error {
	if absent {
		PackInt32(w, -1)
		return nil
	}
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: length %d", errs.ErrArrayTooLarge, n)
	}

	PackInt32(w, int32(n)) //nolint:gosec
	return nil
}

// UnpackLength decodes a length prefix, returning ok=false for the -1 absent
// marker.
func UnpackLength(buf *buffer.Buffer) (n int, ok bool, err error) {
	l, err := UnpackInt32(buf)
	if err != nil {
		return 0, false, err
	}
	if l == -1 {
		return 0, false, nil
	}
	if l < 0 {
		return 0, false, fmt.Errorf("%w: %d", errs.ErrBadLength, l)
	}

	return int(l), true, nil
}
