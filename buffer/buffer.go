// Package buffer provides the byte-cursor primitives the codec decodes from and
// encodes into: a positional read Buffer and a pooled, amortized-growth Writer.
package buffer

import (
	"fmt"

	"github.com/ua-stack/uacodec/errs"
)

// Buffer is a read-only byte sequence with a positional cursor. It is owned
// exclusively by the decoder for the duration of a single decode call; the
// underlying bytes are never copied or mutated by Buffer itself.
type Buffer struct {
	data []byte
	pos  int
}

// New wraps data in a Buffer positioned at offset 0.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Len returns the total length of the backing byte sequence, regardless of
// cursor position.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Pos returns the current cursor offset.
func (b *Buffer) Pos() int {
	return b.pos
}

// Read consumes and returns the next n bytes, advancing the cursor.
// The returned slice aliases the Buffer's backing array and must not be
// retained past the caller's use of it if the caller does not own the bytes.
func (b *Buffer) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read length %d", errs.ErrBadLength, n)
	}
	if b.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrUnderflow, n, b.Remaining())
	}
	out := b.data[b.pos : b.pos+n]
	b.pos += n

	return out, nil
}

// ReadByte consumes and returns the next single byte.
func (b *Buffer) ReadByte() (byte, error) {
	buf, err := b.Read(1)
	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

// Skip advances the cursor by n bytes without returning them.
func (b *Buffer) Skip(n int) error {
	_, err := b.Read(n)
	return err
}

// Copy yields an independent sub-buffer over the next n bytes without
// advancing this Buffer's cursor. Combine with Skip to also consume the
// range from the parent. The sub-buffer's cursor is entirely independent of
// the parent's; the parent must not depend on the sub-buffer's cursor
// advancement, and the sub-buffer's lifetime must not exceed the backing
// bytes it aliases.
func (b *Buffer) Copy(n int) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative copy length %d", errs.ErrBadLength, n)
	}
	if b.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrUnderflow, n, b.Remaining())
	}

	return &Buffer{data: b.data[b.pos : b.pos+n]}, nil
}
