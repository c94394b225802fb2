// Package builtin implements §4.2: the variable-length builtin types layered
// on top of prim — String, ByteString, Guid, and DateTime. String and
// ByteString follow the same length-prefix/absent convention
// prim.PackArray/UnpackArray centralize for arrays, applied here to a single
// byte run instead of a slice of elements; Guid and DateTime are fixed width.
package builtin

import (
	"fmt"
	"unicode/utf8"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
)

// PackString encodes s as length-prefixed UTF-8 bytes. A nil *string encodes
// as the -1 absent marker; a non-nil, empty string encodes as length 0.
func PackString(w *buffer.Writer, s *string) error {
	if s == nil {
		return prim.PackLength(w, 0, true)
	}

	b := []byte(*s)
	if err := prim.PackLength(w, len(b), false); err != nil {
		return err
	}
	w.Append(b)

	return nil
}

// UnpackString decodes a length-prefixed UTF-8 string, returning nil for the
// absent marker. The bytes are validated as UTF-8 per §4.2.
func UnpackString(buf *buffer.Buffer) (*string, error) {
	n, ok, err := prim.UnpackLength(buf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	b, err := buf.Read(n)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: string body is not valid UTF-8", errs.ErrBadUTF8)
	}

	s := string(b)
	return &s, nil
}

// PackByteString encodes b as a length-prefixed raw byte run. A nil slice
// encodes as the -1 absent marker; a non-nil, empty slice encodes as length
// 0.
func PackByteString(w *buffer.Writer, b []byte) error {
	if err := prim.PackLength(w, len(b), b == nil); err != nil {
		return err
	}
	w.Append(b)

	return nil
}

// UnpackByteString decodes a length-prefixed raw byte run, returning nil for
// the absent marker and a non-nil, zero-length slice for length 0. The
// returned slice is a copy; it does not alias the decode buffer.
func UnpackByteString(buf *buffer.Buffer) ([]byte, error) {
	n, ok, err := prim.UnpackLength(buf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	b, err := buf.Read(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)

	return out, nil
}
