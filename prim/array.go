package prim

import "github.com/ua-stack/uacodec/buffer"

// PackArray writes a length-prefixed array of T using elem to encode each
// value. A nil values slice is encoded as the -1 absent marker; a non-nil,
// zero-length slice is encoded as length 0. Every array and array-like
// builtin (String arrays, struct arrays, Variant array bodies) shares this
// one length-prefix convention, so it lives here once as a generic helper
// instead of being reimplemented per element type.
func PackArray[T any](w *buffer.Writer, values []T, elem func(*buffer.Writer, T)) error {
	if err := PackLength(w, len(values), values == nil); err != nil {
		return err
	}

	for _, v := range values {
		elem(w, v)
	}

	return nil
}

// UnpackArray reads a length-prefixed array of T using elem to decode each
// value. It returns a nil slice for the -1 absent marker and a non-nil,
// empty slice for length 0.
func UnpackArray[T any](buf *buffer.Buffer, elem func(*buffer.Buffer) (T, error)) ([]T, error) {
	n, ok, err := UnpackLength(buf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	out := make([]T, n)
	for i := range out {
		v, err := elem(buf)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
