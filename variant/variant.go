package variant

import (
	"fmt"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/extobj"
	"github.com/ua-stack/uacodec/prim"
)

const (
	flagIsArray       = 1 << 7
	flagHasDimensions = 1 << 6
	typeTagMask       = 0b0011_1111
)

// Variant is the self-describing polymorphic value carrier of §4.4: a type
// tag plus either a scalar, a flat array, or — once Dimensions is set on
// decode — the array reshaped into nested []any matching Dimensions.
type Variant struct {
	Type       Type
	Value      any
	IsArray    bool
	Dimensions []int32
}

// Encode writes v in the §4.4 layout: one encoding byte, then the value.
// A Value of type []any is encoded as an array even when IsArray is false.
func Encode(w *buffer.Writer, v *Variant, reg *extobj.Registry) error {
	if v.Type > typeTagMask {
		return fmt.Errorf("%w: variant type tag %d exceeds 6 bits", errs.ErrBadTag, uint8(v.Type))
	}

	isArray := v.IsArray
	if !isArray {
		_, isArray = v.Value.([]any)
	}
	hasDims := isArray && v.Dimensions != nil

	flags := byte(v.Type)
	if isArray {
		flags |= flagIsArray
	}
	if hasDims {
		flags |= flagHasDimensions
	}
	prim.PackByte(w, flags)

	if !isArray {
		if v.Type == TypeNull {
			return nil
		}

		return PackElement(w, v.Type, v.Value, reg)
	}

	flat, _ := v.Value.([]any)
	if err := prim.PackLength(w, len(flat), v.Value == nil); err != nil {
		return err
	}
	for _, e := range flat {
		if err := PackElement(w, v.Type, e, reg); err != nil {
			return err
		}
	}

	if hasDims {
		return prim.PackArray(w, v.Dimensions, prim.PackInt32)
	}

	return nil
}

// Decode reads a Variant. When the has-dimensions flag is set, the decoded
// flat array is folded into nested []any per reshape's tolerant rule before
// being stored in Value.
func Decode(buf *buffer.Buffer, reg *extobj.Registry) (*Variant, error) {
	encoding, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}

	v := &Variant{
		Type:    Type(encoding & typeTagMask),
		IsArray: encoding&flagIsArray != 0,
	}

	if !v.IsArray {
		if v.Type == TypeNull {
			return v, nil
		}

		val, err := UnpackElement(buf, v.Type, reg)
		if err != nil {
			return nil, err
		}
		v.Value = val

		return v, nil
	}

	n, ok, err := prim.UnpackLength(buf)
	if err != nil {
		return nil, err
	}

	var flat []any
	if ok {
		flat = make([]any, n)
		for i := range flat {
			e, err := UnpackElement(buf, v.Type, reg)
			if err != nil {
				return nil, err
			}
			flat[i] = e
		}
	}

	if encoding&flagHasDimensions != 0 {
		dims, err := prim.UnpackArray(buf, prim.UnpackInt32)
		if err != nil {
			return nil, err
		}
		v.Dimensions = dims
		v.Value = reshape(flat, dims)

		return v, nil
	}

	v.Value = flat
	return v, nil
}
