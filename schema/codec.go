package schema

import (
	"fmt"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
	"github.com/ua-stack/uacodec/variant"
)

// Value is a decoded or to-be-encoded struct instance: a field-name-keyed
// record, matching the runtime schema rather than a fixed Go type.
type Value = map[string]any

// Encode writes rec as the structure named typeName, walking its registered
// Field list in order. For an enum schema, rec must be a uint32 ordinal
// instead of a Value.
func Encode(w *buffer.Writer, typeName string, rec any, reg *Registry) error {
	s, err := reg.lookup(typeName)
	if err != nil {
		return err
	}

	if s.IsEnum {
		ordinal, ok := rec.(uint32)
		if !ok {
			return fmt.Errorf("%w: enum %q value must be uint32", errs.ErrSchemaMismatch, typeName)
		}
		prim.PackUInt32(w, ordinal)

		return nil
	}

	fields, ok := rec.(Value)
	if !ok {
		return fmt.Errorf("%w: struct %q value must be schema.Value", errs.ErrSchemaMismatch, typeName)
	}

	work := withSwitchBitsApplied(s, fields)

	for _, f := range s.Fields {
		val := work[f.Name]
		if f.SwitchField != "" && val == nil {
			continue
		}

		if f.IsList {
			if err := encodeList(w, f, val, reg); err != nil {
				return fmt.Errorf("field %s.%s: %w", typeName, f.Name, err)
			}

			continue
		}

		if err := encodeField(w, f, val, reg); err != nil {
			return fmt.Errorf("field %s.%s: %w", typeName, f.Name, err)
		}
	}

	return nil
}

// Decode reads the structure named typeName, returning a uint32 ordinal for
// an enum schema or a Value for a struct schema.
func Decode(buf *buffer.Buffer, typeName string, reg *Registry) (any, error) {
	s, err := reg.lookup(typeName)
	if err != nil {
		return nil, err
	}

	if s.IsEnum {
		return prim.UnpackUInt32(buf)
	}

	rec := make(Value, len(s.Fields))

	for _, f := range s.Fields {
		if f.SwitchField != "" {
			container, _ := rec[f.SwitchField].(uint32)
			if container&(1<<f.SwitchBit) == 0 {
				continue
			}
		}

		var (
			val any
			err error
		)

		if f.IsList {
			val, err = decodeList(buf, f, reg)
		} else {
			val, err = decodeField(buf, f, reg)
		}
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", typeName, f.Name, err)
		}

		rec[f.Name] = val
	}

	return rec, nil
}

// withSwitchBitsApplied returns a shallow copy of fields with every
// SwitchField's bitmask updated to reflect which switch-gated members are
// present in this call, mirroring the reference implementation's
// set-before-emit pass.
func withSwitchBitsApplied(s *StructSchema, fields Value) Value {
	work := make(Value, len(fields))
	for k, v := range fields {
		work[k] = v
	}

	for _, f := range s.Fields {
		if f.SwitchField == "" {
			continue
		}
		if v, present := work[f.Name]; !present || v == nil {
			continue
		}

		container, _ := work[f.SwitchField].(uint32)
		work[f.SwitchField] = container | (1 << f.SwitchBit)
	}

	return work
}

func encodeField(w *buffer.Writer, f Field, val any, reg *Registry) error {
	switch f.Kind {
	case KindScalar:
		return variant.PackElement(w, f.ScalarType, val, reg.ExtObj)
	case KindStruct, KindEnum:
		return Encode(w, f.StructName, val, reg)
	default:
		return fmt.Errorf("%w: unknown field kind %d", errs.ErrSchemaMismatch, f.Kind)
	}
}

func decodeField(buf *buffer.Buffer, f Field, reg *Registry) (any, error) {
	switch f.Kind {
	case KindScalar:
		return variant.UnpackElement(buf, f.ScalarType, reg.ExtObj)
	case KindStruct, KindEnum:
		return Decode(buf, f.StructName, reg)
	default:
		return nil, fmt.Errorf("%w: unknown field kind %d", errs.ErrSchemaMismatch, f.Kind)
	}
}

func encodeList(w *buffer.Writer, f Field, val any, reg *Registry) error {
	if val == nil {
		return prim.PackLength(w, 0, true)
	}

	items, ok := val.([]any)
	if !ok {
		return fmt.Errorf("%w: list field must be []any", errs.ErrSchemaMismatch)
	}

	if err := prim.PackLength(w, len(items), false); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeField(w, withoutSwitch(f), item, reg); err != nil {
			return err
		}
	}

	return nil
}

func decodeList(buf *buffer.Buffer, f Field, reg *Registry) (any, error) {
	n, ok, err := prim.UnpackLength(buf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	items := make([]any, n)
	for i := range items {
		v, err := decodeField(buf, withoutSwitch(f), reg)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}

	return items, nil
}

// withoutSwitch strips switch-field gating from f before passing it to
// encodeField/decodeField for a single list element: a ListOf member's
// elements are never themselves individually gated.
func withoutSwitch(f Field) Field {
	f.SwitchField = ""
	return f
}
