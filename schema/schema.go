// Package schema implements the generic structure codec user-defined OPC UA
// types are built from: a field-descriptor walker driven by a runtime
// StructSchema rather than a hand-written struct per message type, plus a
// name-keyed Registry mirroring extobj's.
package schema

import "github.com/ua-stack/uacodec/variant"

// FieldKind selects how a Field's value is packed/unpacked.
type FieldKind int

const (
	// KindScalar fields use the variant element codec named by ScalarType.
	KindScalar FieldKind = iota
	// KindStruct fields recurse into another registered StructSchema.
	KindStruct
	// KindEnum fields recurse into another registered enum schema (a plain
	// UInt32 ordinal, registered the same way as a struct).
	KindEnum
)

// Field describes one member of a StructSchema in declaration order. Order
// matters: it is the wire order, and it is what the switch-field bitmask
// accounting walks.
type Field struct {
	Name string
	Kind FieldKind
	// IsList marks a ListOf<T> field: an Int32 length prefix followed by
	// that many repetitions of the element type.
	IsList bool

	// ScalarType is used when Kind == KindScalar.
	ScalarType variant.Type
	// StructName is used when Kind == KindStruct or KindEnum: the name of
	// another schema registered in the same Registry.
	StructName string

	// SwitchField, when non-empty, names a sibling UInt32 field acting as
	// this field's presence bitmask; SwitchBit is the bit within it. A nil
	// value for this field is omitted from the wire entirely, and the bit
	// is set in SwitchField automatically when this field is present.
	SwitchField string
	SwitchBit   uint
}

// StructSchema describes one user-defined OPC UA structure or enumeration.
// IsEnum schemas have no Fields; their single value is a UInt32 ordinal.
type StructSchema struct {
	Name   string
	IsEnum bool
	Fields []Field
}
