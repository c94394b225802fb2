// Package variant implements §4.4's Variant half: the self-describing
// polymorphic value carrier, with optional flat-array and N-dimensional
// reshaping.
package variant

import "fmt"

// Type is the 6-bit builtin type tag carried in a Variant's encoding byte.
// Values 0-25 are the fixed OPC UA builtin type catalogue; any value above
// 25 is treated as a ByteString-shaped blob per §4.4.
type Type uint8

// The OPC UA builtin type catalogue, in wire-tag order.
const (
	TypeNull            Type = 0
	TypeBoolean         Type = 1
	TypeSByte           Type = 2
	TypeByte            Type = 3
	TypeInt16           Type = 4
	TypeUInt16          Type = 5
	TypeInt32           Type = 6
	TypeUInt32          Type = 7
	TypeInt64           Type = 8
	TypeUInt64          Type = 9
	TypeFloat           Type = 10
	TypeDouble          Type = 11
	TypeString          Type = 12
	TypeDateTime        Type = 13
	TypeGuid            Type = 14
	TypeByteString      Type = 15
	TypeXmlElement      Type = 16
	TypeNodeId          Type = 17
	TypeExpandedNodeId  Type = 18
	TypeStatusCode      Type = 19
	TypeQualifiedName   Type = 20
	TypeLocalizedText   Type = 21
	TypeExtensionObject Type = 22
	TypeDataValue       Type = 23
	TypeVariant         Type = 24
	TypeDiagnosticInfo  Type = 25
)

// String renders the variant type tag by its OPC UA builtin type name. Tags
// above 25 render as "ByteString(<n>)" to reflect the §4.4 blob fallback.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeSByte:
		return "SByte"
	case TypeByte:
		return "Byte"
	case TypeInt16:
		return "Int16"
	case TypeUInt16:
		return "UInt16"
	case TypeInt32:
		return "Int32"
	case TypeUInt32:
		return "UInt32"
	case TypeInt64:
		return "Int64"
	case TypeUInt64:
		return "UInt64"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeDateTime:
		return "DateTime"
	case TypeGuid:
		return "Guid"
	case TypeByteString:
		return "ByteString"
	case TypeXmlElement:
		return "XmlElement"
	case TypeNodeId:
		return "NodeId"
	case TypeExpandedNodeId:
		return "ExpandedNodeId"
	case TypeStatusCode:
		return "StatusCode"
	case TypeQualifiedName:
		return "QualifiedName"
	case TypeLocalizedText:
		return "LocalizedText"
	case TypeExtensionObject:
		return "ExtensionObject"
	case TypeDataValue:
		return "DataValue"
	case TypeVariant:
		return "Variant"
	case TypeDiagnosticInfo:
		return "DiagnosticInfo"
	default:
		return fmt.Sprintf("ByteString(%d)", uint8(t))
	}
}

// IsBuiltin reports whether t is one of the 26 fixed catalogue entries
// (0..25) rather than a >25 value treated as an opaque byte string.
func (t Type) IsBuiltin() bool {
	return t <= TypeDiagnosticInfo
}
