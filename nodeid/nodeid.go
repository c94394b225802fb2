// Package nodeid implements §4.3: the compact multi-form NodeId/ExpandedNodeId
// encoding discriminated by a 6-bit type tag plus two optional flag bits.
package nodeid

import (
	"fmt"

	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/internal/options"
)

// Type identifies which of the six wire forms a NodeId's identifier takes.
type Type uint8

// The six NodeId wire forms, in increasing order of identifier range. Values
// match the tag occupying the low 6 bits of the encoding byte.
const (
	TwoByte    Type = 0
	FourByte   Type = 1
	Numeric    Type = 2
	String     Type = 3
	Guid       Type = 4
	ByteString Type = 5
)

// String renders the NodeId type as its wire-format name.
func (t Type) String() string {
	switch t {
	case TwoByte:
		return "TwoByte"
	case FourByte:
		return "FourByte"
	case Numeric:
		return "Numeric"
	case String:
		return "String"
	case Guid:
		return "Guid"
	case ByteString:
		return "ByteString"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// NodeId addresses a node in the OPC UA address space. Exactly one of the
// identifier fields is meaningful, selected by Type; the zero value is the
// null NodeId (TwoByte, namespace 0, identifier 0).
type NodeId struct {
	Type      Type
	Namespace uint16

	Numeric uint32 // valid for TwoByte, FourByte, Numeric
	Text    string // valid for String
	Guid    builtin.Guid
	Bytes   []byte // valid for ByteString
}

// Option configures a NodeId at construction time, e.g. to pin a wire form
// that would otherwise be chosen automatically.
type Option = options.Option[*NodeId]

// WithForcedType pins the NodeId to a specific wire form instead of letting
// New pick the minimal one. The caller is responsible for ensuring the
// identifier fits the forced type's range.
func WithForcedType(t Type) Option {
	return options.NoError(func(n *NodeId) {
		n.Type = t
	})
}

// Key returns a canonical string uniquely identifying n's (Type, Namespace,
// identifier), suitable as a registry map key. NodeId is not itself
// comparable (Guid/Bytes are slices), so registries key on this instead.
func (n NodeId) Key() string {
	switch n.Type {
	case TwoByte, FourByte, Numeric:
		return fmt.Sprintf("%d:%d:%d", n.Type, n.Namespace, n.Numeric)
	case String:
		return fmt.Sprintf("%d:%d:%s", n.Type, n.Namespace, n.Text)
	case Guid:
		return fmt.Sprintf("%d:%d:%s", n.Type, n.Namespace, n.Guid.String())
	case ByteString:
		return fmt.Sprintf("%d:%d:%x", n.Type, n.Namespace, n.Bytes)
	default:
		return fmt.Sprintf("%d:%d", n.Type, n.Namespace)
	}
}

// IsNull reports whether n is the null NodeId: TwoByte, namespace 0,
// identifier 0. A null type_id is the ExtensionObject decode short-circuit
// of §4.4.
func (n NodeId) IsNull() bool {
	return n.Type == TwoByte && n.Namespace == 0 && n.Numeric == 0
}

// New builds a Numeric-identifier NodeId (TwoByte, FourByte, or Numeric),
// selecting the smallest wire form that can hold namespace and identifier
// unless an Option forces one. This minimality is new behavior relative to
// the reference implementation, which always emits whatever type the caller
// had already set; see the NodeId minimality REDESIGN FLAG.
func New(namespace uint16, identifier uint32, opts ...Option) *NodeId {
	n := &NodeId{Namespace: namespace, Numeric: identifier}

	switch {
	case namespace == 0 && identifier <= 0xFF:
		n.Type = TwoByte
	case namespace <= 0xFF && identifier <= 0xFFFF:
		n.Type = FourByte
	default:
		n.Type = Numeric
	}

	_ = options.Apply(n, opts...)
	return n
}

// NewString builds a String-identifier NodeId.
func NewString(namespace uint16, identifier string) *NodeId {
	return &NodeId{Type: String, Namespace: namespace, Text: identifier}
}

// NewGuid builds a Guid-identifier NodeId.
func NewGuid(namespace uint16, identifier builtin.Guid) *NodeId {
	return &NodeId{Type: Guid, Namespace: namespace, Guid: identifier}
}

// NewByteString builds a ByteString-identifier NodeId.
func NewByteString(namespace uint16, identifier []byte) *NodeId {
	return &NodeId{Type: ByteString, Namespace: namespace, Bytes: identifier}
}

// validate reports errs.ErrBadTag for a Type outside the six defined forms.
func validate(t Type) error {
	if t > ByteString {
		return fmt.Errorf("%w: nodeid type %d", errs.ErrBadTag, uint8(t))
	}

	return nil
}
