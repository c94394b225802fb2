package nodeid

import (
	"fmt"

	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
)

const (
	flagHasNamespaceURI = 1 << 7
	flagHasServerIndex  = 1 << 6
	typeTagMask         = 0b0011_1111
)

// Pack encodes n as the body layout selected by its Type. The leading
// encoding byte carries only the type tag; NamespaceUri/ServerIndex flags
// are ExpandedNodeId-only and set by PackExpanded.
func Pack(w *buffer.Writer, n *NodeId) error {
	if err := validate(n.Type); err != nil {
		return err
	}

	prim.PackByte(w, uint8(n.Type))

	switch n.Type {
	case TwoByte:
		if n.Numeric > 0xFF {
			return fmt.Errorf("%w: TwoByte identifier %d exceeds UInt8 range", errs.ErrBadLength, n.Numeric)
		}
		prim.PackByte(w, uint8(n.Numeric))
	case FourByte:
		if n.Namespace > 0xFF {
			return fmt.Errorf("%w: FourByte namespace %d exceeds UInt8 range", errs.ErrBadLength, n.Namespace)
		}
		if n.Numeric > 0xFFFF {
			return fmt.Errorf("%w: FourByte identifier %d exceeds UInt16 range", errs.ErrBadLength, n.Numeric)
		}
		prim.PackByte(w, uint8(n.Namespace))
		prim.PackUInt16(w, uint16(n.Numeric))
	case Numeric:
		prim.PackUInt16(w, n.Namespace)
		prim.PackUInt32(w, n.Numeric)
	case String:
		prim.PackUInt16(w, n.Namespace)
		text := n.Text
		if err := builtin.PackString(w, &text); err != nil {
			return err
		}
	case Guid:
		prim.PackUInt16(w, n.Namespace)
		if err := builtin.PackGuid(w, n.Guid); err != nil {
			return err
		}
	case ByteString:
		prim.PackUInt16(w, n.Namespace)
		if err := builtin.PackByteString(w, n.Bytes); err != nil {
			return err
		}
	}

	return nil
}

// Unpack decodes a NodeId's leading byte and body. It does not consume any
// ExpandedNodeId flag-gated suffix; use UnpackExpanded for that.
func Unpack(buf *buffer.Buffer) (*NodeId, byte, error) {
	encoding, err := buf.ReadByte()
	if err != nil {
		return nil, 0, err
	}

	tag := Type(encoding & typeTagMask)
	if err := validate(tag); err != nil {
		return nil, 0, err
	}

	n := &NodeId{Type: tag}

	switch tag {
	case TwoByte:
		b, err := prim.UnpackByte(buf)
		if err != nil {
			return nil, 0, err
		}
		n.Numeric = uint32(b)
	case FourByte:
		ns, err := prim.UnpackByte(buf)
		if err != nil {
			return nil, 0, err
		}
		id, err := prim.UnpackUInt16(buf)
		if err != nil {
			return nil, 0, err
		}
		n.Namespace = uint16(ns)
		n.Numeric = uint32(id)
	case Numeric:
		ns, err := prim.UnpackUInt16(buf)
		if err != nil {
			return nil, 0, err
		}
		id, err := prim.UnpackUInt32(buf)
		if err != nil {
			return nil, 0, err
		}
		n.Namespace = ns
		n.Numeric = id
	case String:
		ns, err := prim.UnpackUInt16(buf)
		if err != nil {
			return nil, 0, err
		}
		s, err := builtin.UnpackString(buf)
		if err != nil {
			return nil, 0, err
		}
		n.Namespace = ns
		if s != nil {
			n.Text = *s
		}
	case Guid:
		ns, err := prim.UnpackUInt16(buf)
		if err != nil {
			return nil, 0, err
		}
		g, err := builtin.UnpackGuid(buf)
		if err != nil {
			return nil, 0, err
		}
		n.Namespace = ns
		n.Guid = g
	case ByteString:
		ns, err := prim.UnpackUInt16(buf)
		if err != nil {
			return nil, 0, err
		}
		b, err := builtin.UnpackByteString(buf)
		if err != nil {
			return nil, 0, err
		}
		n.Namespace = ns
		n.Bytes = b
	}

	return n, encoding, nil
}
