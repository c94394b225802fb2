package variant

import (
	"fmt"
	"time"

	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/extobj"
	"github.com/ua-stack/uacodec/nodeid"
	"github.com/ua-stack/uacodec/prim"
)

// PackElement encodes a single value of variant type tag t, dispatching to
// the builtin/nodeid/extobj codec it names, or recursing for a nested
// Variant. Tags above 25 fall back to the ByteString blob shape. The
// catalogue entries this codec does not give a dedicated structure
// (XmlElement, QualifiedName, LocalizedText, DataValue, DiagnosticInfo)
// return errs.ErrUnknownType, as they do in UnpackElement.
func PackElement(w *buffer.Writer, t Type, v any, reg *extobj.Registry) error {
	switch t {
	case TypeBoolean:
		prim.PackBool(w, v.(bool))
	case TypeSByte:
		prim.PackSByte(w, v.(int8))
	case TypeByte:
		prim.PackByte(w, v.(uint8))
	case TypeInt16:
		prim.PackInt16(w, v.(int16))
	case TypeUInt16:
		prim.PackUInt16(w, v.(uint16))
	case TypeInt32:
		prim.PackInt32(w, v.(int32))
	case TypeUInt32, TypeStatusCode:
		prim.PackUInt32(w, v.(uint32))
	case TypeInt64:
		prim.PackInt64(w, v.(int64))
	case TypeUInt64:
		prim.PackUInt64(w, v.(uint64))
	case TypeFloat:
		prim.PackFloat(w, v.(float32))
	case TypeDouble:
		prim.PackDouble(w, v.(float64))
	case TypeString:
		s := v.(string)
		return builtin.PackString(w, &s)
	case TypeDateTime:
		return builtin.PackDateTime(w, v.(time.Time))
	case TypeGuid:
		return builtin.PackGuid(w, v.(builtin.Guid))
	case TypeNodeId:
		return nodeid.Pack(w, v.(*nodeid.NodeId))
	case TypeExpandedNodeId:
		return nodeid.PackExpanded(w, v.(*nodeid.ExpandedNodeId))
	case TypeExtensionObject:
		eo, _ := v.(*extobj.ExtensionObject)
		return extobj.Encode(w, eo, reg)
	case TypeVariant:
		return Encode(w, v.(*Variant), reg)
	case TypeByteString:
		return builtin.PackByteString(w, v.([]byte))
	default:
		if b, ok := v.([]byte); ok && !t.IsBuiltin() {
			return builtin.PackByteString(w, b)
		}

		return fmt.Errorf("%w: variant type %s has no element codec", errs.ErrUnknownType, t)
	}

	return nil
}

// UnpackElement is PackElement's decode counterpart.
func UnpackElement(buf *buffer.Buffer, t Type, reg *extobj.Registry) (any, error) {
	switch t {
	case TypeBoolean:
		return prim.UnpackBool(buf)
	case TypeSByte:
		return prim.UnpackSByte(buf)
	case TypeByte:
		return prim.UnpackByte(buf)
	case TypeInt16:
		return prim.UnpackInt16(buf)
	case TypeUInt16:
		return prim.UnpackUInt16(buf)
	case TypeInt32:
		return prim.UnpackInt32(buf)
	case TypeUInt32, TypeStatusCode:
		return prim.UnpackUInt32(buf)
	case TypeInt64:
		return prim.UnpackInt64(buf)
	case TypeUInt64:
		return prim.UnpackUInt64(buf)
	case TypeFloat:
		return prim.UnpackFloat(buf)
	case TypeDouble:
		return prim.UnpackDouble(buf)
	case TypeString:
		s, err := builtin.UnpackString(buf)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return "", nil
		}

		return *s, nil
	case TypeDateTime:
		return builtin.UnpackDateTime(buf)
	case TypeGuid:
		return builtin.UnpackGuid(buf)
	case TypeNodeId:
		n, _, err := nodeid.Unpack(buf)
		return n, err
	case TypeExpandedNodeId:
		return nodeid.UnpackExpanded(buf)
	case TypeExtensionObject:
		return extobj.Decode(buf, reg)
	case TypeVariant:
		return Decode(buf, reg)
	case TypeByteString:
		return builtin.UnpackByteString(buf)
	default:
		if t.IsBuiltin() {
			return nil, fmt.Errorf("%w: variant type %s has no element codec", errs.ErrUnknownType, t)
		}

		return builtin.UnpackByteString(buf)
	}
}
