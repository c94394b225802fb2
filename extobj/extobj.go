// Package extobj implements §4.4's ExtensionObject half: the open type
// carrier referenced by NodeId, decoded either into a registered structure
// or passed through opaquely.
package extobj

import (
	"fmt"

	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/nodeid"
	"github.com/ua-stack/uacodec/prim"
)

const (
	flagBinaryBody = 1 << 0
	flagXMLBody    = 1 << 1
)

// ExtensionObject carries a NodeId-typed value whose wire body is decoded
// either into a registered structure (Value set) or kept as an opaque blob
// (Body set) when the type is unknown to the Registry in use. A nil
// *ExtensionObject is the absent sentinel (null type_id, no body).
type ExtensionObject struct {
	TypeId   nodeid.NodeId
	Encoding byte
	Body     []byte // opaque body, set when TypeId is not registered
	Value    any    // decoded structure, set when TypeId is registered
}

// Encode writes eo in the §4.4 layout: NodeId type_id, encoding byte, then
// an optional length-prefixed binary body. A nil eo encodes as the absent
// sentinel (null NodeId, encoding byte 0, no body). When eo.Value is set, the
// encoder is looked up by eo.TypeId, which the caller must fill in; the
// Registry has no lookup from a value's Go type to its type_id.
func Encode(w *buffer.Writer, eo *ExtensionObject, reg *Registry) error {
	if eo == nil {
		var null nodeid.NodeId
		if err := nodeid.Pack(w, &null); err != nil {
			return err
		}
		prim.PackByte(w, 0)
		return nil
	}

	if eo.Value != nil {
		e, ok := reg.lookup(eo.TypeId)
		if !ok {
			return fmt.Errorf("%w: %s has no registered encoder", errs.ErrUnknownType, eo.TypeId.Key())
		}

		bodyW := buffer.Get()
		defer buffer.Put(bodyW)
		if err := e.Encode(bodyW, eo.Value); err != nil {
			return err
		}

		if err := nodeid.Pack(w, &eo.TypeId); err != nil {
			return err
		}
		prim.PackByte(w, flagBinaryBody)

		return builtin.PackByteString(w, bodyW.Bytes())
	}

	if err := nodeid.Pack(w, &eo.TypeId); err != nil {
		return err
	}
	prim.PackByte(w, eo.Encoding)

	if eo.Encoding&flagBinaryBody != 0 {
		return builtin.PackByteString(w, eo.Body)
	}

	return nil
}

// Decode reads an ExtensionObject. If type_id is the null NodeId it returns
// (nil, nil), the absent sentinel. If type_id is registered in reg, the body
// is decoded into the registered structure via a sub-buffer scoped to its
// declared length; otherwise the raw type_id/encoding/body are preserved for
// pass-through.
func Decode(buf *buffer.Buffer, reg *Registry) (*ExtensionObject, error) {
	typeId, _, err := nodeid.Unpack(buf)
	if err != nil {
		return nil, err
	}

	encoding, err := buf.ReadByte()
	if err != nil {
		return nil, err
	}

	var body []byte
	if encoding&flagBinaryBody != 0 {
		body, err = builtin.UnpackByteString(buf)
		if err != nil {
			return nil, err
		}
	}

	// A null type_id is the absent sentinel regardless of the encoding byte
	// (including an XML-body bit that would otherwise be unsupported), per
	// extensionobject_from_binary's unconditional `typeid.Identifier == 0`
	// short-circuit.
	if typeId.IsNull() {
		return nil, nil //nolint:nilnil
	}

	if encoding&flagXMLBody != 0 {
		return nil, errs.ErrUnsupportedEncoding
	}

	e, ok := reg.lookup(*typeId)
	if !ok {
		return &ExtensionObject{TypeId: *typeId, Encoding: encoding, Body: body}, nil
	}
	if body == nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrMissingBody, e.name)
	}

	val, err := e.Decode(buffer.New(body))
	if err != nil {
		return nil, err
	}

	return &ExtensionObject{TypeId: *typeId, Encoding: encoding, Value: val}, nil
}
