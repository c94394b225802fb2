package nodeid

import (
	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/prim"
)

// ExpandedNodeId is a NodeId plus the two optional out-of-band qualifiers
// that let a NodeId reference a node in a different, not-yet-assigned
// namespace/server.
type ExpandedNodeId struct {
	NodeId
	NamespaceURI *string
	ServerIndex  *uint32
}

// PackExpanded encodes e, setting the NamespaceUri/ServerIndex flag bits on
// the leading encoding byte and appending the corresponding fields.
func PackExpanded(w *buffer.Writer, e *ExpandedNodeId) error {
	if err := validate(e.Type); err != nil {
		return err
	}

	flags := byte(0)
	if e.NamespaceURI != nil {
		flags |= flagHasNamespaceURI
	}
	if e.ServerIndex != nil {
		flags |= flagHasServerIndex
	}

	bodyW := buffer.Get()
	defer buffer.Put(bodyW)
	if err := Pack(bodyW, &e.NodeId); err != nil {
		return err
	}
	body := bodyW.Bytes()

	w.Append([]byte{body[0] | flags})
	w.Append(body[1:])

	if e.NamespaceURI != nil {
		if err := builtin.PackString(w, e.NamespaceURI); err != nil {
			return err
		}
	}
	if e.ServerIndex != nil {
		prim.PackUInt32(w, *e.ServerIndex)
	}

	return nil
}

// UnpackExpanded decodes an ExpandedNodeId, reading the NamespaceUri and/or
// ServerIndex suffix when the corresponding flag bit is set.
func UnpackExpanded(buf *buffer.Buffer) (*ExpandedNodeId, error) {
	n, encoding, err := Unpack(buf)
	if err != nil {
		return nil, err
	}

	e := &ExpandedNodeId{NodeId: *n}

	if encoding&flagHasNamespaceURI != 0 {
		uri, err := builtin.UnpackString(buf)
		if err != nil {
			return nil, err
		}
		e.NamespaceURI = uri
	}
	if encoding&flagHasServerIndex != 0 {
		idx, err := prim.UnpackUInt32(buf)
		if err != nil {
			return nil, err
		}
		e.ServerIndex = &idx
	}

	return e, nil
}
