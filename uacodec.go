// Package uacodec provides a high-performance binary codec for the OPC UA
// (IEC 62541) wire format.
//
// uacodec is the encode/decode layer sitting under an OPC UA client or
// server's secure channel and session logic: it turns the scalar, NodeId,
// Variant, ExtensionObject, user-defined structure, and TCP transport framing
// shapes defined in Part 6 into bytes and back, bit-exactly, with no
// knowledge of sockets, security policies, or service semantics above it.
//
// # Core Features
//
//   - Every OPC UA builtin scalar type (Boolean through ByteString) via the
//     prim and builtin packages
//   - NodeId and ExpandedNodeId codecs with automatic minimal-tag selection
//   - A self-describing Variant codec covering scalars, flat arrays, and
//     reshaped N-dimensional arrays
//   - An ExtensionObject codec with a name/NodeId-keyed type registry
//   - A schema-driven structure codec for user-defined types, including
//     bitmask-gated optional (switch) fields
//   - TCP transport message framing (Hello/Acknowledge/Error/SecureOpen/
//     SecureClose/SecureMessage)
//
// # Basic Usage
//
// Encoding and decoding a Variant:
//
//	import "github.com/ua-stack/uacodec"
//
//	reg := uacodec.NewRegistry()
//	w := buffer.Get()
//	defer buffer.Put(w)
//
//	v := &variant.Variant{Type: variant.TypeString, Value: "hello"}
//	_ = uacodec.EncodeVariant(w, v, reg)
//
//	got, _ := uacodec.DecodeVariant(buffer.New(w.Bytes()), reg)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around prim, builtin,
// nodeid, extobj, variant, schema, and transport. For advanced usage and
// fine-grained control — registering custom structure schemas, reusing a
// single Buffer across a decode pipeline — use those packages directly.
package uacodec

import (
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/extobj"
	"github.com/ua-stack/uacodec/nodeid"
	"github.com/ua-stack/uacodec/schema"
	"github.com/ua-stack/uacodec/transport"
	"github.com/ua-stack/uacodec/variant"
)

// Registry bundles the two type registries an OPC UA codec needs: the
// ExtensionObject registry (NodeId-keyed) and the structure schema registry
// (name-keyed), the latter embedding the former so struct fields typed as
// ExtensionObject resolve through the same lookup.
type Registry = schema.Registry

// NewRegistry creates an empty Registry with its own ExtensionObject
// registry.
func NewRegistry() *Registry {
	return schema.NewRegistry(extobj.NewRegistry())
}

// EncodeVariant writes v in the §4.4 encoding-byte-plus-value layout.
func EncodeVariant(w *buffer.Writer, v *variant.Variant, reg *Registry) error {
	return variant.Encode(w, v, reg.ExtObj)
}

// DecodeVariant reads a Variant, reshaping it into nested arrays when the
// wire form declares array dimensions.
func DecodeVariant(buf *buffer.Buffer, reg *Registry) (*variant.Variant, error) {
	return variant.Decode(buf, reg.ExtObj)
}

// EncodeNodeId writes n in the wire form named by n.Type; nodeid.New picks
// the minimal form unless one is forced.
func EncodeNodeId(w *buffer.Writer, n *nodeid.NodeId) error {
	return nodeid.Pack(w, n)
}

// DecodeNodeId reads a NodeId and discards the raw encoding byte; callers
// needing the encoding byte itself (e.g. to detect a forced non-minimal tag)
// should call nodeid.Unpack directly.
func DecodeNodeId(buf *buffer.Buffer) (*nodeid.NodeId, error) {
	n, _, err := nodeid.Unpack(buf)
	return n, err
}

// EncodeStruct writes rec as the structure named typeName.
func EncodeStruct(w *buffer.Writer, typeName string, rec any, reg *Registry) error {
	return schema.Encode(w, typeName, rec, reg)
}

// DecodeStruct reads the structure named typeName.
func DecodeStruct(buf *buffer.Buffer, typeName string, reg *Registry) (any, error) {
	return schema.Decode(buf, typeName, reg)
}

// EncodeHeader writes a transport frame header.
func EncodeHeader(w *buffer.Writer, h transport.Header) error {
	return transport.Pack(w, h)
}

// DecodeHeader reads a transport frame header.
func DecodeHeader(buf *buffer.Buffer) (transport.Header, error) {
	return transport.Unpack(buf)
}
