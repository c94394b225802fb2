package builtin

import (
	"fmt"

	"github.com/agext/uuid"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
)

// Guid is the canonical in-memory form of an OPC UA GUID. agext/uuid's
// RFC 4122 field layout (time_low, time_mid, time_hi_and_version, then an
// 8-byte clock-seq-and-node run) lines up one-to-one with the four fields
// the wire format reorders, so it is reused directly instead of introducing
// a parallel GUID type.
type Guid = uuid.UUID

// guidWireLen is the fixed wire size of a Guid: Data1 (4) + Data2 (2) +
// Data3 (2) + Data4 (8).
const guidWireLen = 16

// PackGuid encodes g in the mixed-endian four-field wire layout described in
// §4.2: Data1/Data2/Data3 little-endian, Data4 copied verbatim.
func PackGuid(w *buffer.Writer, g Guid) error {
	if len(g) != guidWireLen {
		return fmt.Errorf("%w: guid must be %d bytes, got %d", errs.ErrBadLength, guidWireLen, len(g))
	}

	prim.PackUInt32(w, beUint32(g[0:4]))
	prim.PackUInt16(w, beUint16(g[4:6]))
	prim.PackUInt16(w, beUint16(g[6:8]))
	w.Append(g[8:16])

	return nil
}

// UnpackGuid decodes a wire-format Guid back into its RFC 4122 byte layout.
func UnpackGuid(buf *buffer.Buffer) (Guid, error) {
	data1, err := prim.UnpackUInt32(buf)
	if err != nil {
		return nil, err
	}
	data2, err := prim.UnpackUInt16(buf)
	if err != nil {
		return nil, err
	}
	data3, err := prim.UnpackUInt16(buf)
	if err != nil {
		return nil, err
	}
	data4, err := buf.Read(8)
	if err != nil {
		return nil, err
	}

	g := make(Guid, guidWireLen)
	putBeUint32(g[0:4], data1)
	putBeUint16(g[4:6], data2)
	putBeUint16(g[6:8], data3)
	copy(g[8:16], data4)

	return g, nil
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func beUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func putBeUint32(dst []byte, v uint32) {
	dst[0] = byte(v >> 24)
	dst[1] = byte(v >> 16)
	dst[2] = byte(v >> 8)
	dst[3] = byte(v)
}

func putBeUint16(dst []byte, v uint16) {
	dst[0] = byte(v >> 8)
	dst[1] = byte(v)
}
