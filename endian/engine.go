// Package endian provides the byte-order engines used by the primitive and
// builtin codecs.
//
// OPC UA's binary wire format (Part 6) is little-endian for every scalar
// field except the six-byte node portion of a Guid, which is big-endian.
// EndianEngine lets the prim and transport packages name their byte order
// instead of hard-coding encoding/binary.LittleEndian everywhere, and its
// AppendByteOrder half avoids the extra temporary-slice allocation that
// ByteOrder's Put* methods require.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it already.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the engine used for every OPC UA primitive field.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine. No codec package uses it:
// builtin's Guid codec copies the big-endian node bytes verbatim.
func BigEndian() EndianEngine {
	return binary.BigEndian
}
