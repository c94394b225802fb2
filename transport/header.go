// Package transport implements the OPC UA TCP message framing of Part 6 §7.1:
// the 8 (or 12, for secure channel message types) byte header every TCP chunk
// starts with, ahead of whatever service- or secure-channel-layer payload the
// caller packs into the body.
package transport

import (
	"fmt"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/endian"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
)

var le = endian.LittleEndian()

// MessageType is the 3-ASCII-byte tag identifying a TCP message's purpose.
type MessageType [3]byte

// The six message types Part 6 defines at the TCP transport layer. Hello,
// Acknowledge, and Error never carry a ChannelId; SecureOpen, SecureClose,
// and SecureMessage always do.
var (
	Hello         = MessageType{'H', 'E', 'L'}
	Acknowledge   = MessageType{'A', 'C', 'K'}
	Error         = MessageType{'E', 'R', 'R'}
	SecureOpen    = MessageType{'O', 'P', 'N'}
	SecureClose   = MessageType{'C', 'L', 'O'}
	SecureMessage = MessageType{'M', 'S', 'G'}
)

func (m MessageType) String() string { return string(m[:]) }

// hasChannelID reports whether m's wire form carries the trailing ChannelId
// word, per header_to_binary/header_from_binary.
func (m MessageType) hasChannelID() bool {
	return m == SecureOpen || m == SecureClose || m == SecureMessage
}

func (m MessageType) valid() bool {
	switch m {
	case Hello, Acknowledge, Error, SecureOpen, SecureClose, SecureMessage:
		return true
	default:
		return false
	}
}

// ChunkType is the single ASCII byte following MessageType, naming this
// chunk's place in a (possibly multi-chunk) message.
type ChunkType byte

const (
	// ChunkFinal marks the last (or only) chunk of a message.
	ChunkFinal ChunkType = 'F'
	// ChunkIntermediate marks a non-final chunk; more follow.
	ChunkIntermediate ChunkType = 'C'
	// ChunkAbort marks a chunk that aborts the message; its body is an
	// ErrorMessage rather than normal content.
	ChunkAbort ChunkType = 'A'
)

func (c ChunkType) valid() bool {
	switch c {
	case ChunkFinal, ChunkIntermediate, ChunkAbort:
		return true
	default:
		return false
	}
}

// headerSize is the fixed byte count of MessageType+ChunkType+PacketSize,
// before the optional ChannelId word.
const headerSize = 8

// Header is the fixed framing prefix of every OPC UA TCP chunk.
type Header struct {
	MessageType MessageType
	ChunkType   ChunkType
	// PacketSize is the total chunk size in bytes, header included.
	PacketSize uint32
	// ChannelId is only meaningful (and only present on the wire) for
	// SecureOpen, SecureClose, and SecureMessage.
	ChannelId uint32
}

// BodySize returns the number of body bytes implied by PacketSize, after
// subtracting this header's own wire length.
func (h Header) BodySize() int {
	return int(h.PacketSize) - h.wireLen()
}

func (h Header) wireLen() int {
	if h.MessageType.hasChannelID() {
		return headerSize + 4
	}

	return headerSize
}

// Pack writes h's framing bytes. PacketSize must already equal the header's
// own wire length plus the intended body size; callers typically compute it
// from a body already encoded into a separate buffer.
func Pack(w *buffer.Writer, h Header) error {
	if !h.MessageType.valid() {
		return fmt.Errorf("%w: message type %q", errs.ErrBadFrame, h.MessageType)
	}
	if !h.ChunkType.valid() {
		return fmt.Errorf("%w: chunk type %q", errs.ErrBadFrame, byte(h.ChunkType))
	}

	w.Append(h.MessageType[:])
	w.AppendByte(byte(h.ChunkType))
	prim.PackUInt32(w, h.PacketSize)

	if h.MessageType.hasChannelID() {
		prim.PackUInt32(w, h.ChannelId)
	}

	return nil
}

// Unpack reads a Header and sets BodySize's inputs (PacketSize and,
// implicitly, MessageType) so the caller can slice out exactly the body that
// follows.
func Unpack(buf *buffer.Buffer) (Header, error) {
	raw, err := buf.Read(headerSize)
	if err != nil {
		return Header{}, err
	}

	var h Header
	copy(h.MessageType[:], raw[0:3])
	h.ChunkType = ChunkType(raw[3])
	h.PacketSize = le.Uint32(raw[4:8])

	if !h.MessageType.valid() {
		return Header{}, fmt.Errorf("%w: message type %q", errs.ErrBadFrame, h.MessageType)
	}
	if !h.ChunkType.valid() {
		return Header{}, fmt.Errorf("%w: chunk type %q", errs.ErrBadFrame, byte(h.ChunkType))
	}

	if h.MessageType.hasChannelID() {
		idBytes, err := buf.Read(4)
		if err != nil {
			return Header{}, err
		}
		h.ChannelId = le.Uint32(idBytes)
	}

	if h.PacketSize < uint32(h.wireLen()) {
		return Header{}, fmt.Errorf("%w: packet size %d smaller than header", errs.ErrBadFrame, h.PacketSize)
	}

	return h, nil
}
