// Package errs collects the sentinel errors returned by the codec packages.
//
// Every decode/encode failure kind named in the wire-format design surfaces as one of
// these sentinels, optionally wrapped with fmt.Errorf for positional context. Callers
// should match with errors.Is rather than string comparison.
package errs

import "errors"

var (
	// ErrUnderflow is returned when a Buffer does not have enough remaining bytes
	// to satisfy a read.
	ErrUnderflow = errors.New("uacodec: buffer underflow")

	// ErrBadTag is returned for an unrecognized NodeId type tag or VariantType
	// tag. Enumeration ordinals are not checked against a set of known values,
	// so no enum decode returns it.
	ErrBadTag = errors.New("uacodec: unrecognized type tag")

	// ErrBadUTF8 is returned when a String field's bytes are not valid UTF-8.
	ErrBadUTF8 = errors.New("uacodec: invalid UTF-8 in string field")

	// ErrBadLength is returned for a negative length other than -1, or a value
	// too large for its fixed-width wire field. A length prefix larger than the
	// remaining buffer is not checked up front; the read that follows fails
	// with ErrUnderflow.
	ErrBadLength = errors.New("uacodec: invalid length prefix")

	// ErrUnknownType is returned when encoding a value whose concrete type has no
	// registered schema or registry entry.
	ErrUnknownType = errors.New("uacodec: value has no registered type")

	// ErrMissingBody is returned when an ExtensionObject's type_id is registered
	// but no body bytes were present to decode.
	ErrMissingBody = errors.New("uacodec: extension object body missing for registered type")

	// ErrUnsupportedEncoding is returned for an XML-encoded ExtensionObject body,
	// which this codec does not decode.
	ErrUnsupportedEncoding = errors.New("uacodec: unsupported extension object encoding")

	// ErrHashCollision is returned when registering a type name whose xxHash64
	// value collides with an already-registered, distinct name.
	ErrHashCollision = errors.New("uacodec: registry hash collision")

	// ErrDateTimeRange is returned when a DateTime tick count falls outside the
	// range representable as a time.Time.
	ErrDateTimeRange = errors.New("uacodec: datetime value out of range")

	// ErrDuplicateName is returned when registering the same type name twice.
	ErrDuplicateName = errors.New("uacodec: type name already registered")

	// ErrArrayTooLarge is returned when an array length would exceed math.MaxInt32
	// on encode.
	ErrArrayTooLarge = errors.New("uacodec: array length exceeds int32 range")

	// ErrSchemaMismatch is returned when a value's runtime shape does not match
	// its declared schema field type.
	ErrSchemaMismatch = errors.New("uacodec: value does not match schema field type")

	// ErrBadFrame is returned for a transport header with an unrecognized
	// MessageType or ChunkType, or a packet size too small to hold its header.
	ErrBadFrame = errors.New("uacodec: malformed transport frame header")
)
