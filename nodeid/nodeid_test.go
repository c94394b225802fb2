package nodeid_test

import (
	"testing"

	"github.com/agext/uuid"
	"github.com/stretchr/testify/require"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/nodeid"
)

func roundTrip(t *testing.T, n *nodeid.NodeId) *nodeid.NodeId {
	t.Helper()

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, nodeid.Pack(w, n))

	got, _, err := nodeid.Unpack(buffer.New(w.Bytes()))
	require.NoError(t, err)

	return got
}

func TestTwoByteMinimalSelection(t *testing.T) {
	n := nodeid.New(0, 72)
	require.Equal(t, nodeid.TwoByte, n.Type)

	got := roundTrip(t, n)
	require.Equal(t, n, got)
}

func TestTwoByteWireForm(t *testing.T) {
	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, nodeid.Pack(w, nodeid.New(0, 72)))
	require.Equal(t, []byte{0x00, 0x48}, w.Bytes())
}

func TestFourByteMinimalSelection(t *testing.T) {
	n := nodeid.New(3, 1000)
	require.Equal(t, nodeid.FourByte, n.Type)
	require.Equal(t, roundTrip(t, n), n)
}

func TestNumericMinimalSelection(t *testing.T) {
	n := nodeid.New(300, 1000)
	require.Equal(t, nodeid.Numeric, n.Type)
	require.Equal(t, roundTrip(t, n), n)

	n2 := nodeid.New(0, 100000)
	require.Equal(t, nodeid.Numeric, n2.Type)
}

func TestForcedTypeOverridesMinimality(t *testing.T) {
	n := nodeid.New(0, 5, nodeid.WithForcedType(nodeid.Numeric))
	require.Equal(t, nodeid.Numeric, n.Type)
	require.Equal(t, roundTrip(t, n), n)
}

func TestStringIdentifierRoundTrip(t *testing.T) {
	n := nodeid.NewString(2, "Temperature")
	require.Equal(t, roundTrip(t, n), n)
}

func TestGuidIdentifierRoundTrip(t *testing.T) {
	g, err := uuid.NewFromString("72962B91-FA75-4AE6-8D28-B404DC7DAF63")
	require.NoError(t, err)

	n := nodeid.NewGuid(1, g)
	got := roundTrip(t, n)
	require.Equal(t, n.Type, got.Type)
	require.Equal(t, n.Namespace, got.Namespace)
	require.Equal(t, n.Guid.String(), got.Guid.String())
}

func TestByteStringIdentifierRoundTrip(t *testing.T) {
	n := nodeid.NewByteString(1, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Equal(t, roundTrip(t, n), n)
}

func TestUnpackRejectsUnknownTag(t *testing.T) {
	buf := buffer.New([]byte{0x3F})

	_, _, err := nodeid.Unpack(buf)
	require.ErrorIs(t, err, errs.ErrBadTag)
}

func TestNullNodeId(t *testing.T) {
	var n nodeid.NodeId
	require.True(t, n.IsNull())

	nonNull := nodeid.New(0, 1)
	require.False(t, nonNull.IsNull())
}
