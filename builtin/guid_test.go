package builtin_test

import (
	"testing"

	"github.com/agext/uuid"
	"github.com/stretchr/testify/require"
	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/buffer"
)

func TestGuidRoundTrip(t *testing.T) {
	g, err := uuid.NewFromString("72962B91-FA75-4AE6-8D28-B404DC7DAF63")
	require.NoError(t, err)

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, builtin.PackGuid(w, g))

	buf := buffer.New(w.Bytes())
	got, err := builtin.UnpackGuid(buf)
	require.NoError(t, err)
	require.Equal(t, g.String(), got.String())
}

func TestGuidWireLayoutIsMixedEndian(t *testing.T) {
	g, err := uuid.NewFromString("01020304-0506-0708-090A-0B0C0D0E0F10")
	require.NoError(t, err)

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, builtin.PackGuid(w, g))

	require.Equal(t, []byte{
		0x04, 0x03, 0x02, 0x01, // Data1 little-endian
		0x06, 0x05, // Data2 little-endian
		0x08, 0x07, // Data3 little-endian
		0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, // Data4 verbatim
	}, w.Bytes())
}
