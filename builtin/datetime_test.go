package builtin_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ua-stack/uacodec/builtin"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
)

func TestDateTimeRoundTrip(t *testing.T) {
	ref := time.Date(2026, time.July, 29, 12, 30, 0, 0, time.UTC)

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, builtin.PackDateTime(w, ref))

	buf := buffer.New(w.Bytes())
	got, err := builtin.UnpackDateTime(buf)
	require.NoError(t, err)
	require.True(t, ref.Equal(got))
}

func TestDateTimeEpochIsZeroTicks(t *testing.T) {
	epoch := time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

	ticks, err := builtin.ToTicks(epoch)
	require.NoError(t, err)
	require.Zero(t, ticks)
}

func TestDateTimeRejectsBeforeEpoch(t *testing.T) {
	before := time.Date(1600, time.December, 31, 0, 0, 0, 0, time.UTC)

	_, err := builtin.ToTicks(before)
	require.ErrorIs(t, err, errs.ErrDateTimeRange)
}

func TestDateTimeRejectsNegativeTicks(t *testing.T) {
	_, err := builtin.FromTicks(-1)
	require.ErrorIs(t, err, errs.ErrDateTimeRange)
}

// TestDateTimeBeyondDurationRange guards against computing the tick delta via
// time.Time.Sub, whose time.Duration result saturates at about 292 years and
// would silently alias every date past ~1893 to the same bogus tick count.
func TestDateTimeBeyondDurationRange(t *testing.T) {
	epoch := time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2026, time.July, 29, 12, 30, 0, 0, time.UTC)

	wantSecs := ref.Unix() - epoch.Unix()
	wantTicks := wantSecs * 10_000_000

	ticks, err := builtin.ToTicks(ref)
	require.NoError(t, err)
	require.Equal(t, wantTicks, ticks)

	got, err := builtin.FromTicks(ticks)
	require.NoError(t, err)
	require.True(t, ref.Equal(got))
}
