package builtin

import (
	"fmt"
	"math"
	"time"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/prim"
)

// windowsEpoch is 1601-01-01T00:00:00 UTC, the reference point DateTime
// ticks are counted from.
var windowsEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// ticksPerSecond is the number of 100-nanosecond intervals in a second.
const ticksPerSecond = int64(time.Second / 100)

// PackDateTime encodes t as a Windows-epoch tick count.
func PackDateTime(w *buffer.Writer, t time.Time) error {
	ticks, err := ToTicks(t)
	if err != nil {
		return err
	}

	prim.PackInt64(w, ticks)
	return nil
}

// UnpackDateTime decodes a Windows-epoch tick count into a UTC time.Time.
func UnpackDateTime(buf *buffer.Buffer) (time.Time, error) {
	ticks, err := prim.UnpackInt64(buf)
	if err != nil {
		return time.Time{}, err
	}

	return FromTicks(ticks)
}

// maxTicksSecs is the largest seconds-since-epoch value whose tick count
// still fits in an Int64; computed from the constants rather than via
// time.Duration, whose documented range (~292 years) is far smaller than
// Int64 ticks can represent and would saturate long before this limit.
const maxTicksSecs = math.MaxInt64 / ticksPerSecond

// ToTicks converts t to a count of 100-nanosecond intervals since the
// Windows epoch, returning errs.ErrDateTimeRange if t predates the epoch or
// overflows an Int64 tick count. The delta is computed from Unix seconds
// rather than time.Time.Sub: Sub returns a time.Duration, whose int64
// nanosecond range saturates at roughly 292 years, far short of the
// multi-century gap between the 1601 Windows epoch and any modern date.
func ToTicks(t time.Time) (int64, error) {
	u := t.UTC()
	secs := u.Unix() - windowsEpoch.Unix()
	if secs < 0 {
		return 0, fmt.Errorf("%w: %s is before the windows epoch", errs.ErrDateTimeRange, t)
	}
	if secs > maxTicksSecs {
		return 0, fmt.Errorf("%w: %s overflows a 100ns tick count", errs.ErrDateTimeRange, t)
	}

	return secs*ticksPerSecond + int64(u.Nanosecond())/100, nil
}

// FromTicks converts a Windows-epoch 100-nanosecond tick count back to a
// UTC time.Time. Like ToTicks, it works in Unix seconds rather than a
// time.Duration offset from the epoch, which would overflow past ~1893.
func FromTicks(ticks int64) (time.Time, error) {
	if ticks < 0 {
		return time.Time{}, fmt.Errorf("%w: negative tick count %d", errs.ErrDateTimeRange, ticks)
	}

	secs := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond

	return time.Unix(windowsEpoch.Unix()+secs, rem*100).UTC(), nil
}
