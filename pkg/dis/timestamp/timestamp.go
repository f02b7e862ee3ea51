// Package timestamp converts between wall-clock time and the 32-bit DIS
// timestamp carried in every PDU header.
//
// The upper 31 bits count time past the current hour, scaled so that one
// hour spans the whole 2^31 range (about 1.676 microseconds per unit). The
// low bit is 1 for an absolute timestamp, taken from a clock synchronized to
// UTC, and 0 for a relative one, taken from a free-running host clock.
package timestamp

import (
	"fmt"
	"math/bits"
	"time"
)

// Timestamp is a raw DIS header timestamp.
type Timestamp uint32

const (
	absoluteFlag Timestamp = 1

	// unitsPerHour is the number of timestamp units in one hour.
	unitsPerHour = 1 << 31
)

// Clock returns the current time. Tests replace it to make headers
// deterministic.
type Clock func() time.Time

// SystemClock reads the host clock.
var SystemClock Clock = time.Now

// Absolute encodes t as an absolute timestamp.
func Absolute(t time.Time) Timestamp {
	return Timestamp(toUnits(pastHour(t))<<1) | absoluteFlag
}

// Relative encodes t as a relative timestamp.
func Relative(t time.Time) Timestamp {
	return Timestamp(toUnits(pastHour(t)) << 1)
}

// Now returns the absolute timestamp of the system clock.
func Now() Timestamp {
	return Absolute(SystemClock())
}

// Legacy reproduces the encoding used by some older DIS implementations:
// microseconds past the hour divided by 1.68, without an absolute flag.
// It exists for interoperating with peers that expect that value.
func Legacy(t time.Time) Timestamp {
	micros := pastHour(t).Microseconds()
	return Timestamp(uint32(float64(micros) / 1.68))
}

// IsAbsolute reports whether the absolute flag bit is set.
func (ts Timestamp) IsAbsolute() bool {
	return ts&absoluteFlag != 0
}

// Units returns the 31-bit count of time past the hour.
func (ts Timestamp) Units() uint32 {
	return uint32(ts >> 1)
}

// SincePastHour decodes the time elapsed since the start of the hour.
func (ts Timestamp) SincePastHour() time.Duration {
	hi, lo := bits.Mul64(uint64(ts.Units()), uint64(time.Hour))
	q, _ := bits.Div64(hi, lo, unitsPerHour)
	return time.Duration(q)
}

// In places the timestamp within the hour containing ref.
func (ts Timestamp) In(ref time.Time) time.Time {
	return ref.UTC().Truncate(time.Hour).Add(ts.SincePastHour())
}

func (ts Timestamp) String() string {
	kind := "relative"
	if ts.IsAbsolute() {
		kind = "absolute"
	}
	return fmt.Sprintf("%s+%s", kind, ts.SincePastHour())
}

// MarshalText renders the timestamp for JSON and YAML output.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

func pastHour(t time.Time) time.Duration {
	t = t.UTC()
	return time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

func toUnits(d time.Duration) uint32 {
	hi, lo := bits.Mul64(uint64(d), unitsPerHour)
	q, _ := bits.Div64(hi, lo, uint64(time.Hour))
	if q >= unitsPerHour {
		q = unitsPerHour - 1
	}
	return uint32(q)
}
