package record

import (
	"time"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/timestamp"
)

// ClockTime is an hour count since the epoch plus a timestamp within the
// hour.
type ClockTime struct {
	Hour         uint32              `json:"hour"`
	TimePastHour timestamp.Timestamp `json:"time_past_hour"`
}

// ClockTimeLength is the wire size of ClockTime.
const ClockTimeLength = 8

// NewClockTime converts t into an absolute clock time.
func NewClockTime(t time.Time) ClockTime {
	t = t.UTC()
	return ClockTime{
		Hour:         uint32(t.Unix() / 3600),
		TimePastHour: timestamp.Absolute(t),
	}
}

// Time converts the clock time back to a wall-clock instant.
func (c ClockTime) Time() time.Time {
	base := time.Unix(int64(c.Hour)*3600, 0).UTC()
	return base.Add(c.TimePastHour.SincePastHour())
}

// Serialize writes the clock time.
func (c ClockTime) Serialize(w *disenc.Writer) {
	w.WriteUint32(c.Hour)
	w.WriteUint32(uint32(c.TimePastHour))
}

// Deserialize reads a clock time.
func (c *ClockTime) Deserialize(r *disenc.Reader) error {
	c.Hour = r.ReadUint32()
	c.TimePastHour = timestamp.Timestamp(r.ReadUint32())
	return r.Err()
}

// ByteLength returns the wire size of the clock time.
func (ClockTime) ByteLength() int { return ClockTimeLength }
