package field

import (
	"math"

	"github.com/marmos91/opendis/pkg/dis/disenc"
)

// EncodeFixed16 converts v to a signed 16-bit scaled integer,
// round(v * scale), saturating at the int16 range. NaN encodes as 0.
func EncodeFixed16(v, scale float64) int16 {
	scaled := math.Round(v * scale)
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= math.MaxInt16:
		return math.MaxInt16
	case scaled <= math.MinInt16:
		return math.MinInt16
	}
	return int16(scaled)
}

// DecodeFixed16 converts a scaled integer back to a real value, raw / scale.
func DecodeFixed16(raw int16, scale float64) float64 {
	return float64(raw) / scale
}

// FixedBinary16Scale gives FixedBinary16 a 1/8 unit resolution.
const FixedBinary16Scale = 8

// FixedBinary16 is a real quantity carried on the wire as an int16 at a
// scale of 8, covering roughly ±4096 units at 1/8 unit resolution.
type FixedBinary16 float64

// FixedBinary16Length is the wire size of FixedBinary16.
const FixedBinary16Length = 2

// Raw returns the scaled integer written on the wire.
func (f FixedBinary16) Raw() int16 {
	return EncodeFixed16(float64(f), FixedBinary16Scale)
}

// Serialize writes the scaled integer.
func (f FixedBinary16) Serialize(w *disenc.Writer) {
	w.WriteInt16(f.Raw())
}

// Deserialize reads the scaled integer.
func (f *FixedBinary16) Deserialize(r *disenc.Reader) error {
	*f = FixedBinary16(DecodeFixed16(r.ReadInt16(), FixedBinary16Scale))
	return r.Err()
}

// ByteLength returns 2.
func (FixedBinary16) ByteLength() int { return FixedBinary16Length }
