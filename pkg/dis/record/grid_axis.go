package record

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
)

const (
	gridAxisFixedLength     = 20
	gridAxisRegularLength   = gridAxisFixedLength + 4
	gridAxisIrregularPrefix = gridAxisRegularLength + 16
)

// GridAxisDescriptor describes one axis of a gridded data set.
//
// A nil Irregular means a regular axis of PointsOnAxis evenly spaced points.
// An irregular axis lists its sample coordinates; the points field written on
// the wire is then len(Irregular.XValues).
type GridAxisDescriptor struct {
	DomainInitial   float64        `json:"domain_initial"`
	DomainFinal     float64        `json:"domain_final"`
	DomainPoints    uint16         `json:"domain_points"`
	InterleafFactor uint8          `json:"interleaf_factor"`
	PointsOnAxis    uint16         `json:"points_on_axis"`
	InitialIndex    uint16         `json:"initial_index"`
	Irregular       *IrregularAxis `json:"irregular,omitempty"`
}

// IrregularAxis holds the scaled sample coordinates of an irregular axis.
// Coordinate i is Offset + Scale*XValues[i].
type IrregularAxis struct {
	Scale   float64  `json:"scale"`
	Offset  float64  `json:"offset"`
	XValues []uint16 `json:"x_values"`

	// Padding, when set, is the number of zero bytes after XValues.
	// Otherwise the samples are padded to the next 32-bit boundary.
	Padding *int `json:"padding,omitempty"`
}

// Coordinates returns the unscaled sample coordinates.
func (a IrregularAxis) Coordinates() []float64 {
	out := make([]float64, len(a.XValues))
	for i, x := range a.XValues {
		out[i] = a.Offset + a.Scale*float64(x)
	}
	return out
}

func (a IrregularAxis) padding() int {
	if a.Padding != nil {
		return max(*a.Padding, 0)
	}
	return field.PaddingTo(2*len(a.XValues), 4)
}

// AxisType reports the wire axis type.
func (g GridAxisDescriptor) AxisType() enums.GridAxisType {
	if g.Irregular != nil {
		return enums.GridAxisIrregular
	}
	return enums.GridAxisRegular
}

// Serialize writes the grid axis descriptor.
func (g GridAxisDescriptor) Serialize(w *disenc.Writer) {
	w.WriteFloat64(g.DomainInitial)
	w.WriteFloat64(g.DomainFinal)
	w.WriteUint16(g.DomainPoints)
	w.WriteUint8(g.InterleafFactor)
	w.WriteUint8(uint8(g.AxisType()))
	if g.Irregular == nil {
		w.WriteUint16(g.PointsOnAxis)
		w.WriteUint16(g.InitialIndex)
		return
	}
	a := g.Irregular
	w.WriteUint16(uint16(len(a.XValues)))
	w.WriteUint16(g.InitialIndex)
	w.WriteFloat64(a.Scale)
	w.WriteFloat64(a.Offset)
	for _, x := range a.XValues {
		w.WriteUint16(x)
	}
	w.WriteZeros(a.padding())
}

// Deserialize reads a descriptor whose irregular samples end at the next
// 32-bit boundary. Use DeserializeWithLength when the enclosing record
// declares the descriptor's size.
func (g *GridAxisDescriptor) Deserialize(r *disenc.Reader) error {
	return g.deserialize(r, -1)
}

// DeserializeWithLength reads a descriptor occupying exactly length bytes.
// Whatever follows the irregular samples is consumed as padding.
func (g *GridAxisDescriptor) DeserializeWithLength(r *disenc.Reader, length int) error {
	if length < gridAxisRegularLength {
		r.Fail(fmt.Errorf("%w: grid axis descriptor length %d", ErrInvalidLength, length))
		return r.Err()
	}
	return g.deserialize(r.Sub(length), length)
}

func (g *GridAxisDescriptor) deserialize(r *disenc.Reader, length int) error {
	g.DomainInitial = r.ReadFloat64()
	g.DomainFinal = r.ReadFloat64()
	g.DomainPoints = r.ReadUint16()
	g.InterleafFactor = r.ReadUint8()
	axisType := enums.DecodeGridAxisType(r.ReadUint8())
	points := r.ReadUint16()
	g.InitialIndex = r.ReadUint16()
	g.Irregular = nil
	g.PointsOnAxis = points
	if axisType == enums.GridAxisRegular {
		if length >= 0 {
			r.SkipRest()
		}
		return r.Err()
	}

	a := &IrregularAxis{
		Scale:  r.ReadFloat64(),
		Offset: r.ReadFloat64(),
	}
	if r.Err() != nil {
		return r.Err()
	}
	r.EnsureRemaining(2 * int(points))
	if r.Err() != nil {
		return r.Err()
	}
	a.XValues = make([]uint16, points)
	for i := range a.XValues {
		a.XValues[i] = r.ReadUint16()
	}
	natural := field.PaddingTo(2*int(points), 4)
	if length >= 0 {
		if pad := r.SkipRest(); pad != natural {
			a.Padding = &pad
		}
	} else {
		r.Skip(natural)
	}
	if r.Err() != nil {
		return r.Err()
	}
	g.Irregular = a
	return nil
}

// ByteLength returns the wire size of the grid axis descriptor.
func (g GridAxisDescriptor) ByteLength() int {
	if g.Irregular == nil {
		return gridAxisRegularLength
	}
	return gridAxisIrregularPrefix + 2*len(g.Irregular.XValues) + g.Irregular.padding()
}
