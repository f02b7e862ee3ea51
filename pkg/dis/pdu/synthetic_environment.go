package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
	"github.com/marmos91/opendis/pkg/dis/record"
)

var kindGriddedData = Kind{enums.PDUTypeGriddedData, enums.ProtocolFamilySyntheticEnvironment}

// GriddedDataBodyLength is the body size with no axes and no data records.
const GriddedDataBodyLength = record.EntityIDLength + 8 + 2 + record.EntityTypeLength +
	record.EulerAnglesLength + record.ClockTimeLength + 4 + 4

// GriddedData carries environmental values sampled over a grid. The grid
// data records have no count on the wire; they run to the end of the PDU.
type GriddedData struct {
	Base
	EnvironmentalSimulationID record.EntityID             `json:"environmental_simulation_id"`
	FieldNumber               uint16                      `json:"field_number"`
	PDUNumber                 uint16                      `json:"pdu_number"`
	PDUTotal                  uint16                      `json:"pdu_total"`
	CoordinateSystem          uint16                      `json:"coordinate_system"`
	ConstantGrid              uint8                       `json:"constant_grid"`
	EnvironmentType           record.EntityType           `json:"environment_type"`
	Orientation               record.EulerAngles          `json:"orientation"`
	SampleTime                record.ClockTime            `json:"sample_time"`
	TotalValues               uint32                      `json:"total_values"`
	VectorDimension           uint8                       `json:"vector_dimension"`
	Axes                      []record.GridAxisDescriptor `json:"axes"`
	Data                      []record.GridDataRecord     `json:"data"`
}

// NewGriddedData returns a GriddedData PDU with a fresh header.
func NewGriddedData() *GriddedData { return &GriddedData{Base: newBase(kindGriddedData)} }

// Kind implements PDU.
func (p *GriddedData) Kind() Kind { return kindGriddedData }

// Validate checks the axis count and per-record value counts fit their
// wire fields.
func (p *GriddedData) Validate() error {
	if n := len(p.Axes); n > 0xff {
		return invalidField("gridded data: %d grid axes, max 255", n)
	}
	for i, d := range p.Data {
		if n := len(d.Values); n > 0xffff {
			return invalidField("gridded data: record %d carries %d octets, max 65535", i, n)
		}
	}
	return nil
}

// SerializeBody writes the fixed fields, the axes, then the data records.
func (p *GriddedData) SerializeBody(w *disenc.Writer) {
	p.EnvironmentalSimulationID.Serialize(w)
	w.WriteUint16(p.FieldNumber)
	w.WriteUint16(p.PDUNumber)
	w.WriteUint16(p.PDUTotal)
	w.WriteUint16(p.CoordinateSystem)
	w.WriteUint8(uint8(len(p.Axes)))
	w.WriteUint8(p.ConstantGrid)
	p.EnvironmentType.Serialize(w)
	p.Orientation.Serialize(w)
	p.SampleTime.Serialize(w)
	w.WriteUint32(p.TotalValues)
	w.WriteUint8(p.VectorDimension)
	w.WriteZeros(3)
	field.SerializeSlice(w, p.Axes)
	field.SerializeSlice(w, p.Data)
}

// DeserializeBody reads the body; every byte after the axes is taken as
// grid data records.
func (p *GriddedData) DeserializeBody(r *disenc.Reader) error {
	if err := p.EnvironmentalSimulationID.Deserialize(r); err != nil {
		return err
	}
	p.FieldNumber = r.ReadUint16()
	p.PDUNumber = r.ReadUint16()
	p.PDUTotal = r.ReadUint16()
	p.CoordinateSystem = r.ReadUint16()
	axes := int(r.ReadUint8())
	p.ConstantGrid = r.ReadUint8()
	if err := p.EnvironmentType.Deserialize(r); err != nil {
		return err
	}
	if err := p.Orientation.Deserialize(r); err != nil {
		return err
	}
	if err := p.SampleTime.Deserialize(r); err != nil {
		return err
	}
	p.TotalValues = r.ReadUint32()
	p.VectorDimension = r.ReadUint8()
	r.Skip(3)

	var err error
	if p.Axes, err = field.DeserializeSlice[record.GridAxisDescriptor](r, axes); err != nil {
		return err
	}
	p.Data, err = field.DeserializeRest[record.GridDataRecord](r)
	return err
}

// BodyLength returns the fixed part plus every axis and data record.
func (p *GriddedData) BodyLength() int {
	return GriddedDataBodyLength + field.SliceLength(p.Axes) + field.SliceLength(p.Data)
}
