package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/record"
)

var (
	kindRecordReliable    = Kind{enums.PDUTypeRecordReliable, enums.ProtocolFamilySimulationManagementWithReliability}
	kindSetRecordReliable = Kind{enums.PDUTypeSetRecordReliable, enums.ProtocolFamilySimulationManagementWithReliability}
)

// RecordReliable carries record values in reply to a record query.
type RecordReliable struct {
	Base
	Parties
	RequestID            uint32                           `json:"request_id"`
	RequiredReliability  enums.RequiredReliabilityService `json:"required_reliability"`
	EventType            uint16                           `json:"event_type"`
	ResponseSerialNumber uint32                           `json:"response_serial_number"`
	Records              record.RecordSpecification       `json:"records"`
}

// NewRecordReliable returns a RecordReliable PDU with a fresh header.
func NewRecordReliable() *RecordReliable { return &RecordReliable{Base: newBase(kindRecordReliable)} }

// Kind implements PDU.
func (p *RecordReliable) Kind() Kind { return kindRecordReliable }

// SerializeBody writes the record reliable body in wire order.
func (p *RecordReliable) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
	w.WriteUint8(uint8(p.RequiredReliability))
	w.WriteUint8(0)
	w.WriteUint16(p.EventType)
	w.WriteUint32(p.ResponseSerialNumber)
	p.Records.Serialize(w)
}

// DeserializeBody reads a record reliable body.
func (p *RecordReliable) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	p.RequiredReliability = enums.DecodeRequiredReliabilityService(r.ReadUint8())
	r.Skip(1)
	p.EventType = r.ReadUint16()
	p.ResponseSerialNumber = r.ReadUint32()
	return p.Records.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *RecordReliable) BodyLength() int { return PartiesLength + 12 + p.Records.ByteLength() }

// SetRecordReliable sets record values in a receiving simulation.
type SetRecordReliable struct {
	Base
	Parties
	RequestID           uint32                           `json:"request_id"`
	RequiredReliability enums.RequiredReliabilityService `json:"required_reliability"`
	Records             record.RecordSpecification       `json:"records"`
}

// NewSetRecordReliable returns a SetRecordReliable PDU with a fresh header.
func NewSetRecordReliable() *SetRecordReliable {
	return &SetRecordReliable{Base: newBase(kindSetRecordReliable)}
}

// Kind implements PDU.
func (p *SetRecordReliable) Kind() Kind { return kindSetRecordReliable }

// SerializeBody writes the set record reliable body in wire order.
func (p *SetRecordReliable) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
	w.WriteUint8(uint8(p.RequiredReliability))
	w.WriteZeros(7)
	p.Records.Serialize(w)
}

// DeserializeBody reads a set record reliable body.
func (p *SetRecordReliable) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	p.RequiredReliability = enums.DecodeRequiredReliabilityService(r.ReadUint8())
	r.Skip(7)
	return p.Records.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *SetRecordReliable) BodyLength() int { return PartiesLength + 12 + p.Records.ByteLength() }
