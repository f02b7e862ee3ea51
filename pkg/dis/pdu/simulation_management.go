package pdu

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
	"github.com/marmos91/opendis/pkg/dis/record"
)

var (
	kindCreateEntity   = Kind{enums.PDUTypeCreateEntity, enums.ProtocolFamilySimulationManagement}
	kindRemoveEntity   = Kind{enums.PDUTypeRemoveEntity, enums.ProtocolFamilySimulationManagement}
	kindStartResume    = Kind{enums.PDUTypeStartResume, enums.ProtocolFamilySimulationManagement}
	kindStopFreeze     = Kind{enums.PDUTypeStopFreeze, enums.ProtocolFamilySimulationManagement}
	kindAcknowledge    = Kind{enums.PDUTypeAcknowledge, enums.ProtocolFamilySimulationManagement}
	kindActionRequest  = Kind{enums.PDUTypeActionRequest, enums.ProtocolFamilySimulationManagement}
	kindActionResponse = Kind{enums.PDUTypeActionResponse, enums.ProtocolFamilySimulationManagement}
	kindDataQuery      = Kind{enums.PDUTypeDataQuery, enums.ProtocolFamilySimulationManagement}
	kindSetData        = Kind{enums.PDUTypeSetData, enums.ProtocolFamilySimulationManagement}
	kindData           = Kind{enums.PDUTypeData, enums.ProtocolFamilySimulationManagement}
	kindEventReport    = Kind{enums.PDUTypeEventReport, enums.ProtocolFamilySimulationManagement}
	kindComment        = Kind{enums.PDUTypeComment, enums.ProtocolFamilySimulationManagement}
)

// PartiesLength is the wire size of Parties.
const PartiesLength = 2 * record.EntityIDLength

// Parties is the originating and receiving simulation of a simulation
// management exchange.
type Parties struct {
	OriginatingID record.EntityID `json:"originating_id"`
	ReceivingID   record.EntityID `json:"receiving_id"`
}

// Serialize writes the parties.
func (p Parties) Serialize(w *disenc.Writer) {
	p.OriginatingID.Serialize(w)
	p.ReceivingID.Serialize(w)
}

// Deserialize reads the parties.
func (p *Parties) Deserialize(r *disenc.Reader) error {
	if err := p.OriginatingID.Deserialize(r); err != nil {
		return err
	}
	return p.ReceivingID.Deserialize(r)
}

// ByteLength returns the wire size of the parties.
func (Parties) ByteLength() int { return PartiesLength }

// entityRequest is the shared body of CreateEntity and RemoveEntity.
type entityRequest struct {
	Parties
	RequestID uint32 `json:"request_id"`
}

// SerializeBody writes the entity request body in wire order.
func (p *entityRequest) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
}

// DeserializeBody reads an entity request body.
func (p *entityRequest) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *entityRequest) BodyLength() int { return PartiesLength + 4 }

// CreateEntity asks a simulation to create an entity.
type CreateEntity struct {
	Base
	entityRequest
}

// NewCreateEntity returns a CreateEntity PDU with a fresh header.
func NewCreateEntity() *CreateEntity { return &CreateEntity{Base: newBase(kindCreateEntity)} }

// Kind implements PDU.
func (p *CreateEntity) Kind() Kind { return kindCreateEntity }

// RemoveEntity asks a simulation to remove an entity.
type RemoveEntity struct {
	Base
	entityRequest
}

// NewRemoveEntity returns a RemoveEntity PDU with a fresh header.
func NewRemoveEntity() *RemoveEntity { return &RemoveEntity{Base: newBase(kindRemoveEntity)} }

// Kind implements PDU.
func (p *RemoveEntity) Kind() Kind { return kindRemoveEntity }

// StartResume starts or resumes an exercise at the given times.
type StartResume struct {
	Base
	Parties
	RealWorldTime  record.ClockTime `json:"real_world_time"`
	SimulationTime record.ClockTime `json:"simulation_time"`
	RequestID      uint32           `json:"request_id"`
}

// NewStartResume returns a StartResume PDU with a fresh header.
func NewStartResume() *StartResume { return &StartResume{Base: newBase(kindStartResume)} }

// Kind implements PDU.
func (p *StartResume) Kind() Kind { return kindStartResume }

// SerializeBody writes the start resume body in wire order.
func (p *StartResume) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	p.RealWorldTime.Serialize(w)
	p.SimulationTime.Serialize(w)
	w.WriteUint32(p.RequestID)
}

// DeserializeBody reads a start resume body.
func (p *StartResume) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	if err := p.RealWorldTime.Deserialize(r); err != nil {
		return err
	}
	if err := p.SimulationTime.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *StartResume) BodyLength() int { return PartiesLength + 2*record.ClockTimeLength + 4 }

// StopFreeze stops or freezes an exercise.
type StopFreeze struct {
	Base
	Parties
	RealWorldTime  record.ClockTime       `json:"real_world_time"`
	Reason         enums.StopFreezeReason `json:"reason"`
	FrozenBehavior FrozenBehavior         `json:"frozen_behavior"`
	RequestID      uint32                 `json:"request_id"`
}

// NewStopFreeze returns a StopFreeze PDU with a fresh header.
func NewStopFreeze() *StopFreeze { return &StopFreeze{Base: newBase(kindStopFreeze)} }

// Kind implements PDU.
func (p *StopFreeze) Kind() Kind { return kindStopFreeze }

// SerializeBody writes the stop freeze body in wire order.
func (p *StopFreeze) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	p.RealWorldTime.Serialize(w)
	w.WriteUint8(uint8(p.Reason))
	p.FrozenBehavior.Serialize(w)
	w.WriteUint16(0)
	w.WriteUint32(p.RequestID)
}

// DeserializeBody reads a stop freeze body.
func (p *StopFreeze) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	if err := p.RealWorldTime.Deserialize(r); err != nil {
		return err
	}
	p.Reason = enums.DecodeStopFreezeReason(r.ReadUint8())
	if err := p.FrozenBehavior.Deserialize(r); err != nil {
		return err
	}
	r.Skip(2)
	p.RequestID = r.ReadUint32()
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *StopFreeze) BodyLength() int { return PartiesLength + record.ClockTimeLength + 8 }

// Acknowledge confirms receipt of a create, remove, start or stop request.
type Acknowledge struct {
	Base
	Parties
	AcknowledgeFlag enums.AcknowledgeFlag         `json:"acknowledge_flag"`
	ResponseFlag    enums.AcknowledgeResponseFlag `json:"response_flag"`
	RequestID       uint32                        `json:"request_id"`
}

// NewAcknowledge returns an Acknowledge PDU with a fresh header.
func NewAcknowledge() *Acknowledge { return &Acknowledge{Base: newBase(kindAcknowledge)} }

// Kind implements PDU.
func (p *Acknowledge) Kind() Kind { return kindAcknowledge }

// SerializeBody writes the acknowledge body in wire order.
func (p *Acknowledge) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint16(uint16(p.AcknowledgeFlag))
	w.WriteUint16(uint16(p.ResponseFlag))
	w.WriteUint32(p.RequestID)
}

// DeserializeBody reads an acknowledge body.
func (p *Acknowledge) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.AcknowledgeFlag = enums.DecodeAcknowledgeFlag(r.ReadUint16())
	p.ResponseFlag = enums.DecodeAcknowledgeResponseFlag(r.ReadUint16())
	p.RequestID = r.ReadUint32()
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *Acknowledge) BodyLength() int { return PartiesLength + 8 }

// ActionRequest asks a simulation to perform an action.
type ActionRequest struct {
	Base
	Parties
	RequestID uint32                    `json:"request_id"`
	ActionID  uint32                    `json:"action_id"`
	Datums    record.DatumSpecification `json:"datums"`
}

// NewActionRequest returns an ActionRequest PDU with a fresh header.
func NewActionRequest() *ActionRequest { return &ActionRequest{Base: newBase(kindActionRequest)} }

// Kind implements PDU.
func (p *ActionRequest) Kind() Kind { return kindActionRequest }

// SerializeBody writes the action request body in wire order.
func (p *ActionRequest) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
	w.WriteUint32(p.ActionID)
	p.Datums.Serialize(w)
}

// DeserializeBody reads an action request body.
func (p *ActionRequest) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	p.ActionID = r.ReadUint32()
	return p.Datums.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *ActionRequest) BodyLength() int { return PartiesLength + 8 + p.Datums.ByteLength() }

// ActionResponse answers an ActionRequest.
type ActionResponse struct {
	Base
	Parties
	RequestID     uint32                    `json:"request_id"`
	RequestStatus enums.RequestStatus       `json:"request_status"`
	Datums        record.DatumSpecification `json:"datums"`
}

// NewActionResponse returns an ActionResponse PDU with a fresh header.
func NewActionResponse() *ActionResponse { return &ActionResponse{Base: newBase(kindActionResponse)} }

// Kind implements PDU.
func (p *ActionResponse) Kind() Kind { return kindActionResponse }

// SerializeBody writes the action response body in wire order.
func (p *ActionResponse) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
	w.WriteUint32(uint32(p.RequestStatus))
	p.Datums.Serialize(w)
}

// DeserializeBody reads an action response body.
func (p *ActionResponse) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	p.RequestStatus = enums.DecodeRequestStatus(r.ReadUint32())
	return p.Datums.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *ActionResponse) BodyLength() int { return PartiesLength + 8 + p.Datums.ByteLength() }

// DataQuery asks for the values of the listed datums, once or every
// TimeInterval.
type DataQuery struct {
	Base
	Parties
	RequestID        uint32   `json:"request_id"`
	TimeInterval     uint32   `json:"time_interval"`
	FixedDatumIDs    []uint32 `json:"fixed_datum_ids,omitempty"`
	VariableDatumIDs []uint32 `json:"variable_datum_ids,omitempty"`
}

// NewDataQuery returns a DataQuery PDU with a fresh header.
func NewDataQuery() *DataQuery { return &DataQuery{Base: newBase(kindDataQuery)} }

// Kind implements PDU.
func (p *DataQuery) Kind() Kind { return kindDataQuery }

// SerializeBody writes the data query body in wire order.
func (p *DataQuery) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
	w.WriteUint32(p.TimeInterval)
	w.WriteUint32(uint32(len(p.FixedDatumIDs)))
	w.WriteUint32(uint32(len(p.VariableDatumIDs)))
	for _, id := range p.FixedDatumIDs {
		w.WriteUint32(id)
	}
	for _, id := range p.VariableDatumIDs {
		w.WriteUint32(id)
	}
}

// DeserializeBody reads a data query body.
func (p *DataQuery) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	p.TimeInterval = r.ReadUint32()
	fixed := int(r.ReadUint32())
	variable := int(r.ReadUint32())
	p.FixedDatumIDs = readIDs(r, fixed)
	p.VariableDatumIDs = readIDs(r, variable)
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *DataQuery) BodyLength() int {
	return PartiesLength + 16 + 4*(len(p.FixedDatumIDs)+len(p.VariableDatumIDs))
}

// readIDs reads n 32-bit identifiers, checking the remaining length first so
// a hostile count fails without allocating.
func readIDs(r *disenc.Reader, n int) []uint32 {
	if n <= 0 || r.Err() != nil {
		return nil
	}
	if n > r.Remaining()/4 {
		r.Fail(fmt.Errorf("%w: %d datum ids in %d bytes", disenc.ErrShortRead, n, r.Remaining()))
		return nil
	}
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = r.ReadUint32()
	}
	return ids
}

// datumExchange is the shared body of SetData and Data: a request id, four
// bytes of padding and a datum specification.
type datumExchange struct {
	Parties
	RequestID uint32                    `json:"request_id"`
	Datums    record.DatumSpecification `json:"datums"`
}

// SerializeBody writes the datum exchange body in wire order.
func (p *datumExchange) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(p.RequestID)
	w.WriteUint32(0)
	p.Datums.Serialize(w)
}

// DeserializeBody reads a datum exchange body.
func (p *datumExchange) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.RequestID = r.ReadUint32()
	r.Skip(4)
	return p.Datums.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *datumExchange) BodyLength() int { return PartiesLength + 8 + p.Datums.ByteLength() }

// SetData sets datum values in a receiving simulation.
type SetData struct {
	Base
	datumExchange
}

// NewSetData returns a SetData PDU with a fresh header.
func NewSetData() *SetData { return &SetData{Base: newBase(kindSetData)} }

// Kind implements PDU.
func (p *SetData) Kind() Kind { return kindSetData }

// Data carries datum values, in reply to a DataQuery or unsolicited.
type Data struct {
	Base
	datumExchange
}

// NewData returns a Data PDU with a fresh header.
func NewData() *Data { return &Data{Base: newBase(kindData)} }

// Kind implements PDU.
func (p *Data) Kind() Kind { return kindData }

// EventReport reports a significant event.
type EventReport struct {
	Base
	Parties
	EventType enums.EventType           `json:"event_type"`
	Datums    record.DatumSpecification `json:"datums"`
}

// NewEventReport returns an EventReport PDU with a fresh header.
func NewEventReport() *EventReport { return &EventReport{Base: newBase(kindEventReport)} }

// Kind implements PDU.
func (p *EventReport) Kind() Kind { return kindEventReport }

// SerializeBody writes the event report body in wire order.
func (p *EventReport) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	w.WriteUint32(uint32(p.EventType))
	w.WriteUint32(0)
	p.Datums.Serialize(w)
}

// DeserializeBody reads an event report body.
func (p *EventReport) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	p.EventType = enums.DecodeEventType(r.ReadUint32())
	r.Skip(4)
	return p.Datums.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *EventReport) BodyLength() int { return PartiesLength + 8 + p.Datums.ByteLength() }

// Comment carries free-form datums, typically text messages.
type Comment struct {
	Base
	Parties
	Datums record.DatumSpecification `json:"datums"`
}

// NewComment returns a Comment PDU with a fresh header.
func NewComment() *Comment { return &Comment{Base: newBase(kindComment)} }

// Kind implements PDU.
func (p *Comment) Kind() Kind { return kindComment }

// NewTextComment builds a Comment carrying text in a single variable datum.
func NewTextComment(datumID uint32, text string) *Comment {
	c := NewComment()
	c.Datums.VariableDatums = []record.VariableDatumRecord{record.NewVariableDatum(datumID, []byte(text))}
	return c
}

// SerializeBody writes the comment body in wire order.
func (p *Comment) SerializeBody(w *disenc.Writer) {
	p.Parties.Serialize(w)
	p.Datums.Serialize(w)
}

// DeserializeBody reads a comment body.
func (p *Comment) DeserializeBody(r *disenc.Reader) error {
	if err := p.Parties.Deserialize(r); err != nil {
		return err
	}
	return p.Datums.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *Comment) BodyLength() int { return PartiesLength + p.Datums.ByteLength() }

// frozenLayout is the frozen behavior byte MSB first. Bit 0 runs the
// simulation clock, bit 1 transmits updates and bit 2 processes updates.
var frozenLayout = field.NewLayout(8,
	field.Bits{Name: "reserved", Width: 5},
	field.Bits{Name: "process_updates", Width: 1},
	field.Bits{Name: "transmit_updates", Width: 1},
	field.Bits{Name: "run_clock", Width: 1},
)

// FrozenBehavior says what a frozen simulation keeps doing.
type FrozenBehavior struct {
	RunSimulationClock bool `json:"run_simulation_clock"`
	TransmitUpdates    bool `json:"transmit_updates"`
	ProcessUpdates     bool `json:"process_updates"`
}

// DecodeFrozenBehavior splits a frozen behavior byte; reserved bits are
// dropped.
func DecodeFrozenBehavior(b uint8) FrozenBehavior {
	v := frozenLayout.Unpack(uint64(b))
	return FrozenBehavior{
		ProcessUpdates:     v[1] == 1,
		TransmitUpdates:    v[2] == 1,
		RunSimulationClock: v[3] == 1,
	}
}

func (f FrozenBehavior) Byte() uint8 {
	return uint8(frozenLayout.Pack(0, bit(f.ProcessUpdates), bit(f.TransmitUpdates), bit(f.RunSimulationClock)))
}

// Serialize writes the frozen behavior.
func (f FrozenBehavior) Serialize(w *disenc.Writer) { w.WriteUint8(f.Byte()) }

// Deserialize reads a frozen behavior.
func (f *FrozenBehavior) Deserialize(r *disenc.Reader) error {
	*f = DecodeFrozenBehavior(r.ReadUint8())
	return r.Err()
}

// ByteLength returns the wire size of the frozen behavior.
func (FrozenBehavior) ByteLength() int { return 1 }

func bit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
