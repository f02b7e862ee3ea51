package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
	"github.com/marmos91/opendis/pkg/dis/record"
)

var (
	kindFire       = Kind{enums.PDUTypeFire, enums.ProtocolFamilyWarfare}
	kindDetonation = Kind{enums.PDUTypeDetonation, enums.ProtocolFamilyWarfare}
)

// FireBodyLength is the body size of a Fire PDU.
const FireBodyLength = 3*record.EntityIDLength + record.EventIDLength + 4 +
	record.Vector3DoubleLength + record.MunitionDescriptorLength + record.Vector3FloatLength + 4

// Fire reports the firing of a weapon or expendable.
type Fire struct {
	Base
	FiringEntityID   record.EntityID           `json:"firing_entity_id"`
	TargetEntityID   record.EntityID           `json:"target_entity_id"`
	MunitionID       record.EntityID           `json:"munition_id"`
	EventID          record.EventID            `json:"event_id"`
	FireMissionIndex uint32                    `json:"fire_mission_index"`
	Location         record.WorldCoordinate    `json:"location"`
	Descriptor       record.MunitionDescriptor `json:"descriptor"`
	Velocity         record.LinearVelocity     `json:"velocity"`
	Range            float32                   `json:"range"`
}

// NewFire returns a Fire PDU with a fresh header.
func NewFire() *Fire { return &Fire{Base: newBase(kindFire)} }

// Kind implements PDU.
func (p *Fire) Kind() Kind { return kindFire }

// SerializeBody writes the fire body in wire order.
func (p *Fire) SerializeBody(w *disenc.Writer) {
	p.FiringEntityID.Serialize(w)
	p.TargetEntityID.Serialize(w)
	p.MunitionID.Serialize(w)
	p.EventID.Serialize(w)
	w.WriteUint32(p.FireMissionIndex)
	p.Location.Serialize(w)
	p.Descriptor.Serialize(w)
	p.Velocity.Serialize(w)
	w.WriteFloat32(p.Range)
}

// DeserializeBody reads a fire body.
func (p *Fire) DeserializeBody(r *disenc.Reader) error {
	for _, id := range []*record.EntityID{&p.FiringEntityID, &p.TargetEntityID, &p.MunitionID} {
		if err := id.Deserialize(r); err != nil {
			return err
		}
	}
	if err := p.EventID.Deserialize(r); err != nil {
		return err
	}
	p.FireMissionIndex = r.ReadUint32()
	if err := p.Location.Deserialize(r); err != nil {
		return err
	}
	if err := p.Descriptor.Deserialize(r); err != nil {
		return err
	}
	if err := p.Velocity.Deserialize(r); err != nil {
		return err
	}
	p.Range = r.ReadFloat32()
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *Fire) BodyLength() int { return FireBodyLength }

// DetonationBodyLength is the body size of a Detonation with no variable
// parameters.
const DetonationBodyLength = 3*record.EntityIDLength + record.EventIDLength +
	record.Vector3FloatLength + record.Vector3DoubleLength + record.MunitionDescriptorLength +
	record.Vector3FloatLength + 4

// Detonation reports the detonation or impact of a munition.
type Detonation struct {
	Base
	FiringEntityID     record.EntityID               `json:"firing_entity_id"`
	TargetEntityID     record.EntityID               `json:"target_entity_id"`
	ExplodingEntityID  record.EntityID               `json:"exploding_entity_id"`
	EventID            record.EventID                `json:"event_id"`
	Velocity           record.LinearVelocity         `json:"velocity"`
	Location           record.WorldCoordinate        `json:"location"`
	Descriptor         record.MunitionDescriptor     `json:"descriptor"`
	EntityLocation     record.EntityCoordinateVector `json:"entity_location"`
	Result             enums.DetonationResult        `json:"result"`
	VariableParameters []record.VariableParameter    `json:"variable_parameters,omitempty"`
}

// NewDetonation returns a Detonation PDU with a fresh header.
func NewDetonation() *Detonation { return &Detonation{Base: newBase(kindDetonation)} }

// Kind implements PDU.
func (p *Detonation) Kind() Kind { return kindDetonation }

// Validate checks that collection counts fit their wire fields.
func (p *Detonation) Validate() error {
	if n := len(p.VariableParameters); n > MaxArticulationParams {
		return invalidField("detonation: %d variable parameters, max %d", n, MaxArticulationParams)
	}
	return nil
}

// SerializeBody writes the detonation body in wire order.
func (p *Detonation) SerializeBody(w *disenc.Writer) {
	p.FiringEntityID.Serialize(w)
	p.TargetEntityID.Serialize(w)
	p.ExplodingEntityID.Serialize(w)
	p.EventID.Serialize(w)
	p.Velocity.Serialize(w)
	p.Location.Serialize(w)
	p.Descriptor.Serialize(w)
	p.EntityLocation.Serialize(w)
	w.WriteUint8(uint8(p.Result))
	w.WriteUint8(uint8(len(p.VariableParameters)))
	w.WriteUint16(0)
	field.SerializeSlice(w, p.VariableParameters)
}

// DeserializeBody reads a detonation body.
func (p *Detonation) DeserializeBody(r *disenc.Reader) error {
	for _, id := range []*record.EntityID{&p.FiringEntityID, &p.TargetEntityID, &p.ExplodingEntityID} {
		if err := id.Deserialize(r); err != nil {
			return err
		}
	}
	if err := p.EventID.Deserialize(r); err != nil {
		return err
	}
	if err := p.Velocity.Deserialize(r); err != nil {
		return err
	}
	if err := p.Location.Deserialize(r); err != nil {
		return err
	}
	if err := p.Descriptor.Deserialize(r); err != nil {
		return err
	}
	if err := p.EntityLocation.Deserialize(r); err != nil {
		return err
	}
	p.Result = enums.DecodeDetonationResult(r.ReadUint8())
	count, err := readParameterCount(r, "detonation")
	if err != nil {
		return err
	}
	r.Skip(2)
	p.VariableParameters, err = field.DeserializeSlice[record.VariableParameter](r, count)
	return err
}

// BodyLength returns the encoded body size.
func (p *Detonation) BodyLength() int {
	return DetonationBodyLength + field.SliceLength(p.VariableParameters)
}
