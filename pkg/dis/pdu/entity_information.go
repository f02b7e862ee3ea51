package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/appearance"
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
	"github.com/marmos91/opendis/pkg/dis/record"
)

var (
	kindEntityState       = Kind{enums.PDUTypeEntityState, enums.ProtocolFamilyEntityInformation}
	kindCollision         = Kind{enums.PDUTypeCollision, enums.ProtocolFamilyEntityInformation}
	kindEntityStateUpdate = Kind{enums.PDUTypeEntityStateUpdate, enums.ProtocolFamilyEntityInformation}
)

// EntityStateBodyLength is the body size of an EntityState with no variable
// parameters.
const EntityStateBodyLength = record.EntityIDLength + 2 + 2*record.EntityTypeLength +
	record.Vector3FloatLength + record.Vector3DoubleLength + record.EulerAnglesLength +
	appearance.WordLength + record.DeadReckoningParametersLength +
	record.EntityMarkingLength + appearance.CapabilitiesLength

// EntityState reports the position, motion and appearance of an entity.
type EntityState struct {
	Base
	EntityID              record.EntityID                `json:"entity_id"`
	ForceID               enums.ForceID                  `json:"force_id"`
	EntityType            record.EntityType              `json:"entity_type"`
	AlternativeEntityType record.EntityType              `json:"alternative_entity_type"`
	LinearVelocity        record.LinearVelocity          `json:"linear_velocity"`
	Location              record.WorldCoordinate         `json:"location"`
	Orientation           record.EulerAngles             `json:"orientation"`
	Appearance            appearance.Word                `json:"appearance"`
	DeadReckoning         record.DeadReckoningParameters `json:"dead_reckoning"`
	Marking               record.EntityMarking           `json:"marking"`
	Capabilities          appearance.Capabilities        `json:"capabilities"`
	VariableParameters    []record.VariableParameter     `json:"variable_parameters,omitempty"`
}

// NewEntityState returns an EntityState with a fresh header.
func NewEntityState() *EntityState { return &EntityState{Base: newBase(kindEntityState)} }

// Kind implements PDU.
func (p *EntityState) Kind() Kind { return kindEntityState }

// Validate checks that collection counts fit their wire fields.
func (p *EntityState) Validate() error {
	if n := len(p.VariableParameters); n > MaxArticulationParams {
		return invalidField("entity state: %d variable parameters, max %d", n, MaxArticulationParams)
	}
	return nil
}

// SerializeBody writes the entity state body in wire order.
func (p *EntityState) SerializeBody(w *disenc.Writer) {
	p.EntityID.Serialize(w)
	w.WriteUint8(uint8(p.ForceID))
	w.WriteUint8(uint8(len(p.VariableParameters)))
	p.EntityType.Serialize(w)
	p.AlternativeEntityType.Serialize(w)
	p.LinearVelocity.Serialize(w)
	p.Location.Serialize(w)
	p.Orientation.Serialize(w)
	p.Appearance.Serialize(w)
	p.DeadReckoning.Serialize(w)
	p.Marking.Serialize(w)
	p.Capabilities.Serialize(w)
	field.SerializeSlice(w, p.VariableParameters)
}

// DeserializeBody reads an entity state body.
func (p *EntityState) DeserializeBody(r *disenc.Reader) error {
	if err := p.EntityID.Deserialize(r); err != nil {
		return err
	}
	p.ForceID = enums.DecodeForceID(r.ReadUint8())
	count, err := readParameterCount(r, "entity state")
	if err != nil {
		return err
	}
	if err := p.EntityType.Deserialize(r); err != nil {
		return err
	}
	if err := p.AlternativeEntityType.Deserialize(r); err != nil {
		return err
	}
	if err := p.LinearVelocity.Deserialize(r); err != nil {
		return err
	}
	if err := p.Location.Deserialize(r); err != nil {
		return err
	}
	if err := p.Orientation.Deserialize(r); err != nil {
		return err
	}
	if err := p.Appearance.Deserialize(r); err != nil {
		return err
	}
	if err := p.DeadReckoning.Deserialize(r); err != nil {
		return err
	}
	if err := p.Marking.Deserialize(r); err != nil {
		return err
	}
	if err := p.Capabilities.Deserialize(r); err != nil {
		return err
	}
	p.VariableParameters, err = field.DeserializeSlice[record.VariableParameter](r, count)
	return err
}

// BodyLength returns the encoded body size.
func (p *EntityState) BodyLength() int {
	return EntityStateBodyLength + field.SliceLength(p.VariableParameters)
}

// Collision reports a collision between an entity and another entity or
// object.
type Collision struct {
	Base
	IssuingEntityID   record.EntityID               `json:"issuing_entity_id"`
	CollidingEntityID record.EntityID               `json:"colliding_entity_id"`
	EventID           record.EventID                `json:"event_id"`
	CollisionType     enums.CollisionType           `json:"collision_type"`
	Velocity          record.LinearVelocity         `json:"velocity"`
	Mass              float32                       `json:"mass"`
	Location          record.EntityCoordinateVector `json:"location"`
}

// CollisionBodyLength is the body size of a Collision.
const CollisionBodyLength = 2*record.EntityIDLength + record.EventIDLength + 2 + record.Vector3FloatLength + 4 + record.Vector3FloatLength

// NewCollision returns a Collision PDU with a fresh header.
func NewCollision() *Collision { return &Collision{Base: newBase(kindCollision)} }

// Kind implements PDU.
func (p *Collision) Kind() Kind { return kindCollision }

// SerializeBody writes the collision body in wire order.
func (p *Collision) SerializeBody(w *disenc.Writer) {
	p.IssuingEntityID.Serialize(w)
	p.CollidingEntityID.Serialize(w)
	p.EventID.Serialize(w)
	w.WriteUint8(uint8(p.CollisionType))
	w.WriteUint8(0)
	p.Velocity.Serialize(w)
	w.WriteFloat32(p.Mass)
	p.Location.Serialize(w)
}

// DeserializeBody reads a collision body.
func (p *Collision) DeserializeBody(r *disenc.Reader) error {
	if err := p.IssuingEntityID.Deserialize(r); err != nil {
		return err
	}
	if err := p.CollidingEntityID.Deserialize(r); err != nil {
		return err
	}
	if err := p.EventID.Deserialize(r); err != nil {
		return err
	}
	p.CollisionType = enums.DecodeCollisionType(r.ReadUint8())
	r.Skip(1)
	if err := p.Velocity.Deserialize(r); err != nil {
		return err
	}
	p.Mass = r.ReadFloat32()
	return p.Location.Deserialize(r)
}

// BodyLength returns the encoded body size.
func (p *Collision) BodyLength() int { return CollisionBodyLength }

// EntityStateUpdate is the reduced EntityState sent for entities whose
// static attributes are already known to receivers.
type EntityStateUpdate struct {
	Base
	EntityID           record.EntityID            `json:"entity_id"`
	LinearVelocity     record.LinearVelocity      `json:"linear_velocity"`
	Location           record.WorldCoordinate     `json:"location"`
	Orientation        record.EulerAngles         `json:"orientation"`
	Appearance         appearance.Word            `json:"appearance"`
	VariableParameters []record.VariableParameter `json:"variable_parameters,omitempty"`
}

// EntityStateUpdateBodyLength is the body size with no variable parameters.
const EntityStateUpdateBodyLength = record.EntityIDLength + 2 + record.Vector3FloatLength +
	record.Vector3DoubleLength + record.EulerAnglesLength + appearance.WordLength

// NewEntityStateUpdate returns an EntityStateUpdate PDU with a fresh header.
func NewEntityStateUpdate() *EntityStateUpdate {
	return &EntityStateUpdate{Base: newBase(kindEntityStateUpdate)}
}

// Kind implements PDU.
func (p *EntityStateUpdate) Kind() Kind { return kindEntityStateUpdate }

// Validate checks that collection counts fit their wire fields.
func (p *EntityStateUpdate) Validate() error {
	if n := len(p.VariableParameters); n > MaxArticulationParams {
		return invalidField("entity state update: %d variable parameters, max %d", n, MaxArticulationParams)
	}
	return nil
}

// SerializeBody writes the entity state update body in wire order.
func (p *EntityStateUpdate) SerializeBody(w *disenc.Writer) {
	p.EntityID.Serialize(w)
	w.WriteUint8(0)
	w.WriteUint8(uint8(len(p.VariableParameters)))
	p.LinearVelocity.Serialize(w)
	p.Location.Serialize(w)
	p.Orientation.Serialize(w)
	p.Appearance.Serialize(w)
	field.SerializeSlice(w, p.VariableParameters)
}

// DeserializeBody reads an entity state update body.
func (p *EntityStateUpdate) DeserializeBody(r *disenc.Reader) error {
	if err := p.EntityID.Deserialize(r); err != nil {
		return err
	}
	r.Skip(1)
	count, err := readParameterCount(r, "entity state update")
	if err != nil {
		return err
	}
	if err := p.LinearVelocity.Deserialize(r); err != nil {
		return err
	}
	if err := p.Location.Deserialize(r); err != nil {
		return err
	}
	if err := p.Orientation.Deserialize(r); err != nil {
		return err
	}
	if err := p.Appearance.Deserialize(r); err != nil {
		return err
	}
	p.VariableParameters, err = field.DeserializeSlice[record.VariableParameter](r, count)
	return err
}

// BodyLength returns the encoded body size.
func (p *EntityStateUpdate) BodyLength() int {
	return EntityStateUpdateBodyLength + field.SliceLength(p.VariableParameters)
}
