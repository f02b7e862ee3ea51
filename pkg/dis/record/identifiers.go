package record

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
)

// SimulationAddress identifies a simulation application by site and
// application number.
type SimulationAddress struct {
	Site        uint16 `json:"site"`
	Application uint16 `json:"application"`
}

// SimulationAddressLength is the wire size of SimulationAddress.
const SimulationAddressLength = 4

// Serialize writes the simulation address.
func (a SimulationAddress) Serialize(w *disenc.Writer) {
	w.WriteUint16(a.Site)
	w.WriteUint16(a.Application)
}

// Deserialize reads a simulation address.
func (a *SimulationAddress) Deserialize(r *disenc.Reader) error {
	a.Site = r.ReadUint16()
	a.Application = r.ReadUint16()
	return r.Err()
}

// ByteLength returns the wire size of the simulation address.
func (SimulationAddress) ByteLength() int { return SimulationAddressLength }

func (a SimulationAddress) String() string {
	return fmt.Sprintf("%d:%d", a.Site, a.Application)
}

// EntityID identifies an entity within a simulation application.
type EntityID struct {
	SimulationAddress
	Entity uint16 `json:"entity"`
}

// EntityIDLength is the wire size of EntityID.
const EntityIDLength = SimulationAddressLength + 2

// NewEntityID builds an EntityID from its three numbers.
func NewEntityID(site, application, entity uint16) EntityID {
	return EntityID{
		SimulationAddress: SimulationAddress{Site: site, Application: application},
		Entity:            entity,
	}
}

// Serialize writes the entity ID.
func (e EntityID) Serialize(w *disenc.Writer) {
	e.SimulationAddress.Serialize(w)
	w.WriteUint16(e.Entity)
}

// Deserialize reads an entity ID.
func (e *EntityID) Deserialize(r *disenc.Reader) error {
	if err := e.SimulationAddress.Deserialize(r); err != nil {
		return err
	}
	e.Entity = r.ReadUint16()
	return r.Err()
}

// ByteLength returns the wire size of the entity ID.
func (EntityID) ByteLength() int { return EntityIDLength }

func (e EntityID) String() string {
	return fmt.Sprintf("%d:%d:%d", e.Site, e.Application, e.Entity)
}

// EventID distinguishes events generated by one simulation application.
type EventID struct {
	SimulationAddress
	EventNumber uint16 `json:"event_number"`
}

// EventIDLength is the wire size of EventID.
const EventIDLength = SimulationAddressLength + 2

// Serialize writes the event ID.
func (e EventID) Serialize(w *disenc.Writer) {
	e.SimulationAddress.Serialize(w)
	w.WriteUint16(e.EventNumber)
}

// Deserialize reads an event ID.
func (e *EventID) Deserialize(r *disenc.Reader) error {
	if err := e.SimulationAddress.Deserialize(r); err != nil {
		return err
	}
	e.EventNumber = r.ReadUint16()
	return r.Err()
}

// ByteLength returns the wire size of the event ID.
func (EventID) ByteLength() int { return EventIDLength }
