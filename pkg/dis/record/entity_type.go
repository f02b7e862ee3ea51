package record

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
)

// EntityType is the seven-level entity type hierarchy.
//
// Domain and Country are stored raw: their meaning depends on Kind and the
// country table is far larger than the names this package carries.
type EntityType struct {
	Kind        enums.EntityKind `json:"kind"`
	Domain      uint8            `json:"domain"`
	Country     uint16           `json:"country"`
	Category    uint8            `json:"category"`
	Subcategory uint8            `json:"subcategory"`
	Specific    uint8            `json:"specific"`
	Extra       uint8            `json:"extra"`
}

// EntityTypeLength is the wire size of EntityType.
const EntityTypeLength = 8

// Serialize writes the entity type.
func (t EntityType) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(t.Kind))
	w.WriteUint8(t.Domain)
	w.WriteUint16(t.Country)
	w.WriteUint8(t.Category)
	w.WriteUint8(t.Subcategory)
	w.WriteUint8(t.Specific)
	w.WriteUint8(t.Extra)
}

// Deserialize reads an entity type.
func (t *EntityType) Deserialize(r *disenc.Reader) error {
	t.Kind = enums.DecodeEntityKind(r.ReadUint8())
	t.Domain = r.ReadUint8()
	t.Country = r.ReadUint16()
	t.Category = r.ReadUint8()
	t.Subcategory = r.ReadUint8()
	t.Specific = r.ReadUint8()
	t.Extra = r.ReadUint8()
	return r.Err()
}

// ByteLength returns the wire size of the entity type.
func (EntityType) ByteLength() int { return EntityTypeLength }

// CountryCode resolves Country against the catalog.
func (t EntityType) CountryCode() enums.Country { return enums.DecodeCountry(t.Country) }

// PlatformDomain resolves Domain for platform entities.
func (t EntityType) PlatformDomain() enums.PlatformDomain {
	return enums.DecodePlatformDomain(t.Domain)
}

// String renders the conventional dotted form, e.g. 1.1.225.1.1.3.0.
func (t EntityType) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d.%d.%d",
		uint8(t.Kind), t.Domain, t.Country, t.Category, t.Subcategory, t.Specific, t.Extra)
}

// RadioEntityType describes a radio by kind, domain, country, category and
// nomenclature.
type RadioEntityType struct {
	Kind                enums.EntityKind `json:"kind"`
	Domain              uint8            `json:"domain"`
	Country             uint16           `json:"country"`
	Category            uint8            `json:"category"`
	NomenclatureVersion uint8            `json:"nomenclature_version"`
	Nomenclature        uint16           `json:"nomenclature"`
}

// RadioEntityTypeLength is the wire size of RadioEntityType.
const RadioEntityTypeLength = 8

// Serialize writes the radio entity type.
func (t RadioEntityType) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(t.Kind))
	w.WriteUint8(t.Domain)
	w.WriteUint16(t.Country)
	w.WriteUint8(t.Category)
	w.WriteUint8(t.NomenclatureVersion)
	w.WriteUint16(t.Nomenclature)
}

// Deserialize reads a radio entity type.
func (t *RadioEntityType) Deserialize(r *disenc.Reader) error {
	t.Kind = enums.DecodeEntityKind(r.ReadUint8())
	t.Domain = r.ReadUint8()
	t.Country = r.ReadUint16()
	t.Category = r.ReadUint8()
	t.NomenclatureVersion = r.ReadUint8()
	t.Nomenclature = r.ReadUint16()
	return r.Err()
}

// ByteLength returns the wire size of the radio entity type.
func (RadioEntityType) ByteLength() int { return RadioEntityTypeLength }

// MunitionDescriptor describes a fired or detonated munition.
type MunitionDescriptor struct {
	MunitionType EntityType `json:"munition_type"`
	Warhead      uint16     `json:"warhead"`
	Fuse         uint16     `json:"fuse"`
	Quantity     uint16     `json:"quantity"`
	Rate         uint16     `json:"rate"`
}

// MunitionDescriptorLength is the wire size of MunitionDescriptor.
const MunitionDescriptorLength = EntityTypeLength + 8

// Serialize writes the munition descriptor.
func (m MunitionDescriptor) Serialize(w *disenc.Writer) {
	m.MunitionType.Serialize(w)
	w.WriteUint16(m.Warhead)
	w.WriteUint16(m.Fuse)
	w.WriteUint16(m.Quantity)
	w.WriteUint16(m.Rate)
}

// Deserialize reads a munition descriptor.
func (m *MunitionDescriptor) Deserialize(r *disenc.Reader) error {
	if err := m.MunitionType.Deserialize(r); err != nil {
		return err
	}
	m.Warhead = r.ReadUint16()
	m.Fuse = r.ReadUint16()
	m.Quantity = r.ReadUint16()
	m.Rate = r.ReadUint16()
	return r.Err()
}

// ByteLength returns the wire size of the munition descriptor.
func (MunitionDescriptor) ByteLength() int { return MunitionDescriptorLength }
