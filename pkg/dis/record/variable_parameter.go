package record

import (
	"encoding/binary"
	"math"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
)

// VariableParameterLength is the wire size of VariableParameter.
const VariableParameterLength = 16

// VariableParameter is one 16-byte articulation, attachment or association
// record. The layout of Data depends on RecordType; ArticulatedPart and
// AttachedPart provide typed views.
type VariableParameter struct {
	RecordType enums.VariableParameterRecordType `json:"record_type"`
	Data       [VariableParameterLength - 1]byte `json:"data"`
}

// Serialize writes the variable parameter.
func (p VariableParameter) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(p.RecordType))
	w.WriteBytes(p.Data[:])
}

// Deserialize reads a variable parameter.
func (p *VariableParameter) Deserialize(r *disenc.Reader) error {
	// Keep the raw discriminator so unknown record kinds survive a relay.
	p.RecordType = enums.VariableParameterRecordType(r.ReadUint8())
	r.ReadInto(p.Data[:])
	return r.Err()
}

// ByteLength returns the wire size of the variable parameter.
func (VariableParameter) ByteLength() int { return VariableParameterLength }

// ArticulatedPart is the articulated part layout of a variable parameter.
type ArticulatedPart struct {
	ChangeIndicator uint8   `json:"change_indicator"`
	AttachedTo      uint16  `json:"attached_to"`
	ParameterType   uint32  `json:"parameter_type"`
	Value           float32 `json:"value"`
}

// Parameter packs a into a variable parameter record.
func (a ArticulatedPart) Parameter() VariableParameter {
	p := VariableParameter{RecordType: enums.VariableParameterArticulatedPart}
	p.Data[0] = a.ChangeIndicator
	binary.BigEndian.PutUint16(p.Data[1:], a.AttachedTo)
	binary.BigEndian.PutUint32(p.Data[3:], a.ParameterType)
	binary.BigEndian.PutUint32(p.Data[7:], math.Float32bits(a.Value))
	return p
}

// ArticulatedPart reads Data as an articulated part. ok is false for other
// record types.
func (p VariableParameter) ArticulatedPart() (a ArticulatedPart, ok bool) {
	if p.RecordType != enums.VariableParameterArticulatedPart {
		return a, false
	}
	a.ChangeIndicator = p.Data[0]
	a.AttachedTo = binary.BigEndian.Uint16(p.Data[1:])
	a.ParameterType = binary.BigEndian.Uint32(p.Data[3:])
	a.Value = math.Float32frombits(binary.BigEndian.Uint32(p.Data[7:]))
	return a, true
}

// AttachedPart is the attached part layout of a variable parameter.
type AttachedPart struct {
	DetachedIndicator uint8      `json:"detached_indicator"`
	AttachedTo        uint16     `json:"attached_to"`
	ParameterType     uint32     `json:"parameter_type"`
	PartType          EntityType `json:"part_type"`
}

// Parameter packs a into a variable parameter record.
func (a AttachedPart) Parameter() VariableParameter {
	p := VariableParameter{RecordType: enums.VariableParameterAttachedPart}
	p.Data[0] = a.DetachedIndicator
	binary.BigEndian.PutUint16(p.Data[1:], a.AttachedTo)
	binary.BigEndian.PutUint32(p.Data[3:], a.ParameterType)
	w := disenc.NewWriter(EntityTypeLength)
	a.PartType.Serialize(w)
	copy(p.Data[7:], w.Bytes())
	return p
}

// AttachedPart reads Data as an attached part. ok is false for other record
// types.
func (p VariableParameter) AttachedPart() (a AttachedPart, ok bool) {
	if p.RecordType != enums.VariableParameterAttachedPart {
		return a, false
	}
	a.DetachedIndicator = p.Data[0]
	a.AttachedTo = binary.BigEndian.Uint16(p.Data[1:])
	a.ParameterType = binary.BigEndian.Uint32(p.Data[3:])
	if err := a.PartType.Deserialize(disenc.NewReader(p.Data[7:])); err != nil {
		return a, false
	}
	return a, true
}
