package record

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
)

// ModulationType describes a transmitter's modulation.
type ModulationType struct {
	SpreadSpectrum uint16                `json:"spread_spectrum"`
	Major          enums.MajorModulation `json:"major"`
	Detail         uint16                `json:"detail"`
	RadioSystem    enums.RadioSystem     `json:"radio_system"`
}

// ModulationTypeLength is the wire size of ModulationType.
const ModulationTypeLength = 8

// Serialize writes the modulation type.
func (m ModulationType) Serialize(w *disenc.Writer) {
	w.WriteUint16(m.SpreadSpectrum)
	w.WriteUint16(uint16(m.Major))
	w.WriteUint16(m.Detail)
	w.WriteUint16(uint16(m.RadioSystem))
}

// Deserialize reads a modulation type.
func (m *ModulationType) Deserialize(r *disenc.Reader) error {
	m.SpreadSpectrum = r.ReadUint16()
	m.Major = enums.DecodeMajorModulation(r.ReadUint16())
	m.Detail = r.ReadUint16()
	m.RadioSystem = enums.DecodeRadioSystem(r.ReadUint16())
	return r.Err()
}

// ByteLength returns the wire size of the modulation type.
func (ModulationType) ByteLength() int { return ModulationTypeLength }

// AntennaPattern holds the pattern-specific bytes of a Transmitter PDU. Its
// byte count is the Transmitter's antenna pattern length field.
type AntennaPattern struct {
	Fields []byte `json:"fields"`
}

// Serialize writes the antenna pattern.
func (a AntennaPattern) Serialize(w *disenc.Writer) { w.WriteBytes(a.Fields) }

// DeserializeWithLength reads exactly length bytes.
func (a *AntennaPattern) DeserializeWithLength(r *disenc.Reader, length int) error {
	a.Fields = r.ReadBytes(length)
	return r.Err()
}

// ByteLength returns the wire size of the antenna pattern.
func (a AntennaPattern) ByteLength() int { return len(a.Fields) }

// ModulationParameters holds the system-specific modulation bytes of a
// Transmitter PDU. Its byte count is the Transmitter's modulation parameter
// length field.
type ModulationParameters struct {
	Fields []byte `json:"fields"`
}

// Serialize writes the modulation parameters.
func (m ModulationParameters) Serialize(w *disenc.Writer) { w.WriteBytes(m.Fields) }

// DeserializeWithLength reads exactly length bytes.
func (m *ModulationParameters) DeserializeWithLength(r *disenc.Reader, length int) error {
	m.Fields = r.ReadBytes(length)
	return r.Err()
}

// ByteLength returns the wire size of the modulation parameters.
func (m ModulationParameters) ByteLength() int { return len(m.Fields) }

var (
	_ field.LengthDeserializer = (*AntennaPattern)(nil)
	_ field.LengthDeserializer = (*ModulationParameters)(nil)
)

// VariableTransmitterParameterHeaderLength covers the record type and length fields.
const VariableTransmitterParameterHeaderLength = 6

// VariableTransmitterParameter is a typed extension record of a Transmitter
// PDU. On the wire the record length counts the whole record, padded to a
// multiple of 8 bytes.
type VariableTransmitterParameter struct {
	RecordType uint32 `json:"record_type"`
	Fields     []byte `json:"fields"`
}

// Serialize writes the variable transmitter parameter.
func (v VariableTransmitterParameter) Serialize(w *disenc.Writer) {
	n := v.ByteLength()
	w.WriteUint32(v.RecordType)
	w.WriteUint16(uint16(n))
	w.WriteBytes(v.Fields)
	w.WriteZeros(n - VariableTransmitterParameterHeaderLength - len(v.Fields))
}

// Deserialize reads one record. Trailing padding is kept in Fields, so a
// decoded record re-encodes with the same length.
func (v *VariableTransmitterParameter) Deserialize(r *disenc.Reader) error {
	v.RecordType = r.ReadUint32()
	n := int(r.ReadUint16())
	if r.Err() != nil {
		return r.Err()
	}
	if n < VariableTransmitterParameterHeaderLength {
		r.Fail(fmt.Errorf("%w: variable transmitter parameter length %d", ErrInvalidLength, n))
		return r.Err()
	}
	v.Fields = r.ReadBytes(n - VariableTransmitterParameterHeaderLength)
	return r.Err()
}

// ByteLength returns the wire size of the variable transmitter parameter.
func (v VariableTransmitterParameter) ByteLength() int {
	n := VariableTransmitterParameterHeaderLength + len(v.Fields)
	return n + field.PaddingTo(n, 8)
}
