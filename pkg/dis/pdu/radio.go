package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
	"github.com/marmos91/opendis/pkg/dis/record"
)

var (
	kindTransmitter = Kind{enums.PDUTypeTransmitter, enums.ProtocolFamilyRadioCommunications}
	kindSignal      = Kind{enums.PDUTypeSignal, enums.ProtocolFamilyRadioCommunications}
	kindReceiver    = Kind{enums.PDUTypeReceiver, enums.ProtocolFamilyRadioCommunications}
)

// TransmitterBodyLength is the body size of a Transmitter with no antenna
// pattern, modulation parameters or variable transmitter parameters.
const TransmitterBodyLength = record.EntityIDLength + 2 + record.RadioEntityTypeLength + 4 +
	record.Vector3DoubleLength + record.Vector3FloatLength + 4 + 8 + 4 + 4 +
	record.ModulationTypeLength + 4 + 4

// Transmitter describes the state of a radio transmitter.
type Transmitter struct {
	Base
	EntityID                record.EntityID                       `json:"entity_id"`
	RadioID                 uint16                                `json:"radio_id"`
	RadioType               record.RadioEntityType                `json:"radio_type"`
	TransmitState           enums.TransmitState                   `json:"transmit_state"`
	InputSource             enums.InputSource                     `json:"input_source"`
	AntennaLocation         record.WorldCoordinate                `json:"antenna_location"`
	RelativeAntennaLocation record.EntityCoordinateVector         `json:"relative_antenna_location"`
	AntennaPatternType      enums.AntennaPatternType              `json:"antenna_pattern_type"`
	Frequency               uint64                                `json:"frequency"`
	Bandwidth               float32                               `json:"bandwidth"`
	Power                   float32                               `json:"power"`
	ModulationType          record.ModulationType                 `json:"modulation_type"`
	CryptoSystem            enums.CryptoSystem                    `json:"crypto_system"`
	CryptoKeyID             uint16                                `json:"crypto_key_id"`
	ModulationParameters    *record.ModulationParameters          `json:"modulation_parameters,omitempty"`
	AntennaPattern          *record.AntennaPattern                `json:"antenna_pattern,omitempty"`
	VariableParameters      []record.VariableTransmitterParameter `json:"variable_parameters,omitempty"`
}

// NewTransmitter returns a Transmitter PDU with a fresh header.
func NewTransmitter() *Transmitter { return &Transmitter{Base: newBase(kindTransmitter)} }

// Kind implements PDU.
func (p *Transmitter) Kind() Kind { return kindTransmitter }

// Validate checks that collection counts fit their wire fields.
func (p *Transmitter) Validate() error {
	if n := field.OptionalLength(p.ModulationParameters); n > 0xff {
		return invalidField("transmitter: modulation parameters %d bytes, max 255", n)
	}
	if n := field.OptionalLength(p.AntennaPattern); n > 0xffff {
		return invalidField("transmitter: antenna pattern %d bytes, max 65535", n)
	}
	if n := len(p.VariableParameters); n > 0xffff {
		return invalidField("transmitter: %d variable transmitter parameters, max 65535", n)
	}
	return nil
}

// SerializeBody writes the transmitter body in wire order.
func (p *Transmitter) SerializeBody(w *disenc.Writer) {
	p.EntityID.Serialize(w)
	w.WriteUint16(p.RadioID)
	p.RadioType.Serialize(w)
	w.WriteUint8(uint8(p.TransmitState))
	w.WriteUint8(uint8(p.InputSource))
	w.WriteUint16(uint16(len(p.VariableParameters)))
	p.AntennaLocation.Serialize(w)
	p.RelativeAntennaLocation.Serialize(w)
	w.WriteUint16(uint16(p.AntennaPatternType))
	w.WriteUint16(uint16(field.OptionalLength(p.AntennaPattern)))
	w.WriteUint64(p.Frequency)
	w.WriteFloat32(p.Bandwidth)
	w.WriteFloat32(p.Power)
	p.ModulationType.Serialize(w)
	w.WriteUint16(uint16(p.CryptoSystem))
	w.WriteUint16(p.CryptoKeyID)
	w.WriteUint8(uint8(field.OptionalLength(p.ModulationParameters)))
	w.WriteZeros(3)
	if p.ModulationParameters != nil {
		p.ModulationParameters.Serialize(w)
	}
	if p.AntennaPattern != nil {
		p.AntennaPattern.Serialize(w)
	}
	field.SerializeSlice(w, p.VariableParameters)
}

// DeserializeBody reads a transmitter body.
func (p *Transmitter) DeserializeBody(r *disenc.Reader) error {
	if err := p.EntityID.Deserialize(r); err != nil {
		return err
	}
	p.RadioID = r.ReadUint16()
	if err := p.RadioType.Deserialize(r); err != nil {
		return err
	}
	p.TransmitState = enums.DecodeTransmitState(r.ReadUint8())
	p.InputSource = enums.DecodeInputSource(r.ReadUint8())
	vtpCount := int(r.ReadUint16())
	if err := p.AntennaLocation.Deserialize(r); err != nil {
		return err
	}
	if err := p.RelativeAntennaLocation.Deserialize(r); err != nil {
		return err
	}
	p.AntennaPatternType = enums.DecodeAntennaPatternType(r.ReadUint16())
	patternLength := int(r.ReadUint16())
	p.Frequency = r.ReadUint64()
	p.Bandwidth = r.ReadFloat32()
	p.Power = r.ReadFloat32()
	if err := p.ModulationType.Deserialize(r); err != nil {
		return err
	}
	p.CryptoSystem = enums.DecodeCryptoSystem(r.ReadUint16())
	p.CryptoKeyID = r.ReadUint16()
	modulationLength := int(r.ReadUint8())
	r.Skip(3)

	var err error
	if p.ModulationParameters, err = field.DeserializeOptional[record.ModulationParameters](r, modulationLength); err != nil {
		return err
	}
	if p.AntennaPattern, err = field.DeserializeOptional[record.AntennaPattern](r, patternLength); err != nil {
		return err
	}
	p.VariableParameters, err = field.DeserializeSlice[record.VariableTransmitterParameter](r, vtpCount)
	return err
}

// BodyLength returns the encoded body size.
func (p *Transmitter) BodyLength() int {
	return TransmitterBodyLength +
		field.OptionalLength(p.ModulationParameters) +
		field.OptionalLength(p.AntennaPattern) +
		field.SliceLength(p.VariableParameters)
}

// encodingLayout splits the Signal encoding scheme: the top two bits are the
// encoding class, the rest the type or the number of TDL messages.
var encodingLayout = field.NewLayout(16,
	field.Bits{Name: "class", Width: 2},
	field.Bits{Name: "type", Width: 14},
)

// EncodingScheme is the 16-bit Signal encoding scheme word.
type EncodingScheme uint16

// NewEncodingScheme joins an encoding class and a type.
func NewEncodingScheme(class enums.SignalEncodingClass, typ enums.SignalEncodingType) EncodingScheme {
	return EncodingScheme(encodingLayout.Pack(uint64(class), uint64(typ)))
}

func (e EncodingScheme) Class() enums.SignalEncodingClass {
	return enums.DecodeSignalEncodingClass(uint16(encodingLayout.Get(uint64(e), 0)))
}

// Type returns the encoding type. For raw binary and application-specific
// data this is the number of TDL messages instead.
func (e EncodingScheme) Type() enums.SignalEncodingType {
	return enums.DecodeSignalEncodingType(uint16(encodingLayout.Get(uint64(e), 1)))
}

// Raw14 returns the low 14 bits undecoded.
func (e EncodingScheme) Raw14() uint16 { return uint16(encodingLayout.Get(uint64(e), 1)) }

// SignalBodyLength is the body size of a Signal with no data.
const SignalBodyLength = record.EntityIDLength + 2 + 2 + 2 + 4 + 2 + 2

// Signal carries encoded audio or digital data from a transmitter.
type Signal struct {
	Base
	EntityID       record.EntityID     `json:"entity_id"`
	RadioID        uint16              `json:"radio_id"`
	EncodingScheme EncodingScheme      `json:"encoding_scheme"`
	TDLType        enums.SignalTDLType `json:"tdl_type"`
	SampleRate     uint32              `json:"sample_rate"`
	DataLengthBits uint16              `json:"data_length_bits"`
	Samples        uint16              `json:"samples"`
	Data           []byte              `json:"data,omitempty"`
}

// NewSignal returns a Signal PDU with a fresh header.
func NewSignal() *Signal { return &Signal{Base: newBase(kindSignal)} }

// NewSignalData builds a Signal whose data length is the full byte length
// of data.
func NewSignalData(scheme EncodingScheme, data []byte) *Signal {
	s := NewSignal()
	s.EncodingScheme = scheme
	s.Data = data
	s.DataLengthBits = uint16(len(data) * 8)
	return s
}

// Kind implements PDU.
func (p *Signal) Kind() Kind { return kindSignal }

func (p *Signal) dataBytes() int { return (int(p.DataLengthBits) + 7) / 8 }

// Validate checks that collection counts fit their wire fields.
func (p *Signal) Validate() error {
	if len(p.Data) > p.dataBytes() {
		return invalidField("signal: %d data bytes for a %d-bit data length", len(p.Data), p.DataLengthBits)
	}
	return nil
}

// SerializeBody writes the signal body in wire order.
func (p *Signal) SerializeBody(w *disenc.Writer) {
	p.EntityID.Serialize(w)
	w.WriteUint16(p.RadioID)
	w.WriteUint16(uint16(p.EncodingScheme))
	w.WriteUint16(uint16(p.TDLType))
	w.WriteUint32(p.SampleRate)
	w.WriteUint16(p.DataLengthBits)
	w.WriteUint16(p.Samples)
	n := p.dataBytes()
	w.WriteFixed(p.Data, n)
	w.WriteZeros(field.PaddingTo(n, 4))
}

// DeserializeBody reads the data and skips its padding to the next 32-bit
// boundary.
func (p *Signal) DeserializeBody(r *disenc.Reader) error {
	if err := p.EntityID.Deserialize(r); err != nil {
		return err
	}
	p.RadioID = r.ReadUint16()
	p.EncodingScheme = EncodingScheme(r.ReadUint16())
	p.TDLType = enums.DecodeSignalTDLType(r.ReadUint16())
	p.SampleRate = r.ReadUint32()
	p.DataLengthBits = r.ReadUint16()
	p.Samples = r.ReadUint16()
	n := p.dataBytes()
	p.Data = r.ReadBytes(n)
	r.Skip(field.PaddingTo(n, 4))
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *Signal) BodyLength() int {
	n := p.dataBytes()
	return SignalBodyLength + n + field.PaddingTo(n, 4)
}

// ReceiverBodyLength is the body size of a Receiver.
const ReceiverBodyLength = record.EntityIDLength + 2 + 2 + 2 + 4 + record.EntityIDLength + 2

// Receiver describes the state of a radio receiver.
type Receiver struct {
	Base
	EntityID            record.EntityID     `json:"entity_id"`
	RadioID             uint16              `json:"radio_id"`
	State               enums.ReceiverState `json:"state"`
	ReceivedPower       float32             `json:"received_power"`
	TransmitterEntityID record.EntityID     `json:"transmitter_entity_id"`
	TransmitterRadioID  uint16              `json:"transmitter_radio_id"`
}

// NewReceiver returns a Receiver PDU with a fresh header.
func NewReceiver() *Receiver { return &Receiver{Base: newBase(kindReceiver)} }

// Kind implements PDU.
func (p *Receiver) Kind() Kind { return kindReceiver }

// SerializeBody writes the receiver body in wire order.
func (p *Receiver) SerializeBody(w *disenc.Writer) {
	p.EntityID.Serialize(w)
	w.WriteUint16(p.RadioID)
	w.WriteUint16(uint16(p.State))
	w.WriteUint16(0)
	w.WriteFloat32(p.ReceivedPower)
	p.TransmitterEntityID.Serialize(w)
	w.WriteUint16(p.TransmitterRadioID)
}

// DeserializeBody reads a receiver body.
func (p *Receiver) DeserializeBody(r *disenc.Reader) error {
	if err := p.EntityID.Deserialize(r); err != nil {
		return err
	}
	p.RadioID = r.ReadUint16()
	p.State = enums.DecodeReceiverState(r.ReadUint16())
	r.Skip(2)
	p.ReceivedPower = r.ReadFloat32()
	if err := p.TransmitterEntityID.Deserialize(r); err != nil {
		return err
	}
	p.TransmitterRadioID = r.ReadUint16()
	return r.Err()
}

// BodyLength returns the encoded body size.
func (p *Receiver) BodyLength() int { return ReceiverBodyLength }
