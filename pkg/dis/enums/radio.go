package enums

// TransmitState is the on/off state of a radio transmitter. [UID 164]
type TransmitState uint8

const (
	TransmitStateOff               TransmitState = 0
	TransmitStateOnNotTransmitting TransmitState = 1
	TransmitStateOnTransmitting    TransmitState = 2
)

var transmitStates = newCatalog("TransmitState", TransmitStateOff, map[TransmitState]string{
	TransmitStateOff:               "Off",
	TransmitStateOnNotTransmitting: "On but not transmitting",
	TransmitStateOnTransmitting:    "On and transmitting",
})

// DecodeTransmitState maps a wire value, Off when unknown.
func DecodeTransmitState(raw uint8) TransmitState { return transmitStates.decode(TransmitState(raw)) }

func (s TransmitState) String() string { return transmitStates.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s TransmitState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// InputSource identifies the crew station feeding a radio. [UID 165]
type InputSource uint8

const (
	InputSourceOther             InputSource = 0
	InputSourcePilot             InputSource = 1
	InputSourceCopilot           InputSource = 2
	InputSourceFirstOfficer      InputSource = 3
	InputSourceDriver            InputSource = 4
	InputSourceLoader            InputSource = 5
	InputSourceGunner            InputSource = 6
	InputSourceCommander         InputSource = 7
	InputSourceDigitalDataDevice InputSource = 8
	InputSourceIntercom          InputSource = 9
	InputSourceAudioJammer       InputSource = 10
)

var inputSources = newCatalog("InputSource", InputSourceOther, map[InputSource]string{
	InputSourceOther:             "Other",
	InputSourcePilot:             "Pilot",
	InputSourceCopilot:           "Copilot",
	InputSourceFirstOfficer:      "First Officer",
	InputSourceDriver:            "Driver",
	InputSourceLoader:            "Loader",
	InputSourceGunner:            "Gunner",
	InputSourceCommander:         "Commander",
	InputSourceDigitalDataDevice: "Digital Data Device",
	InputSourceIntercom:          "Intercom",
	InputSourceAudioJammer:       "Audio Jammer",
})

// DecodeInputSource maps a wire value, Other when unknown.
func DecodeInputSource(raw uint8) InputSource { return inputSources.decode(InputSource(raw)) }

func (s InputSource) String() string { return inputSources.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s InputSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// AntennaPatternType selects the layout of a Transmitter antenna pattern. [UID 167]
type AntennaPatternType uint16

const (
	AntennaPatternOmniDirectional   AntennaPatternType = 0
	AntennaPatternBeam              AntennaPatternType = 1
	AntennaPatternSphericalHarmonic AntennaPatternType = 2
)

var antennaPatternTypes = newCatalog("AntennaPatternType", AntennaPatternOmniDirectional, map[AntennaPatternType]string{
	AntennaPatternOmniDirectional:   "Isotropic (Spherical Radiation Pattern)",
	AntennaPatternBeam:              "Beam",
	AntennaPatternSphericalHarmonic: "Spherical harmonic",
})

// DecodeAntennaPatternType maps a wire value, omni-directional when unknown.
func DecodeAntennaPatternType(raw uint16) AntennaPatternType {
	return antennaPatternTypes.decode(AntennaPatternType(raw))
}

func (t AntennaPatternType) String() string { return antennaPatternTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t AntennaPatternType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MajorModulation is the major modulation field of a modulation type. [UID 155]
type MajorModulation uint16

const (
	MajorModulationOther             MajorModulation = 0
	MajorModulationAmplitude         MajorModulation = 1
	MajorModulationAmplitudeAndAngle MajorModulation = 2
	MajorModulationAngle             MajorModulation = 3
	MajorModulationCombination       MajorModulation = 4
	MajorModulationPulse             MajorModulation = 5
	MajorModulationUnmodulated       MajorModulation = 6
	MajorModulationCarrierPhaseShift MajorModulation = 7
	MajorModulationSATCOM            MajorModulation = 8
)

var majorModulations = newCatalog("MajorModulation", MajorModulationOther, map[MajorModulation]string{
	MajorModulationOther:             "No Statement",
	MajorModulationAmplitude:         "Amplitude",
	MajorModulationAmplitudeAndAngle: "Amplitude and Angle",
	MajorModulationAngle:             "Angle",
	MajorModulationCombination:       "Combination",
	MajorModulationPulse:             "Pulse",
	MajorModulationUnmodulated:       "Unmodulated",
	MajorModulationCarrierPhaseShift: "Carrier Phase Shift Modulation (CPSM)",
	MajorModulationSATCOM:            "SATCOM",
})

// DecodeMajorModulation maps a wire value, Other when unknown.
func DecodeMajorModulation(raw uint16) MajorModulation {
	return majorModulations.decode(MajorModulation(raw))
}

func (m MajorModulation) String() string { return majorModulations.name(m) }

// MarshalText implements encoding.TextMarshaler.
func (m MajorModulation) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// RadioSystem is the radio system field of a modulation type. [UID 163]
type RadioSystem uint16

const (
	RadioSystemOther              RadioSystem = 0
	RadioSystemGeneric            RadioSystem = 1
	RadioSystemHQ                 RadioSystem = 2
	RadioSystemHQII               RadioSystem = 3
	RadioSystemHQIIA              RadioSystem = 4
	RadioSystemSINCGARS           RadioSystem = 5
	RadioSystemCCTTSINCGARS       RadioSystem = 6
	RadioSystemEPLRS              RadioSystem = 7
	RadioSystemJTIDSMIDS          RadioSystem = 8
	RadioSystemLink11             RadioSystem = 9
	RadioSystemLink11B            RadioSystem = 10
	RadioSystemLBandSATCOM        RadioSystem = 11
	RadioSystemEnhancedSINCGARS73 RadioSystem = 12
	RadioSystemNavigationAid      RadioSystem = 13
)

var radioSystems = newCatalog("RadioSystem", RadioSystemOther, map[RadioSystem]string{
	RadioSystemOther:              "Other",
	RadioSystemGeneric:            "Generic Radio or Simple Intercom",
	RadioSystemHQ:                 "HAVE QUICK I",
	RadioSystemHQII:               "HAVE QUICK II",
	RadioSystemHQIIA:              "HAVE QUICK IIA",
	RadioSystemSINCGARS:           "SINCGARS",
	RadioSystemCCTTSINCGARS:       "CCTT SINCGARS",
	RadioSystemEPLRS:              "EPLRS (Enhanced Position Location Reporting System)",
	RadioSystemJTIDSMIDS:          "JTIDS/MIDS",
	RadioSystemLink11:             "Link 11",
	RadioSystemLink11B:            "Link 11B",
	RadioSystemLBandSATCOM:        "L-Band SATCOM",
	RadioSystemEnhancedSINCGARS73: "Enhanced SINCGARS 7.3",
	RadioSystemNavigationAid:      "Navigation Aid",
})

// DecodeRadioSystem maps a wire value, Other when unknown.
func DecodeRadioSystem(raw uint16) RadioSystem { return radioSystems.decode(RadioSystem(raw)) }

func (s RadioSystem) String() string { return radioSystems.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s RadioSystem) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// CryptoSystem names the encryption device of a transmitter. [UID 166]
type CryptoSystem uint16

const (
	CryptoSystemNone          CryptoSystem = 0
	CryptoSystemKY28          CryptoSystem = 1
	CryptoSystemKY58          CryptoSystem = 2
	CryptoSystemNSVE          CryptoSystem = 3
	CryptoSystemWSVE          CryptoSystem = 4
	CryptoSystemSINCGARSICOM  CryptoSystem = 5
	CryptoSystemKY75          CryptoSystem = 6
	CryptoSystemKY100         CryptoSystem = 7
	CryptoSystemKY57          CryptoSystem = 8
	CryptoSystemKYV5          CryptoSystem = 9
	CryptoSystemLink11KG40AP  CryptoSystem = 10
	CryptoSystemLink11BKG40AS CryptoSystem = 11
	CryptoSystemLink11KG40AR  CryptoSystem = 12
)

var cryptoSystems = newCatalog("CryptoSystem", CryptoSystemNone, map[CryptoSystem]string{
	CryptoSystemNone:          "No Encryption Device",
	CryptoSystemKY28:          "KY-28",
	CryptoSystemKY58:          "KY-58",
	CryptoSystemNSVE:          "Narrow Spectrum Secure Voice (NSVE)",
	CryptoSystemWSVE:          "Wide Spectrum Secure Voice (WSVE)",
	CryptoSystemSINCGARSICOM:  "SINCGARS ICOM",
	CryptoSystemKY75:          "KY-75",
	CryptoSystemKY100:         "KY-100",
	CryptoSystemKY57:          "KY-57",
	CryptoSystemKYV5:          "KYV-5",
	CryptoSystemLink11KG40AP:  "Link 11 KG-40A-P (NTDS)",
	CryptoSystemLink11BKG40AS: "Link 11B KG-40A-S",
	CryptoSystemLink11KG40AR:  "Link 11 KG-40AR",
})

// DecodeCryptoSystem maps a wire value, None when unknown.
func DecodeCryptoSystem(raw uint16) CryptoSystem { return cryptoSystems.decode(CryptoSystem(raw)) }

func (c CryptoSystem) String() string { return cryptoSystems.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c CryptoSystem) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ReceiverState is the state of a radio receiver. [UID 179]
type ReceiverState uint16

const (
	ReceiverStateOff            ReceiverState = 0
	ReceiverStateOnNotReceiving ReceiverState = 1
	ReceiverStateOnReceiving    ReceiverState = 2
)

var receiverStates = newCatalog("ReceiverState", ReceiverStateOff, map[ReceiverState]string{
	ReceiverStateOff:            "Off",
	ReceiverStateOnNotReceiving: "On but not receiving",
	ReceiverStateOnReceiving:    "On and receiving",
})

// DecodeReceiverState maps a wire value, Off when unknown.
func DecodeReceiverState(raw uint16) ReceiverState { return receiverStates.decode(ReceiverState(raw)) }

func (s ReceiverState) String() string { return receiverStates.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s ReceiverState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// SignalEncodingClass is the top two bits of a Signal PDU encoding scheme. [UID 270]
type SignalEncodingClass uint16

const (
	EncodingClassEncodedAudio            SignalEncodingClass = 0
	EncodingClassRawBinaryData           SignalEncodingClass = 1
	EncodingClassApplicationSpecificData SignalEncodingClass = 2
	EncodingClassDatabaseIndex           SignalEncodingClass = 3
)

var signalEncodingClasses = newCatalog("SignalEncodingClass", EncodingClassEncodedAudio, map[SignalEncodingClass]string{
	EncodingClassEncodedAudio:            "Encoded audio",
	EncodingClassRawBinaryData:           "Raw Binary Data",
	EncodingClassApplicationSpecificData: "Application-Specific Data",
	EncodingClassDatabaseIndex:           "Database index",
})

// DecodeSignalEncodingClass maps a two-bit class value.
func DecodeSignalEncodingClass(raw uint16) SignalEncodingClass {
	return signalEncodingClasses.decode(SignalEncodingClass(raw))
}

func (c SignalEncodingClass) String() string { return signalEncodingClasses.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c SignalEncodingClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// SignalEncodingType is the lower 14 bits of an encoded audio scheme. [UID 271]
type SignalEncodingType uint16

const (
	EncodingTypeOther                      SignalEncodingType = 0
	EncodingType8BitMuLaw                  SignalEncodingType = 1
	EncodingTypeCVSD                       SignalEncodingType = 2
	EncodingTypeADPCM                      SignalEncodingType = 3
	EncodingType16BitLinearPCMBigEndian    SignalEncodingType = 4
	EncodingType8BitLinearPCMUnsigned      SignalEncodingType = 5
	EncodingTypeVQ                         SignalEncodingType = 6
	EncodingTypeGSMFullRate                SignalEncodingType = 8
	EncodingTypeGSMHalfRate                SignalEncodingType = 9
	EncodingTypeSpeexNarrowBand            SignalEncodingType = 10
	EncodingType16BitLinearPCMLittleEndian SignalEncodingType = 100
)

var signalEncodingTypes = newCatalog("SignalEncodingType", EncodingTypeOther, map[SignalEncodingType]string{
	EncodingTypeOther:                      "Other",
	EncodingType8BitMuLaw:                  "8-bit mu-law (ITU-T G.711)",
	EncodingTypeCVSD:                       "CVSD (MIL-STD-188-113)",
	EncodingTypeADPCM:                      "ADPCM (ITU-T G.726)",
	EncodingType16BitLinearPCMBigEndian:    "16-bit Linear PCM 2's Complement, Big Endian",
	EncodingType8BitLinearPCMUnsigned:      "8-bit Linear PCM, Unsigned",
	EncodingTypeVQ:                         "VQ (Vector Quantization)",
	EncodingTypeGSMFullRate:                "GSM Full-Rate (ETSI 06.10)",
	EncodingTypeGSMHalfRate:                "GSM Half-Rate (ETSI 06.20)",
	EncodingTypeSpeexNarrowBand:            "Speex Narrow Band",
	EncodingType16BitLinearPCMLittleEndian: "16-bit Linear PCM 2's Complement, Little Endian",
})

// DecodeSignalEncodingType maps a wire value, Other when unknown.
func DecodeSignalEncodingType(raw uint16) SignalEncodingType {
	return signalEncodingTypes.decode(SignalEncodingType(raw))
}

func (t SignalEncodingType) String() string { return signalEncodingTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t SignalEncodingType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// SignalTDLType names the tactical data link carried by a Signal PDU. [UID 178]
type SignalTDLType uint16

const (
	TDLTypeOther                SignalTDLType = 0
	TDLTypePADIL                SignalTDLType = 1
	TDLTypeNATOLink1            SignalTDLType = 2
	TDLTypeATDL1                SignalTDLType = 3
	TDLTypeLink11B              SignalTDLType = 4
	TDLTypeSADL                 SignalTDLType = 5
	TDLTypeLink16JTIDSTADILJ    SignalTDLType = 6
	TDLTypeLink16JTIDSFDLTADILJ SignalTDLType = 7
	TDLTypeLink11               SignalTDLType = 8
	TDLTypeIJMS                 SignalTDLType = 9
	TDLTypeLink4A               SignalTDLType = 10
	TDLTypeLink4C               SignalTDLType = 11
)

var signalTDLTypes = newCatalog("SignalTDLType", TDLTypeOther, map[SignalTDLType]string{
	TDLTypeOther:                "Other",
	TDLTypePADIL:                "PADIL",
	TDLTypeNATOLink1:            "NATO Link-1",
	TDLTypeATDL1:                "ATDL-1",
	TDLTypeLink11B:              "Link 11B (TADIL B)",
	TDLTypeSADL:                 "Situational Awareness Data Link (SADL)",
	TDLTypeLink16JTIDSTADILJ:    "Link 16 Legacy Format (JTIDS/TADIL-J)",
	TDLTypeLink16JTIDSFDLTADILJ: "Link 16 Legacy Format (JTIDS/FDL/TADIL-J)",
	TDLTypeLink11:               "Link 11 (TADIL A)",
	TDLTypeIJMS:                 "IJMS",
	TDLTypeLink4A:               "Link 4A (TADIL C)",
	TDLTypeLink4C:               "Link 4C",
})

// DecodeSignalTDLType maps a wire value, Other when unknown.
func DecodeSignalTDLType(raw uint16) SignalTDLType { return signalTDLTypes.decode(SignalTDLType(raw)) }

func (t SignalTDLType) String() string { return signalTDLTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t SignalTDLType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
