package record

import (
	"testing"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, f field.Serializer, size int) []byte {
	t.Helper()
	w := disenc.NewWriter(size)
	f.Serialize(w)
	require.NoError(t, w.Err())
	return w.Bytes()
}

// roundTrip encodes in, checks the length law and decodes into out.
func roundTrip[T any, P interface {
	*T
	field.Field
}](t *testing.T, in T) T {
	t.Helper()
	n := P(&in).ByteLength()
	b := encode(t, P(&in), n)
	require.Len(t, b, n, "ByteLength must match serialized size")

	var out T
	r := disenc.NewReader(b)
	require.NoError(t, P(&out).Deserialize(r))
	assert.Equal(t, 0, r.Remaining(), "decode must consume every byte")
	return out
}

func TestEntityIDWire(t *testing.T) {
	id := NewEntityID(1, 1, 42)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x2a}, encode(t, id, EntityIDLength))
	assert.Equal(t, id, roundTrip(t, id))
	assert.Equal(t, "1:1:42", id.String())
	assert.Equal(t, SimulationAddressLength+2, id.ByteLength())
}

func TestEventIDRoundTrip(t *testing.T) {
	ev := EventID{SimulationAddress: SimulationAddress{Site: 7, Application: 8}, EventNumber: 9}
	assert.Equal(t, []byte{0, 7, 0, 8, 0, 9}, encode(t, ev, EventIDLength))
	assert.Equal(t, ev, roundTrip(t, ev))
}

func TestAngularVelocityWire(t *testing.T) {
	v := AngularVelocity{X: 1.0, Y: -2.5, Z: 0.0}
	want := []byte{
		0x3f, 0x80, 0x00, 0x00,
		0xc0, 0x20, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, encode(t, v, Vector3FloatLength))
	assert.Equal(t, v, roundTrip(t, v))
}

func TestWorldCoordinateRoundTrip(t *testing.T) {
	c := WorldCoordinate{X: 4_000_000.5, Y: -1.25, Z: 6_371_000}
	b := encode(t, c, Vector3DoubleLength)
	assert.Len(t, b, 24)
	assert.Equal(t, c, roundTrip(t, c))
}

func TestEntityTypeWire(t *testing.T) {
	et := EntityType{Kind: enums.EntityKindPlatform, Domain: 1, Country: 225, Category: 1, Subcategory: 1, Specific: 3}
	assert.Equal(t, []byte{1, 1, 0x00, 0xe1, 1, 1, 3, 0}, encode(t, et, EntityTypeLength))
	assert.Equal(t, et, roundTrip(t, et))
	assert.Equal(t, enums.CountryUnitedStates, et.CountryCode())
	assert.Equal(t, enums.PlatformDomainLand, et.PlatformDomain())
	assert.Equal(t, "1.1.225.1.1.3.0", et.String())

	// Unlisted countries survive a round trip.
	et.Country = 1
	assert.Equal(t, uint16(1), roundTrip(t, et).Country)
	assert.Equal(t, enums.CountryOther, et.CountryCode())
}

func TestEntityTypeUnknownKindFallsBack(t *testing.T) {
	var et EntityType
	require.NoError(t, et.Deserialize(disenc.NewReader([]byte{99, 0, 0, 0, 0, 0, 0, 0})))
	assert.Equal(t, enums.EntityKindOther, et.Kind)
}

func TestMunitionDescriptorLength(t *testing.T) {
	m := MunitionDescriptor{
		MunitionType: EntityType{Kind: enums.EntityKindMunition, Domain: 2},
		Warhead:      1000,
		Fuse:         100,
		Quantity:     1,
		Rate:         0,
	}
	assert.Equal(t, 16, MunitionDescriptorLength)
	assert.Equal(t, m, roundTrip(t, m))
}

func TestClockTime(t *testing.T) {
	c := ClockTime{Hour: 475_000, TimePastHour: 0x80000001}
	assert.Equal(t, []byte{0x00, 0x07, 0x3f, 0x78, 0x80, 0x00, 0x00, 0x01}, encode(t, c, ClockTimeLength))
	assert.Equal(t, c, roundTrip(t, c))
}

func TestEntityMarking(t *testing.T) {
	m := NewEntityMarking("TANK01")
	b := encode(t, m, EntityMarkingLength)
	assert.Equal(t, []byte{1, 'T', 'A', 'N', 'K', '0', '1', 0, 0, 0, 0, 0}, b)
	assert.Equal(t, "TANK01", roundTrip(t, m).String())

	long := NewEntityMarking("ABCDEFGHIJKLMNOP")
	assert.Equal(t, "ABCDEFGHIJK", long.String())
}

func TestDeadReckoningParameters(t *testing.T) {
	d := DeadReckoningParameters{
		Algorithm:          enums.DeadReckoningDRMRVW,
		LinearAcceleration: LinearAcceleration{X: 1},
		AngularVelocity:    AngularVelocity{Z: 0.5},
	}
	d.OtherParameters[0] = 0xaa
	assert.Equal(t, 40, DeadReckoningParametersLength)

	b := encode(t, d, DeadReckoningParametersLength)
	assert.Equal(t, byte(4), b[0])
	assert.Equal(t, byte(0xaa), b[1])
	assert.Equal(t, d, roundTrip(t, d))
}

func TestArticulatedPart(t *testing.T) {
	part := ArticulatedPart{ChangeIndicator: 2, AttachedTo: 0, ParameterType: 4107, Value: 1.5}
	p := part.Parameter()

	want := []byte{
		0x00,
		0x02,
		0x00, 0x00,
		0x00, 0x00, 0x10, 0x0b,
		0x3f, 0xc0, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, encode(t, p, VariableParameterLength))

	got, ok := roundTrip(t, p).ArticulatedPart()
	require.True(t, ok)
	assert.Equal(t, part, got)

	_, ok = p.AttachedPart()
	assert.False(t, ok)
}

func TestAttachedPart(t *testing.T) {
	part := AttachedPart{
		DetachedIndicator: 1,
		AttachedTo:        3,
		ParameterType:     896,
		PartType:          EntityType{Kind: enums.EntityKindMunition, Domain: 2, Country: 225},
	}
	got, ok := roundTrip(t, part.Parameter()).AttachedPart()
	require.True(t, ok)
	assert.Equal(t, part, got)
}

func TestVariableParameterKeepsUnknownType(t *testing.T) {
	p := VariableParameter{RecordType: 9}
	assert.Equal(t, enums.VariableParameterRecordType(9), roundTrip(t, p).RecordType)
}

func TestVariableDatumPadding(t *testing.T) {
	tests := []struct {
		bits    uint32
		payload int
		padded  int
	}{
		{0, 0, 0},
		{1, 1, 8},
		{8, 1, 8},
		{64, 8, 8},
		{65, 9, 16},
		{100, 13, 16},
		{128, 16, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.payload, ValueBytes(tt.bits), "payload for %d bits", tt.bits)
		assert.Equal(t, tt.padded, PaddedValueBytes(tt.bits), "padded for %d bits", tt.bits)
	}
}

func TestVariableDatum100Bits(t *testing.T) {
	value := make([]byte, 13)
	for i := range value {
		value[i] = byte(i + 1)
	}
	d := VariableDatumRecord{DatumID: 0x0000ea60, LengthBits: 100, Value: value}

	b := encode(t, d, d.ByteLength())
	require.Len(t, b, 8+16)
	assert.Equal(t, []byte{0x00, 0x00, 0xea, 0x60, 0x00, 0x00, 0x00, 0x64}, b[:8])
	assert.Equal(t, value, b[8:21])
	assert.Equal(t, []byte{0, 0, 0}, b[21:], "pad to 64-bit boundary")
	assert.Zero(t, len(b)%8)

	assert.Equal(t, d, roundTrip(t, d))
}

func TestVariableDatumShortValueIsZeroFilled(t *testing.T) {
	d := VariableDatumRecord{DatumID: 1, LengthBits: 24, Value: []byte{0xff}}
	b := encode(t, d, d.ByteLength())
	assert.Equal(t, []byte{0xff, 0, 0, 0, 0, 0, 0, 0}, b[8:])
}

func TestNewVariableDatum(t *testing.T) {
	d := NewVariableDatum(5, []byte("abc"))
	assert.Equal(t, uint32(24), d.LengthBits)
	assert.Equal(t, 16, d.ByteLength())
}

func TestDatumSpecification(t *testing.T) {
	spec := DatumSpecification{
		FixedDatums:    []FixedDatumRecord{{DatumID: 1, Value: 2}},
		VariableDatums: []VariableDatumRecord{NewVariableDatum(3, []byte{9})},
	}
	b := encode(t, spec, spec.ByteLength())
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 1}, b[:8])
	assert.Len(t, b, 8+8+16)
	assert.Equal(t, spec, roundTrip(t, spec))

	empty := roundTrip(t, DatumSpecification{})
	assert.Nil(t, empty.FixedDatums)
	assert.Nil(t, empty.VariableDatums)
}

func TestDatumSpecificationTruncated(t *testing.T) {
	var spec DatumSpecification
	err := spec.Deserialize(disenc.NewReader([]byte{0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 1}))
	assert.ErrorIs(t, err, disenc.ErrShortRead)
}

func TestRecordSpecification(t *testing.T) {
	spec := RecordSpecification{RecordSets: []RecordSpecificationElement{{
		RecordID:     240000,
		SerialNumber: 1,
		RecordLength: 4,
		RecordCount:  2,
		Values:       []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}}}
	b := encode(t, spec, spec.ByteLength())
	assert.Len(t, b, 4+12+8)
	assert.Equal(t, spec, roundTrip(t, spec))
}

func TestStandardVariableRecord(t *testing.T) {
	rec := StandardVariableRecord{RecordType: 3000, Fields: []byte{1, 2}}
	assert.Equal(t, []byte{0x00, 0x00, 0x0b, 0xb8, 0x00, 0x08, 1, 2}, encode(t, rec, rec.ByteLength()))

	spec := StandardVariableSpecification{Records: []StandardVariableRecord{rec, {RecordType: 1}}}
	assert.Equal(t, 2+8+6, spec.ByteLength())
	assert.Equal(t, spec, roundTrip(t, spec))
}

func TestStandardVariableRecordBadLength(t *testing.T) {
	var rec StandardVariableRecord
	err := rec.Deserialize(disenc.NewReader([]byte{0, 0, 0, 1, 0, 2}))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestVariableTransmitterParameter(t *testing.T) {
	v := VariableTransmitterParameter{RecordType: 3000, Fields: []byte{0xaa, 0xbb, 0xcc}}
	assert.Equal(t, 16, v.ByteLength())

	b := encode(t, v, v.ByteLength())
	assert.Equal(t, []byte{0x00, 0x00, 0x0b, 0xb8, 0x00, 0x10, 0xaa, 0xbb, 0xcc}, b[:9])
	assert.Equal(t, make([]byte, 7), b[9:])

	// Padding comes back as part of Fields, so the length is stable.
	got := roundTrip(t, v)
	assert.Equal(t, v.RecordType, got.RecordType)
	assert.Equal(t, v.ByteLength(), got.ByteLength())
	assert.Equal(t, b, encode(t, got, got.ByteLength()))
}

func TestAntennaPatternZeroLengthIsAbsent(t *testing.T) {
	r := disenc.NewReader([]byte{0x01, 0x02})

	pattern, err := field.DeserializeOptional[AntennaPattern](r, 0)
	require.NoError(t, err)
	assert.Nil(t, pattern)

	params, err := field.DeserializeOptional[ModulationParameters](r, 0)
	require.NoError(t, err)
	assert.Nil(t, params)
	assert.Equal(t, 0, r.Position())

	params, err = field.DeserializeOptional[ModulationParameters](r, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, params.Fields)
}

func TestModulationType(t *testing.T) {
	m := ModulationType{Major: enums.MajorModulationAngle, Detail: 1, RadioSystem: enums.RadioSystemGeneric}
	assert.Equal(t, []byte{0, 0, 0, 3, 0, 1, 0, 1}, encode(t, m, ModulationTypeLength))
	assert.Equal(t, m, roundTrip(t, m))
}

func TestGridAxisRegular(t *testing.T) {
	g := GridAxisDescriptor{DomainInitial: 0, DomainFinal: 100, DomainPoints: 11, InterleafFactor: 1, PointsOnAxis: 11}
	b := encode(t, g, g.ByteLength())
	require.Len(t, b, 24)
	assert.Equal(t, byte(0), b[19], "axis type regular")
	assert.Equal(t, g, roundTrip(t, g))
}

func TestGridAxisIrregular(t *testing.T) {
	g := GridAxisDescriptor{
		DomainFinal:  10,
		DomainPoints: 3,
		PointsOnAxis: 3,
		Irregular:    &IrregularAxis{Scale: 0.5, Offset: 1, XValues: []uint16{0, 4, 20}},
	}
	// 40 bytes of prefix, 6 bytes of samples, 2 bytes to the 32-bit boundary.
	assert.Equal(t, 48, g.ByteLength())
	b := encode(t, g, g.ByteLength())
	assert.Equal(t, byte(1), b[19])
	assert.Equal(t, []byte{0, 0}, b[46:])

	got := roundTrip(t, g)
	assert.Equal(t, g, got)
	assert.Equal(t, []float64{1, 3, 11}, got.Irregular.Coordinates())
}

func TestGridAxisWithDeclaredLength(t *testing.T) {
	g := GridAxisDescriptor{
		PointsOnAxis: 2,
		Irregular:    &IrregularAxis{Scale: 1, XValues: []uint16{1, 2}},
	}
	b := encode(t, g, g.ByteLength())
	require.Len(t, b, 44)

	// The enclosing record declares four extra bytes of padding.
	b = append(b, 0, 0, 0, 0)
	var got GridAxisDescriptor
	r := disenc.NewReader(b)
	require.NoError(t, got.DeserializeWithLength(r, len(b)))
	assert.Equal(t, 0, r.Remaining())
	require.NotNil(t, got.Irregular.Padding)
	assert.Equal(t, 4, *got.Irregular.Padding)
	assert.Equal(t, len(b), got.ByteLength())

	short := disenc.NewReader(b)
	assert.ErrorIs(t, got.DeserializeWithLength(short, 10), ErrInvalidLength)
}

func TestGridDataRecordPadding(t *testing.T) {
	g := GridDataRecord{SampleType: 0x0102, DataRepresentation: 0, Values: []byte{0xaa, 0xbb, 0xcc}}
	assert.Equal(t, 12, g.ByteLength())
	b := encode(t, g, g.ByteLength())
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x03, 0xaa, 0xbb, 0xcc, 0, 0, 0}, b)
	assert.Equal(t, g, roundTrip(t, g))

	aligned := GridDataRecord{SampleType: 1, Values: []byte{1, 2}}
	assert.Equal(t, 8, aligned.ByteLength())
	assert.Equal(t, aligned, roundTrip(t, aligned))
}

func TestGridAxisHostilePointCount(t *testing.T) {
	g := GridAxisDescriptor{Irregular: &IrregularAxis{}}
	b := encode(t, g, g.ByteLength())
	b[20], b[21] = 0xff, 0xff

	var got GridAxisDescriptor
	assert.ErrorIs(t, got.Deserialize(disenc.NewReader(b)), disenc.ErrShortRead)
}
