package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/record"
	"github.com/marmos91/opendis/pkg/dis/timestamp"
)

func roundTrip[T any, P interface {
	*T
	PDU
}](t *testing.T, p P) P {
	t.Helper()
	b, err := Marshal(p)
	require.NoError(t, err)
	require.Len(t, b, int(p.PDUHeader().Length))
	got := P(new(T))
	require.NoError(t, DecodeInto(b, got))
	assert.Equal(t, p, got)
	return got
}

func TestFixedBodyLengths(t *testing.T) {
	tests := []struct {
		pdu   PDU
		total int
	}{
		{NewEntityState(), 144},
		{NewFire(), 96},
		{NewDetonation(), 104},
		{NewCollision(), 60},
		{NewEntityStateUpdate(), 72},
		{NewGriddedData(), 64},
		{NewCreateEntity(), 28},
		{NewRemoveEntity(), 28},
		{NewStartResume(), 44},
		{NewStopFreeze(), 40},
		{NewAcknowledge(), 32},
		{NewActionRequest(), 40},
		{NewActionResponse(), 40},
		{NewDataQuery(), 40},
		{NewSetData(), 40},
		{NewData(), 40},
		{NewEventReport(), 40},
		{NewComment(), 32},
		{NewRecordReliable(), 40},
		{NewSetRecordReliable(), 40},
		{NewTransmitter(), 104},
		{NewSignal(), 32},
		{NewReceiver(), 36},
	}
	for _, tt := range tests {
		t.Run(DefaultRegistry.Name(tt.pdu.Kind()), func(t *testing.T) {
			assert.Equal(t, tt.total, Length(tt.pdu))
		})
	}
}

func TestFireAndDetonation(t *testing.T) {
	f := NewFire()
	f.FiringEntityID = record.NewEntityID(1, 1, 1)
	f.TargetEntityID = record.NewEntityID(1, 1, 2)
	f.MunitionID = record.NewEntityID(1, 1, 3)
	f.EventID = record.EventID{SimulationAddress: record.SimulationAddress{Site: 1, Application: 1}, EventNumber: 7}
	f.Descriptor = record.MunitionDescriptor{MunitionType: record.EntityType{Kind: enums.EntityKindMunition, Country: 225}, Quantity: 1, Rate: 0}
	f.Range = 1500
	roundTrip(t, f)

	d := NewDetonation()
	d.Result = enums.DetonationResultEntityImpact
	d.VariableParameters = []record.VariableParameter{record.ArticulatedPart{ParameterType: 1, Value: 2}.Parameter()}
	got := roundTrip(t, d)
	assert.Len(t, got.VariableParameters, 1)
}

func TestCollision(t *testing.T) {
	c := NewCollision()
	c.CollisionType = enums.CollisionElastic
	c.Mass = 1200
	c.Velocity = record.LinearVelocity{X: 3}
	roundTrip(t, c)
}

func TestEntityStateUpdate(t *testing.T) {
	p := NewEntityStateUpdate()
	p.EntityID = record.NewEntityID(3, 4, 5)
	p.Appearance = 0x12345678
	roundTrip(t, p)
}

func TestGriddedDataTrailingRecords(t *testing.T) {
	p := NewGriddedData()
	p.EnvironmentalSimulationID = record.NewEntityID(1, 2, 3)
	p.PDUTotal = 1
	p.TotalValues = 5
	p.VectorDimension = 1
	p.Axes = []record.GridAxisDescriptor{
		{DomainFinal: 100, DomainPoints: 11, PointsOnAxis: 11},
		{DomainFinal: 10, DomainPoints: 3, PointsOnAxis: 3, Irregular: &record.IrregularAxis{Scale: 1, XValues: []uint16{0, 1, 5}}},
	}
	p.Data = []record.GridDataRecord{
		{SampleType: 1, Values: []byte{1, 2, 3}},
		{SampleType: 2, DataRepresentation: 1, Values: []byte{4, 5}},
	}
	assert.Equal(t, GriddedDataBodyLength+24+48+12+8, p.BodyLength())
	got := roundTrip(t, p)
	require.Len(t, got.Data, 2)
	assert.Equal(t, []byte{4, 5}, got.Data[1].Values)

	b, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, byte(2), b[HeaderSize+14], "axis count")

	// A fragment shorter than a record header cannot be a grid data record.
	b = append(b, 0, 7)
	b[8], b[9] = byte(len(b)>>8), byte(len(b))
	_, err = Decode(b)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSimulationManagement(t *testing.T) {
	now := timestamp.Timestamp(0x80000001)

	sr := NewStartResume()
	sr.RealWorldTime = record.ClockTime{Hour: 470000, TimePastHour: now}
	sr.SimulationTime = record.ClockTime{Hour: 1}
	sr.RequestID = 5
	roundTrip(t, sr)

	sf := NewStopFreeze()
	sf.Reason = enums.StopFreezeRecess
	sf.FrozenBehavior = FrozenBehavior{RunSimulationClock: true, ProcessUpdates: true}
	got := roundTrip(t, sf)
	assert.True(t, got.FrozenBehavior.RunSimulationClock)

	ar := NewActionRequest()
	ar.ActionID = 3
	ar.Datums.FixedDatums = []record.FixedDatumRecord{{DatumID: 1, Value: 2}}
	roundTrip(t, ar)

	resp := NewActionResponse()
	resp.RequestStatus = enums.RequestStatus(999)
	gotResp := roundTrip(t, resp)
	assert.Equal(t, enums.RequestStatusOther, gotResp.RequestStatus)

	dq := NewDataQuery()
	dq.TimeInterval = 1000
	dq.FixedDatumIDs = []uint32{1, 2}
	dq.VariableDatumIDs = []uint32{3}
	roundTrip(t, dq)
	assert.Equal(t, 40+12, Length(dq))

	sd := NewSetData()
	sd.Datums.VariableDatums = []record.VariableDatumRecord{{DatumID: 10, LengthBits: 100, Value: make([]byte, 13)}}
	roundTrip(t, sd)
	assert.Equal(t, 40+8+16, Length(sd))

	er := NewEventReport()
	er.EventType = enums.EventType(2)
	roundTrip(t, er)

	c := NewTextComment(42, "hello")
	gotComment := roundTrip(t, c)
	assert.Equal(t, []byte("hello"), gotComment.Datums.VariableDatums[0].Value)

	roundTrip(t, NewData())
}

func TestResponseFlagUnknownFallsBack(t *testing.T) {
	ack := NewAcknowledge()
	b, err := Marshal(ack)
	require.NoError(t, err)
	b[26], b[27] = 0x01, 0x00

	got := new(Acknowledge)
	require.NoError(t, DecodeInto(b, got))
	assert.Equal(t, enums.ResponseOther, got.ResponseFlag)
}

func TestDataQueryHostileCount(t *testing.T) {
	b, err := Marshal(NewDataQuery())
	require.NoError(t, err)
	b[32], b[33], b[34], b[35] = 0x7f, 0xff, 0xff, 0xff

	_, err = Decode(b)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestFrozenBehaviorBits(t *testing.T) {
	assert.Equal(t, uint8(0x01), FrozenBehavior{RunSimulationClock: true}.Byte())
	assert.Equal(t, uint8(0x02), FrozenBehavior{TransmitUpdates: true}.Byte())
	assert.Equal(t, uint8(0x04), FrozenBehavior{ProcessUpdates: true}.Byte())
	assert.Equal(t, FrozenBehavior{RunSimulationClock: true, ProcessUpdates: true}, DecodeFrozenBehavior(0xf5))
}

func TestReliablePDUs(t *testing.T) {
	rr := NewRecordReliable()
	rr.RequiredReliability = enums.ReliabilityUnacknowledged
	rr.ResponseSerialNumber = 77
	rr.Records.RecordSets = []record.RecordSpecificationElement{
		{RecordID: 1, SerialNumber: 2, RecordLength: 4, RecordCount: 2, Values: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	roundTrip(t, rr)
	assert.Equal(t, 40+20, Length(rr))

	srr := NewSetRecordReliable()
	srr.Records = rr.Records
	roundTrip(t, srr)
}

func TestTransmitter(t *testing.T) {
	p := NewTransmitter()
	p.RadioID = 1
	p.TransmitState = enums.TransmitState(2)
	p.Frequency = 243_000_000
	p.Power = 40
	p.AntennaPattern = &record.AntennaPattern{Fields: []byte{1, 2, 3, 4}}
	p.ModulationParameters = &record.ModulationParameters{Fields: []byte{9, 9}}
	p.VariableParameters = []record.VariableTransmitterParameter{{RecordType: 3000, Fields: []byte{1, 0}}}

	got := roundTrip(t, p)
	assert.Equal(t, 104+2+4+8, Length(got))

	p.AntennaPattern = nil
	p.ModulationParameters = nil
	got = roundTrip(t, p)
	assert.Nil(t, got.AntennaPattern)
	assert.Nil(t, got.ModulationParameters)

	p.ModulationParameters = &record.ModulationParameters{Fields: make([]byte, 256)}
	_, err := Marshal(p)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestSignal(t *testing.T) {
	scheme := NewEncodingScheme(enums.EncodingClassEncodedAudio, enums.SignalEncodingType(4))
	assert.Equal(t, EncodingScheme(0x0004), scheme)
	assert.Equal(t, enums.EncodingClassEncodedAudio, scheme.Class())

	p := NewSignalData(NewEncodingScheme(enums.SignalEncodingClass(1), 0), []byte{0xaa, 0xbb, 0xcc})
	p.SampleRate = 8000
	p.Samples = 3
	assert.Equal(t, EncodingScheme(0x4000), p.EncodingScheme)
	assert.Equal(t, 32+4, Length(p))

	b, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0x00}, b[len(b)-4:])
	roundTrip(t, p)
}

func TestReceiver(t *testing.T) {
	p := NewReceiver()
	p.State = enums.ReceiverState(1)
	p.ReceivedPower = -80
	p.TransmitterEntityID = record.NewEntityID(1, 2, 3)
	roundTrip(t, p)
}
