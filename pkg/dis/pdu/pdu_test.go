package pdu

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/dis/appearance"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/header"
	"github.com/marmos91/opendis/pkg/dis/record"
	"github.com/marmos91/opendis/pkg/dis/timestamp"
)

func TestConstants(t *testing.T) {
	assert.True(t, ValidatePDUSize(1000))
	assert.True(t, ValidatePDUSize(MaxPDUSizeOctets))
	assert.False(t, ValidatePDUSize(MaxPDUSizeOctets+1))

	assert.Equal(t, HeaderSize+100, TotalPDUSize(100))
	assert.Equal(t, HeaderSize, TotalPDUSize(0))
	assert.Equal(t, MaxPDUSizeBits, MaxPDUSizeOctets*8)

	assert.True(t, ValidateMarkingLength(31))
	assert.True(t, ValidateMarkingLength(MaxEntityMarkingLength))
	assert.False(t, ValidateMarkingLength(MaxEntityMarkingLength+1))

	assert.True(t, IsValidProtocolVersion(5))
	assert.True(t, IsValidProtocolVersion(6))
	assert.True(t, IsValidProtocolVersion(7))
	assert.False(t, IsValidProtocolVersion(0))
	assert.False(t, IsValidProtocolVersion(255))
}

func TestAcknowledgeWire(t *testing.T) {
	p := NewAcknowledge()
	p.Header = header.NewAt(0, 0, 1, 0, 0)
	p.OriginatingID = record.NewEntityID(1, 2, 3)
	p.ReceivingID = record.NewEntityID(4, 5, 6)
	p.AcknowledgeFlag = enums.AcknowledgeStartResume
	p.ResponseFlag = enums.ResponseAbleToComply
	p.RequestID = 42

	b, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x07, 0x01, 0x0f, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x02, 0x00, 0x03,
		0x00, 0x04, 0x00, 0x05, 0x00, 0x06,
		0x00, 0x03, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x2a,
	}, b)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func newTestEntityState() *EntityState {
	p := NewEntityState()
	p.Header.Timestamp = timestamp.Absolute(time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC))
	p.EntityID = record.NewEntityID(1, 1, 42)
	p.ForceID = enums.ForceIDFriendly
	p.EntityType = record.EntityType{Kind: enums.EntityKindPlatform, Domain: 1, Country: 225, Category: 1, Subcategory: 1, Specific: 3}
	p.LinearVelocity = record.LinearVelocity{X: 10, Y: -2.5}
	p.Location = record.WorldCoordinate{X: 4.1e6, Y: 1.2e5, Z: 4.8e6}
	p.Orientation = record.EulerAngles{Psi: 1.5}
	p.Appearance = appearance.New(appearance.GeneralAppearance{Damage: appearance.DamageSlight}, appearance.LandAppearance{PowerPlantOn: true})
	p.DeadReckoning.Algorithm = enums.DeadReckoningDRMRVW
	p.Marking = record.NewEntityMarking("TANK01")
	p.Capabilities = appearance.Capabilities{FuelSupply: true}
	return p
}

func TestEntityStateRoundTrip(t *testing.T) {
	p := newTestEntityState()
	p.VariableParameters = []record.VariableParameter{
		record.ArticulatedPart{AttachedTo: 0, ParameterType: 4096 + 11, Value: 0.5}.Parameter(),
	}

	b, err := Marshal(p)
	require.NoError(t, err)
	require.Len(t, b, 144+16)
	assert.Equal(t, uint16(len(b)), p.Header.Length)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x2a, 0x01, 0x01}, b[12:20])

	got, err := Decode(b)
	require.NoError(t, err)
	es, ok := got.(*EntityState)
	require.True(t, ok)
	assert.Equal(t, p, es)
	assert.Equal(t, "TANK01", es.Marking.String())
	assert.True(t, es.Appearance.Land().PowerPlantOn)
}

func TestEntityStateArticulationBoundary(t *testing.T) {
	p := newTestEntityState()
	p.VariableParameters = make([]record.VariableParameter, MaxArticulationParams)
	for i := range p.VariableParameters {
		p.VariableParameters[i] = record.ArticulatedPart{ParameterType: uint32(i)}.Parameter()
	}
	b, err := Marshal(p)
	require.NoError(t, err)
	assert.Len(t, b, HeaderSize+EntityStateBodyLength+MaxArticulationParams*record.VariableParameterLength)

	got := new(EntityState)
	require.NoError(t, DecodeInto(b, got))
	assert.Equal(t, p, got)

	p.VariableParameters = append(p.VariableParameters, record.VariableParameter{})
	_, err = Marshal(p)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestDecodeRejectsTooManyVariableParameters(t *testing.T) {
	params := func() []record.VariableParameter {
		vp := make([]record.VariableParameter, MaxArticulationParams)
		for i := range vp {
			vp[i] = record.ArticulatedPart{ParameterType: uint32(i)}.Parameter()
		}
		return vp
	}
	tests := []struct {
		name    string
		pdu     func() PDU
		countAt int
	}{
		{"entity state", func() PDU {
			p := newTestEntityState()
			p.VariableParameters = params()
			return p
		}, HeaderSize + record.EntityIDLength + 1},
		{"entity state update", func() PDU {
			p := NewEntityStateUpdate()
			p.VariableParameters = params()
			return p
		}, HeaderSize + record.EntityIDLength + 1},
		{"detonation", func() PDU {
			p := NewDetonation()
			p.VariableParameters = params()
			return p
		}, HeaderSize + DetonationBodyLength - 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(tt.pdu())
			require.NoError(t, err)
			require.Equal(t, byte(MaxArticulationParams), b[tt.countAt])
			_, err = Decode(b)
			require.NoError(t, err)

			b = append(b, make([]byte, record.VariableParameterLength)...)
			b[tt.countAt] = MaxArticulationParams + 1
			b[8], b[9] = byte(len(b)>>8), byte(len(b))

			got, err := Decode(b)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrInvalidField)
			assert.ErrorIs(t, err, ErrFramingMismatch)
		})
	}
}

func TestUnlistedProtocolVersionRelaysUnchanged(t *testing.T) {
	b, err := Marshal(&Unknown{RawType: 200, RawFamily: 99, Body: []byte{1, 2, 3, 4}})
	require.NoError(t, err)
	b[0] = 9

	p, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, enums.ProtocolVersionOther, p.PDUHeader().Version())

	out, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, b, out)

	c, err := Marshal(NewComment())
	require.NoError(t, err)
	c[0] = 9
	p, err = Decode(c)
	require.NoError(t, err)
	out, err = Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, c, out)
}

func TestEveryRegisteredKindRoundTrips(t *testing.T) {
	for _, k := range DefaultRegistry.Kinds() {
		reg, ok := DefaultRegistry.Lookup(k)
		require.True(t, ok)
		t.Run(reg.Name, func(t *testing.T) {
			p := reg.New()
			b, err := Marshal(p)
			require.NoError(t, err)
			assert.Len(t, b, Length(p))
			assert.Equal(t, k.Type, enums.PDUType(b[2]))
			assert.Equal(t, k.Family, enums.ProtocolFamily(b[3]))

			got, err := Decode(b)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestRegistryContents(t *testing.T) {
	assert.Len(t, DefaultRegistry.Kinds(), 23)
	assert.Equal(t, "Transmitter", DefaultRegistry.Name(Kind{enums.PDUTypeTransmitter, enums.ProtocolFamilyRadioCommunications}))
	assert.Equal(t, "IFF", DefaultRegistry.Name(Kind{enums.PDUTypeIFF, enums.ProtocolFamilyDistributedEmissionRegeneration}))

	r := NewRegistry()
	assert.Empty(t, r.Kinds())
	b, err := Marshal(NewComment())
	require.NoError(t, err)
	p, err := r.Decode(b)
	require.NoError(t, err)
	assert.IsType(t, &Unknown{}, p)
}

func TestUnknownPDUIsKeptVerbatim(t *testing.T) {
	b := []byte{
		0x07, 0x02, 0xc8, 0x63, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00,
		0xde, 0xad, 0xbe, 0xef,
	}
	p, err := Decode(b)
	require.NoError(t, err)
	u, ok := p.(*Unknown)
	require.True(t, ok)
	assert.Equal(t, uint8(0xc8), u.RawType)
	assert.Equal(t, uint8(0x63), u.RawFamily)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, u.Body)
	assert.Equal(t, enums.PDUTypeOther, u.Header.PDUType)

	out, err := Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestSizeBoundary(t *testing.T) {
	p := &Unknown{RawType: 200, RawFamily: 99, Body: make([]byte, MaxPDUSizeOctets-HeaderSize)}
	b, err := Marshal(p)
	require.NoError(t, err)
	assert.Len(t, b, MaxPDUSizeOctets)

	p.Body = append(p.Body, 0)
	b, err = Marshal(p)
	assert.Nil(t, b)
	require.ErrorIs(t, err, ErrSizeExceeded)
	var se *SizeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, MaxPDUSizeOctets+1, se.Size)
	assert.False(t, errors.Is(err, ErrTruncated))
}

func TestDecodeFramingErrors(t *testing.T) {
	b, err := Marshal(NewTextComment(1, "hello"))
	require.NoError(t, err)
	require.Len(t, b, 48)

	t.Run("declared longer than buffer", func(t *testing.T) {
		_, err := Decode(b[:40])
		require.ErrorIs(t, err, ErrFramingMismatch)
		var fe *FramingError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, 48, fe.Declared)
		assert.Equal(t, 40, fe.Available)
	})

	t.Run("declared shorter than body", func(t *testing.T) {
		short := bytes.Clone(b[:40])
		short[9] = 40
		_, err := Decode(short)
		assert.ErrorIs(t, err, ErrFramingMismatch)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("trailing bytes inside declared length", func(t *testing.T) {
		long := append(bytes.Clone(b), 0, 0, 0, 0)
		long[9] = 52
		_, err := Decode(long)
		require.ErrorIs(t, err, ErrFramingMismatch)
		var fe *FramingError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, 48, fe.Consumed)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := Decode(b[:5])
		assert.ErrorIs(t, err, header.ErrInvalidHeader)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("length below header size", func(t *testing.T) {
		bad := bytes.Clone(b[:12])
		bad[8], bad[9] = 0, 4
		_, err := Decode(bad)
		assert.ErrorIs(t, err, ErrFramingMismatch)
	})
}

func TestDecodeIntoTypeMismatch(t *testing.T) {
	b, err := Marshal(NewCreateEntity())
	require.NoError(t, err)
	err = DecodeInto(b, NewRemoveEntity())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDecodeBody(t *testing.T) {
	src := NewRemoveEntity()
	src.RequestID = 9
	b, err := Marshal(src)
	require.NoError(t, err)

	h := src.Header
	got := new(RemoveEntity)
	require.NoError(t, DecodeBody(h, b[HeaderSize:], got))
	assert.Equal(t, uint32(9), got.RequestID)

	err = DecodeBody(h, b[HeaderSize:len(b)-1], got)
	assert.ErrorIs(t, err, ErrFramingMismatch)
}

func TestFrames(t *testing.T) {
	a, err := Marshal(NewCreateEntity())
	require.NoError(t, err)
	b, err := Marshal(NewTextComment(1, "hi"))
	require.NoError(t, err)

	buf := append(append(bytes.Clone(a), b...), 0x07, 0x01)
	frames, err := Frames(buf)
	require.Len(t, frames, 2)
	assert.Equal(t, a, frames[0])
	assert.Equal(t, b, frames[1])
	assert.ErrorIs(t, err, ErrFramingMismatch)

	frames, err = Frames(append(bytes.Clone(a), b...))
	require.NoError(t, err)
	assert.Len(t, frames, 2)
}
