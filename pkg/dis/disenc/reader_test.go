package disenc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReader(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	assert.Equal(t, 0, r.Position())
	assert.Equal(t, 4, r.Remaining())
	assert.NoError(t, r.Err())

	empty := NewReader(nil)
	assert.Equal(t, 0, empty.Remaining())
}

func TestReaderBigEndian(t *testing.T) {
	data := []byte{
		0x7f,
		0x01, 0x02,
		0x01, 0x02, 0x03, 0x04,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	r := NewReader(data)

	assert.Equal(t, uint8(0x7f), r.ReadUint8())
	assert.Equal(t, uint16(0x0102), r.ReadUint16())
	assert.Equal(t, uint32(0x01020304), r.ReadUint32())
	assert.Equal(t, uint64(0x0102030405060708), r.ReadUint64())
	require.NoError(t, r.Err())
	assert.Equal(t, 15, r.Position())
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderSigned(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff, 0xfe, 0xff, 0xff, 0xff, 0xfd})
	assert.Equal(t, int8(-1), r.ReadInt8())
	assert.Equal(t, int16(-2), r.ReadInt16())
	assert.Equal(t, int32(-3), r.ReadInt32())
	require.NoError(t, r.Err())
}

func TestReaderFloats(t *testing.T) {
	w := NewWriter(12)
	w.WriteFloat32(1.5)
	w.WriteFloat64(-2.25)

	r := NewReader(w.Bytes())
	assert.Equal(t, float32(1.5), r.ReadFloat32())
	assert.Equal(t, -2.25, r.ReadFloat64())
	require.NoError(t, r.Err())

	nan := NewReader([]byte{0x7f, 0xc0, 0x00, 0x00})
	assert.True(t, math.IsNaN(float64(nan.ReadFloat32())))
}

func TestReaderShortReadAccumulates(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})

	assert.Equal(t, uint16(0x0102), r.ReadUint16())
	assert.Equal(t, uint32(0), r.ReadUint32())
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), ErrShortRead))

	// Later reads are no-ops and keep the first error.
	first := r.Err()
	assert.Equal(t, uint8(0), r.ReadUint8())
	assert.Equal(t, first, r.Err())
	assert.Equal(t, 2, r.Position())
}

func TestReaderBytesAndSkip(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee}
	r := NewReader(data)

	b := r.ReadBytes(2)
	assert.Equal(t, []byte{0xaa, 0xbb}, b)
	b[0] = 0x00
	assert.Equal(t, byte(0xaa), data[0], "ReadBytes must copy")

	r.Skip(1)
	var dst [2]byte
	r.ReadInto(dst[:])
	assert.Equal(t, [2]byte{0xdd, 0xee}, dst)
	require.NoError(t, r.Err())

	r.Skip(1)
	assert.ErrorIs(t, r.Err(), ErrShortRead)
}

func TestReaderNegativeLength(t *testing.T) {
	r := NewReader([]byte{0x01})
	assert.Nil(t, r.ReadBytes(-1))
	assert.ErrorIs(t, r.Err(), ErrNegativeLength)
}

func TestReaderSub(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	r.Skip(1)

	sub := r.Sub(3)
	require.NoError(t, r.Err())
	assert.Equal(t, 4, r.Position())
	assert.Equal(t, 3, sub.Remaining())

	assert.Equal(t, uint16(0x0203), sub.ReadUint16())
	assert.Equal(t, uint16(0), sub.ReadUint16())
	assert.ErrorIs(t, sub.Err(), ErrShortRead)

	// The parent is unaffected by errors inside the sub-reader.
	assert.NoError(t, r.Err())
	assert.Equal(t, uint8(0x05), r.ReadUint8())
}

func TestReaderSubShort(t *testing.T) {
	r := NewReader([]byte{0x01})
	sub := r.Sub(4)
	assert.ErrorIs(t, r.Err(), ErrShortRead)
	assert.ErrorIs(t, sub.Err(), ErrShortRead)
	assert.Equal(t, 0, sub.Remaining())
}

func TestReaderSkipRestAndFail(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	r.ReadUint8()
	assert.Equal(t, 2, r.SkipRest())
	assert.Equal(t, 0, r.Remaining())

	boom := errors.New("boom")
	r.Fail(boom)
	r.Fail(errors.New("second"))
	assert.Equal(t, boom, r.Err())
}

func TestReaderEnsureRemaining(t *testing.T) {
	r := NewReader([]byte{1, 2})
	r.EnsureRemaining(2)
	assert.NoError(t, r.Err())
	assert.Equal(t, 0, r.Position())

	r.EnsureRemaining(3)
	assert.ErrorIs(t, r.Err(), ErrShortRead)
}
