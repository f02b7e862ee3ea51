package disenc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortRead is returned when there are insufficient bytes to complete a read.
var ErrShortRead = errors.New("disenc: short read")

// ErrNegativeLength is returned when a caller asks for a negative byte count.
var ErrNegativeLength = errors.New("disenc: negative length")

// Reader provides sequential reading of big-endian DIS wire data with error
// accumulation. A Reader is owned by a single decode call and must not be
// shared between goroutines.
type Reader struct {
	data []byte
	pos  int
	err  error
}

// NewReader creates a new Reader wrapping the given byte slice with position at 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// require checks that n bytes are available at the current position.
func (r *Reader) require(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 {
		r.err = fmt.Errorf("%w: %d at offset %d", ErrNegativeLength, n, r.pos)
		return false
	}
	if n > len(r.data)-r.pos {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortRead, n, r.pos, len(r.data)-r.pos)
		return false
	}
	return true
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() uint8 {
	if !r.require(1) {
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() uint16 {
	if !r.require(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() uint32 {
	if !r.require(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() uint64 {
	if !r.require(8) {
		return 0
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v
}

// ReadInt8 reads a two's complement int8.
func (r *Reader) ReadInt8() int8 { return int8(r.ReadUint8()) }

// ReadInt16 reads a big-endian two's complement int16.
func (r *Reader) ReadInt16() int16 { return int16(r.ReadUint16()) }

// ReadInt32 reads a big-endian two's complement int32.
func (r *Reader) ReadInt32() int32 { return int32(r.ReadUint32()) }

// ReadInt64 reads a big-endian two's complement int64.
func (r *Reader) ReadInt64() int64 { return int64(r.ReadUint64()) }

// ReadFloat32 reads a big-endian IEEE-754 single.
func (r *Reader) ReadFloat32() float32 { return math.Float32frombits(r.ReadUint32()) }

// ReadFloat64 reads a big-endian IEEE-754 double.
func (r *Reader) ReadFloat64() float64 { return math.Float64frombits(r.ReadUint64()) }

// ReadBytes reads n bytes into a fresh slice.
// Returns nil for n == 0, and nil with the error set if insufficient data.
func (r *Reader) ReadBytes(n int) []byte {
	if !r.require(n) || n == 0 {
		return nil
	}
	b := make([]byte, n)
	copy(b, r.data[r.pos:r.pos+n])
	r.pos += n
	return b
}

// ReadInto fills dst from the cursor.
func (r *Reader) ReadInto(dst []byte) {
	if !r.require(len(dst)) {
		return
	}
	copy(dst, r.data[r.pos:])
	r.pos += len(dst)
}

// Skip advances the position by n bytes without reading them.
// Padding is skipped, never validated.
func (r *Reader) Skip(n int) {
	if !r.require(n) {
		return
	}
	r.pos += n
}

// SkipRest consumes every remaining byte and returns how many were skipped.
func (r *Reader) SkipRest() int {
	if r.err != nil {
		return 0
	}
	n := len(r.data) - r.pos
	r.pos = len(r.data)
	return n
}

// Sub carves the next n bytes into an independent Reader and advances r past
// them. Records whose extent is declared by an enclosing length decode from
// the sub-reader, so they cannot read past their own end.
//
// On a short read the returned Reader already carries the error.
func (r *Reader) Sub(n int) *Reader {
	if !r.require(n) {
		return &Reader{err: r.err}
	}
	sub := &Reader{data: r.data[r.pos : r.pos+n : r.pos+n]}
	r.pos += n
	return sub
}

// EnsureRemaining sets error if fewer than n bytes remain. Does not consume bytes.
func (r *Reader) EnsureRemaining(n int) {
	r.require(n)
}

// Fail records err as the reader's error if none is set yet. Record decoders
// use it to surface semantic errors through the same accumulation path.
func (r *Reader) Fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return max(len(r.data)-r.pos, 0)
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
