package header

import (
	"errors"
	"fmt"
	"time"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/timestamp"
)

const (
	// Size is the wire size of both header shapes.
	Size = 12

	// DefaultExerciseID is the exercise stamped on newly built headers.
	DefaultExerciseID = 1

	// DefaultProtocolVersion is the version stamped on newly built headers.
	DefaultProtocolVersion = enums.ProtocolVersionIEEE1278_1_2012
)

// ErrInvalidHeader is returned when fewer than Size bytes are available.
var ErrInvalidHeader = errors.New("header: invalid PDU header")

// Header is the standard PDU header. ProtocolVersion holds the byte as
// received, so versions newer than the catalog relay unchanged; Version
// gives the catalog view.
type Header struct {
	ProtocolVersion enums.ProtocolVersion `json:"protocol_version"`
	ExerciseID      uint8                 `json:"exercise_id"`
	PDUType         enums.PDUType         `json:"pdu_type"`
	ProtocolFamily  enums.ProtocolFamily  `json:"protocol_family"`
	Timestamp       timestamp.Timestamp   `json:"timestamp"`
	Length          uint16                `json:"length"`
	Status          Status                `json:"status"`
}

// New builds a header stamped with the current time, the 2012 protocol
// version and a length of Size+bodyLength.
func New(t enums.PDUType, f enums.ProtocolFamily, exercise uint8, bodyLength int) Header {
	return NewAt(t, f, exercise, bodyLength, timestamp.Now())
}

// NewAt is New with an explicit timestamp, for replay and tests.
func NewAt(t enums.PDUType, f enums.ProtocolFamily, exercise uint8, bodyLength int, ts timestamp.Timestamp) Header {
	return Header{
		ProtocolVersion: DefaultProtocolVersion,
		ExerciseID:      exercise,
		PDUType:         t,
		ProtocolFamily:  f,
		Timestamp:       ts,
		Length:          clampLength(Size + bodyLength),
	}
}

// Time resolves the header timestamp against ref.
func (h Header) Time(ref time.Time) time.Time { return h.Timestamp.In(ref) }

// BodyLength is the number of bytes the header says follow it.
func (h Header) BodyLength() int { return max(int(h.Length)-Size, 0) }

// Version returns the protocol version, Other when the catalog does not
// list it.
func (h Header) Version() enums.ProtocolVersion { return enums.DecodeProtocolVersion(uint8(h.ProtocolVersion)) }

// Serialize writes the 12 header bytes. The padding byte is always zero.
func (h Header) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(h.ProtocolVersion))
	w.WriteUint8(h.ExerciseID)
	w.WriteUint8(uint8(h.PDUType))
	w.WriteUint8(uint8(h.ProtocolFamily))
	w.WriteUint32(uint32(h.Timestamp))
	w.WriteUint16(h.Length)
	w.WriteUint8(uint8(h.Status))
	w.WriteUint8(0)
}

// Deserialize reads a header. The version byte is kept as sent; unlisted
// type and family values are normalized to their Other variants. Use Peek
// for the raw type and family bytes.
func (h *Header) Deserialize(r *disenc.Reader) error {
	if !checkSize(r) {
		return r.Err()
	}
	h.ProtocolVersion = enums.ProtocolVersion(r.ReadUint8())
	h.ExerciseID = r.ReadUint8()
	h.PDUType = enums.DecodePDUType(r.ReadUint8())
	h.ProtocolFamily = enums.DecodeProtocolFamily(r.ReadUint8())
	h.Timestamp = timestamp.Timestamp(r.ReadUint32())
	h.Length = r.ReadUint16()
	h.Status = Status(r.ReadUint8())
	r.Skip(1)
	return r.Err()
}

// ByteLength returns Size.
func (Header) ByteLength() int { return Size }

// LiveEntity converts h to the live entity shape, carrying the status byte
// over as the subprotocol number.
func (h Header) LiveEntity() LiveEntityHeader {
	return LiveEntityHeader{
		ProtocolVersion: h.ProtocolVersion,
		ExerciseID:      h.ExerciseID,
		PDUType:         h.PDUType,
		ProtocolFamily:  h.ProtocolFamily,
		Timestamp:       h.Timestamp,
		Length:          h.Length,
		Subprotocol:     uint8(h.Status),
	}
}

// String summarizes the header for logs.
func (h Header) String() string {
	return fmt.Sprintf("%s exercise=%d family=%s length=%d ts=%s",
		h.PDUType, h.ExerciseID, h.ProtocolFamily, h.Length, h.Timestamp)
}

func checkSize(r *disenc.Reader) bool {
	if n := r.Remaining(); n < Size {
		r.Fail(fmt.Errorf("%w: %w: %d of %d bytes", ErrInvalidHeader, disenc.ErrShortRead, n, Size))
		return false
	}
	return r.Err() == nil
}

func clampLength(n int) uint16 {
	if n > 0xffff {
		return 0xffff
	}
	return uint16(n)
}
