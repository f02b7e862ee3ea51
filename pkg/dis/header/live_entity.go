package header

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/timestamp"
)

// LiveEntityHeader is the header of the live entity information family.
// Like Header it keeps the version byte as received.
type LiveEntityHeader struct {
	ProtocolVersion enums.ProtocolVersion `json:"protocol_version"`
	ExerciseID      uint8                 `json:"exercise_id"`
	PDUType         enums.PDUType         `json:"pdu_type"`
	ProtocolFamily  enums.ProtocolFamily  `json:"protocol_family"`
	Timestamp       timestamp.Timestamp   `json:"timestamp"`
	Length          uint16                `json:"length"`
	Subprotocol     uint8                 `json:"subprotocol"`
}

// NewLiveEntity builds a live entity header in the live entity family.
func NewLiveEntity(t enums.PDUType, exercise uint8, bodyLength int, ts timestamp.Timestamp) LiveEntityHeader {
	return LiveEntityHeader{
		ProtocolVersion: DefaultProtocolVersion,
		ExerciseID:      exercise,
		PDUType:         t,
		ProtocolFamily:  enums.ProtocolFamilyLiveEntityInformationInteraction,
		Timestamp:       ts,
		Length:          clampLength(Size + bodyLength),
	}
}

// Serialize writes the 12 header bytes with the subprotocol in byte 10.
func (h LiveEntityHeader) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(h.ProtocolVersion))
	w.WriteUint8(h.ExerciseID)
	w.WriteUint8(uint8(h.PDUType))
	w.WriteUint8(uint8(h.ProtocolFamily))
	w.WriteUint32(uint32(h.Timestamp))
	w.WriteUint16(h.Length)
	w.WriteUint8(h.Subprotocol)
	w.WriteUint8(0)
}

// Deserialize reads a live entity header. Unlisted type and family values
// are normalized to their Other variants.
func (h *LiveEntityHeader) Deserialize(r *disenc.Reader) error {
	if !checkSize(r) {
		return r.Err()
	}
	h.ProtocolVersion = enums.ProtocolVersion(r.ReadUint8())
	h.ExerciseID = r.ReadUint8()
	h.PDUType = enums.DecodePDUType(r.ReadUint8())
	h.ProtocolFamily = enums.DecodeProtocolFamily(r.ReadUint8())
	h.Timestamp = timestamp.Timestamp(r.ReadUint32())
	h.Length = r.ReadUint16()
	h.Subprotocol = r.ReadUint8()
	r.Skip(1)
	return r.Err()
}

// ByteLength returns Size.
func (LiveEntityHeader) ByteLength() int { return Size }

// Standard converts h to the standard shape with the subprotocol number in
// the status byte.
func (h LiveEntityHeader) Standard() Header {
	return Header{
		ProtocolVersion: h.ProtocolVersion,
		ExerciseID:      h.ExerciseID,
		PDUType:         h.PDUType,
		ProtocolFamily:  h.ProtocolFamily,
		Timestamp:       h.Timestamp,
		Length:          h.Length,
		Status:          Status(h.Subprotocol),
	}
}
