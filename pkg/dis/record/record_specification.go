package record

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/field"
)

// RecordSpecificationElement is one record set of a reliable record PDU.
// Values holds RecordLength*RecordCount bytes.
type RecordSpecificationElement struct {
	RecordID     uint32 `json:"record_id"`
	SerialNumber uint32 `json:"serial_number"`
	RecordLength uint16 `json:"record_length"`
	RecordCount  uint16 `json:"record_count"`
	Values       []byte `json:"values"`
}

// valueBytes is the declared size of Values.
func (e RecordSpecificationElement) valueBytes() int {
	return int(e.RecordLength) * int(e.RecordCount)
}

// Serialize writes the record specification element.
func (e RecordSpecificationElement) Serialize(w *disenc.Writer) {
	w.WriteUint32(e.RecordID)
	w.WriteUint32(e.SerialNumber)
	w.WriteUint16(e.RecordLength)
	w.WriteUint16(e.RecordCount)
	w.WriteFixed(e.Values, e.valueBytes())
}

// Deserialize reads a record specification element.
func (e *RecordSpecificationElement) Deserialize(r *disenc.Reader) error {
	e.RecordID = r.ReadUint32()
	e.SerialNumber = r.ReadUint32()
	e.RecordLength = r.ReadUint16()
	e.RecordCount = r.ReadUint16()
	if r.Err() != nil {
		return r.Err()
	}
	e.Values = r.ReadBytes(e.valueBytes())
	return r.Err()
}

// ByteLength returns the wire size of the record specification element.
func (e RecordSpecificationElement) ByteLength() int { return 12 + e.valueBytes() }

// RecordSpecification is a count-prefixed list of record sets.
type RecordSpecification struct {
	RecordSets []RecordSpecificationElement `json:"record_sets"`
}

// Serialize writes the record specification.
func (s RecordSpecification) Serialize(w *disenc.Writer) {
	w.WriteUint32(uint32(len(s.RecordSets)))
	field.SerializeSlice(w, s.RecordSets)
}

// Deserialize reads a record specification.
func (s *RecordSpecification) Deserialize(r *disenc.Reader) error {
	n := r.ReadUint32()
	if r.Err() != nil {
		return r.Err()
	}
	var err error
	s.RecordSets, err = field.DeserializeSlice[RecordSpecificationElement](r, int(n))
	return err
}

// ByteLength returns the wire size of the record specification.
func (s RecordSpecification) ByteLength() int { return 4 + field.SliceLength(s.RecordSets) }
