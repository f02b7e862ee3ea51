package record

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/field"
)

// StandardVariableHeaderLength covers the record type and length fields.
const StandardVariableHeaderLength = 6

// StandardVariableRecord is a typed extension record. The wire length field
// counts the whole record including its 6-byte header.
type StandardVariableRecord struct {
	RecordType uint32 `json:"record_type"`
	Fields     []byte `json:"fields"`
}

// Serialize writes the standard variable record.
func (s StandardVariableRecord) Serialize(w *disenc.Writer) {
	w.WriteUint32(s.RecordType)
	w.WriteUint16(uint16(s.ByteLength()))
	w.WriteBytes(s.Fields)
}

// Deserialize reads a standard variable record.
func (s *StandardVariableRecord) Deserialize(r *disenc.Reader) error {
	s.RecordType = r.ReadUint32()
	n := int(r.ReadUint16())
	if r.Err() != nil {
		return r.Err()
	}
	if n < StandardVariableHeaderLength {
		r.Fail(fmt.Errorf("%w: standard variable record length %d", ErrInvalidLength, n))
		return r.Err()
	}
	s.Fields = r.ReadBytes(n - StandardVariableHeaderLength)
	return r.Err()
}

// ByteLength returns the wire size of the standard variable record.
func (s StandardVariableRecord) ByteLength() int {
	return StandardVariableHeaderLength + len(s.Fields)
}

// StandardVariableSpecification is a 16-bit count followed by that many
// standard variable records.
type StandardVariableSpecification struct {
	Records []StandardVariableRecord `json:"records"`
}

// Serialize writes the standard variable specification.
func (s StandardVariableSpecification) Serialize(w *disenc.Writer) {
	w.WriteUint16(uint16(len(s.Records)))
	field.SerializeSlice(w, s.Records)
}

// Deserialize reads a standard variable specification.
func (s *StandardVariableSpecification) Deserialize(r *disenc.Reader) error {
	n := r.ReadUint16()
	if r.Err() != nil {
		return r.Err()
	}
	var err error
	s.Records, err = field.DeserializeSlice[StandardVariableRecord](r, int(n))
	return err
}

// ByteLength returns the wire size of the standard variable specification.
func (s StandardVariableSpecification) ByteLength() int {
	return 2 + field.SliceLength(s.Records)
}
