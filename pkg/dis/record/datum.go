package record

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/field"
)

// FixedDatumRecord is a datum id with a 32-bit value.
type FixedDatumRecord struct {
	DatumID uint32 `json:"datum_id"`
	Value   uint32 `json:"value"`
}

// FixedDatumRecordLength is the wire size of FixedDatumRecord.
const FixedDatumRecordLength = 8

// Serialize writes the fixed datum record.
func (d FixedDatumRecord) Serialize(w *disenc.Writer) {
	w.WriteUint32(d.DatumID)
	w.WriteUint32(d.Value)
}

// Deserialize reads a fixed datum record.
func (d *FixedDatumRecord) Deserialize(r *disenc.Reader) error {
	d.DatumID = r.ReadUint32()
	d.Value = r.ReadUint32()
	return r.Err()
}

// ByteLength returns the wire size of the fixed datum record.
func (FixedDatumRecord) ByteLength() int { return FixedDatumRecordLength }

// VariableDatumRecord is a datum id with a value whose length is given in
// bits. The value occupies ceil(bits/8) bytes and is followed by zero
// padding up to the next 64-bit boundary.
type VariableDatumRecord struct {
	DatumID    uint32 `json:"datum_id"`
	LengthBits uint32 `json:"length_bits"`
	Value      []byte `json:"value"`
}

// NewVariableDatum builds a record whose length covers every byte of value.
func NewVariableDatum(id uint32, value []byte) VariableDatumRecord {
	return VariableDatumRecord{DatumID: id, LengthBits: uint32(len(value)) * 8, Value: value}
}

// ValueBytes returns ceil(bits/8), the number of payload bytes on the wire.
func ValueBytes(lengthBits uint32) int {
	return int((uint64(lengthBits) + 7) / 8)
}

// PaddedValueBytes returns the payload plus padding, a multiple of 8 bytes.
func PaddedValueBytes(lengthBits uint32) int {
	return int((uint64(lengthBits)+63)/64) * 8
}

// Serialize writes exactly ValueBytes(LengthBits) bytes of Value, truncating
// or zero-filling it, so the output always matches the declared length.
func (d VariableDatumRecord) Serialize(w *disenc.Writer) {
	w.WriteUint32(d.DatumID)
	w.WriteUint32(d.LengthBits)
	n := ValueBytes(d.LengthBits)
	w.WriteFixed(d.Value, n)
	w.WriteZeros(PaddedValueBytes(d.LengthBits) - n)
}

// Deserialize reads a variable datum record.
func (d *VariableDatumRecord) Deserialize(r *disenc.Reader) error {
	d.DatumID = r.ReadUint32()
	d.LengthBits = r.ReadUint32()
	if r.Err() != nil {
		return r.Err()
	}
	n := ValueBytes(d.LengthBits)
	d.Value = r.ReadBytes(n)
	r.Skip(PaddedValueBytes(d.LengthBits) - n)
	return r.Err()
}

// ByteLength returns the wire size of the variable datum record.
func (d VariableDatumRecord) ByteLength() int {
	return 8 + PaddedValueBytes(d.LengthBits)
}

// DatumSpecification carries fixed and variable datum records, each list
// preceded by its 32-bit count.
type DatumSpecification struct {
	FixedDatums    []FixedDatumRecord    `json:"fixed_datums"`
	VariableDatums []VariableDatumRecord `json:"variable_datums"`
}

// Serialize writes the datum specification.
func (s DatumSpecification) Serialize(w *disenc.Writer) {
	w.WriteUint32(uint32(len(s.FixedDatums)))
	w.WriteUint32(uint32(len(s.VariableDatums)))
	field.SerializeSlice(w, s.FixedDatums)
	field.SerializeSlice(w, s.VariableDatums)
}

// Deserialize reads a datum specification.
func (s *DatumSpecification) Deserialize(r *disenc.Reader) error {
	nFixed := r.ReadUint32()
	nVariable := r.ReadUint32()
	if r.Err() != nil {
		return r.Err()
	}
	var err error
	if s.FixedDatums, err = field.DeserializeSlice[FixedDatumRecord](r, int(nFixed)); err != nil {
		return err
	}
	s.VariableDatums, err = field.DeserializeSlice[VariableDatumRecord](r, int(nVariable))
	return err
}

// ByteLength returns the wire size of the datum specification.
func (s DatumSpecification) ByteLength() int {
	return 8 + field.SliceLength(s.FixedDatums) + field.SliceLength(s.VariableDatums)
}
