package record

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/field"
)

// GridDataRecordHeaderLength is the size of the sample type, representation
// and octet count that precede the values.
const GridDataRecordHeaderLength = 6

// GridDataRecord holds the values of one sample type in a gridded data PDU.
// Values are carried as raw octets, zero padded to the next 32-bit boundary.
type GridDataRecord struct {
	SampleType         uint16 `json:"sample_type"`
	DataRepresentation uint16 `json:"data_representation"`
	Values             []byte `json:"values"`
}

func (g GridDataRecord) padding() int {
	return field.PaddingTo(GridDataRecordHeaderLength+len(g.Values), 4)
}

// Serialize writes the record followed by its padding.
func (g GridDataRecord) Serialize(w *disenc.Writer) {
	w.WriteUint16(g.SampleType)
	w.WriteUint16(g.DataRepresentation)
	w.WriteUint16(uint16(len(g.Values)))
	w.WriteBytes(g.Values)
	w.WriteZeros(g.padding())
}

// Deserialize reads the record and skips its padding.
func (g *GridDataRecord) Deserialize(r *disenc.Reader) error {
	g.SampleType = r.ReadUint16()
	g.DataRepresentation = r.ReadUint16()
	n := int(r.ReadUint16())
	g.Values = r.ReadBytes(n)
	r.Skip(g.padding())
	return r.Err()
}

// ByteLength returns the record size including padding.
func (g GridDataRecord) ByteLength() int {
	return GridDataRecordHeaderLength + len(g.Values) + g.padding()
}
