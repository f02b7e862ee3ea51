// Package field defines the capabilities shared by every DIS record and PDU
// body, plus generic helpers for collections, fixed-point values and
// bit-packed flag words.
//
// Every record type implements three operations:
//
//   - Serialize appends the canonical bytes to a disenc.Writer.
//   - Deserialize reads the record from a disenc.Reader.
//   - ByteLength reports how many bytes Serialize would write.
//
// Composite records implement them by delegating to their members in
// declaration order. Records whose extent is carried by a sibling field
// implement LengthDeserializer instead of Deserializer.
package field

import "github.com/marmos91/opendis/pkg/dis/disenc"

// Serializer appends a value's wire bytes to w.
//
// Serialize never fails for a well-formed in-memory value. Size limits are
// enforced by the framing layer before any bytes are written.
type Serializer interface {
	Serialize(w *disenc.Writer)
}

// Deserializer decodes a value in place from r.
//
// Implementations return r.Err() so callers can stop at the first short read.
type Deserializer interface {
	Deserialize(r *disenc.Reader) error
}

// Sizer reports the exact number of bytes Serialize writes.
type Sizer interface {
	ByteLength() int
}

// Field is the full capability set of a self-delimiting record.
type Field interface {
	Serializer
	Deserializer
	Sizer
}

// LengthDeserializer decodes a record whose byte count lives outside the
// record itself, for example an antenna pattern whose length is a field of
// the enclosing Transmitter PDU.
type LengthDeserializer interface {
	DeserializeWithLength(r *disenc.Reader, length int) error
}
