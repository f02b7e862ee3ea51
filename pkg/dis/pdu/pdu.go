package pdu

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/header"
)

// Kind is the (type, family) pair that selects a body layout.
type Kind struct {
	Type   enums.PDUType        `json:"type"`
	Family enums.ProtocolFamily `json:"family"`
}

func (k Kind) String() string { return fmt.Sprintf("%s/%s", k.Type, k.Family) }

// PDU is a header plus a typed body.
type PDU interface {
	// Kind returns the type and family the body belongs to.
	Kind() Kind

	// PDUHeader returns the embedded header for in-place updates.
	PDUHeader() *header.Header

	SerializeBody(w *disenc.Writer)
	DeserializeBody(r *disenc.Reader) error
	BodyLength() int
}

// Validator is implemented by bodies with constraints Marshal must check
// before writing, such as collection counts carried in narrow fields.
type Validator interface {
	Validate() error
}

// Base carries the header of a concrete PDU.
type Base struct {
	Header header.Header `json:"header"`
}

// PDUHeader implements PDU.
func (b *Base) PDUHeader() *header.Header { return &b.Header }

func newBase(k Kind) Base {
	return Base{Header: header.New(k.Type, k.Family, header.DefaultExerciseID, 0)}
}

// Length returns the full encoded size of p.
func Length(p PDU) int { return TotalPDUSize(p.BodyLength()) }

// Marshal finalizes the header of p and encodes it. The header's type,
// family and length are overwritten; every other header field is kept.
// Nothing is written if the PDU would exceed MaxPDUSizeOctets.
func Marshal(p PDU) ([]byte, error) {
	total := Length(p)
	if !ValidatePDUSize(total) {
		return nil, &SizeError{Size: total, Max: MaxPDUSizeOctets}
	}
	if v, ok := p.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	h := p.PDUHeader()
	k := p.Kind()
	h.PDUType = k.Type
	h.ProtocolFamily = k.Family
	h.Length = uint16(total)

	w := disenc.NewWriter(total)
	h.Serialize(w)
	p.SerializeBody(w)
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", k, err)
	}
	if w.Len() != total {
		return nil, &FramingError{Declared: total, Available: w.Len(), Consumed: w.Len()}
	}
	return w.Bytes(), nil
}

// Decode decodes a single PDU with the default registry.
func Decode(b []byte) (PDU, error) { return DefaultRegistry.Decode(b) }

// DecodeInto decodes b into p, failing with ErrTypeMismatch if the header
// names a different kind.
func DecodeInto(b []byte, p PDU) error {
	info, err := header.Peek(b)
	if err != nil {
		return err
	}
	got := Kind{Type: info.Type(), Family: info.Family()}
	if want := p.Kind(); got != want {
		return fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, got, want)
	}
	return decodeFrame(b, info, p)
}

// DecodeBody decodes a body for a header that has already been read, as a
// stream reader does after framing.
func DecodeBody(h header.Header, body []byte, p PDU) error {
	if h.BodyLength() != len(body) {
		return &FramingError{Declared: int(h.Length), Available: HeaderSize + len(body)}
	}
	r := disenc.NewReader(body)
	if err := p.DeserializeBody(r); err != nil {
		return &FramingError{Declared: int(h.Length), Available: HeaderSize + len(body), Consumed: HeaderSize + r.Position(), Err: err}
	}
	if n := r.Remaining(); n != 0 {
		return &FramingError{Declared: int(h.Length), Available: HeaderSize + len(body), Consumed: HeaderSize + r.Position()}
	}
	*p.PDUHeader() = h
	return nil
}

func decodeFrame(b []byte, info header.Info, p PDU) error {
	declared := int(info.Length)
	if declared < HeaderSize || declared != len(b) {
		return &FramingError{Declared: declared, Available: len(b)}
	}
	r := disenc.NewReader(b)
	if err := p.PDUHeader().Deserialize(r); err != nil {
		return err
	}
	if err := p.DeserializeBody(r); err != nil {
		return &FramingError{Declared: declared, Available: len(b), Consumed: r.Position(), Err: err}
	}
	if r.Remaining() != 0 {
		return &FramingError{Declared: declared, Available: len(b), Consumed: r.Position()}
	}
	return nil
}
