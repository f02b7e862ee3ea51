package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
)

// Unknown is a PDU whose kind has no registered body. The body bytes are
// kept verbatim so the PDU can be relayed or recorded unchanged.
type Unknown struct {
	Base
	RawType   uint8  `json:"raw_type"`
	RawFamily uint8  `json:"raw_family"`
	Body      []byte `json:"body"`
}

// Kind returns the raw type and family as sent, which may be values the
// catalog does not list.
func (u *Unknown) Kind() Kind {
	return Kind{Type: enums.PDUType(u.RawType), Family: enums.ProtocolFamily(u.RawFamily)}
}

// SerializeBody writes Body verbatim.
func (u *Unknown) SerializeBody(w *disenc.Writer) { w.WriteBytes(u.Body) }

// DeserializeBody keeps every remaining byte as Body.
func (u *Unknown) DeserializeBody(r *disenc.Reader) error {
	u.Body = r.ReadBytes(r.Remaining())
	return r.Err()
}

// BodyLength returns the encoded body size.
func (u *Unknown) BodyLength() int { return len(u.Body) }
