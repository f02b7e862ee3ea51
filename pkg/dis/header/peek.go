package header

import (
	"encoding/binary"
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
)

// Info is the raw routing prefix of a PDU, read without decoding the body.
type Info struct {
	ProtocolVersion uint8
	ExerciseID      uint8
	PDUType         uint8
	ProtocolFamily  uint8
	Length          uint16
}

// Peek reads the routing fields of the header at the start of b. Values are
// returned exactly as sent, including ones the catalog does not list.
func Peek(b []byte) (Info, error) {
	if len(b) < Size {
		return Info{}, fmt.Errorf("%w: %w: %d of %d bytes", ErrInvalidHeader, disenc.ErrShortRead, len(b), Size)
	}
	return Info{
		ProtocolVersion: b[0],
		ExerciseID:      b[1],
		PDUType:         b[2],
		ProtocolFamily:  b[3],
		Length:          binary.BigEndian.Uint16(b[8:10]),
	}, nil
}

// Type returns the PDU type, which may be an unlisted value.
func (i Info) Type() enums.PDUType { return enums.PDUType(i.PDUType) }

// Family returns the protocol family, which may be an unlisted value.
func (i Info) Family() enums.ProtocolFamily { return enums.ProtocolFamily(i.ProtocolFamily) }

// LiveEntity reports whether the PDU uses the live entity header shape.
func (i Info) LiveEntity() bool {
	return i.Family() == enums.ProtocolFamilyLiveEntityInformationInteraction
}
