package pdu

import (
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/header"
)

const (
	// MaxPDUSizeOctets is the largest PDU the standard allows.
	MaxPDUSizeOctets = 8192

	// MaxPDUSizeBits is MaxPDUSizeOctets in bits.
	MaxPDUSizeBits = 65536

	// HeaderSize is the size of either header shape.
	HeaderSize = header.Size

	// MaxArticulationParams caps the variable parameter records on encode.
	MaxArticulationParams = 64

	// MaxEntityMarkingLength is the longest marking string accepted.
	MaxEntityMarkingLength = 32
)

// Protocol versions this package produces and accepts as current.
const (
	ProtocolVersion1995 = enums.ProtocolVersionIEEE1278_1_1995
	ProtocolVersion1998 = enums.ProtocolVersionIEEE1278_1A_1998
	ProtocolVersion2012 = enums.ProtocolVersionIEEE1278_1_2012
)

// IsValidProtocolVersion reports whether v is one of the current-generation
// protocol versions.
func IsValidProtocolVersion(v uint8) bool {
	switch enums.ProtocolVersion(v) {
	case ProtocolVersion1995, ProtocolVersion1998, ProtocolVersion2012:
		return true
	}
	return false
}

// ValidatePDUSize reports whether a full PDU of size bytes may be sent.
func ValidatePDUSize(size int) bool { return size <= MaxPDUSizeOctets }

// TotalPDUSize returns the full PDU size for a body of bodySize bytes.
func TotalPDUSize(bodySize int) int { return HeaderSize + bodySize }

// ValidateMarkingLength reports whether a marking of n characters is allowed.
func ValidateMarkingLength(n int) bool { return n <= MaxEntityMarkingLength }
