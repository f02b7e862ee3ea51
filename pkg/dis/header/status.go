package header

import (
	"strconv"

	"github.com/marmos91/opendis/pkg/dis/field"
)

// LVC says whether the issuing entity is live, virtual or constructive.
type LVC uint8

const (
	LVCNoStatement LVC = iota
	LVCLive
	LVCVirtual
	LVCConstructive
)

func (l LVC) String() string {
	switch l {
	case LVCNoStatement:
		return "No statement"
	case LVCLive:
		return "Live"
	case LVCVirtual:
		return "Virtual"
	case LVCConstructive:
		return "Constructive"
	}
	return "LVC(" + strconv.Itoa(int(l)) + ")"
}

// DetonationType is the meaning of status bits 4-5 in a Detonation PDU.
type DetonationType uint8

const (
	DetonationMunition DetonationType = iota
	DetonationExpendable
	DetonationNonMunitionExplosion
)

// Attachment is the meaning of status bits 4-5 for radio and intercom PDUs.
type Attachment uint8

const (
	AttachmentNoStatement Attachment = iota
	AttachmentUnattached
	AttachmentAttached
)

// FireType is the meaning of status bit 4 in a Fire PDU.
type FireType uint8

const (
	FireMunition FireType = iota
	FireExpendable
)

// statusLayout lists the status byte MSB first: bits 6-7 are reserved, bits
// 4-5 depend on the PDU type, then CEI (bit 3), LVC (bits 1-2) and TEI
// (bit 0).
var statusLayout = field.NewLayout(8,
	field.Bits{Name: "reserved", Width: 2},
	field.Bits{Name: "type_specific", Width: 2},
	field.Bits{Name: "cei", Width: 1},
	field.Bits{Name: "lvc", Width: 2},
	field.Bits{Name: "tei", Width: 1},
)

const (
	statusReserved = iota
	statusTypeSpecific
	statusCEI
	statusLVC
	statusTEI
)

// Status is the PDU status byte. The raw byte is stored so that reserved
// bits survive a decode and re-encode.
type Status uint8

func (s Status) get(i int) uint64 { return statusLayout.Get(uint64(s), i) }

func (s Status) with(i int, v uint64) Status {
	word := uint64(s) &^ (statusLayout.Mask(i) << statusLayout.Shift(i))
	return Status(word | (v&statusLayout.Mask(i))<<statusLayout.Shift(i))
}

// TransferredEntity reports the TEI bit: the entity is owned by a simulation
// other than the one that created it.
func (s Status) TransferredEntity() bool { return s.get(statusTEI) == 1 }

// LVC returns the live/virtual/constructive indicator.
func (s Status) LVC() LVC { return LVC(s.get(statusLVC)) }

// CoupledExtension reports the CEI bit.
func (s Status) CoupledExtension() bool { return s.get(statusCEI) == 1 }

// TypeSpecific returns the raw bits 4-5.
func (s Status) TypeSpecific() uint8 { return uint8(s.get(statusTypeSpecific)) }

// Reserved returns bits 6-7.
func (s Status) Reserved() uint8 { return uint8(s.get(statusReserved)) }

// DetonationType interprets bits 4-5 for a Detonation PDU. The unused value
// 3 reads as DetonationMunition.
func (s Status) DetonationType() DetonationType {
	if v := s.TypeSpecific(); v <= uint8(DetonationNonMunitionExplosion) {
		return DetonationType(v)
	}
	return DetonationMunition
}

// Attachment interprets bits 4-5 for Transmitter, Signal, Receiver and
// intercom PDUs. The unused value 3 reads as AttachmentNoStatement.
func (s Status) Attachment() Attachment {
	if v := s.TypeSpecific(); v <= uint8(AttachmentAttached) {
		return Attachment(v)
	}
	return AttachmentNoStatement
}

// FireType interprets bit 4 for a Fire PDU.
func (s Status) FireType() FireType { return FireType(s.TypeSpecific() & 0x1) }

// WithTransferredEntity returns s with the transferred entity bits replaced.
func (s Status) WithTransferredEntity(on bool) Status { return s.with(statusTEI, flag(on)) }

// WithLVC returns s with the LVC bits replaced.
func (s Status) WithLVC(l LVC) Status { return s.with(statusLVC, uint64(l)) }

// WithCoupledExtension returns s with the coupled extension bits replaced.
func (s Status) WithCoupledExtension(on bool) Status { return s.with(statusCEI, flag(on)) }

// WithTypeSpecific returns s with the type specific bits replaced.
func (s Status) WithTypeSpecific(v uint8) Status { return s.with(statusTypeSpecific, uint64(v)) }

// WithDetonationType returns s with the detonation type bits replaced.
func (s Status) WithDetonationType(d DetonationType) Status { return s.WithTypeSpecific(uint8(d)) }

// WithAttachment returns s with the attachment bits replaced.
func (s Status) WithAttachment(a Attachment) Status { return s.WithTypeSpecific(uint8(a)) }

// WithFireType sets bit 4 and leaves bit 5 untouched.
func (s Status) WithFireType(f FireType) Status {
	return s.WithTypeSpecific(s.TypeSpecific()&0x2 | uint8(f)&0x1)
}

func flag(on bool) uint64 {
	if on {
		return 1
	}
	return 0
}
