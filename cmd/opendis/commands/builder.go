package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/dis/record"
)

// pduOptions are the values the send command can place into a PDU.
type pduOptions struct {
	Origin    record.EntityID
	Receiver  record.EntityID
	RequestID uint32

	// comment
	Text    string
	DatumID uint32

	// entity-state
	Marking    string
	Force      uint8
	EntityType record.EntityType
	Location   record.WorldCoordinate
	Velocity   record.LinearVelocity

	// stop-freeze
	Reason uint8

	// acknowledge
	AckFlag      uint16
	ResponseFlag uint16

	Now time.Time
}

type pduBuilder func(o pduOptions) pdu.PDU

var pduBuilders = map[string]pduBuilder{
	"entity-state": func(o pduOptions) pdu.PDU {
		p := pdu.NewEntityState()
		p.EntityID = o.Origin
		p.ForceID = enums.DecodeForceID(o.Force)
		p.EntityType = o.EntityType
		p.Location = o.Location
		p.LinearVelocity = o.Velocity
		p.Marking = record.NewEntityMarking(o.Marking)
		return p
	},
	"comment": func(o pduOptions) pdu.PDU {
		p := pdu.NewTextComment(o.DatumID, o.Text)
		p.OriginatingID, p.ReceivingID = o.Origin, o.Receiver
		return p
	},
	"acknowledge": func(o pduOptions) pdu.PDU {
		p := pdu.NewAcknowledge()
		p.OriginatingID, p.ReceivingID = o.Origin, o.Receiver
		p.AcknowledgeFlag = enums.DecodeAcknowledgeFlag(o.AckFlag)
		p.ResponseFlag = enums.DecodeAcknowledgeResponseFlag(o.ResponseFlag)
		p.RequestID = o.RequestID
		return p
	},
	"start-resume": func(o pduOptions) pdu.PDU {
		p := pdu.NewStartResume()
		p.OriginatingID, p.ReceivingID = o.Origin, o.Receiver
		p.RealWorldTime = record.NewClockTime(o.Now)
		p.SimulationTime = record.NewClockTime(o.Now)
		p.RequestID = o.RequestID
		return p
	},
	"stop-freeze": func(o pduOptions) pdu.PDU {
		p := pdu.NewStopFreeze()
		p.OriginatingID, p.ReceivingID = o.Origin, o.Receiver
		p.RealWorldTime = record.NewClockTime(o.Now)
		p.Reason = enums.DecodeStopFreezeReason(o.Reason)
		p.RequestID = o.RequestID
		return p
	},
	"create-entity": func(o pduOptions) pdu.PDU {
		p := pdu.NewCreateEntity()
		p.OriginatingID, p.ReceivingID = o.Origin, o.Receiver
		p.RequestID = o.RequestID
		return p
	},
	"remove-entity": func(o pduOptions) pdu.PDU {
		p := pdu.NewRemoveEntity()
		p.OriginatingID, p.ReceivingID = o.Origin, o.Receiver
		p.RequestID = o.RequestID
		return p
	},
}

// pduKindNames lists the kinds send accepts, sorted.
func pduKindNames() []string {
	names := make([]string, 0, len(pduBuilders))
	for n := range pduBuilders {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func buildPDU(kind string, o pduOptions) (pdu.PDU, error) {
	b, ok := pduBuilders[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown PDU kind %q (valid: %s)", kind, strings.Join(pduKindNames(), ", "))
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return b(o), nil
}

// parseEntityID parses "site:application:entity".
func parseEntityID(s string) (record.EntityID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return record.EntityID{}, fmt.Errorf("invalid entity id %q: want site:application:entity", s)
	}
	var n [3]uint16
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return record.EntityID{}, fmt.Errorf("invalid entity id %q: %w", s, err)
		}
		n[i] = uint16(v)
	}
	return record.NewEntityID(n[0], n[1], n[2]), nil
}

// parseEntityType parses "kind:domain:country:category:subcategory:specific:extra".
// Trailing fields may be omitted and default to zero.
func parseEntityType(s string) (record.EntityType, error) {
	var t record.EntityType
	if s == "" {
		return t, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) > 7 {
		return t, fmt.Errorf("invalid entity type %q: at most 7 fields", s)
	}
	bitsAt := []int{8, 8, 16, 8, 8, 8, 8}
	vals := make([]uint64, 7)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, bitsAt[i])
		if err != nil {
			return t, fmt.Errorf("invalid entity type %q: %w", s, err)
		}
		vals[i] = v
	}
	t.Kind = enums.EntityKind(vals[0])
	t.Domain = uint8(vals[1])
	t.Country = uint16(vals[2])
	t.Category = uint8(vals[3])
	t.Subcategory = uint8(vals[4])
	t.Specific = uint8(vals[5])
	t.Extra = uint8(vals[6])
	return t, nil
}

// parseVector parses "x,y,z".
func parseVector(s string) ([3]float64, error) {
	var v [3]float64
	if s == "" {
		return v, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("invalid vector %q: want x,y,z", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}
