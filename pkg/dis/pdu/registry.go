package pdu

import (
	"slices"
	"sync"

	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/header"
)

// Registration describes one body layout known to a Registry.
type Registration struct {
	// Name is the short name used in logs and CLI output.
	Name string

	// New returns an empty PDU of this kind.
	New func() PDU
}

// Registry maps PDU kinds to body constructors. It is safe for concurrent
// use; registration normally happens once at start-up.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]Registration
}

// NewRegistry returns a registry with no kinds registered.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Kind]Registration)}
}

// DefaultRegistry knows every PDU implemented by this package.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, reg := range []Registration{
		{Name: "EntityState", New: func() PDU { return new(EntityState) }},
		{Name: "Fire", New: func() PDU { return new(Fire) }},
		{Name: "Detonation", New: func() PDU { return new(Detonation) }},
		{Name: "Collision", New: func() PDU { return new(Collision) }},
		{Name: "EntityStateUpdate", New: func() PDU { return new(EntityStateUpdate) }},
		{Name: "CreateEntity", New: func() PDU { return new(CreateEntity) }},
		{Name: "RemoveEntity", New: func() PDU { return new(RemoveEntity) }},
		{Name: "StartResume", New: func() PDU { return new(StartResume) }},
		{Name: "StopFreeze", New: func() PDU { return new(StopFreeze) }},
		{Name: "Acknowledge", New: func() PDU { return new(Acknowledge) }},
		{Name: "ActionRequest", New: func() PDU { return new(ActionRequest) }},
		{Name: "ActionResponse", New: func() PDU { return new(ActionResponse) }},
		{Name: "DataQuery", New: func() PDU { return new(DataQuery) }},
		{Name: "SetData", New: func() PDU { return new(SetData) }},
		{Name: "Data", New: func() PDU { return new(Data) }},
		{Name: "EventReport", New: func() PDU { return new(EventReport) }},
		{Name: "Comment", New: func() PDU { return new(Comment) }},
		{Name: "RecordReliable", New: func() PDU { return new(RecordReliable) }},
		{Name: "SetRecordReliable", New: func() PDU { return new(SetRecordReliable) }},
		{Name: "Transmitter", New: func() PDU { return new(Transmitter) }},
		{Name: "Signal", New: func() PDU { return new(Signal) }},
		{Name: "Receiver", New: func() PDU { return new(Receiver) }},
		{Name: "GriddedData", New: func() PDU { return new(GriddedData) }},
	} {
		r.Register(reg)
	}
	return r
}

// Register adds reg under the kind its constructor reports, replacing any
// earlier registration for that kind.
func (r *Registry) Register(reg Registration) {
	k := reg.New().Kind()
	r.mu.Lock()
	r.entries[k] = reg
	r.mu.Unlock()
}

// Lookup returns the registration for k.
func (r *Registry) Lookup(k Kind) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[k]
	return reg, ok
}

// Name returns the registered name for k, or the catalog name of its type.
func (r *Registry) Name(k Kind) string {
	if reg, ok := r.Lookup(k); ok {
		return reg.Name
	}
	return k.Type.String()
}

// Kinds lists the registered kinds ordered by type then family.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	kinds := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	r.mu.RUnlock()
	slices.SortFunc(kinds, func(a, b Kind) int {
		if a.Type != b.Type {
			return int(a.Type) - int(b.Type)
		}
		return int(a.Family) - int(b.Family)
	})
	return kinds
}

// Decode decodes exactly one PDU from b. The header length must equal
// len(b); use Frames to split a buffer carrying several PDUs. Bytes whose
// kind is not registered decode to *Unknown.
func (r *Registry) Decode(b []byte) (PDU, error) {
	info, err := header.Peek(b)
	if err != nil {
		return nil, err
	}
	k := Kind{Type: enums.PDUType(info.PDUType), Family: enums.ProtocolFamily(info.ProtocolFamily)}

	var p PDU
	if reg, ok := r.Lookup(k); ok {
		p = reg.New()
	} else {
		p = &Unknown{RawType: info.PDUType, RawFamily: info.ProtocolFamily}
	}
	if err := decodeFrame(b, info, p); err != nil {
		return nil, err
	}
	return p, nil
}
