package handlers

import (
	"net/http"

	"github.com/marmos91/opendis/pkg/api/stream"
	"github.com/marmos91/opendis/pkg/transport"
)

// StatsSource reports receive counters.
type StatsSource interface {
	Stats() transport.Stats
}

// SendStatsSource reports transmit counters.
type SendStatsSource interface {
	SendStats() transport.Stats
}

// TypeCounter reports per-type PDU totals.
type TypeCounter interface {
	Counts() []stream.TypeCount
	Clients() int
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Transport     transport.Stats    `json:"transport"`
	Types         []stream.TypeCount `json:"types"`
	StreamClients int                `json:"stream_clients"`
}

// StatsHandler serves traffic counters.
type StatsHandler struct {
	source StatsSource
	sender SendStatsSource
	types  TypeCounter
}

// NewStatsHandler returns a StatsHandler. sender and types may be nil.
func NewStatsHandler(source StatsSource, sender SendStatsSource, types TypeCounter) *StatsHandler {
	return &StatsHandler{source: source, sender: sender, types: types}
}

// Get handles GET /stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		ServiceUnavailable(w, "transport not running")
		return
	}

	resp := StatsResponse{Transport: h.source.Stats(), Types: []stream.TypeCount{}}
	if h.sender != nil {
		sent := h.sender.SendStats()
		resp.Transport.Sent = sent.Sent
		resp.Transport.BytesOut = sent.BytesOut
	}
	if h.types != nil {
		resp.Types = h.types.Counts()
		resp.StreamClients = h.types.Clients()
	}
	WriteJSONOK(w, resp)
}
