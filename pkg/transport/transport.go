// Package transport moves DIS PDUs over UDP (unicast, broadcast or
// multicast) and TCP streams.
//
// Receivers split each datagram or stream segment into frames with
// pdu.Frames, decode them through a pdu.Registry and hand every PDU to a
// Handler together with its raw bytes, so a relay can forward exactly what
// it received.
package transport

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/marmos91/opendis/pkg/dis/pdu"
)

// Transport modes.
const (
	ModeUDP = "udp"
	ModeTCP = "tcp"
)

// maxDatagram is the largest UDP payload.
const maxDatagram = 65535

// ErrClosed is returned by operations on a closed transport.
var ErrClosed = errors.New("transport: closed")

// Datagram is one decoded PDU and where it came from.
type Datagram struct {
	PDU pdu.PDU

	// Raw is the frame exactly as received. The handler owns it.
	Raw []byte

	Peer     net.Addr
	Received time.Time
}

// Handler receives decoded PDUs. HandlePDU is called from the receive
// goroutine for UDP and from one goroutine per connection for TCP, so
// implementations shared across TCP peers must be safe for concurrent use.
type Handler interface {
	HandlePDU(ctx context.Context, d Datagram)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, d Datagram)

func (f HandlerFunc) HandlePDU(ctx context.Context, d Datagram) { f(ctx, d) }

// Fanout delivers each PDU to every handler in order. Nil handlers are
// skipped.
func Fanout(hs ...Handler) Handler {
	var live []Handler
	for _, h := range hs {
		if h != nil {
			live = append(live, h)
		}
	}
	if len(live) == 1 {
		return live[0]
	}
	return HandlerFunc(func(ctx context.Context, d Datagram) {
		for _, h := range live {
			h.HandlePDU(ctx, d)
		}
	})
}

// Sender transmits PDUs.
type Sender interface {
	// Send marshals p and transmits it.
	Send(ctx context.Context, p pdu.PDU) error

	// WriteRaw transmits already encoded PDU bytes unchanged.
	WriteRaw(ctx context.Context, b []byte) error

	Close() error
}

// Stats is a snapshot of transport counters.
type Stats struct {
	Datagrams    uint64 `json:"datagrams"`
	BytesIn      uint64 `json:"bytes_in"`
	PDUs         uint64 `json:"pdus"`
	DecodeErrors uint64 `json:"decode_errors"`
	Filtered     uint64 `json:"filtered"`
	Sent         uint64 `json:"sent"`
	BytesOut     uint64 `json:"bytes_out"`
}

type counters struct {
	datagrams    atomic.Uint64
	bytesIn      atomic.Uint64
	pdus         atomic.Uint64
	decodeErrors atomic.Uint64
	filtered     atomic.Uint64
	sent         atomic.Uint64
	bytesOut     atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Datagrams:    c.datagrams.Load(),
		BytesIn:      c.bytesIn.Load(),
		PDUs:         c.pdus.Load(),
		DecodeErrors: c.decodeErrors.Load(),
		Filtered:     c.filtered.Load(),
		Sent:         c.sent.Load(),
		BytesOut:     c.bytesOut.Load(),
	}
}
