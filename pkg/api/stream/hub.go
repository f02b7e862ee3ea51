// Package stream pushes received PDUs to WebSocket clients as JSON events.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/transport"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// DefaultBuffer is the per-client queue length.
	DefaultBuffer = 256
)

// Event is the JSON document sent for every PDU.
type Event struct {
	Type     string    `json:"type"`
	TypeID   uint8     `json:"type_id"`
	Family   string    `json:"family"`
	FamilyID uint8     `json:"family_id"`
	Exercise uint8     `json:"exercise"`
	Length   int       `json:"length"`
	Peer     string    `json:"peer,omitempty"`
	Received time.Time `json:"received"`
	PDU      pdu.PDU   `json:"pdu"`
}

// NewEvent summarizes a datagram.
func NewEvent(d transport.Datagram) Event {
	k := d.PDU.Kind()
	h := d.PDU.PDUHeader()
	ev := Event{
		Type:     k.Type.String(),
		TypeID:   uint8(k.Type),
		Family:   k.Family.String(),
		FamilyID: uint8(k.Family),
		Exercise: h.ExerciseID,
		Length:   len(d.Raw),
		Received: d.Received,
		PDU:      d.PDU,
	}
	if d.Peer != nil {
		ev.Peer = d.Peer.String()
	}
	return ev
}

type client struct {
	conn *websocket.Conn
	send chan []byte

	// types limits the event types sent; empty means all.
	types map[string]bool
}

func (c *client) wants(t string) bool { return len(c.types) == 0 || c.types[t] }

// Hub fans PDUs out to connected clients and tallies them by type. Slow
// clients lose events instead of stalling the receive path.
type Hub struct {
	upgrader websocket.Upgrader
	buffer   int

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	countMu sync.Mutex
	counts  map[string]uint64

	dropped atomic.Uint64
}

// NewHub returns a Hub with the given per-client buffer.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		buffer:  buffer,
		clients: make(map[*client]struct{}),
		counts:  make(map[string]uint64),
	}
}

// HandlePDU implements transport.Handler.
func (h *Hub) HandlePDU(ctx context.Context, d transport.Datagram) {
	ev := NewEvent(d)

	h.countMu.Lock()
	h.counts[ev.Type]++
	h.countMu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(ev)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode stream event", logger.PDUType(ev.Type), logger.Err(err))
		return
	}
	for c := range h.clients {
		if !c.wants(ev.Type) {
			continue
		}
		select {
		case c.send <- msg:
		default:
			h.dropped.Add(1)
		}
	}
}

// ServeHTTP upgrades the request and streams events until the client goes
// away. Repeated ?type= parameters restrict the stream to those PDU types.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Debug("WebSocket upgrade failed", logger.Err(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, h.buffer)}
	if types := r.URL.Query()["type"]; len(types) > 0 {
		c.types = make(map[string]bool, len(types))
		for _, t := range types {
			c.types[t] = true
		}
	}

	if !h.register(c) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()
		return
	}
	logger.Debug("Stream client connected", logger.Peer(conn.RemoteAddr().String()))

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// readPump discards client messages and notices disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		logger.Debug("Stream client disconnected", logger.Peer(c.conn.RemoteAddr().String()))
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns how many events were discarded for slow clients.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// TypeCount is the number of PDUs seen for one type.
type TypeCount struct {
	Type  string `json:"type"`
	Count uint64 `json:"count"`
}

// Counts returns per-type totals sorted by type name.
func (h *Hub) Counts() []TypeCount {
	h.countMu.Lock()
	out := make([]TypeCount, 0, len(h.counts))
	for t, n := range h.counts {
		out = append(out, TypeCount{Type: t, Count: n})
	}
	h.countMu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
