package transport

import (
	"context"
	"errors"
	"net"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/internal/telemetry"
	"github.com/marmos91/opendis/pkg/dis/header"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/metrics"
)

// DispatcherConfig configures frame decoding and filtering.
type DispatcherConfig struct {
	// Registry decodes bodies. Nil uses pdu.DefaultRegistry.
	Registry *pdu.Registry

	// MaxPDUSize drops larger frames. Zero means pdu.MaxPDUSizeOctets.
	MaxPDUSize int

	// Exercise, when non-zero, drops PDUs from other exercises.
	Exercise uint8

	// Metrics is optional.
	Metrics metrics.TransportMetrics
}

// Dispatcher decodes received bytes into PDUs and delivers them to a
// Handler. It is shared by the UDP and TCP receivers.
type Dispatcher struct {
	registry *pdu.Registry
	maxSize  int
	exercise uint8
	metrics  metrics.TransportMetrics
	handler  Handler
	mode     string
	stats    counters
}

// NewDispatcher returns a Dispatcher for one transport mode.
func NewDispatcher(mode string, cfg DispatcherConfig, h Handler) *Dispatcher {
	d := &Dispatcher{
		registry: cfg.Registry,
		maxSize:  cfg.MaxPDUSize,
		exercise: cfg.Exercise,
		metrics:  cfg.Metrics,
		handler:  h,
		mode:     mode,
	}
	if d.registry == nil {
		d.registry = pdu.DefaultRegistry
	}
	if d.maxSize <= 0 || d.maxSize > pdu.MaxPDUSizeOctets {
		d.maxSize = pdu.MaxPDUSizeOctets
	}
	return d
}

// Stats returns the receive counters.
func (d *Dispatcher) Stats() Stats { return d.stats.snapshot() }

// Dispatch handles one datagram, which may carry several PDUs back to
// back. The buffer is not retained. It returns the number of PDUs
// delivered.
func (d *Dispatcher) Dispatch(ctx context.Context, b []byte, peer net.Addr) int {
	d.stats.datagrams.Add(1)
	d.stats.bytesIn.Add(uint64(len(b)))
	if d.metrics != nil {
		d.metrics.RecordDatagram(d.mode, len(b))
	}

	peerStr := ""
	if peer != nil {
		peerStr = peer.String()
	}
	ctx, span := telemetry.StartDatagramSpan(ctx, d.mode, peerStr, len(b))
	defer span.End()

	frames, err := pdu.Frames(b)
	if err != nil {
		d.decodeError(ctx, "framing", err, peerStr)
	}

	now := time.Now()
	delivered := 0
	for _, frame := range frames {
		if d.deliver(ctx, frame, peer, peerStr, now) {
			delivered++
		}
	}
	span.SetAttributes(attribute.Int("dis.pdu.count", delivered))
	return delivered
}

// DispatchFrame handles exactly one already framed PDU, as read from a
// stream. It reports whether the PDU was delivered.
func (d *Dispatcher) DispatchFrame(ctx context.Context, frame []byte, peer net.Addr) bool {
	d.stats.datagrams.Add(1)
	d.stats.bytesIn.Add(uint64(len(frame)))
	if d.metrics != nil {
		d.metrics.RecordDatagram(d.mode, len(frame))
	}
	peerStr := ""
	if peer != nil {
		peerStr = peer.String()
	}
	return d.deliver(ctx, frame, peer, peerStr, time.Now())
}

func (d *Dispatcher) deliver(ctx context.Context, frame []byte, peer net.Addr, peerStr string, now time.Time) bool {
	if len(frame) > d.maxSize {
		d.decodeError(ctx, "size", &pdu.SizeError{Size: len(frame), Max: d.maxSize}, peerStr)
		return false
	}

	info, err := header.Peek(frame)
	if err != nil {
		d.decodeError(ctx, "header", err, peerStr)
		return false
	}
	if d.exercise != 0 && info.ExerciseID != d.exercise {
		d.stats.filtered.Add(1)
		if d.metrics != nil {
			d.metrics.RecordFiltered("exercise")
		}
		return false
	}

	kind := pdu.Kind{Type: info.Type(), Family: info.Family()}
	name := d.registry.Name(kind)
	ctx, span := telemetry.StartPDUSpan(ctx, name, info.PDUType, info.ProtocolFamily, info.ExerciseID)
	defer span.End()

	start := time.Now()
	p, err := d.registry.Decode(frame)
	took := time.Since(start)
	if err != nil {
		telemetry.RecordError(ctx, err)
		d.decodeError(ctx, decodeReason(err), err, peerStr)
		return false
	}

	d.stats.pdus.Add(1)
	if d.metrics != nil {
		d.metrics.RecordPDU(name, info.Family().String(), len(frame), took)
	}

	lc := logger.NewLogContext(peerStr).WithPDU(info.ExerciseID, name, info.Family().String())
	ctx = logger.WithContext(ctx, lc)
	logger.DebugCtx(ctx, "PDU received", logger.Length(len(frame)))

	d.handler.HandlePDU(ctx, Datagram{
		PDU:      p,
		Raw:      slices.Clone(frame),
		Peer:     peer,
		Received: now,
	})
	return true
}

func (d *Dispatcher) decodeError(ctx context.Context, reason string, err error, peer string) {
	d.stats.decodeErrors.Add(1)
	if d.metrics != nil {
		d.metrics.RecordDecodeError(reason)
	}
	logger.DebugCtx(ctx, "Dropping malformed PDU", logger.Peer(peer), logger.Reason(reason), logger.Err(err))
}

func decodeReason(err error) string {
	switch {
	case errors.Is(err, pdu.ErrTruncated):
		return "truncated"
	case errors.Is(err, pdu.ErrFramingMismatch):
		return "framing"
	case errors.Is(err, header.ErrInvalidHeader):
		return "header"
	default:
		return "decode"
	}
}
