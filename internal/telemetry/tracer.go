package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for DIS traffic.
const (
	AttrPDUType   = "dis.pdu.type"
	AttrPDUName   = "dis.pdu.name"
	AttrFamily    = "dis.pdu.family"
	AttrLength    = "dis.pdu.length"
	AttrExercise  = "dis.exercise"
	AttrVersion   = "dis.protocol_version"
	AttrPeer      = "net.peer.address"
	AttrTransport = "net.transport"
	AttrSession   = "recorder.session"
	AttrBucket    = "storage.bucket"
	AttrKey       = "storage.key"
)

// Span names.
const (
	SpanDatagram = "dis.datagram"
	SpanDecode   = "dis.decode"
	SpanSend     = "dis.send"
	SpanRecord   = "recorder.append"
	SpanReplay   = "recorder.replay"
	SpanExport   = "archive.export"
)

func PDUType(t uint8) attribute.KeyValue { return attribute.Int(AttrPDUType, int(t)) }
func PDUName(name string) attribute.KeyValue { return attribute.String(AttrPDUName, name) }
func Family(f uint8) attribute.KeyValue { return attribute.Int(AttrFamily, int(f)) }
func Length(n int) attribute.KeyValue { return attribute.Int(AttrLength, n) }
func Exercise(id uint8) attribute.KeyValue { return attribute.Int(AttrExercise, int(id)) }
func Peer(addr string) attribute.KeyValue { return attribute.String(AttrPeer, addr) }
func Transport(m string) attribute.KeyValue { return attribute.String(AttrTransport, m) }
func Session(id string) attribute.KeyValue { return attribute.String(AttrSession, id) }
func Bucket(name string) attribute.KeyValue { return attribute.String(AttrBucket, name) }
func StorageKey(k string) attribute.KeyValue { return attribute.String(AttrKey, k) }

// StartDatagramSpan starts the root span for one received datagram.
func StartDatagramSpan(ctx context.Context, transport, peer string, size int) (context.Context, trace.Span) {
	return StartSpan(ctx, SpanDatagram,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(Transport(transport), Peer(peer), Length(size)),
	)
}

// StartPDUSpan starts a span for decoding or sending a single PDU.
func StartPDUSpan(ctx context.Context, name string, pduType, family, exercise uint8, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := append([]attribute.KeyValue{PDUType(pduType), Family(family), Exercise(exercise)}, attrs...)
	return StartSpan(ctx, name, trace.WithAttributes(all...))
}
