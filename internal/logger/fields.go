package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Standard field keys. Use them consistently so log aggregation can query
// traffic by exercise, type or peer.
const (
	// Tracing
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"

	// PDU routing
	KeyPDUType  = "pdu_type"  // PDU type name
	KeyFamily   = "family"    // Protocol family name
	KeyExercise = "exercise"  // Exercise identifier
	KeyVersion  = "version"   // Protocol version
	KeyLength   = "length"    // Declared PDU length in bytes
	KeyEntityID = "entity_id" // site:application:entity
	KeyCount    = "count"     // PDUs in a datagram or batch

	// Transport
	KeyPeer      = "peer"      // Sender address
	KeyListen    = "listen"    // Local listen address
	KeyMode      = "mode"      // udp or tcp
	KeyMulticast = "multicast" // Multicast group
	KeyBroadcast = "broadcast" // Broadcast target
	KeyBytes     = "bytes"     // Datagram or frame size

	// Recorder and archive
	KeySession = "session_id"
	KeyName    = "name"
	KeySeq     = "seq"
	KeyPath    = "path"
	KeyBucket  = "bucket"
	KeyKey     = "key"
	KeySpeed   = "speed"

	// HTTP API
	KeyMethod = "method"
	KeyRoute  = "route"
	KeyStatus = "status"
	KeyClient = "client"

	// Operation metadata
	KeyDurationMs = "duration_ms"
	KeyError      = "error"
	KeyOperation  = "operation"
	KeyReason     = "reason"
)

func TraceID(id string) slog.Attr { return slog.String(KeyTraceID, id) }
func SpanID(id string) slog.Attr { return slog.String(KeySpanID, id) }

// PDUType records a PDU type by name.
func PDUType(name string) slog.Attr { return slog.String(KeyPDUType, name) }

// Family records a protocol family by name.
func Family(name string) slog.Attr { return slog.String(KeyFamily, name) }

func Exercise(id uint8) slog.Attr { return slog.Int(KeyExercise, int(id)) }
func Version(v uint8) slog.Attr { return slog.Int(KeyVersion, int(v)) }
func Length(n int) slog.Attr { return slog.Int(KeyLength, n) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func Bytes(n int) slog.Attr { return slog.Int(KeyBytes, n) }
func Peer(addr string) slog.Attr { return slog.String(KeyPeer, addr) }
func Listen(addr string) slog.Attr { return slog.String(KeyListen, addr) }
func Mode(m string) slog.Attr { return slog.String(KeyMode, m) }
func Multicast(group string) slog.Attr { return slog.String(KeyMulticast, group) }
func Broadcast(addr string) slog.Attr { return slog.String(KeyBroadcast, addr) }

// EntityID formats an entity identifier as site:application:entity.
func EntityID(site, application, entity uint16) slog.Attr {
	return slog.String(KeyEntityID, fmt.Sprintf("%d:%d:%d", site, application, entity))
}

func Session(id string) slog.Attr { return slog.String(KeySession, id) }
func Name(n string) slog.Attr { return slog.String(KeyName, n) }
func Seq(n uint64) slog.Attr { return slog.Uint64(KeySeq, n) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Bucket(b string) slog.Attr { return slog.String(KeyBucket, b) }
func Key(k string) slog.Attr { return slog.String(KeyKey, k) }

func Method(m string) slog.Attr { return slog.String(KeyMethod, m) }
func Route(r string) slog.Attr { return slog.String(KeyRoute, r) }
func Status(code int) slog.Attr { return slog.Int(KeyStatus, code) }

// DurationMs records elapsed time since start in milliseconds.
func DurationMs(start time.Time) slog.Attr {
	return slog.Float64(KeyDurationMs, Duration(start))
}

// Err records err under the error key. A nil error yields an empty attr,
// which handlers skip.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

func Operation(op string) slog.Attr { return slog.String(KeyOperation, op) }
func Reason(r string) slog.Attr { return slog.String(KeyReason, r) }
