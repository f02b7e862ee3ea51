package metrics

import "time"

// TransportMetrics observes PDU traffic through a listener or sender.
//
//	m := prometheus.NewTransportMetrics() // nil unless metrics are enabled
//	srv := transport.NewServer(conn, handler, transport.WithMetrics(m))
type TransportMetrics interface {
	// RecordDatagram counts one received datagram or TCP frame.
	RecordDatagram(mode string, bytes int)

	// RecordPDU counts one decoded PDU by its registered name and family.
	RecordPDU(name, family string, bytes int, decode time.Duration)

	// RecordDecodeError counts a frame that failed to decode. reason is a
	// short class such as "framing", "truncated" or "size".
	RecordDecodeError(reason string)

	// RecordFiltered counts a PDU dropped before dispatch, for example by
	// the exercise filter.
	RecordFiltered(reason string)

	// RecordSent counts one transmitted PDU.
	RecordSent(name string, bytes int)
}
