// Package prometheus implements the metrics hooks with client_golang.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/opendis/pkg/metrics"
)

type transportMetrics struct {
	datagrams      *prometheus.CounterVec
	bytesReceived  *prometheus.CounterVec
	pdus           *prometheus.CounterVec
	decodeDuration prometheus.Histogram
	pduSize        prometheus.Histogram
	decodeErrors   *prometheus.CounterVec
	filtered       *prometheus.CounterVec
	sent           *prometheus.CounterVec
	bytesSent      prometheus.Counter
}

// NewTransportMetrics returns nil when metrics are disabled.
func NewTransportMetrics() metrics.TransportMetrics {
	if !metrics.IsEnabled() {
		return nil
	}
	reg := metrics.GetRegistry()

	return &transportMetrics{
		datagrams: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "opendis_datagrams_received_total",
				Help: "Datagrams or TCP frames received by transport mode",
			},
			[]string{"mode"},
		),
		bytesReceived: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "opendis_bytes_received_total",
				Help: "Bytes received by transport mode",
			},
			[]string{"mode"},
		),
		pdus: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "opendis_pdus_received_total",
				Help: "Decoded PDUs by type name and protocol family",
			},
			[]string{"pdu_type", "family"},
		),
		decodeDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name: "opendis_pdu_decode_duration_microseconds",
				Help: "Time to decode one PDU in microseconds",
				Buckets: []float64{
					1,    // fixed-size bodies
					5,    // typical entity state
					10,   // articulated entities
					50,   // large signal payloads
					100,  //
					500,  //
					1000, // 1ms
				},
			},
		),
		pduSize: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "opendis_pdu_size_bytes",
				Help:    "Distribution of decoded PDU sizes",
				Buckets: []float64{32, 64, 144, 256, 512, 1024, 1500, 4096, 8192},
			},
		),
		decodeErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "opendis_pdu_decode_errors_total",
				Help: "Frames that failed to decode by reason",
			},
			[]string{"reason"},
		),
		filtered: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "opendis_pdus_filtered_total",
				Help: "PDUs dropped before dispatch by reason",
			},
			[]string{"reason"},
		),
		sent: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "opendis_pdus_sent_total",
				Help: "Transmitted PDUs by type name",
			},
			[]string{"pdu_type"},
		),
		bytesSent: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "opendis_bytes_sent_total",
				Help: "Bytes transmitted",
			},
		),
	}
}

func (m *transportMetrics) RecordDatagram(mode string, bytes int) {
	if m == nil {
		return
	}
	m.datagrams.WithLabelValues(mode).Inc()
	m.bytesReceived.WithLabelValues(mode).Add(float64(bytes))
}

func (m *transportMetrics) RecordPDU(name, family string, bytes int, decode time.Duration) {
	if m == nil {
		return
	}
	m.pdus.WithLabelValues(name, family).Inc()
	m.pduSize.Observe(float64(bytes))
	m.decodeDuration.Observe(float64(decode.Nanoseconds()) / 1e3)
}

func (m *transportMetrics) RecordDecodeError(reason string) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(reason).Inc()
}

func (m *transportMetrics) RecordFiltered(reason string) {
	if m == nil {
		return
	}
	m.filtered.WithLabelValues(reason).Inc()
}

func (m *transportMetrics) RecordSent(name string, bytes int) {
	if m == nil {
		return
	}
	m.sent.WithLabelValues(name).Inc()
	m.bytesSent.Add(float64(bytes))
}
