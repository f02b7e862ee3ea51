package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/opendis/pkg/metrics"
)

type recorderMetrics struct {
	appends        prometheus.Counter
	appendBytes    prometheus.Counter
	appendDuration prometheus.Histogram
	replayed       prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewRecorderMetrics returns nil when metrics are disabled.
func NewRecorderMetrics() metrics.RecorderMetrics {
	if !metrics.IsEnabled() {
		return nil
	}
	reg := metrics.GetRegistry()

	return &recorderMetrics{
		appends: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "opendis_recorder_pdus_total",
			Help: "PDUs written to the session store",
		}),
		appendBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "opendis_recorder_bytes_total",
			Help: "PDU bytes written to the session store",
		}),
		appendDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "opendis_recorder_append_duration_milliseconds",
			Help:    "Time to persist one PDU in milliseconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 50},
		}),
		replayed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "opendis_recorder_replayed_pdus_total",
			Help: "PDUs emitted by session replays",
		}),
		activeSessions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "opendis_recorder_active_sessions",
			Help: "Recording sessions currently open",
		}),
	}
}

func (m *recorderMetrics) RecordAppend(bytes int, took time.Duration) {
	if m == nil {
		return
	}
	m.appends.Inc()
	m.appendBytes.Add(float64(bytes))
	m.appendDuration.Observe(float64(took.Microseconds()) / 1e3)
}

func (m *recorderMetrics) RecordReplayed(count int) {
	if m == nil {
		return
	}
	m.replayed.Add(float64(count))
}

func (m *recorderMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

type archiveMetrics struct {
	exports        *prometheus.CounterVec
	exportBytes    prometheus.Counter
	exportDuration prometheus.Histogram
}

// NewArchiveMetrics returns nil when metrics are disabled.
func NewArchiveMetrics() metrics.ArchiveMetrics {
	if !metrics.IsEnabled() {
		return nil
	}
	reg := metrics.GetRegistry()

	return &archiveMetrics{
		exports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "opendis_archive_exports_total",
			Help: "Session exports to object storage by status",
		}, []string{"status"}),
		exportBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "opendis_archive_bytes_total",
			Help: "Bytes uploaded by session exports",
		}),
		exportDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name: "opendis_archive_export_duration_milliseconds",
			Help: "Duration of session exports in milliseconds",
			Buckets: []float64{
				10,    // 10ms
				100,   // 100ms
				1000,  // 1s
				5000,  // 5s
				30000, // 30s
			},
		}),
	}
}

func (m *archiveMetrics) RecordExport(status string, bytes int64, took time.Duration) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(status).Inc()
	m.exportBytes.Add(float64(bytes))
	m.exportDuration.Observe(float64(took.Milliseconds()))
}
