package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/metrics"
)

func TestConstructorsReturnNilWhenDisabled(t *testing.T) {
	metrics.Reset()

	assert.Nil(t, NewTransportMetrics())
	assert.Nil(t, NewRecorderMetrics())
	assert.Nil(t, NewArchiveMetrics())
}

func TestTransportMetrics(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Reset)

	m := NewTransportMetrics()
	require.NotNil(t, m)

	m.RecordDatagram("udp", 144)
	m.RecordDatagram("udp", 96)
	m.RecordPDU("EntityState", "EntityInformation", 144, 3*time.Microsecond)
	m.RecordDecodeError("framing")
	m.RecordFiltered("exercise")
	m.RecordSent("Fire", 96)

	tm := m.(*transportMetrics)
	assert.Equal(t, 2.0, testutil.ToFloat64(tm.datagrams.WithLabelValues("udp")))
	assert.Equal(t, 240.0, testutil.ToFloat64(tm.bytesReceived.WithLabelValues("udp")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tm.pdus.WithLabelValues("EntityState", "EntityInformation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tm.decodeErrors.WithLabelValues("framing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tm.filtered.WithLabelValues("exercise")))
	assert.Equal(t, 96.0, testutil.ToFloat64(tm.bytesSent))
}

func TestRecorderAndArchiveMetrics(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Reset)

	rm := NewRecorderMetrics().(*recorderMetrics)
	rm.RecordAppend(144, time.Millisecond)
	rm.RecordReplayed(10)
	rm.SetActiveSessions(2)
	assert.Equal(t, 1.0, testutil.ToFloat64(rm.appends))
	assert.Equal(t, 10.0, testutil.ToFloat64(rm.replayed))
	assert.Equal(t, 2.0, testutil.ToFloat64(rm.activeSessions))

	am := NewArchiveMetrics().(*archiveMetrics)
	am.RecordExport("success", 4096, time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(am.exports.WithLabelValues("success")))
	assert.Equal(t, 4096.0, testutil.ToFloat64(am.exportBytes))
}

func TestHandlerExposesMetrics(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Reset)

	NewTransportMetrics().RecordSent("Signal", 36)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `opendis_pdus_sent_total{pdu_type="Signal"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNilReceiversAreSafe(t *testing.T) {
	var tm *transportMetrics
	var rm *recorderMetrics
	var am *archiveMetrics

	assert.NotPanics(t, func() {
		tm.RecordDatagram("udp", 1)
		tm.RecordPDU("x", "y", 1, 0)
		rm.RecordAppend(1, 0)
		rm.SetActiveSessions(1)
		am.RecordExport("error", 0, 0)
	})
}
