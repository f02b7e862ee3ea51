package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthFunc func(ctx context.Context) error

func (f healthFunc) Healthcheck(ctx context.Context) error { return f(ctx) }

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestLiveness(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler(nil, "1.2.3").Liveness(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	resp := decode(t, w)
	assert.Equal(t, "healthy", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "opendis", data["service"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.Contains(t, data, "started_at")
	assert.Contains(t, data, "uptime_sec")
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		recorder   Healthchecker
		wantCode   int
		wantStatus string
		wantParts  int
	}{
		{"without recorder", nil, http.StatusOK, "healthy", 1},
		{"recorder healthy", healthFunc(func(context.Context) error { return nil }), http.StatusOK, "healthy", 2},
		{"recorder failing", healthFunc(func(context.Context) error { return errors.New("closed") }), http.StatusServiceUnavailable, "unhealthy", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHealthHandler(tt.recorder, "dev").Readiness(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.wantStatus, resp.Status)
			parts, ok := resp.Data.([]any)
			require.True(t, ok)
			assert.Len(t, parts, tt.wantParts)
		})
	}
}
