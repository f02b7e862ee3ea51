package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/api/stream"
	"github.com/marmos91/opendis/pkg/recorder"
	"github.com/marmos91/opendis/pkg/transport"
)

func sessionRouter(t *testing.T) (http.Handler, *recorder.Store, string) {
	t.Helper()
	store, err := recorder.Open(recorder.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	done, err := store.StartSession("done")
	require.NoError(t, err)
	require.NoError(t, done.Append(time.Now(), make([]byte, 12)))
	require.NoError(t, done.Close())

	h := NewSessionHandler(store)
	r := chi.NewRouter()
	r.Get("/sessions", h.List)
	r.Get("/sessions/{id}", h.Get)
	r.Delete("/sessions/{id}", h.Delete)
	return r, store, done.ID()
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestSessionEndpoints(t *testing.T) {
	r, store, id := sessionRouter(t)
	active, err := store.StartSession("live")
	require.NoError(t, err)
	t.Cleanup(func() { _ = active.Close() })

	w := serve(r, http.MethodGet, "/sessions")
	assert.Equal(t, http.StatusOK, w.Code)
	list, ok := decode(t, w).Data.([]any)
	require.True(t, ok)
	assert.Len(t, list, 2)

	w = serve(r, http.MethodGet, "/sessions/"+id)
	assert.Equal(t, http.StatusOK, w.Code)
	info := decode(t, w).Data.(map[string]any)
	assert.Equal(t, "done", info["name"])
	assert.Equal(t, float64(1), info["pdus"])

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"get missing", http.MethodGet, "/sessions/nope", http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/sessions/nope", http.StatusNotFound},
		{"delete active", http.MethodDelete, "/sessions/" + active.ID(), http.StatusConflict},
		{"delete finished", http.MethodDelete, "/sessions/" + id, http.StatusNoContent},
		{"get deleted", http.MethodGet, "/sessions/" + id, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(r, tt.method, tt.path).Code)
		})
	}
}

type fixedStats transport.Stats

func (s fixedStats) Stats() transport.Stats     { return transport.Stats(s) }
func (s fixedStats) SendStats() transport.Stats { return transport.Stats(s) }

func TestStats(t *testing.T) {
	w := serve(http.HandlerFunc(NewStatsHandler(nil, nil, nil).Get), http.MethodGet, "/stats")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	recv := fixedStats{Datagrams: 4, PDUs: 5, DecodeErrors: 1}
	sent := fixedStats{Sent: 3, BytesOut: 144}
	h := NewStatsHandler(recv, sent, stream.NewHub(1))
	w = serve(http.HandlerFunc(h.Get), http.MethodGet, "/stats")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w).Data.(map[string]any)
	tr := data["transport"].(map[string]any)
	assert.Equal(t, float64(4), tr["datagrams"])
	assert.Equal(t, float64(5), tr["pdus"])
	assert.Equal(t, float64(3), tr["sent"])
	assert.Equal(t, float64(144), tr["bytes_out"])
	assert.Equal(t, []any{}, data["types"])
	assert.Equal(t, float64(0), data["stream_clients"])
}

var _ SessionStore = (*recorder.Store)(nil)
var _ Healthchecker = (*recorder.Store)(nil)
