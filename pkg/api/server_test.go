package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/api/stream"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/recorder"
	"github.com/marmos91/opendis/pkg/transport"
)

type zeroStats struct{}

func (zeroStats) Stats() transport.Stats { return transport.Stats{PDUs: 7} }

func TestRouterRoutes(t *testing.T) {
	store, err := recorder.Open(recorder.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	full := NewRouter(Deps{Version: "test", Stats: zeroStats{}, Recorder: store, Hub: stream.NewHub(4)})
	bare := NewRouter(Deps{})

	tests := []struct {
		name    string
		handler http.Handler
		path    string
		want    int
	}{
		{"root redirects", bare, "/", http.StatusTemporaryRedirect},
		{"liveness", bare, "/health", http.StatusOK},
		{"readiness", full, "/health/ready", http.StatusOK},
		{"stats", full, "/stats", http.StatusOK},
		{"stats without transport", bare, "/stats", http.StatusServiceUnavailable},
		{"pdu kinds", bare, "/pdus", http.StatusOK},
		{"sessions", full, "/sessions", http.StatusOK},
		{"sessions disabled", bare, "/sessions", http.StatusNotFound},
		{"stream needs upgrade", full, "/stream", http.StatusBadRequest},
		{"stream disabled", bare, "/stream", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestPDUKindsListsRegistry(t *testing.T) {
	w := httptest.NewRecorder()
	NewRouter(Deps{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pdus", nil))

	var resp struct {
		Data []struct {
			Name string `json:"name"`
			Type uint8  `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Data, len(pdu.DefaultRegistry.Kinds()))
}

func TestServerLifecycle(t *testing.T) {
	hub := stream.NewHub(4)
	srv := NewServer(APIConfig{}, Deps{Version: "test", Hub: hub})
	assert.Equal(t, 8080, srv.Port())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	base := "http://" + srv.Addr().String()
	resp, err := http.Get(base + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"service":"opendis"`)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(base, "http")+"/stream", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Zero(t, hub.Clients())
}
