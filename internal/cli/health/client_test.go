package health

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/api"
	"github.com/marmos91/opendis/pkg/recorder"
	"github.com/marmos91/opendis/pkg/transport"
)

type stats struct{}

func (stats) Stats() transport.Stats { return transport.Stats{Datagrams: 2, PDUs: 3} }

func TestClientAgainstRouter(t *testing.T) {
	store, err := recorder.Open(recorder.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	sess, err := store.StartSession("s1")
	require.NoError(t, err)
	require.NoError(t, sess.Close())

	srv := httptest.NewServer(api.NewRouter(api.Deps{Version: "v1", Stats: stats{}, Recorder: store}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", 2*time.Second)
	ctx := context.Background()

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "v1", h.Data.Version)

	st, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), st.Transport.PDUs)

	sessions, err := c.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].Name)
}

func TestClientWithoutTransport(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.Deps{}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)
	_, err := c.Stats(context.Background())
	assert.ErrorContains(t, err, "stats unavailable")

	_, err = c.Sessions(context.Background())
	assert.Error(t, err)
}
