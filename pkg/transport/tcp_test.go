package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/dis/pdu"
)

func TestTCPStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewTCPServer(TCPConfig{Listen: "127.0.0.1:0", ShutdownTimeout: time.Second})
	c := newCollector()
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, NewDispatcher(ModeTCP, DispatcherConfig{}, c)) }()

	tx, err := DialTCP(ctx, srv.Addr().String(), nil)
	require.NoError(t, err)
	defer tx.Close()

	ack := pdu.NewAcknowledge()
	ack.RequestID = 42
	require.NoError(t, tx.Send(ctx, ack))
	require.NoError(t, tx.Send(ctx, pdu.NewTextComment(1, "second")))

	first := c.next(t)
	got, ok := first.PDU.(*pdu.Acknowledge)
	require.True(t, ok)
	assert.Equal(t, uint32(42), got.RequestID)
	assert.IsType(t, &pdu.Comment{}, c.next(t).PDU)
	assert.Equal(t, uint64(2), tx.SendStats().Sent)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestTCPOversizedFrameIsSkipped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewTCPServer(TCPConfig{Listen: "127.0.0.1:0", MaxPDUSize: 48})
	c := newCollector()
	d := NewDispatcher(ModeTCP, DispatcherConfig{}, c)
	go func() { _ = srv.Serve(ctx, d) }()

	tx, err := DialTCP(ctx, srv.Addr().String(), nil)
	require.NoError(t, err)
	defer tx.Close()

	require.NoError(t, tx.Send(ctx, pdu.NewTextComment(1, "longer than the limit allows")))
	require.NoError(t, tx.Send(ctx, pdu.NewTextComment(1, "short")))

	assert.IsType(t, &pdu.Comment{}, c.next(t).PDU)
	assert.Equal(t, uint64(1), d.Stats().DecodeErrors)
	assert.Equal(t, 1, srv.ActiveConnections())
}

func TestTCPStop(t *testing.T) {
	srv := NewTCPServer(TCPConfig{Listen: "127.0.0.1:0"})
	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background(), NewDispatcher(ModeTCP, DispatcherConfig{}, newCollector())) }()
	srv.Addr()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(stopCtx))
	require.NoError(t, <-done)
}
