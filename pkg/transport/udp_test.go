package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/dis/pdu"
)

func TestUDPSendReceive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rx, err := ListenUDP(ctx, UDPConfig{Listen: "127.0.0.1:0"})
	require.NoError(t, err)

	c := newCollector()
	done := make(chan error, 1)
	go func() { done <- rx.Serve(ctx, NewDispatcher(ModeUDP, DispatcherConfig{}, c)) }()

	tx, err := ListenUDP(ctx, UDPConfig{Listen: "127.0.0.1:0", Broadcast: rx.LocalAddr().String()})
	require.NoError(t, err)
	defer tx.Close()

	require.NoError(t, tx.Send(ctx, pdu.NewTextComment(1, "over udp")))

	d := c.next(t)
	got, ok := d.PDU.(*pdu.Comment)
	require.True(t, ok)
	require.Len(t, got.Datums.VariableDatums, 1)
	assert.Equal(t, "over udp", string(got.Datums.VariableDatums[0].Value))
	assert.Equal(t, uint64(1), tx.SendStats().Sent)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestUDPWithoutDestination(t *testing.T) {
	c, err := ListenUDP(context.Background(), UDPConfig{Listen: "127.0.0.1:0"})
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Destination())
	assert.ErrorIs(t, c.Send(context.Background(), pdu.NewTextComment(1, "x")), ErrNoDestination)
	assert.NotZero(t, c.Port())
}

func TestUDPRejectsUnicastGroup(t *testing.T) {
	_, err := ListenUDP(context.Background(), UDPConfig{Listen: "127.0.0.1:0", MulticastGroup: "10.1.1.1"})
	require.Error(t, err)
}

func TestUDPClosedWrite(t *testing.T) {
	c, err := ListenUDP(context.Background(), UDPConfig{Listen: "127.0.0.1:0", Broadcast: "127.0.0.1:9"})
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.ErrorIs(t, c.WriteRaw(context.Background(), []byte{1}), ErrClosed)
}
