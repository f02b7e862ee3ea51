package transport

import (
	"bytes"
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/dis/pdu"
)

type collector struct {
	mu  sync.Mutex
	got []Datagram
	ch  chan Datagram
}

func newCollector() *collector { return &collector{ch: make(chan Datagram, 64)} }

func (c *collector) HandlePDU(_ context.Context, d Datagram) {
	c.mu.Lock()
	c.got = append(c.got, d)
	c.mu.Unlock()
	c.ch <- d
}

func (c *collector) next(t *testing.T) Datagram {
	t.Helper()
	select {
	case d := <-c.ch:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for PDU")
		return Datagram{}
	}
}

func comment(t *testing.T, exercise uint8, text string) []byte {
	t.Helper()
	p := pdu.NewTextComment(1, text)
	p.Header.ExerciseID = exercise
	b, err := pdu.Marshal(p)
	require.NoError(t, err)
	return b
}

func TestDispatchMultiplePDUsPerDatagram(t *testing.T) {
	c := newCollector()
	d := NewDispatcher(ModeUDP, DispatcherConfig{}, c)

	first := comment(t, 1, "first")
	second := comment(t, 1, "second")
	buf := append(append([]byte{}, first...), second...)

	n := d.Dispatch(context.Background(), buf, &net.UDPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 3000})
	require.Equal(t, 2, n)
	require.Len(t, c.got, 2)

	assert.Equal(t, first, c.got[0].Raw)
	assert.Equal(t, second, c.got[1].Raw)
	assert.IsType(t, &pdu.Comment{}, c.got[0].PDU)
	assert.Equal(t, "10.0.0.1:3000", c.got[0].Peer.String())

	// Raw is a copy the handler may keep.
	buf[0] = 0xff
	assert.Equal(t, first[0], c.got[0].Raw[0])

	st := d.Stats()
	assert.Equal(t, uint64(1), st.Datagrams)
	assert.Equal(t, uint64(2), st.PDUs)
	assert.Equal(t, uint64(len(first)+len(second)), st.BytesIn)
}

func TestDispatchExerciseFilter(t *testing.T) {
	c := newCollector()
	d := NewDispatcher(ModeUDP, DispatcherConfig{Exercise: 1}, c)

	buf := append(comment(t, 2, "other"), comment(t, 1, "ours")...)
	assert.Equal(t, 1, d.Dispatch(context.Background(), buf, nil))
	assert.Equal(t, uint64(1), d.Stats().Filtered)
}

func TestDispatchMalformed(t *testing.T) {
	tests := []struct {
		name      string
		buf       func(t *testing.T) []byte
		delivered int
	}{
		{"trailing garbage", func(t *testing.T) []byte { return append(comment(t, 1, "ok"), 0x07, 0x01) }, 1},
		{"short header", func(*testing.T) []byte { return []byte{7, 1, 22} }, 0},
		{"length past end", func(t *testing.T) []byte {
			b := comment(t, 1, "ok")
			b[9] += 4
			return b
		}, 0},
		{"body shorter than layout", func(t *testing.T) []byte {
			b := comment(t, 1, "ok")
			b = b[:20]
			b[8], b[9] = 0, 20
			return b
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(ModeUDP, DispatcherConfig{}, newCollector())
			assert.Equal(t, tt.delivered, d.Dispatch(context.Background(), tt.buf(t), nil))
			assert.Equal(t, uint64(1), d.Stats().DecodeErrors)
		})
	}
}

func TestDispatchMaxPDUSize(t *testing.T) {
	d := NewDispatcher(ModeUDP, DispatcherConfig{MaxPDUSize: 40}, newCollector())
	assert.Equal(t, 0, d.Dispatch(context.Background(), comment(t, 1, "this text is too long"), nil))
	assert.Equal(t, uint64(1), d.Stats().DecodeErrors)
}

func TestDispatchUnknownKindIsDelivered(t *testing.T) {
	c := newCollector()
	d := NewDispatcher(ModeUDP, DispatcherConfig{Registry: pdu.NewRegistry()}, c)

	raw := comment(t, 1, "relay me")
	require.Equal(t, 1, d.Dispatch(context.Background(), raw, nil))
	u, ok := c.got[0].PDU.(*pdu.Unknown)
	require.True(t, ok)

	again, err := pdu.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestReadPDU(t *testing.T) {
	a := comment(t, 1, "a")
	b := comment(t, 1, "bb")
	r := bytes.NewReader(append(append([]byte{}, a...), b...))
	ctx := context.Background()

	got, err := ReadPDU(ctx, r, 0)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	got, err = ReadPDU(ctx, r, 0)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	_, err = ReadPDU(ctx, r, 0)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPDUSkipsOversized(t *testing.T) {
	big := comment(t, 1, "this one is larger than the limit")
	small := comment(t, 1, "ok")
	r := bytes.NewReader(append(append([]byte{}, big...), small...))
	ctx := context.Background()

	_, err := ReadPDU(ctx, r, len(small))
	require.ErrorIs(t, err, pdu.ErrSizeExceeded)

	got, err := ReadPDU(ctx, r, len(small))
	require.NoError(t, err)
	assert.Equal(t, small, got)
}

func TestReadPDURejects(t *testing.T) {
	frame := comment(t, 1, "hello")
	ctx := context.Background()

	short := append([]byte{}, frame...)
	short[8], short[9] = 0, 8
	_, err := ReadPDU(ctx, bytes.NewReader(short), 0)
	assert.ErrorIs(t, err, pdu.ErrFramingMismatch)

	_, err = ReadPDU(ctx, bytes.NewReader(frame[:30]), 0)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	frame := comment(t, 1, "x")
	require.NoError(t, WriteFrame(&buf, frame))
	assert.Equal(t, frame, buf.Bytes())
}

func TestFanout(t *testing.T) {
	a, b := newCollector(), newCollector()
	h := Fanout(a, nil, b)
	d := NewDispatcher(ModeUDP, DispatcherConfig{}, h)

	assert.Equal(t, 1, d.Dispatch(context.Background(), comment(t, 1, "both"), nil))
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)

	assert.Same(t, a, Fanout(nil, a))
}
