package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/metrics"
)

// TCPConfig configures a TCP PDU listener.
type TCPConfig struct {
	// Listen is the local address, e.g. ":3000".
	Listen string

	// MaxPDUSize bounds accepted frames. Larger ones are skipped by length
	// and counted; the connection stays up.
	MaxPDUSize int

	// ReadTimeout bounds the wait for each frame. Zero waits forever.
	ReadTimeout time.Duration

	// MaxConnections limits concurrent peers. Zero means unlimited.
	MaxConnections int

	// ShutdownTimeout bounds the wait for connections to drain on Stop.
	ShutdownTimeout time.Duration
}

// TCPServer accepts PDU streams and dispatches every frame.
//
// All exported methods are safe for concurrent use. Shutdown is
// idempotent.
type TCPServer struct {
	cfg TCPConfig

	mu       sync.RWMutex
	listener net.Listener
	ready    chan struct{}

	shutdownOnce sync.Once
	shutdown     chan struct{}
	cancel       context.CancelFunc

	wg      sync.WaitGroup
	count   atomic.Int32
	conns   sync.Map // remote address -> net.Conn
	limiter chan struct{}
}

// NewTCPServer returns a stopped server. Call Serve to start it.
func NewTCPServer(cfg TCPConfig) *TCPServer {
	s := &TCPServer{
		cfg:      cfg,
		ready:    make(chan struct{}),
		shutdown: make(chan struct{}),
	}
	if cfg.MaxConnections > 0 {
		s.limiter = make(chan struct{}, cfg.MaxConnections)
	}
	if s.cfg.ShutdownTimeout <= 0 {
		s.cfg.ShutdownTimeout = 5 * time.Second
	}
	return s
}

// Serve runs the accept loop until ctx is cancelled or Stop is called.
func (s *TCPServer) Serve(ctx context.Context, d *Dispatcher) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen tcp %s: %w", s.cfg.Listen, err)
	}

	connCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	s.mu.Lock()
	s.listener = ln
	s.cancel = cancel
	s.mu.Unlock()
	close(s.ready)

	select {
	case <-s.shutdown:
		_ = ln.Close()
		return nil
	default:
	}
	logger.Info("TCP listener started", logger.Listen(ln.Addr().String()))

	stop := context.AfterFunc(ctx, s.initiateShutdown)
	defer stop()

	for {
		if s.limiter != nil {
			select {
			case s.limiter <- struct{}{}:
			case <-s.shutdown:
				return s.drain()
			}
		}

		conn, err := ln.Accept()
		if err != nil {
			s.release()
			select {
			case <-s.shutdown:
				return s.drain()
			default:
				logger.Debug("Error accepting TCP connection", logger.Err(err))
				continue
			}
		}
		if tcp, ok := conn.(*net.TCPConn); ok {
			_ = tcp.SetNoDelay(true)
		}

		addr := conn.RemoteAddr().String()
		s.wg.Add(1)
		s.count.Add(1)
		s.conns.Store(addr, conn)
		logger.Debug("TCP peer connected", logger.Peer(addr), logger.Count(int(s.count.Load())))

		go func() {
			defer func() {
				s.conns.Delete(addr)
				_ = conn.Close()
				s.count.Add(-1)
				s.release()
				s.wg.Done()
				logger.Debug("TCP peer disconnected", logger.Peer(addr), logger.Count(int(s.count.Load())))
			}()
			s.serveConn(connCtx, conn, d)
		}()
	}
}

func (s *TCPServer) release() {
	if s.limiter != nil {
		<-s.limiter
	}
}

func (s *TCPServer) serveConn(ctx context.Context, conn net.Conn, d *Dispatcher) {
	peer := conn.RemoteAddr()
	for ctx.Err() == nil {
		readCtx, cancel := ctx, context.CancelFunc(func() {})
		if s.cfg.ReadTimeout > 0 {
			readCtx, cancel = context.WithTimeout(ctx, s.cfg.ReadTimeout)
		}
		frame, err := ReadPDU(readCtx, conn, s.cfg.MaxPDUSize)
		cancel()

		var se *pdu.SizeError
		switch {
		case err == nil:
			d.DispatchFrame(ctx, frame, peer)
		case errors.As(err, &se):
			d.decodeError(ctx, "size", err, peer.String())
		default:
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				logger.Debug("Closing TCP stream", logger.Peer(peer.String()), logger.Err(err))
				var fe *pdu.FramingError
				if errors.As(err, &fe) {
					d.decodeError(ctx, "stream", err, peer.String())
				}
			}
			return
		}
	}
}

func (s *TCPServer) initiateShutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdown)
		s.mu.Lock()
		if s.listener != nil {
			_ = s.listener.Close()
		}
		cancel := s.cancel
		s.mu.Unlock()

		deadline := time.Now().Add(100 * time.Millisecond)
		s.conns.Range(func(_, v any) bool {
			_ = v.(net.Conn).SetReadDeadline(deadline)
			return true
		})
		if cancel != nil {
			cancel()
		}
	})
}

func (s *TCPServer) drain() error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("TCP listener stopped")
		return nil
	case <-time.After(s.cfg.ShutdownTimeout):
		remaining := s.count.Load()
		s.conns.Range(func(_, v any) bool {
			_ = v.(net.Conn).Close()
			return true
		})
		return fmt.Errorf("tcp shutdown timeout: %d connections force-closed", remaining)
	}
}

// Stop begins shutdown and waits for connections to drain or ctx to end.
func (s *TCPServer) Stop(ctx context.Context) error {
	s.initiateShutdown()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Addr blocks until the listener is bound and returns its address.
func (s *TCPServer) Addr() net.Addr {
	<-s.ready
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listener.Addr()
}

// ActiveConnections returns the number of connected peers.
func (s *TCPServer) ActiveConnections() int { return int(s.count.Load()) }

// TCPSender writes PDUs to a single TCP peer.
type TCPSender struct {
	mu      sync.Mutex
	conn    net.Conn
	metrics metrics.TransportMetrics
	sent    counters
	closed  atomic.Bool
}

// DialTCP connects to a TCP PDU listener.
func DialTCP(ctx context.Context, addr string, m metrics.TransportMetrics) (*TCPSender, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial tcp %s: %w", addr, err)
	}
	return &TCPSender{conn: conn, metrics: m}, nil
}

// Send marshals p and writes it as one frame.
func (t *TCPSender) Send(ctx context.Context, p pdu.PDU) error {
	b, err := pdu.Marshal(p)
	if err != nil {
		return err
	}
	if err := t.WriteRaw(ctx, b); err != nil {
		return err
	}
	if t.metrics != nil {
		t.metrics.RecordSent(pdu.DefaultRegistry.Name(p.Kind()), len(b))
	}
	return nil
}

// WriteRaw writes b unchanged. Concurrent calls do not interleave.
func (t *TCPSender) WriteRaw(ctx context.Context, b []byte) error {
	if t.closed.Load() {
		return ErrClosed
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if dl, ok := ctx.Deadline(); ok {
		_ = t.conn.SetWriteDeadline(dl)
		defer func() { _ = t.conn.SetWriteDeadline(time.Time{}) }()
	}
	if err := WriteFrame(t.conn, b); err != nil {
		return fmt.Errorf("write tcp: %w", err)
	}
	t.sent.sent.Add(1)
	t.sent.bytesOut.Add(uint64(len(b)))
	return nil
}

// SendStats returns the send counters.
func (t *TCPSender) SendStats() Stats { return t.sent.snapshot() }

// Close closes the connection.
func (t *TCPSender) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	return t.conn.Close()
}
