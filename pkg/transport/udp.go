package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/net/ipv4"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/metrics"
)

// ErrNoDestination is returned by Send when neither a broadcast address
// nor a multicast group is configured.
var ErrNoDestination = errors.New("transport: no destination configured")

// UDPConfig configures a UDP endpoint.
type UDPConfig struct {
	// Listen is the local address, e.g. ":3000".
	Listen string

	// Broadcast is the send destination, e.g. "255.255.255.255:3000".
	Broadcast string

	// MulticastGroup is joined on the listen port and used as the send
	// destination when Broadcast is empty.
	MulticastGroup string

	// Interface names the multicast NIC. Empty uses the system default.
	Interface string

	// ReadBuffer sets SO_RCVBUF when positive.
	ReadBuffer int

	// Metrics is optional.
	Metrics metrics.TransportMetrics
}

// UDPConn is a DIS endpoint bound to a UDP port. It receives with Serve
// and transmits with Send.
type UDPConn struct {
	conn    *net.UDPConn
	pconn   *ipv4.PacketConn
	dest    *net.UDPAddr
	metrics metrics.TransportMetrics

	closeOnce sync.Once
	closed    atomic.Bool
	sent      counters
}

// ListenUDP binds a UDP endpoint and joins the multicast group if set.
func ListenUDP(ctx context.Context, cfg UDPConfig) (*UDPConn, error) {
	dest, err := sendDestination(cfg)
	if err != nil {
		return nil, err
	}

	lc := net.ListenConfig{Control: socketControl(cfg.Broadcast != "")}
	pc, err := lc.ListenPacket(ctx, "udp4", cfg.Listen)
	if err != nil {
		return nil, fmt.Errorf("listen udp %s: %w", cfg.Listen, err)
	}
	conn := pc.(*net.UDPConn)

	c := &UDPConn{conn: conn, pconn: ipv4.NewPacketConn(conn), dest: dest, metrics: cfg.Metrics}

	if cfg.ReadBuffer > 0 {
		if err := conn.SetReadBuffer(cfg.ReadBuffer); err != nil {
			logger.Warn("Failed to set UDP read buffer", logger.Bytes(cfg.ReadBuffer), logger.Err(err))
		}
	}

	if cfg.MulticastGroup != "" {
		if err := c.joinGroup(cfg.MulticastGroup, cfg.Interface); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	logger.Info("UDP endpoint bound",
		logger.Listen(conn.LocalAddr().String()),
		logger.Broadcast(cfg.Broadcast),
		logger.Multicast(cfg.MulticastGroup))
	return c, nil
}

func sendDestination(cfg UDPConfig) (*net.UDPAddr, error) {
	switch {
	case cfg.Broadcast != "":
		addr, err := net.ResolveUDPAddr("udp4", cfg.Broadcast)
		if err != nil {
			return nil, fmt.Errorf("broadcast address %q: %w", cfg.Broadcast, err)
		}
		return addr, nil
	case cfg.MulticastGroup != "":
		_, port, err := net.SplitHostPort(cfg.Listen)
		if err != nil {
			return nil, fmt.Errorf("listen address %q: %w", cfg.Listen, err)
		}
		addr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(cfg.MulticastGroup, port))
		if err != nil {
			return nil, fmt.Errorf("multicast group %q: %w", cfg.MulticastGroup, err)
		}
		return addr, nil
	default:
		return nil, nil
	}
}

func (c *UDPConn) joinGroup(group, ifname string) error {
	ip := net.ParseIP(group)
	if ip == nil || !ip.IsMulticast() {
		return fmt.Errorf("multicast group %q is not a multicast address", group)
	}
	var ifi *net.Interface
	if ifname != "" {
		var err error
		if ifi, err = net.InterfaceByName(ifname); err != nil {
			return fmt.Errorf("multicast interface %q: %w", ifname, err)
		}
		if err := c.pconn.SetMulticastInterface(ifi); err != nil {
			return fmt.Errorf("set multicast interface: %w", err)
		}
	}
	if err := c.pconn.JoinGroup(ifi, &net.UDPAddr{IP: ip}); err != nil {
		return fmt.Errorf("join multicast group %s: %w", group, err)
	}
	if err := c.pconn.SetMulticastLoopback(true); err != nil {
		logger.Debug("Failed to enable multicast loopback", logger.Err(err))
	}
	return nil
}

// LocalAddr returns the bound address.
func (c *UDPConn) LocalAddr() net.Addr { return c.conn.LocalAddr() }

// Destination returns the send address, or nil if sends are disabled.
func (c *UDPConn) Destination() net.Addr {
	if c.dest == nil {
		return nil
	}
	return c.dest
}

// Serve reads datagrams and hands them to d until ctx is cancelled or the
// connection is closed. It returns nil on either.
func (c *UDPConn) Serve(ctx context.Context, d *Dispatcher) error {
	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	buf := make([]byte, maxDatagram)
	for {
		n, peer, err := c.conn.ReadFromUDP(buf)
		if err != nil {
			if c.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read udp: %w", err)
		}
		if n == 0 {
			continue
		}
		d.Dispatch(ctx, buf[:n], peer)
	}
}

// Send marshals p and writes it to the configured destination.
func (c *UDPConn) Send(ctx context.Context, p pdu.PDU) error {
	b, err := pdu.Marshal(p)
	if err != nil {
		return err
	}
	if err := c.WriteRaw(ctx, b); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.RecordSent(pdu.DefaultRegistry.Name(p.Kind()), len(b))
	}
	return nil
}

// WriteRaw writes b unchanged to the configured destination.
func (c *UDPConn) WriteRaw(ctx context.Context, b []byte) error {
	if c.dest == nil {
		return ErrNoDestination
	}
	return c.WriteTo(ctx, b, c.dest)
}

// WriteTo writes b to addr.
func (c *UDPConn) WriteTo(ctx context.Context, b []byte, addr *net.UDPAddr) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed.Load() {
		return ErrClosed
	}
	n, err := c.conn.WriteToUDP(b, addr)
	if err != nil {
		return fmt.Errorf("write udp %s: %w", addr, err)
	}
	c.sent.sent.Add(1)
	c.sent.bytesOut.Add(uint64(n))
	return nil
}

// SendStats returns the send counters.
func (c *UDPConn) SendStats() Stats { return c.sent.snapshot() }

// Close releases the socket. It is safe to call more than once.
func (c *UDPConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		err = c.conn.Close()
	})
	return err
}

// Port returns the bound port.
func (c *UDPConn) Port() int {
	_, port, _ := net.SplitHostPort(c.conn.LocalAddr().String())
	n, _ := strconv.Atoi(port)
	return n
}
