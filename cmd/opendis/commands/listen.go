package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/output"
	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/api"
	"github.com/marmos91/opendis/pkg/api/handlers"
	"github.com/marmos91/opendis/pkg/api/stream"
	"github.com/marmos91/opendis/pkg/config"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/metrics"
	"github.com/marmos91/opendis/pkg/metrics/prometheus"
	"github.com/marmos91/opendis/pkg/recorder"
	"github.com/marmos91/opendis/pkg/transport"
)

var (
	listenAddr      string
	listenMode      string
	listenMulticast string
	listenExercise  uint8
	listenRecord    string
	listenPrint     bool
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive and decode PDUs",
	Long: `Listen for DIS PDUs over UDP (broadcast, unicast or multicast) or a TCP
stream, decode every frame and serve the results.

While running, the HTTP API serves health, per-type statistics, recorded
sessions, and a websocket feed of decoded PDUs at /stream. Prometheus
metrics are exposed when metrics.enabled is set.

Examples:
  # Listen on the default port 3000
  opendis listen

  # Join a multicast group and print every PDU as a JSON line
  opendis listen --multicast 239.1.2.3 --print

  # Accept TCP streams and record them
  opendis listen --mode tcp --listen :3001 --record exercise-7

  # Only keep exercise 3, debug logging
  OPENDIS_LOGGING_LEVEL=DEBUG opendis listen --exercise 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGateway(cmd.OutOrStdout(), listenRecord, listenPrint)
	},
}

func init() {
	f := listenCmd.Flags()
	f.StringVar(&listenAddr, "listen", "", "local address (overrides transport.listen)")
	f.StringVar(&listenMode, "mode", "", "udp or tcp (overrides transport.mode)")
	f.StringVar(&listenMulticast, "multicast", "", "multicast group to join (overrides transport.multicast_group)")
	f.Uint8Var(&listenExercise, "exercise", 0, "only accept this exercise id")
	f.StringVar(&listenRecord, "record", "", "record received PDUs into a new session with this name")
	f.BoolVar(&listenPrint, "print", false, "print every decoded PDU as a JSON line")
}

// applyListenFlags lets command line flags override the loaded transport
// settings.
func applyListenFlags(cfg *config.Config) {
	if listenAddr != "" {
		cfg.Transport.Listen = listenAddr
	}
	if listenMode != "" {
		cfg.Transport.Mode = listenMode
	}
	if listenMulticast != "" {
		cfg.Transport.MulticastGroup = listenMulticast
	}
	if listenExercise != 0 {
		cfg.DIS.ExerciseID = listenExercise
		cfg.DIS.FilterExercise = true
	}
}

// printer writes one JSON line per PDU.
type printer struct{ w io.Writer }

func (p printer) HandlePDU(_ context.Context, d transport.Datagram) {
	if err := output.PrintJSONLine(p.w, stream.NewEvent(d)); err != nil {
		logger.Debug("print failed", logger.Err(err))
	}
}

// receiver is the running UDP or TCP side of the gateway.
type receiver struct {
	serve  func(ctx context.Context, d *transport.Dispatcher) error
	stop   func(ctx context.Context) error
	sender handlers.SendStatsSource
}

func openReceiver(ctx context.Context, cfg *config.Config, m metrics.TransportMetrics) (*receiver, error) {
	t := cfg.Transport
	switch t.Mode {
	case transport.ModeTCP:
		srv := transport.NewTCPServer(transport.TCPConfig{
			Listen:          t.Listen,
			MaxPDUSize:      int(t.MaxPDUSize),
			ReadTimeout:     t.ReadTimeout,
			ShutdownTimeout: cfg.ShutdownTimeout,
		})
		return &receiver{serve: srv.Serve, stop: srv.Stop}, nil
	default:
		conn, err := transport.ListenUDP(ctx, transport.UDPConfig{
			Listen:         t.Listen,
			Broadcast:      t.Broadcast,
			MulticastGroup: t.MulticastGroup,
			Interface:      t.Interface,
			ReadBuffer:     int(t.ReadBuffer),
			Metrics:        m,
		})
		if err != nil {
			return nil, err
		}
		return &receiver{
			serve:  conn.Serve,
			stop:   func(context.Context) error { return conn.Close() },
			sender: conn,
		}, nil
	}
}

// runGateway runs the receiver, the API and the optional recorder until a
// signal arrives or the receiver fails.
func runGateway(out io.Writer, recordName string, printPDUs bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyListenFlags(cfg)
	if recordName != "" {
		cfg.Recorder.Enabled = true
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))

	ctx, cancel := signalContext()
	defer cancel()

	stopObservability, err := initObservability(ctx, cfg)
	if err != nil {
		return err
	}
	defer stopObservability()

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Port); err != nil {
				logger.Error("Metrics server error", logger.Err(err))
			}
		}()
		logger.Info("Metrics enabled", "port", cfg.Metrics.Port)
	} else {
		logger.Info("Metrics collection disabled")
	}
	transportMetrics := prometheus.NewTransportMetrics()

	var (
		store   *recorder.Store
		session *recorder.Session
	)
	if cfg.Recorder.Enabled {
		if store, err = openRecorder(cfg, prometheus.NewRecorderMetrics()); err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("Recorder close error", logger.Err(err))
			}
		}()
	}
	if recordName != "" {
		if session, err = store.StartSession(recordName); err != nil {
			return err
		}
		defer func() {
			if err := session.Close(); err != nil {
				logger.Error("Session close error", logger.Session(session.ID()), logger.Err(err))
			}
		}()
		_, _ = fmt.Fprintf(os.Stderr, "Recording session %s (%s)\n", session.ID(), recordName)
	}

	hub := stream.NewHub(cfg.API.StreamBuffer)
	sinks := []transport.Handler{hub}
	if session != nil {
		sinks = append(sinks, session)
	}
	if printPDUs {
		sinks = append(sinks, printer{w: out})
	}

	dcfg := transport.DispatcherConfig{
		Registry:   pdu.DefaultRegistry,
		MaxPDUSize: int(cfg.Transport.MaxPDUSize),
		Metrics:    transportMetrics,
	}
	if cfg.DIS.FilterExercise {
		dcfg.Exercise = cfg.DIS.ExerciseID
	}
	dispatcher := transport.NewDispatcher(cfg.Transport.Mode, dcfg, transport.Fanout(sinks...))

	recv, err := openReceiver(ctx, cfg, transportMetrics)
	if err != nil {
		return err
	}

	var apiServer *api.Server
	if cfg.API.IsEnabled() {
		deps := api.Deps{
			Version:  Version,
			Registry: pdu.DefaultRegistry,
			Stats:    dispatcher,
			Hub:      hub,
		}
		if recv.sender != nil {
			deps.Sender = recv.sender
		}
		if store != nil {
			deps.Recorder = store
		}
		apiServer = api.NewServer(cfg.API, deps)
		go func() {
			if err := apiServer.Start(ctx); err != nil {
				logger.Error("API server error", logger.Err(err))
			}
		}()
	} else {
		hub.Close()
	}

	serveDone := make(chan error, 1)
	go func() { serveDone <- recv.serve(ctx, dispatcher) }()

	started := time.Now()
	logger.Info("Gateway is running. Press Ctrl+C to stop.",
		logger.Mode(cfg.Transport.Mode), logger.Listen(cfg.Transport.Listen))

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received, initiating graceful shutdown")
		err = <-serveDone
	case err = <-serveDone:
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if stopErr := recv.stop(shutdownCtx); stopErr != nil && !errors.Is(stopErr, transport.ErrClosed) {
		logger.Warn("Receiver stop error", logger.Err(stopErr))
	}
	if apiServer != nil {
		if stopErr := apiServer.Stop(shutdownCtx); stopErr != nil {
			logger.Warn("API server stop error", logger.Err(stopErr))
		}
	}

	stats := dispatcher.Stats()
	logger.Info("Gateway stopped",
		logger.Count(int(stats.PDUs)), "decode_errors", stats.DecodeErrors, "uptime", time.Since(started).Round(time.Second))

	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, transport.ErrClosed) {
		return err
	}
	return nil
}
