package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/internal/telemetry"
	"github.com/marmos91/opendis/pkg/config"
	"github.com/marmos91/opendis/pkg/dis/enums"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/dis/timestamp"
	"github.com/marmos91/opendis/pkg/metrics"
	"github.com/marmos91/opendis/pkg/recorder"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	if err := logger.Init(cfg.Logging.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfig loads the configuration with defaults when no file exists and
// initializes the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := InitLogger(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getConfigSource describes where the configuration came from.
func getConfigSource(configFile string) string {
	if configFile != "" {
		return configFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return "defaults"
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// initObservability starts tracing and profiling as configured and returns
// a function that flushes and stops both.
func initObservability(ctx context.Context, cfg *config.Config) (func(), error) {
	traceShutdown, err := telemetry.Init(ctx, cfg.Telemetry.TracingConfig(Version))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	profilingStop, err := telemetry.InitProfiling(cfg.Telemetry.ProfilingConfig(Version))
	if err != nil {
		_ = traceShutdown(ctx)
		return nil, fmt.Errorf("failed to initialize profiling: %w", err)
	}

	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	}
	if cfg.Telemetry.Profiling.Enabled {
		logger.Info("Profiling enabled", "endpoint", cfg.Telemetry.Profiling.Endpoint)
	}

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := traceShutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", logger.Err(err))
		}
		if err := profilingStop(); err != nil {
			logger.Error("profiling shutdown error", logger.Err(err))
		}
	}, nil
}

// openRecorder opens the session store described by cfg.
func openRecorder(cfg *config.Config, m metrics.RecorderMetrics) (*recorder.Store, error) {
	store, err := recorder.Open(recorder.Config{
		Path:             cfg.Recorder.Path,
		InMemory:         cfg.Recorder.InMemory,
		ValueLogFileSize: int64(cfg.Recorder.ValueLogFileSize),
		SyncWrites:       cfg.Recorder.SyncWrites,
		Metrics:          m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open recorder: %w", err)
	}
	return store, nil
}

// stamp fills the header fields this process originates: protocol
// version, exercise and timestamp.
func stamp(dis config.DISConfig, p pdu.PDU) {
	h := p.PDUHeader()
	h.ProtocolVersion = enums.ProtocolVersion(dis.ProtocolVersion)
	h.ExerciseID = dis.ExerciseID
	if dis.LegacyTimestamps {
		h.Timestamp = timestamp.Legacy(timestamp.SystemClock())
	} else {
		h.Timestamp = timestamp.Now()
	}
}
