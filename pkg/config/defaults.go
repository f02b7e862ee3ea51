package config

import (
	"strings"
	"time"

	"github.com/marmos91/opendis/internal/bytesize"
	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/internal/telemetry"
)

const (
	// MaxPDUSize is the largest PDU the protocol allows.
	MaxPDUSize = 8 * bytesize.KiB

	defaultListen          = ":3000"
	defaultMetricsPort     = 9090
	defaultShutdownTimeout = 30 * time.Second
)

// ApplyDefaults replaces zero values with defaults. Explicit values are kept.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
	cfg.API.ApplyDefaults()
	applyDISDefaults(&cfg.DIS)
	applyTransportDefaults(&cfg.Transport)
	applyRecorderDefaults(&cfg.Recorder)
	applyArchiveDefaults(&cfg.Archive)

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)
	if cfg.Level == "WARNING" {
		cfg.Level = "WARN"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
	if cfg.Profiling.Endpoint == "" {
		cfg.Profiling.Endpoint = "http://localhost:4040"
	}
	if len(cfg.Profiling.ProfileTypes) == 0 {
		cfg.Profiling.ProfileTypes = []string{"cpu", "alloc_objects", "inuse_space", "goroutines"}
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultMetricsPort
	}
}

func applyDISDefaults(cfg *DISConfig) {
	if cfg.ExerciseID == 0 {
		cfg.ExerciseID = 1
	}
	if cfg.ProtocolVersion == 0 {
		cfg.ProtocolVersion = 7
	}
	if cfg.SiteID == 0 {
		cfg.SiteID = 1
	}
	if cfg.ApplicationID == 0 {
		cfg.ApplicationID = 1
	}
}

func applyTransportDefaults(cfg *TransportConfig) {
	if cfg.Mode == "" {
		cfg.Mode = "udp"
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}
	if cfg.ReadBuffer == 0 {
		cfg.ReadBuffer = bytesize.MiB
	}
	if cfg.MaxPDUSize == 0 {
		cfg.MaxPDUSize = MaxPDUSize
	}
}

func applyRecorderDefaults(cfg *RecorderConfig) {
	if cfg.ValueLogFileSize == 0 {
		cfg.ValueLogFileSize = 64 * bytesize.MiB
	}
}

func applyArchiveDefaults(cfg *ArchiveConfig) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "sessions/"
	}
}

// GetDefaultConfig returns a configuration with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// LoggerConfig converts the logging section for logger.Init.
func (c LoggingConfig) LoggerConfig() logger.Config {
	return logger.Config{Level: c.Level, Format: c.Format, Output: c.Output}
}

// TracingConfig converts the telemetry section for telemetry.Init.
func (c TelemetryConfig) TracingConfig(version string) telemetry.Config {
	tc := telemetry.DefaultConfig()
	tc.Enabled = c.Enabled
	tc.ServiceVersion = version
	tc.Endpoint = c.Endpoint
	tc.Insecure = c.Insecure
	tc.SampleRate = c.SampleRate
	return tc
}

// ProfilingConfig converts the profiling section for telemetry.InitProfiling.
func (c TelemetryConfig) ProfilingConfig(version string) telemetry.ProfilingConfig {
	return telemetry.ProfilingConfig{
		Enabled:        c.Profiling.Enabled,
		ServiceName:    telemetry.DefaultConfig().ServiceName,
		ServiceVersion: version,
		Endpoint:       c.Profiling.Endpoint,
		ProfileTypes:   c.Profiling.ProfileTypes,
	}
}
