package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marmos91/opendis/internal/bytesize"
)

func TestApplyDefaults_Logging(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "warning"}}
	ApplyDefaults(cfg)

	assert.Equal(t, "WARN", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		DIS:             DISConfig{ExerciseID: 4, ProtocolVersion: 6, SiteID: 10, ApplicationID: 20},
		Transport:       TransportConfig{Mode: "TCP", Listen: ":4000", MaxPDUSize: 1500},
		ShutdownTimeout: time.Second,
	}
	ApplyDefaults(cfg)

	assert.Equal(t, uint8(4), cfg.DIS.ExerciseID)
	assert.Equal(t, uint8(6), cfg.DIS.ProtocolVersion)
	assert.Equal(t, uint16(10), cfg.DIS.SiteID)
	assert.Equal(t, "tcp", cfg.Transport.Mode)
	assert.Equal(t, ":4000", cfg.Transport.Listen)
	assert.Equal(t, bytesize.ByteSize(1500), cfg.Transport.MaxPDUSize)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, uint8(1), cfg.DIS.ExerciseID)
	assert.Equal(t, uint8(7), cfg.DIS.ProtocolVersion)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, 64*bytesize.MiB, cfg.Recorder.ValueLogFileSize)
	assert.Equal(t, "us-east-1", cfg.Archive.Region)
	assert.Equal(t, "sessions/", cfg.Archive.Prefix)
	assert.Equal(t, 1.0, cfg.Telemetry.SampleRate)
	assert.NotEmpty(t, cfg.Telemetry.Profiling.ProfileTypes)
}

func TestConversions(t *testing.T) {
	cfg := GetDefaultConfig()

	lc := cfg.Logging.LoggerConfig()
	assert.Equal(t, "INFO", lc.Level)
	assert.Equal(t, "stdout", lc.Output)

	tc := cfg.Telemetry.TracingConfig("1.2.3")
	assert.Equal(t, "opendis", tc.ServiceName)
	assert.Equal(t, "1.2.3", tc.ServiceVersion)
	assert.False(t, tc.Enabled)

	pc := cfg.Telemetry.ProfilingConfig("1.2.3")
	assert.Equal(t, "http://localhost:4040", pc.Endpoint)
	assert.Equal(t, cfg.Telemetry.Profiling.ProfileTypes, pc.ProfileTypes)
}
