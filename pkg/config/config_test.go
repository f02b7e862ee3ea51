package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/internal/bytesize"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
dis:
  exercise_id: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, uint8(3), cfg.DIS.ExerciseID)
	assert.Equal(t, uint8(7), cfg.DIS.ProtocolVersion)
	assert.Equal(t, "udp", cfg.Transport.Mode)
	assert.Equal(t, ":3000", cfg.Transport.Listen)
	assert.Equal(t, bytesize.MiB, cfg.Transport.ReadBuffer)
	assert.Equal(t, 8*bytesize.KiB, cfg.Transport.MaxPDUSize)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.True(t, cfg.API.IsEnabled())
}

func TestLoad_ParsesSizesAndDurations(t *testing.T) {
	path := writeConfig(t, `
transport:
  read_buffer: 4MiB
  max_pdu_size: 1500
  read_timeout: 250ms
recorder:
  value_log_file_size: 16MiB
shutdown_timeout: 5s
api:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4*bytesize.MiB, cfg.Transport.ReadBuffer)
	assert.Equal(t, bytesize.ByteSize(1500), cfg.Transport.MaxPDUSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Transport.ReadTimeout)
	assert.Equal(t, 16*bytesize.MiB, cfg.Recorder.ValueLogFileSize)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.API.IsEnabled())
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "logging: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OPENDIS_TRANSPORT_LISTEN", ":3001")
	t.Setenv("OPENDIS_DIS_EXERCISE_ID", "9")
	t.Setenv("OPENDIS_TRANSPORT_READ_BUFFER", "2MiB")
	t.Setenv("OPENDIS_TELEMETRY_PROFILING_PROFILE_TYPES", "cpu,goroutines")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.Transport.Listen)
	assert.Equal(t, uint8(9), cfg.DIS.ExerciseID)
	assert.Equal(t, 2*bytesize.MiB, cfg.Transport.ReadBuffer)
	assert.Equal(t, []string{"cpu", "goroutines"}, cfg.Telemetry.Profiling.ProfileTypes)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "transport:\n  mode: udp\n")
	t.Setenv("OPENDIS_TRANSPORT_MODE", "tcp")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tcp", cfg.Transport.Mode)
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "dis:\n  protocol_version: 4\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENDIS_TEST_ENV_FILE=from-file\n"), 0o644))
	t.Setenv("OPENDIS_TEST_ENV_FILE", "")
	require.NoError(t, os.Unsetenv("OPENDIS_TEST_ENV_FILE"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("OPENDIS_TEST_ENV_FILE"))

	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.DIS.SiteID = 42
	cfg.Transport.MulticastGroup = "239.1.2.3"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := MustLoad("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opendis init")

	_, err = MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestGetConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "opendis"), GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "opendis", "config.yaml"), GetDefaultConfigPath())
	assert.False(t, DefaultConfigExists())
}
