package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/marmos91/opendis/internal/bytesize"
	"github.com/marmos91/opendis/pkg/api"
)

// EnvPrefix prefixes every environment override, e.g.
// OPENDIS_TRANSPORT_LISTEN=:3001.
const EnvPrefix = "OPENDIS"

// Config is the OpenDIS gateway configuration.
//
// Sources, in order of precedence:
//  1. Environment variables (OPENDIS_*), including those from a .env file
//  2. Configuration file (YAML)
//  3. Default values
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
	Metrics   MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
	API       api.APIConfig   `mapstructure:"api" yaml:"api"`

	// DIS sets the identity this process uses when it originates PDUs.
	DIS DISConfig `mapstructure:"dis" yaml:"dis"`

	Transport TransportConfig `mapstructure:"transport" yaml:"transport"`
	Recorder  RecorderConfig  `mapstructure:"recorder" yaml:"recorder"`
	Archive   ArchiveConfig   `mapstructure:"archive" yaml:"archive"`

	// ShutdownTimeout bounds graceful shutdown of the listener, API and
	// recorder.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0" yaml:"shutdown_timeout"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is DEBUG, INFO, WARN or ERROR, case-insensitive.
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format is text or json.
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr, or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// TelemetryConfig controls OpenTelemetry tracing and Pyroscope profiling.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Endpoint is the OTLP gRPC collector, host:port.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	Insecure bool `mapstructure:"insecure" yaml:"insecure"`

	// SampleRate is the fraction of datagram traces kept.
	SampleRate float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate"`

	Profiling ProfilingConfig `mapstructure:"profiling" yaml:"profiling"`
}

// ProfilingConfig controls Pyroscope continuous profiling.
type ProfilingConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Endpoint is the Pyroscope server URL.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// ProfileTypes lists profiles to collect: cpu, alloc_objects,
	// alloc_space, inuse_objects, inuse_space, goroutines, mutex_count,
	// mutex_duration, block_count, block_duration.
	ProfileTypes []string `mapstructure:"profile_types" yaml:"profile_types"`
}

// MetricsConfig configures the Prometheus endpoint. When disabled no PDU
// metrics are collected.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port serves /metrics. Default: 9090
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// DISConfig is the protocol identity used for originated PDUs.
type DISConfig struct {
	// ExerciseID stamps originated PDUs and, with FilterExercise, selects
	// the received ones. Default: 1
	ExerciseID uint8 `mapstructure:"exercise_id" validate:"min=1" yaml:"exercise_id"`

	// ProtocolVersion is 5 (1995), 6 (1998) or 7 (2012). Default: 7
	ProtocolVersion uint8 `mapstructure:"protocol_version" validate:"oneof=5 6 7" yaml:"protocol_version"`

	// SiteID and ApplicationID form the simulation address of this process.
	SiteID        uint16 `mapstructure:"site_id" yaml:"site_id"`
	ApplicationID uint16 `mapstructure:"application_id" yaml:"application_id"`

	// FilterExercise drops received PDUs from other exercises.
	FilterExercise bool `mapstructure:"filter_exercise" yaml:"filter_exercise"`

	// LegacyTimestamps encodes header timestamps with the microsecond/1.68
	// approximation older gateways emit, instead of exact 2^31 hour units.
	LegacyTimestamps bool `mapstructure:"legacy_timestamps" yaml:"legacy_timestamps"`
}

// TransportConfig selects how PDUs are received and sent.
type TransportConfig struct {
	// Mode is udp or tcp. Default: udp
	Mode string `mapstructure:"mode" validate:"required,oneof=udp tcp" yaml:"mode"`

	// Listen is the local address. Default: ":3000"
	Listen string `mapstructure:"listen" validate:"required" yaml:"listen"`

	// Broadcast is the destination for sent PDUs in UDP mode, e.g.
	// "255.255.255.255:3000". Empty sends nothing unless a multicast group
	// is configured.
	Broadcast string `mapstructure:"broadcast" yaml:"broadcast,omitempty"`

	// MulticastGroup is joined on Listen's port, e.g. "239.1.2.3".
	MulticastGroup string `mapstructure:"multicast_group" validate:"omitempty,ip" yaml:"multicast_group,omitempty"`

	// Interface names the NIC for multicast; empty means the system default.
	Interface string `mapstructure:"interface" yaml:"interface,omitempty"`

	// ReadBuffer is the socket receive buffer. Default: 1MiB
	ReadBuffer bytesize.ByteSize `mapstructure:"read_buffer" yaml:"read_buffer"`

	// MaxPDUSize rejects larger frames. Default and maximum: 8KiB
	MaxPDUSize bytesize.ByteSize `mapstructure:"max_pdu_size" yaml:"max_pdu_size"`

	// ReadTimeout bounds a single TCP frame read. Zero disables it.
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
}

// RecorderConfig controls the BadgerDB session store.
type RecorderConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Path is the BadgerDB directory. Required unless InMemory is set.
	Path string `mapstructure:"path" yaml:"path"`

	InMemory bool `mapstructure:"in_memory" yaml:"in_memory"`

	// ValueLogFileSize caps each badger value log file. Default: 64MiB
	ValueLogFileSize bytesize.ByteSize `mapstructure:"value_log_file_size" yaml:"value_log_file_size"`

	SyncWrites bool `mapstructure:"sync_writes" yaml:"sync_writes"`
}

// ArchiveConfig is the S3 destination for exported sessions.
type ArchiveConfig struct {
	Bucket string `mapstructure:"bucket" yaml:"bucket,omitempty"`
	Prefix string `mapstructure:"prefix" yaml:"prefix,omitempty"`
	Region string `mapstructure:"region" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for MinIO or LocalStack.
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url" yaml:"endpoint,omitempty"`

	// PathStyle forces path-style addressing, which most S3 emulators need.
	PathStyle bool `mapstructure:"path_style" yaml:"path_style"`
}

// Load reads configuration from configPath (or the default location when
// empty), environment variables and defaults, then validates it. A .env
// file in the working directory is applied to the environment first.
func Load(configPath string) (*Config, error) {
	if err := LoadEnvFile(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setupViper(v, configPath)
	registerDefaults(v, GetDefaultConfig())

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load with instructions for a missing configuration file.
func MustLoad(configPath string) (*Config, error) {
	if configPath == "" {
		if !DefaultConfigExists() {
			return nil, fmt.Errorf("no configuration file found at default location: %s\n\n"+
				"Please initialize a configuration file first:\n"+
				"  opendis init\n\n"+
				"Or specify a custom config file:\n"+
				"  opendis <command> --config /path/to/config.yaml",
				GetDefaultConfigPath())
		}
		configPath = GetDefaultConfigPath()
	} else if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("configuration file not found: %s\n\n"+
			"Please create the configuration file:\n"+
			"  opendis init --config %s",
			configPath, configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile applies the variables in path to the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// SaveConfig writes cfg as YAML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// registerDefaults tells viper every key so AutomaticEnv can override keys
// that are absent from the file.
func registerDefaults(v *viper.Viper, d *Config) {
	defaults := map[string]any{
		"logging.level":                     d.Logging.Level,
		"logging.format":                    d.Logging.Format,
		"logging.output":                    d.Logging.Output,
		"telemetry.enabled":                 d.Telemetry.Enabled,
		"telemetry.endpoint":                d.Telemetry.Endpoint,
		"telemetry.insecure":                d.Telemetry.Insecure,
		"telemetry.sample_rate":             d.Telemetry.SampleRate,
		"telemetry.profiling.enabled":       d.Telemetry.Profiling.Enabled,
		"telemetry.profiling.endpoint":      d.Telemetry.Profiling.Endpoint,
		"telemetry.profiling.profile_types": d.Telemetry.Profiling.ProfileTypes,
		"metrics.enabled":                   d.Metrics.Enabled,
		"metrics.port":                      d.Metrics.Port,
		"api.port":                          d.API.Port,
		"api.read_timeout":                  d.API.ReadTimeout,
		"api.write_timeout":                 d.API.WriteTimeout,
		"api.idle_timeout":                  d.API.IdleTimeout,
		"api.stream_buffer":                 d.API.StreamBuffer,
		"dis.exercise_id":                   d.DIS.ExerciseID,
		"dis.protocol_version":              d.DIS.ProtocolVersion,
		"dis.site_id":                       d.DIS.SiteID,
		"dis.application_id":                d.DIS.ApplicationID,
		"dis.filter_exercise":               d.DIS.FilterExercise,
		"dis.legacy_timestamps":             d.DIS.LegacyTimestamps,
		"transport.mode":                    d.Transport.Mode,
		"transport.listen":                  d.Transport.Listen,
		"transport.broadcast":               d.Transport.Broadcast,
		"transport.multicast_group":         d.Transport.MulticastGroup,
		"transport.interface":               d.Transport.Interface,
		"transport.read_buffer":             d.Transport.ReadBuffer,
		"transport.max_pdu_size":            d.Transport.MaxPDUSize,
		"transport.read_timeout":            d.Transport.ReadTimeout,
		"recorder.enabled":                  d.Recorder.Enabled,
		"recorder.path":                     d.Recorder.Path,
		"recorder.in_memory":                d.Recorder.InMemory,
		"recorder.value_log_file_size":      d.Recorder.ValueLogFileSize,
		"recorder.sync_writes":              d.Recorder.SyncWrites,
		"archive.bucket":                    d.Archive.Bucket,
		"archive.prefix":                    d.Archive.Prefix,
		"archive.region":                    d.Archive.Region,
		"archive.endpoint":                  d.Archive.Endpoint,
		"archive.path_style":                d.Archive.PathStyle,
		"shutdown_timeout":                  d.ShutdownTimeout,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetDefault("api.enabled", d.API.IsEnabled())
}

// readConfigFile reports whether a configuration file was read. A missing
// file is not an error.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		byteSizeDecodeHook(),
		durationDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// byteSizeDecodeHook accepts "8KiB"-style strings and plain numbers.
func byteSizeDecodeHook() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(bytesize.ByteSize(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return bytesize.Parse(v)
		case int:
			return bytesize.ByteSize(v), nil
		case int64:
			return bytesize.ByteSize(v), nil
		case uint64:
			return bytesize.ByteSize(v), nil
		case float64:
			return bytesize.ByteSize(v), nil
		default:
			return data, nil
		}
	}
}

// durationDecodeHook accepts "30s"-style strings; bare numbers are
// nanoseconds.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir is $XDG_CONFIG_HOME/opendis, falling back to ~/.config/opendis
// and finally the working directory.
func getConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "opendis")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "opendis")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists reports whether the default configuration file exists.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// GetConfigDir returns the configuration directory.
func GetConfigDir() string { return getConfigDir() }
