package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/internal/bytesize"
)

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	require.NoError(t, Validate(GetDefaultConfig()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.Logging.Level = "TRACE" }, "oneof"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "Logging.Format"},
		{"protocol version", func(c *Config) { c.DIS.ProtocolVersion = 3 }, "DIS.ProtocolVersion failed 'oneof=5 6 7'"},
		{"exercise zero", func(c *Config) { c.DIS.ExerciseID = 0 }, "DIS.ExerciseID"},
		{"transport mode", func(c *Config) { c.Transport.Mode = "sctp" }, "Transport.Mode"},
		{"listen address", func(c *Config) { c.Transport.Listen = "3000" }, "transport.listen"},
		{"pdu size above limit", func(c *Config) { c.Transport.MaxPDUSize = 9 * bytesize.KiB }, "protocol limit"},
		{"pdu size below header", func(c *Config) { c.Transport.MaxPDUSize = 8 }, "smaller than a PDU header"},
		{"multicast unicast group", func(c *Config) { c.Transport.MulticastGroup = "10.0.0.1" }, "not a multicast address"},
		{"multicast over tcp", func(c *Config) {
			c.Transport.Mode = "tcp"
			c.Transport.MulticastGroup = "239.1.2.3"
		}, "requires udp mode"},
		{"broadcast without port", func(c *Config) { c.Transport.Broadcast = "255.255.255.255" }, "transport.broadcast"},
		{"recorder without path", func(c *Config) { c.Recorder.Enabled = true }, "recorder.path"},
		{"sample rate", func(c *Config) { c.Telemetry.SampleRate = 1.5 }, "Telemetry.SampleRate"},
		{"api port", func(c *Config) { c.API.Port = 70000 }, "API.Port"},
		{"port conflict", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Port = c.API.Port
		}, "metrics.port and api.port"},
		{"archive endpoint", func(c *Config) { c.Archive.Endpoint = "not a url" }, "Archive.Endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Accepted(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"in-memory recorder", func(c *Config) {
			c.Recorder.Enabled = true
			c.Recorder.InMemory = true
		}},
		{"recorder with path", func(c *Config) {
			c.Recorder.Enabled = true
			c.Recorder.Path = t.TempDir()
		}},
		{"multicast", func(c *Config) { c.Transport.MulticastGroup = "239.1.2.3" }},
		{"protocol 1995", func(c *Config) { c.DIS.ProtocolVersion = 5 }},
		{"metrics on other port", func(c *Config) { c.Metrics.Enabled = true }},
		{"same ports with api disabled", func(c *Config) {
			off := false
			c.API.Enabled = &off
			c.Metrics.Enabled = true
			c.Metrics.Port = c.API.Port
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			assert.NoError(t, Validate(cfg))
		})
	}
}
