package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const configTemplate = `# OpenDIS Configuration File
#
# Every value below is the default. Any key can be overridden with an
# environment variable: OPENDIS_<SECTION>_<KEY>, e.g.
# OPENDIS_TRANSPORT_LISTEN=:3001 or OPENDIS_DIS_EXERCISE_ID=4.

logging:
  # DEBUG, INFO, WARN or ERROR
  level: INFO
  # text or json
  format: text
  # stdout, stderr or a file path
  output: stdout

telemetry:
  enabled: false
  endpoint: localhost:4317
  insecure: false
  sample_rate: 1.0
  profiling:
    enabled: false
    endpoint: http://localhost:4040
    profile_types: [cpu, alloc_objects, inuse_space, goroutines]

metrics:
  enabled: false
  port: 9090

api:
  enabled: true
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  idle_timeout: 60s
  stream_buffer: 256

dis:
  # Identity used for PDUs this process sends.
  exercise_id: 1
  # 5 (IEEE 1278.1-1995), 6 (IEEE 1278.1a-1998) or 7 (IEEE 1278.1-2012)
  protocol_version: 7
  site_id: 1
  application_id: 1
  # Drop received PDUs whose exercise differs from exercise_id.
  filter_exercise: false
  legacy_timestamps: false

transport:
  # udp or tcp
  mode: udp
  listen: ":3000"
  # broadcast: 255.255.255.255:3000
  # multicast_group: 239.1.2.3
  # interface: eth0
  read_buffer: 1MiB
  max_pdu_size: 8KiB
  read_timeout: 0s

recorder:
  enabled: false
  path: ./data/recordings
  in_memory: false
  value_log_file_size: 64MiB
  sync_writes: false

archive:
  # bucket: dis-recordings
  prefix: sessions/
  region: us-east-1
  # endpoint: http://localhost:4566
  path_style: false

shutdown_timeout: 30s
`

// InitConfig writes the commented default configuration to the default
// path. An existing file is kept unless force is set.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	return path, InitConfigToPath(path, force)
}

// InitConfigToPath writes the commented default configuration to path.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
