package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the OpenDIS configuration file.

Checks for syntax errors, missing required fields, and invalid values.

Examples:
  # Validate default config
  opendis config validate

  # Validate specific config file
  opendis config validate --config /etc/opendis/config.yaml`,
	RunE: runConfigValidate,
}

// warnings lists settings that are valid but probably not intended.
func warnings(cfg *config.Config) []string {
	var w []string
	if cfg.Transport.Mode == "udp" && cfg.Transport.Broadcast == "" && cfg.Transport.MulticastGroup == "" {
		w = append(w, "No transport.broadcast or transport.multicast_group: send and replay need --to")
	}
	if cfg.Recorder.Enabled && cfg.Recorder.InMemory {
		w = append(w, "Recorder is in memory: sessions are lost on exit")
	}
	if cfg.Archive.Bucket == "" {
		w = append(w, "archive.bucket not configured: export needs --bucket")
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		w = append(w, "Telemetry enabled without an endpoint")
	}
	return w
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	displayPath := configPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file: %s\n", displayPath)
	_, _ = fmt.Fprintln(out, "Validation: OK")

	if w := warnings(cfg); len(w) > 0 {
		_, _ = fmt.Fprintln(out, "\nWarnings:")
		for _, line := range w {
			_, _ = fmt.Fprintf(out, "  - %s\n", line)
		}
	}

	_, _ = fmt.Fprintf(out, "\nConfiguration summary:\n")
	_, _ = fmt.Fprintf(out, "  Transport:       %s %s\n", cfg.Transport.Mode, cfg.Transport.Listen)
	_, _ = fmt.Fprintf(out, "  Exercise:        %d (protocol version %d)\n", cfg.DIS.ExerciseID, cfg.DIS.ProtocolVersion)
	_, _ = fmt.Fprintf(out, "  API port:        %d\n", cfg.API.Port)
	_, _ = fmt.Fprintf(out, "  Log level:       %s\n", cfg.Logging.Level)

	return nil
}
