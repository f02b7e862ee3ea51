package config

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/output"
	"github.com/marmos91/opendis/pkg/config"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Display the effective OpenDIS configuration: the file, environment
overrides and defaults merged together.

Examples:
  # Show as YAML
  opendis config show

  # Show as JSON
  opendis config show --output json

  # Show with an environment override applied
  OPENDIS_TRANSPORT_MODE=tcp opendis config show`,
	RunE: runConfigShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml|json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(showOutput)
	if err != nil {
		return err
	}

	if format == output.FormatJSON {
		return output.PrintJSON(cmd.OutOrStdout(), cfg)
	}
	return output.PrintYAML(cmd.OutOrStdout(), cfg)
}
