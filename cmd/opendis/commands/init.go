package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/prompt"
	"github.com/marmos91/opendis/pkg/config"
)

var (
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a configuration file",
	Long: `Initialize an OpenDIS configuration file.

By default the commented sample configuration is written to
$XDG_CONFIG_HOME/opendis/config.yaml. Use --config to choose another path
and --interactive to answer a few questions instead.

Examples:
  # Initialize with default location
  opendis init

  # Initialize with custom path
  opendis init --config /etc/opendis/config.yaml

  # Walk through the main settings
  opendis init --interactive

  # Force overwrite existing config
  opendis init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Prompt for the main settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := GetConfigFile()
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	var err error
	if initInteractive {
		err = initInteractiveConfig(configPath)
	} else {
		err = config.InitConfigToPath(configPath, initForce)
	}
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Println("Aborted.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to customize your setup")
	fmt.Println("  2. Start receiving with: opendis listen")
	fmt.Printf("  3. Or specify custom config: opendis listen --config %s\n", configPath)
	return nil
}

func initInteractiveConfig(path string) error {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	cfg := config.GetDefaultConfig()
	t := &cfg.Transport

	mode, err := prompt.Select("Transport", []string{"udp", "tcp"})
	if err != nil {
		return err
	}
	t.Mode = mode

	if t.Listen, err = prompt.Address("Listen address", t.Listen, false); err != nil {
		return err
	}

	if mode == "udp" {
		dest, err := prompt.Select("Send PDUs to", []string{"broadcast", "multicast", "nowhere"})
		if err != nil {
			return err
		}
		switch dest {
		case "broadcast":
			if t.Broadcast, err = prompt.Address("Broadcast address", "255.255.255.255:3000", false); err != nil {
				return err
			}
		case "multicast":
			if t.MulticastGroup, err = prompt.Input("Multicast group", "239.1.2.3"); err != nil {
				return err
			}
		}
	}

	exercise, err := prompt.Uint("Exercise ID", uint64(cfg.DIS.ExerciseID), 1, 255)
	if err != nil {
		return err
	}
	cfg.DIS.ExerciseID = uint8(exercise)

	site, err := prompt.Uint("Site ID", uint64(cfg.DIS.SiteID), 0, 65535)
	if err != nil {
		return err
	}
	cfg.DIS.SiteID = uint16(site)

	if cfg.Recorder.Enabled, err = prompt.Confirm("Record received PDUs"); err != nil {
		return err
	}
	if cfg.Recorder.Enabled {
		if cfg.Recorder.Path, err = prompt.Input("Recorder directory", "./data/recordings"); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	return config.SaveConfig(cfg, path)
}
