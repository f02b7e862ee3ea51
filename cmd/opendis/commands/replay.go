package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/pkg/metrics"
	"github.com/marmos91/opendis/pkg/metrics/prometheus"
)

var (
	replaySpeed float64
	replayTo    string
	replayTCP   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Re-send a recorded session",
	Long: `Re-send every PDU of a recorded session exactly as it was received,
keeping the recorded gaps between PDUs divided by --speed.

A speed of 0 sends as fast as possible.

Examples:
  # Replay in real time to the configured broadcast address
  opendis replay 0b7c...

  # Replay four times faster to one host
  opendis replay 0b7c... --speed 4 --to 10.0.0.5:3000

  # Replay into a TCP listener
  opendis replay 0b7c... --tcp --to sim-host:3001`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1, "playback speed multiplier (0 = no delay)")
	replayCmd.Flags().StringVar(&replayTo, "to", "", "destination host:port (default: transport.broadcast or multicast group)")
	replayCmd.Flags().BoolVar(&replayTCP, "tcp", false, "replay over a TCP stream instead of UDP")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}
	store, err := openRecorder(cfg, prometheus.NewRecorderMetrics())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sender, err := openSender(ctx, cfg, replayTo, replayTCP)
	if err != nil {
		return err
	}
	defer func() { _ = sender.Close() }()

	n, err := store.Replay(ctx, args[0], sender, replaySpeed)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Replayed %d PDU(s) from session %s\n", n, args[0])
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}
