package commands

import (
	"github.com/spf13/cobra"
)

var recordPrint bool

var recordCmd = &cobra.Command{
	Use:   "record <name>",
	Short: "Listen and record PDUs into a new session",
	Long: `Run the gateway like 'opendis listen' and store every received PDU, with
its receive time, into a new recorder session named <name>.

The session is closed when the command stops. Use 'opendis sessions list'
to find it and 'opendis replay' or 'opendis export' to use it.

Examples:
  # Record the default UDP port
  opendis record range-day-1

  # Record a multicast group into a specific store
  OPENDIS_RECORDER_PATH=/data/dis opendis record night-ops --multicast 239.1.2.3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGateway(cmd.OutOrStdout(), args[0], recordPrint)
	},
}

func init() {
	f := recordCmd.Flags()
	f.StringVar(&listenAddr, "listen", "", "local address (overrides transport.listen)")
	f.StringVar(&listenMode, "mode", "", "udp or tcp (overrides transport.mode)")
	f.StringVar(&listenMulticast, "multicast", "", "multicast group to join (overrides transport.multicast_group)")
	f.Uint8Var(&listenExercise, "exercise", 0, "only accept this exercise id")
	f.BoolVar(&recordPrint, "print", false, "print every decoded PDU as a JSON line")
}
