package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/output"
	"github.com/marmos91/opendis/internal/cli/prompt"
	"github.com/marmos91/opendis/internal/cli/timeutil"
	"github.com/marmos91/opendis/pkg/recorder"
)

var (
	sessionsOutput string
	sessionsForce  bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded sessions",
	Long: `List, inspect and delete sessions in the recorder store.

The store is opened directly, so these commands cannot run while a gateway
holds the same recorder.path open. Use the /sessions API of the running
gateway instead.

Examples:
  opendis sessions list
  opendis sessions show 0b7c... -o json
  opendis sessions delete 0b7c... --force`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its PDUs",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	sessionsCmd.PersistentFlags().StringVarP(&sessionsOutput, "output", "o", "table", "Output format (table|json|yaml)")
	sessionsDeleteCmd.Flags().BoolVarP(&sessionsForce, "force", "f", false, "Skip confirmation prompt")
	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsDeleteCmd)
}

// sessionList renders sessions as a table.
type sessionList []recorder.SessionInfo

func (l sessionList) Headers() []string {
	return []string{"ID", "Name", "Started", "Duration", "PDUs", "Bytes", "State"}
}

func (l sessionList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{
			s.ID,
			s.Name,
			timeutil.FormatTime(s.StartedAt),
			timeutil.FormatDuration(s.Duration()),
			strconv.FormatUint(s.PDUs, 10),
			strconv.FormatUint(s.Bytes, 10),
			sessionState(s),
		})
	}
	return rows
}

func sessionState(s recorder.SessionInfo) string {
	if s.Active() {
		return "recording"
	}
	return "closed"
}

func sessionFields(s recorder.SessionInfo) [][2]string {
	return [][2]string{
		{"ID", s.ID},
		{"Name", s.Name},
		{"State", sessionState(s)},
		{"Started", timeutil.FormatTime(s.StartedAt)},
		{"Ended", timeutil.FormatTime(s.EndedAt)},
		{"First PDU", timeutil.FormatTime(s.FirstAt)},
		{"Last PDU", timeutil.FormatTime(s.LastAt)},
		{"Duration", timeutil.FormatDuration(s.Duration())},
		{"PDUs", strconv.FormatUint(s.PDUs, 10)},
		{"Bytes", strconv.FormatUint(s.Bytes, 10)},
	}
}

// withStore runs fn against the configured recorder store.
func withStore(fn func(store *recorder.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openRecorder(cfg, nil)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(sessionsOutput)
	if err != nil {
		return err
	}
	return withStore(func(store *recorder.Store) error {
		sessions, err := store.Sessions(cmd.Context())
		if err != nil {
			return err
		}
		if format == output.FormatTable && len(sessions) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded.")
			return nil
		}
		return output.Print(cmd.OutOrStdout(), format, sessionList(sessions))
	})
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(sessionsOutput)
	if err != nil {
		return err
	}
	return withStore(func(store *recorder.Store) error {
		info, err := store.Session(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if format == output.FormatTable {
			return output.PrintFields(cmd.OutOrStdout(), sessionFields(info))
		}
		return output.Print(cmd.OutOrStdout(), format, info)
	})
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !sessionsForce {
		ok, err := prompt.Confirm(fmt.Sprintf("Delete session %s", id))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}
	return withStore(func(store *recorder.Store) error {
		if err := store.DeleteSession(cmd.Context(), id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session %s deleted\n", id)
		return nil
	})
}
