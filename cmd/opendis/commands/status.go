package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/health"
	"github.com/marmos91/opendis/internal/cli/output"
	"github.com/marmos91/opendis/internal/cli/timeutil"
	"github.com/marmos91/opendis/pkg/api/stream"
)

var (
	statusOutput  string
	statusHost    string
	statusAPIPort int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show gateway status",
	Long: `Display the status of a running gateway.

This command calls the health and stats endpoints of the HTTP API and shows
uptime, traffic counters and the most frequent PDU types.

Examples:
  # Check the local gateway
  opendis status

  # Check a gateway on another host and port
  opendis status --host sim-gw --api-port 9080

  # Output as JSON
  opendis status --output json`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusHost, "host", "localhost", "API server host")
	statusCmd.Flags().IntVar(&statusAPIPort, "api-port", 8080, "API server port")
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// GatewayStatus is what status reports.
type GatewayStatus struct {
	Running   bool   `json:"running" yaml:"running"`
	Healthy   bool   `json:"healthy" yaml:"healthy"`
	Message   string `json:"message" yaml:"message"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	StartedAt string `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	Uptime    string `json:"uptime,omitempty" yaml:"uptime,omitempty"`

	PDUs         uint64             `json:"pdus" yaml:"pdus"`
	DecodeErrors uint64             `json:"decode_errors" yaml:"decode_errors"`
	Sent         uint64             `json:"sent" yaml:"sent"`
	Clients      int                `json:"stream_clients" yaml:"stream_clients"`
	Types        []stream.TypeCount `json:"types,omitempty" yaml:"types,omitempty"`
}

func fetchStatus(ctx context.Context, c *health.Client) GatewayStatus {
	status := GatewayStatus{Message: "Gateway is not running"}

	h, err := c.Health(ctx)
	if err != nil {
		return status
	}
	status.Running = true
	status.Healthy = h.Status == "healthy"
	status.Version = h.Data.Version
	status.StartedAt = h.Data.StartedAt
	status.Uptime = h.Data.Uptime
	if status.Healthy {
		status.Message = "Gateway is running and healthy"
	} else {
		status.Message = fmt.Sprintf("Gateway is running but unhealthy: %s", h.Error)
	}

	if s, err := c.Stats(ctx); err == nil {
		status.PDUs = s.Transport.PDUs
		status.DecodeErrors = s.Transport.DecodeErrors
		status.Sent = s.Transport.Sent
		status.Clients = s.StreamClients
		status.Types = s.Types
	}
	return status
}

func runStatus(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(statusOutput)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	client := health.NewClient(fmt.Sprintf("http://%s:%d", statusHost, statusAPIPort), 2*time.Second)
	status := fetchStatus(ctx, client)

	out := cmd.OutOrStdout()
	switch format {
	case output.FormatJSON:
		return output.PrintJSON(out, status)
	case output.FormatYAML:
		return output.PrintYAML(out, status)
	default:
		return printStatusTable(out, status)
	}
}

func printStatusTable(w io.Writer, status GatewayStatus) error {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "OpenDIS Gateway Status")
	_, _ = fmt.Fprintln(w, "======================")
	_, _ = fmt.Fprintln(w)

	if !status.Running {
		_, _ = fmt.Fprintf(w, "  Status:     \033[31m○ Stopped\033[0m\n\n  %s\n\n", status.Message)
		return nil
	}
	if status.Healthy {
		_, _ = fmt.Fprintf(w, "  Status:     \033[32m● Running\033[0m\n")
	} else {
		_, _ = fmt.Fprintf(w, "  Status:     \033[33m● Running (unhealthy)\033[0m\n")
	}
	if started, err := time.Parse(time.RFC3339, status.StartedAt); err == nil {
		_, _ = fmt.Fprintf(w, "  Started:    %s\n", timeutil.FormatTime(started))
	}
	if status.Uptime != "" {
		_, _ = fmt.Fprintf(w, "  Uptime:     %s\n", timeutil.FormatUptime(status.Uptime))
	}
	_, _ = fmt.Fprintf(w, "  PDUs:       %d received, %d sent, %d decode errors\n", status.PDUs, status.Sent, status.DecodeErrors)
	_, _ = fmt.Fprintf(w, "  Clients:    %d\n", status.Clients)
	_, _ = fmt.Fprintln(w)

	if len(status.Types) > 0 {
		t := output.NewTable("Type", "Count")
		for i, tc := range status.Types {
			if i == 10 {
				break
			}
			t.AddRow(tc.Type, strconv.FormatUint(tc.Count, 10))
		}
		if err := output.PrintTable(w, t); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintf(w, "  %s\n\n", status.Message)
	return nil
}
