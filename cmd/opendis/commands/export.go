package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/cli/output"
	"github.com/marmos91/opendis/pkg/metrics"
	"github.com/marmos91/opendis/pkg/metrics/prometheus"
	"github.com/marmos91/opendis/pkg/recorder/archive"
)

var (
	exportBucket string
	exportPrefix string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Upload a recorded session to S3",
	Long: `Upload a recorded session to S3 as a stream of concatenated PDUs, the
same bytes that were received. The object is written to
s3://<archive.bucket>/<archive.prefix><session-id>.dis and can be read back
with 'opendis decode --file'.

Credentials come from the standard AWS chain (environment, shared config,
instance role). Set archive.endpoint and archive.path_style for MinIO or
LocalStack.

Examples:
  # Export with the configured bucket
  opendis export 0b7c...

  # Export to another bucket and prefix
  opendis export 0b7c... --bucket dis-archive --prefix range/2024/`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportBucket, "bucket", "", "S3 bucket (overrides archive.bucket)")
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", "", "object key prefix (overrides archive.prefix)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(exportOutput)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	acfg := archive.Config{
		Bucket:    cfg.Archive.Bucket,
		Prefix:    cfg.Archive.Prefix,
		Region:    cfg.Archive.Region,
		Endpoint:  cfg.Archive.Endpoint,
		PathStyle: cfg.Archive.PathStyle,
	}
	if exportBucket != "" {
		acfg.Bucket = exportBucket
	}
	if exportPrefix != "" {
		acfg.Prefix = exportPrefix
	}

	ctx, cancel := signalContext()
	defer cancel()

	stopObservability, err := initObservability(ctx, cfg)
	if err != nil {
		return err
	}
	defer stopObservability()

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}
	exporter, err := archive.NewFromConfig(ctx, acfg, prometheus.NewArchiveMetrics())
	if err != nil {
		return err
	}

	store, err := openRecorder(cfg, prometheus.NewRecorderMetrics())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	res, err := exporter.Export(ctx, store, args[0])
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		return output.Print(cmd.OutOrStdout(), format, res)
	}
	return output.PrintFields(cmd.OutOrStdout(), [][2]string{
		{"Object", res.URI()},
		{"PDUs", fmt.Sprint(res.PDUs)},
		{"Bytes", fmt.Sprint(res.Bytes)},
	})
}
