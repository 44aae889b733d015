package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiapariciofoto/exifstats/internal/batch"
	"github.com/javiapariciofoto/exifstats/internal/extract"
	"github.com/javiapariciofoto/exifstats/internal/report"
	"github.com/javiapariciofoto/exifstats/internal/scanner"
)

func newExportCmd() *cobra.Command {
	var output string
	var noRecursive bool
	var jobs int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "export [directory]",
		Short: "Extract records and write them to a parquet or JSONL file",
		Long: `Export runs the same extraction as analyze but writes the per-file
records to a dataset file instead of printing statistics. The output
format follows the file extension: .parquet or .jsonl.`,
		Example: `  # Export the archive's records to parquet
  exifstats export ~/photos --output records.parquet

  # JSONL for quick grepping
  exifstats export ~/photos --output records.jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeExport(ctx, dir, output, !noRecursive, jobs, timeout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "records.parquet", "Output file (.parquet or .jsonl)")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "Do not search subdirectories")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of parallel workers (0 = number of CPU cores)")
	cmd.Flags().DurationVar(&timeout, "timeout", extract.DefaultTimeout, "Per-file extraction timeout")

	return cmd
}

func executeExport(ctx context.Context, dir, output string, recursive bool, jobs int, timeout time.Duration) error {
	files, err := scanner.Find(dir, recursive)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no RAW image files found in %s", dir)
	}

	jobs = resolveJobs(jobs)
	extractor := extract.Detect(timeout)
	slog.Info("processing files", "backend", extractor.Name(), "workers", jobs, "count", len(files))

	records := batch.Process(ctx, files, dir, extractor, jobs)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("export interrupted: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable metadata extracted from %s", dir)
	}

	if err := report.Export(output, records); err != nil {
		return fmt.Errorf("failed to export records: %w", err)
	}

	fmt.Printf("Exported %d record(s) to %s\n", len(records), output)
	return nil
}
