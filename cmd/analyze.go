package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiapariciofoto/exifstats/internal/batch"
	"github.com/javiapariciofoto/exifstats/internal/extract"
	"github.com/javiapariciofoto/exifstats/internal/lens"
	"github.com/javiapariciofoto/exifstats/internal/report"
	"github.com/javiapariciofoto/exifstats/internal/scanner"
	"github.com/javiapariciofoto/exifstats/internal/stats"
)

func newAnalyzeCmd() *cobra.Command {
	var details bool
	var noStats bool
	var noRecursive bool
	var jobs int
	var timeout time.Duration
	var savePath string

	cmd := &cobra.Command{
		Use:   "analyze [directory]",
		Short: "Scan a directory of RAW files and print usage statistics",
		Long: `Analyze extracts camera metadata from every RAW file under the given
directory (default: current directory) and prints ranked top-10 usage
tables for cameras, lenses, ISO, shutter speeds, apertures, and focal
lengths, including per-lens aperture and focal length breakdowns.`,
		Example: `  # Analyze the current directory
  exifstats analyze

  # Analyze a photo archive with per-file details
  exifstats analyze ~/photos --details

  # Only the top-level directory, 4 workers, save a YAML report
  exifstats analyze ~/photos --no-recursive --jobs 4 --save stats.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeAnalyze(ctx, dir, details, !noStats, !noRecursive, jobs, timeout, savePath)
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show extracted metadata for each file")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "Skip the statistics summary")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "Do not search subdirectories")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of parallel workers (0 = number of CPU cores)")
	cmd.Flags().DurationVar(&timeout, "timeout", extract.DefaultTimeout, "Per-file extraction timeout")
	cmd.Flags().StringVar(&savePath, "save", "", "Write the statistics to a YAML file")

	return cmd
}

func executeAnalyze(ctx context.Context, dir string, details, showStats, recursive bool, jobs int, timeout time.Duration, savePath string) error {
	start := time.Now()

	files, err := scanner.Find(dir, recursive)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		fmt.Printf("No RAW image files found in %s\n", dir)
		return nil
	}

	fmt.Printf("Found %d RAW file(s) in %s\n", len(files), dir)

	jobs = resolveJobs(jobs)
	extractor := extract.Detect(timeout)
	slog.Info("processing files", "backend", extractor.Name(), "workers", jobs)

	records := batch.Process(ctx, files, dir, extractor, jobs)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis interrupted: %w", err)
	}
	if len(records) == 0 {
		fmt.Printf("No RAW image files with EXIF data found in %s\n", dir)
		return nil
	}

	fmt.Printf("\nSuccessfully processed %d file(s) with EXIF data in %.1f seconds\n",
		len(records), time.Since(start).Seconds())

	if details {
		report.PrintDetails(records)
	}

	if !showStats {
		return nil
	}

	labels := lens.Canonicalize(records)
	bundle, err := stats.Aggregate(records, labels)
	if err != nil {
		return fmt.Errorf("failed to aggregate statistics: %w", err)
	}
	report.PrintStatistics(bundle)

	if savePath != "" {
		cfg := report.Config{
			Directory:  dir,
			Backend:    extractor.Name(),
			SampleSize: len(records),
		}
		if err := report.SaveYAML(savePath, cfg, bundle); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("\nStatistics saved to: %s\n", savePath)
	}

	return nil
}

// resolveJobs falls back to EXIFSTATS_JOBS, then the CPU count, when the
// flag was left at auto.
func resolveJobs(jobs int) int {
	if jobs > 0 {
		return jobs
	}
	if v := os.Getenv("EXIFSTATS_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}
