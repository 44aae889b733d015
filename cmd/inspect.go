package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiapariciofoto/exifstats/internal/exif"
	"github.com/javiapariciofoto/exifstats/internal/extract"
	"github.com/javiapariciofoto/exifstats/internal/report"
)

func newInspectCmd() *cobra.Command {
	var showRaw bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the metadata record extracted from a single file",
		Long: `Inspect extracts one file's metadata and prints the parsed record.

Useful for checking which fields a camera's dumps actually carry before
analyzing a whole archive.`,
		Example: `  # Show the parsed record
  exifstats inspect ~/photos/IMG_0001.CR3

  # Include the raw metadata dump the record was parsed from
  exifstats inspect ~/photos/IMG_0001.CR3 --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeInspect(ctx, args[0], showRaw, timeout)
		},
	}

	cmd.Flags().BoolVar(&showRaw, "raw", false, "Also print the raw metadata dump")
	cmd.Flags().DurationVar(&timeout, "timeout", extract.DefaultTimeout, "Extraction timeout")

	return cmd
}

func executeInspect(ctx context.Context, path string, showRaw bool, timeout time.Duration) error {
	extractor := extract.Detect(timeout)

	raw, err := extractor.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to extract metadata from %s: %w", path, err)
	}

	if showRaw {
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("RAW METADATA (%s)\n", extractor.Name())
		fmt.Println(strings.Repeat("=", 80))
		fmt.Println(strings.TrimRight(raw, "\n"))
	}

	rec := exif.Parse(raw, filepath.Base(path))
	report.PrintDetails([]exif.Record{rec})

	return nil
}
