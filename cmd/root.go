package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "exifstats",
		Short: "Camera usage statistics from RAW image file metadata",
		Long: `Exifstats scans a photo archive, extracts camera metadata from each RAW
file, and aggregates it into usage statistics: which cameras, lenses, ISO
values, shutter speeds, apertures, and focal lengths you actually shoot with.

Extraction uses ExifTool when it is installed. Without ExifTool a built-in
EXIF decoder is used instead.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
