// Package extract obtains each file's metadata as human-readable
// "Key : Value" text. The preferred backend shells out to ExifTool, which
// understands every vendor's RAW format; a built-in EXIF decoder covers
// machines without ExifTool installed. Both render the same text shape,
// so the downstream parser does not care which one produced it.
package extract

import (
	"context"
	"log/slog"
	"time"
)

// Extractor renders one image file's metadata as key/value text.
// Implementations must be safe for concurrent use; the worker pool calls
// Extract from multiple goroutines.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, path string) (string, error)
}

// Detect returns the ExifTool backend when the binary is installed,
// falling back to the built-in decoder otherwise.
func Detect(timeout time.Duration) Extractor {
	tool, err := NewExifTool(timeout)
	if err != nil {
		slog.Info("exiftool not found, using built-in EXIF decoder", "error", err)
		return NewGoExif()
	}
	return tool
}
