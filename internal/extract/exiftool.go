package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single ExifTool invocation. Corrupt RAW files
// can make exiftool hang, and one stuck file must not stall the batch.
const DefaultTimeout = 30 * time.Second

// ExifTool extracts metadata by running the exiftool binary once per file.
type ExifTool struct {
	path    string
	timeout time.Duration
}

// NewExifTool resolves the exiftool binary (EXIFTOOL_PATH overrides the
// PATH lookup) and returns a backend with the given per-file timeout.
func NewExifTool(timeout time.Duration) (*ExifTool, error) {
	name := os.Getenv("EXIFTOOL_PATH")
	if name == "" {
		name = "exiftool"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("exiftool not available: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExifTool{path: path, timeout: timeout}, nil
}

func (t *ExifTool) Name() string { return "exiftool" }

// Extract runs exiftool on path and returns its stdout, the familiar
// "Key : Value" dump.
func (t *ExifTool) Extract(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.path, path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("exiftool timed out after %s", t.timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("exiftool failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("exiftool failed: %w", err)
	}

	return stdout.String(), nil
}
