// Package batch fans per-file extraction out to a bounded pool of workers.
// Every file is an independent unit of work, so the only coordination is
// the concurrency limit and collecting the results.
package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/javiapariciofoto/exifstats/internal/exif"
	"github.com/javiapariciofoto/exifstats/internal/extract"
)

// Process extracts and parses every file, running up to workers files at a
// time. A failed file is logged and dropped; the rest of the batch
// proceeds. Source IDs are paths relative to baseDir when possible.
//
// The returned records keep the input file order regardless of which
// worker finished first, so downstream first-seen tie-breaks stay
// deterministic for a given file list.
func Process(ctx context.Context, files []string, baseDir string, extractor extract.Extractor, workers int) []exif.Record {
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	parsed := make([]exif.Record, len(files))
	done := make([]bool, len(files))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, file := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			if ctx.Err() != nil {
				return
			}

			raw, err := extractor.Extract(ctx, path)
			if err != nil {
				slog.Warn("skipping file", "path", path, "error", err)
				return
			}

			sourceID := path
			if rel, err := filepath.Rel(baseDir, path); err == nil {
				sourceID = rel
			}

			// Each worker writes only its own slot; no locking needed.
			parsed[idx] = exif.Parse(raw, sourceID)
			done[idx] = true
			slog.Debug("processed file", "path", path, "progress", idx+1, "total", len(files))
		}(i, file)
	}

	wg.Wait()

	records := make([]exif.Record, 0, len(files))
	for i, ok := range done {
		if ok {
			records = append(records, parsed[i])
		}
	}
	return records
}
