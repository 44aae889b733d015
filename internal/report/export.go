package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/javiapariciofoto/exifstats/internal/exif"
)

// Export writes the batch's records to path, choosing the format from the
// file extension, so the archive's metadata can be analyzed elsewhere.
func Export(path string, records []exif.Record) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return exportParquet(path, records)
	case ".jsonl", ".json":
		return exportJSONL(path, records)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: .parquet, .jsonl)", path)
	}
}

func exportParquet(path string, records []exif.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[exif.Record](file)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}

func exportJSONL(path string, records []exif.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record %s: %w", rec.SourceID, err)
		}
	}

	return nil
}
