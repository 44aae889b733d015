package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/javiapariciofoto/exifstats/internal/stats"
)

// Config records how a statistics report was produced.
type Config struct {
	Directory  string `yaml:"directory"`
	Backend    string `yaml:"backend"`
	SampleSize int    `yaml:"samplesize"`
	Timestamp  string `yaml:"timestamp"`
}

// Report is the YAML document written by SaveYAML: the run configuration
// followed by the full statistics bundle.
type Report struct {
	Config Config        `yaml:"config"`
	Stats  *stats.Bundle `yaml:"stats"`
}

// SaveYAML writes the statistics bundle with its run configuration to
// path. The timestamp is filled in here.
func SaveYAML(path string, cfg Config, bundle *stats.Bundle) error {
	cfg.Timestamp = time.Now().Format("2006-01-02_15-04-05")

	data, err := yaml.Marshal(Report{Config: cfg, Stats: bundle})
	if err != nil {
		return fmt.Errorf("failed to marshal statistics: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
