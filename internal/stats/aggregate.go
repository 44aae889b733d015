// Package stats reduces a batch of records into ranked usage tables.
package stats

import (
	"errors"
	"sort"
	"strconv"

	"github.com/javiapariciofoto/exifstats/internal/exif"
	"github.com/javiapariciofoto/exifstats/internal/lens"
)

// ErrNoRecords is returned when there is nothing to aggregate. Percentages
// divide by the record count, so the caller must handle the empty batch
// before asking for statistics.
var ErrNoRecords = errors.New("no records to aggregate")

// Tables keep the 10 most used values.
const topN = 10

// Entry is one row of a ranked usage table.
type Entry struct {
	Label   string  `yaml:"label" json:"label"`
	Count   int     `yaml:"count" json:"count"`
	Percent float64 `yaml:"percent" json:"percent"`
}

// LensBreakdown is a per-lens usage table. Percent in each entry is
// relative to Total, the number of photos taken with that lens, not to the
// whole batch.
type LensBreakdown struct {
	Lens    string  `yaml:"lens" json:"lens"`
	Total   int     `yaml:"total" json:"total"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Bundle is the aggregate view over one batch of records. It is rebuilt
// from scratch for every batch; there is no incremental update.
type Bundle struct {
	TotalPhotos int `yaml:"total_photos" json:"total_photos"`

	Cameras       []Entry `yaml:"cameras" json:"cameras"`
	Lenses        []Entry `yaml:"lenses" json:"lenses"`
	ISOs          []Entry `yaml:"iso_values" json:"iso_values"`
	ShutterSpeeds []Entry `yaml:"shutter_speeds" json:"shutter_speeds"`
	Apertures     []Entry `yaml:"apertures" json:"apertures"`
	FocalLengths  []Entry `yaml:"focal_lengths" json:"focal_lengths"`

	AperturesByLens    []LensBreakdown `yaml:"apertures_by_lens" json:"apertures_by_lens"`
	FocalLengthsByLens []LensBreakdown `yaml:"focal_lengths_by_lens" json:"focal_lengths_by_lens"`
}

// Aggregate counts field usage across the batch and builds the ranked
// tables. Lens-keyed tables use the canonical labels from lensLabels,
// never the raw per-record strings. Every table ranks by descending count;
// ties fall to a field-specific secondary key (ascending numeric value for
// ISO, aperture, focal length, and exposure duration for shutter speed)
// or, for cameras and lenses, to first-seen order in the batch.
func Aggregate(records []exif.Record, lensLabels map[string]string) (*Bundle, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	cameras := newCounter()
	lenses := newCounter()
	isos := newCounter()
	speeds := newCounter()
	apertures := newCounter()
	focals := newCounter()
	aperturesByLens := make(map[string]*counter)
	focalsByLens := make(map[string]*counter)

	for _, rec := range records {
		var canonical string
		if rec.Lens != "" {
			canonical = lensLabels[lens.NormalizeKey(rec.Lens)]
		}

		if rec.Camera != "" {
			cameras.add(rec.Camera)
		}
		if canonical != "" {
			lenses.add(canonical)
		}
		if rec.ISO > 0 {
			isos.add(strconv.Itoa(rec.ISO))
		}
		if rec.ShutterSpeed != "" {
			speeds.add(rec.ShutterSpeed)
		}
		if rec.Aperture != "" {
			apertures.add(rec.Aperture)
			if canonical != "" {
				group(aperturesByLens, canonical).add(rec.Aperture)
			}
		}
		if rec.FocalLength != "" {
			focals.add(rec.FocalLength)
			if canonical != "" {
				group(focalsByLens, canonical).add(rec.FocalLength)
			}
		}
	}

	total := len(records)
	bundle := &Bundle{
		TotalPhotos:        total,
		Cameras:            cameras.rank(nil, total),
		Lenses:             lenses.rank(nil, total),
		ISOs:               isos.rank(firstNumber, total),
		ShutterSpeeds:      speeds.rank(exposureSeconds, total),
		Apertures:          apertures.rank(firstNumber, total),
		FocalLengths:       focals.rank(firstNumber, total),
		AperturesByLens:    breakdowns(aperturesByLens, lenses),
		FocalLengthsByLens: breakdowns(focalsByLens, lenses),
	}

	return bundle, nil
}

func group(groups map[string]*counter, key string) *counter {
	c, ok := groups[key]
	if !ok {
		c = newCounter()
		groups[key] = c
	}
	return c
}

// breakdowns builds the per-lens tables in ascending lens-label order.
// Each table's percentages use the lens's own photo count as denominator.
func breakdowns(groups map[string]*counter, lenses *counter) []LensBreakdown {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]LensBreakdown, 0, len(names))
	for _, name := range names {
		total := lenses.counts[name]
		out = append(out, LensBreakdown{
			Lens:    name,
			Total:   total,
			Entries: groups[name].rank(firstNumber, total),
		})
	}
	return out
}

// counter is a frequency table that remembers first-seen label order.
// The order is what makes count-only rankings deterministic.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// rank builds the table: descending count, ties by ascending secondary key
// when one is given, else by first-seen order. The secondary key is
// computed once per label, truncation to topN happens after the sort, and
// percentages are relative to denom.
func (c *counter) rank(secondary func(string) float64, denom int) []Entry {
	entries := make([]Entry, 0, len(c.order))
	var keys map[string]float64
	if secondary != nil {
		keys = make(map[string]float64, len(c.order))
	}
	for _, label := range c.order {
		count := c.counts[label]
		entries = append(entries, Entry{
			Label:   label,
			Count:   count,
			Percent: float64(count) / float64(denom) * 100,
		})
		if secondary != nil {
			keys[label] = secondary(label)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if secondary == nil {
			return false
		}
		return keys[entries[i].Label] < keys[entries[j].Label]
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
