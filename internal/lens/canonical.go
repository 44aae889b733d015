// Package lens collapses spelling and casing variants of the same physical
// lens into a single display label. Vendors render the same lens as
// "OLYMPUS M.12-40mm F2.8", "Olympus M.12-40mm f2.8", and so on depending
// on firmware, so statistics keyed on the raw string would split one lens
// across several rows.
package lens

import (
	"regexp"
	"strings"

	"github.com/javiapariciofoto/exifstats/internal/exif"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeKey folds a raw lens name into its grouping key: lowercased,
// whitespace runs collapsed to a single space, trimmed. Keys are for
// grouping only and are never displayed.
func NormalizeKey(name string) string {
	normalized := strings.ToLower(name)
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// Canonicalize maps every normalized lens key observed in the batch to a
// canonical display label: the most frequent original-casing variant for
// that key, ties broken by first appearance order. Records without a lens
// are ignored.
//
// The whole batch must be in hand before calling: a variant late in the
// batch can outvote one that appeared first.
func Canonicalize(records []exif.Record) map[string]string {
	type variant struct {
		label string
		count int
	}

	// Variants are kept in first-seen order per key so ties resolve
	// deterministically for a given input order.
	variants := make(map[string][]variant)
	index := make(map[string]map[string]int)

	for _, rec := range records {
		if rec.Lens == "" {
			continue
		}
		key := NormalizeKey(rec.Lens)

		byLabel, ok := index[key]
		if !ok {
			byLabel = make(map[string]int)
			index[key] = byLabel
		}
		if i, seen := byLabel[rec.Lens]; seen {
			variants[key][i].count++
		} else {
			byLabel[rec.Lens] = len(variants[key])
			variants[key] = append(variants[key], variant{label: rec.Lens, count: 1})
		}
	}

	labels := make(map[string]string, len(variants))
	for key, vs := range variants {
		best := vs[0]
		for _, v := range vs[1:] {
			if v.count > best.count {
				best = v
			}
		}
		labels[key] = best.label
	}

	return labels
}
