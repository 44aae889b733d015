package lens

import (
	"testing"

	"github.com/javiapariciofoto/exifstats/internal/exif"
)

func lensRecords(names ...string) []exif.Record {
	records := make([]exif.Record, 0, len(names))
	for i, name := range names {
		records = append(records, exif.Record{SourceID: string(rune('a' + i)), Lens: name})
	}
	return records
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Canon RF 50mm",
			want:  "canon rf 50mm",
		},
		{
			name:  "collapses whitespace runs",
			input: "OLYMPUS  M.12-40mm\tF2.8",
			want:  "olympus m.12-40mm f2.8",
		},
		{
			name:  "trims",
			input: "  Canon RF 50mm  ",
			want:  "canon rf 50mm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.input); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeMajorityRule(t *testing.T) {
	records := lensRecords(
		"Canon RF 50mm",
		"canon rf 50mm",
		"Canon RF 50mm",
		"Canon RF 50mm",
	)

	labels := Canonicalize(records)

	if len(labels) != 1 {
		t.Fatalf("Expected one normalized key, got %d", len(labels))
	}
	if got := labels["canon rf 50mm"]; got != "Canon RF 50mm" {
		t.Errorf("Expected canonical label %q, got %q", "Canon RF 50mm", got)
	}
}

func TestCanonicalizeTieBrokenByFirstAppearance(t *testing.T) {
	records := lensRecords(
		"olympus m.12-40mm f2.8",
		"OLYMPUS M.12-40mm F2.8",
	)

	labels := Canonicalize(records)

	if got := labels["olympus m.12-40mm f2.8"]; got != "olympus m.12-40mm f2.8" {
		t.Errorf("Expected first-seen variant to win the tie, got %q", got)
	}
}

func TestCanonicalizeLateMajorityWins(t *testing.T) {
	// The winning variant only reaches its majority at the end of the
	// batch, so canonicalization must see the whole batch first.
	records := lensRecords(
		"canon rf 50mm",
		"Canon RF 50mm",
		"Canon RF 50mm",
	)

	labels := Canonicalize(records)

	if got := labels["canon rf 50mm"]; got != "Canon RF 50mm" {
		t.Errorf("Expected late majority variant to win, got %q", got)
	}
}

func TestCanonicalizeSkipsEmptyLens(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a"},
		{SourceID: "b", Lens: "Canon RF 50mm"},
	}

	labels := Canonicalize(records)

	if len(labels) != 1 {
		t.Errorf("Expected records without a lens to be excluded, got %d keys", len(labels))
	}
}

func TestCanonicalizeSeparateKeysStaySeparate(t *testing.T) {
	records := lensRecords("Canon RF 50mm", "Canon RF 85mm")

	labels := Canonicalize(records)

	if len(labels) != 2 {
		t.Fatalf("Expected two normalized keys, got %d", len(labels))
	}
}
