package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/javiapariciofoto/exifstats/internal/exif"
	"github.com/javiapariciofoto/exifstats/internal/lens"
)

func TestAggregateEmptyBatch(t *testing.T) {
	if _, err := Aggregate(nil, nil); err != ErrNoRecords {
		t.Errorf("Expected ErrNoRecords, got %v", err)
	}
}

func TestAggregateCountsAndPercentages(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", Camera: "Canon EOS R5", ISO: 100, Aperture: "f/2.8"},
		{SourceID: "b", Camera: "Canon EOS R5", ISO: 400},
		{SourceID: "c", Camera: "OM-1", ShutterSpeed: "1/250"},
		{SourceID: "d"},
	}

	bundle, err := Aggregate(records, nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if bundle.TotalPhotos != 4 {
		t.Errorf("Expected TotalPhotos=4, got %d", bundle.TotalPhotos)
	}

	if len(bundle.Cameras) != 2 {
		t.Fatalf("Expected 2 camera entries, got %d", len(bundle.Cameras))
	}
	top := bundle.Cameras[0]
	if top.Label != "Canon EOS R5" || top.Count != 2 {
		t.Errorf("Expected Canon EOS R5 x2 on top, got %+v", top)
	}
	if top.Percent != 50.0 {
		t.Errorf("Expected overall percentage over batch total (50.0), got %.1f", top.Percent)
	}

	// The record with no fields still counts toward the total but must not
	// appear in any table.
	if len(bundle.ISOs) != 2 || len(bundle.ShutterSpeeds) != 1 || len(bundle.Apertures) != 1 {
		t.Errorf("Unexpected table sizes: iso=%d shutter=%d aperture=%d",
			len(bundle.ISOs), len(bundle.ShutterSpeeds), len(bundle.Apertures))
	}
}

func TestAggregateUsesCanonicalLensLabels(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", Lens: "Canon RF 50mm", Aperture: "f/1.8"},
		{SourceID: "b", Lens: "canon rf 50mm", Aperture: "f/1.8"},
		{SourceID: "c", Lens: "Canon RF 50mm", Aperture: "f/2.8"},
	}
	labels := lens.Canonicalize(records)

	bundle, err := Aggregate(records, labels)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(bundle.Lenses) != 1 {
		t.Fatalf("Expected case variants collapsed into 1 lens, got %d", len(bundle.Lenses))
	}
	if bundle.Lenses[0].Label != "Canon RF 50mm" || bundle.Lenses[0].Count != 3 {
		t.Errorf("Expected Canon RF 50mm x3, got %+v", bundle.Lenses[0])
	}

	if len(bundle.AperturesByLens) != 1 {
		t.Fatalf("Expected 1 lens breakdown, got %d", len(bundle.AperturesByLens))
	}
	breakdown := bundle.AperturesByLens[0]
	if breakdown.Lens != "Canon RF 50mm" || breakdown.Total != 3 {
		t.Errorf("Expected breakdown keyed by canonical label with total 3, got %+v", breakdown)
	}
}

func TestAggregatePerLensPercentDenominator(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", Lens: "A", Aperture: "f/2.8"},
		{SourceID: "b", Lens: "A", Aperture: "f/2.8"},
		{SourceID: "c", Lens: "A", Aperture: "f/4.0"},
		{SourceID: "d", Lens: "A"}, // lens photo without aperture
		{SourceID: "e", Lens: "B", Aperture: "f/1.2"},
	}
	labels := lens.Canonicalize(records)

	bundle, err := Aggregate(records, labels)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	var lensA *LensBreakdown
	for i := range bundle.AperturesByLens {
		if bundle.AperturesByLens[i].Lens == "A" {
			lensA = &bundle.AperturesByLens[i]
		}
	}
	if lensA == nil {
		t.Fatal("Missing breakdown for lens A")
	}

	// 2 of 4 lens-A photos at f/2.8: percentage uses the lens total, not
	// the batch total.
	if lensA.Entries[0].Label != "f/2.8" || lensA.Entries[0].Percent != 50.0 {
		t.Errorf("Expected f/2.8 at 50.0%% of lens A, got %+v", lensA.Entries[0])
	}
}

func TestAggregateISOTieBreak(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", ISO: 3200},
		{SourceID: "b", ISO: 100},
		{SourceID: "c", ISO: 800},
		{SourceID: "d", ISO: 800},
	}

	bundle, err := Aggregate(records, nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	want := []string{"800", "100", "3200"}
	for i, label := range want {
		if bundle.ISOs[i].Label != label {
			t.Errorf("ISO rank %d = %q, want %q", i, bundle.ISOs[i].Label, label)
		}
	}
}

func TestAggregateApertureTieBreak(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", Aperture: "f/8"},
		{SourceID: "b", Aperture: "f/1.4"},
		{SourceID: "c", Aperture: "f/2.8"},
	}

	bundle, err := Aggregate(records, nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// All counts equal: ascending f-number decides.
	want := []string{"f/1.4", "f/2.8", "f/8"}
	for i, label := range want {
		if bundle.Apertures[i].Label != label {
			t.Errorf("Aperture rank %d = %q, want %q", i, bundle.Apertures[i].Label, label)
		}
	}
}

func TestAggregateShutterSpeedOrdering(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", ShutterSpeed: "2"},
		{SourceID: "b", ShutterSpeed: "1/250"},
		{SourceID: "c", ShutterSpeed: "garbled"},
		{SourceID: "d", ShutterSpeed: "1/8000"},
	}

	bundle, err := Aggregate(records, nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// Equal counts: fastest exposure first, unparsable last.
	want := []string{"1/8000", "1/250", "2", "garbled"}
	for i, label := range want {
		if bundle.ShutterSpeeds[i].Label != label {
			t.Errorf("Shutter rank %d = %q, want %q", i, bundle.ShutterSpeeds[i].Label, label)
		}
	}
}

func TestAggregateCameraTiesKeepFirstSeenOrder(t *testing.T) {
	records := []exif.Record{
		{SourceID: "a", Camera: "OM-1"},
		{SourceID: "b", Camera: "Canon EOS R5"},
		{SourceID: "c", Camera: "OM-1"},
		{SourceID: "d", Camera: "Canon EOS R5"},
	}

	for run := 0; run < 5; run++ {
		bundle, err := Aggregate(records, nil)
		if err != nil {
			t.Fatalf("Aggregate() error = %v", err)
		}
		if bundle.Cameras[0].Label != "OM-1" || bundle.Cameras[1].Label != "Canon EOS R5" {
			t.Fatalf("Run %d: expected first-seen order among equal counts, got %+v", run, bundle.Cameras)
		}
	}
}

func TestAggregateTopTenTruncation(t *testing.T) {
	var records []exif.Record
	for i := 0; i < 15; i++ {
		records = append(records, exif.Record{
			SourceID: fmt.Sprintf("r%d", i),
			Aperture: fmt.Sprintf("f/%d.0", i+1),
		})
	}

	bundle, err := Aggregate(records, nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(bundle.Apertures) != 10 {
		t.Fatalf("Expected table truncated to 10 entries, got %d", len(bundle.Apertures))
	}
	// Truncation happens after sorting, so the smallest f-numbers survive.
	if bundle.Apertures[0].Label != "f/1.0" || bundle.Apertures[9].Label != "f/10.0" {
		t.Errorf("Expected f/1.0 .. f/10.0 after sort+truncate, got %q .. %q",
			bundle.Apertures[0].Label, bundle.Apertures[9].Label)
	}
}

func TestExposureSeconds(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"1/250", 1.0 / 250},
		{"1/8000", 1.0 / 8000},
		{"2", 2},
		{"0.8", 0.8},
		{"1/0", math.Inf(1)},
		{"bulb", math.Inf(1)},
		{"a/b", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := exposureSeconds(tt.label); got != tt.want {
				t.Errorf("exposureSeconds(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"f/2.8", 2.8},
		{"40mm", 40},
		{"f/8", 8},
		{"18.5mm", 18.5},
		{"unknown", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := firstNumber(tt.label); got != tt.want {
				t.Errorf("firstNumber(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
