// Package report formats records and statistics for people and for files.
// The core packages only guarantee data and ordering; everything visual
// lives here.
package report

import (
	"fmt"
	"strings"

	"github.com/javiapariciofoto/exifstats/internal/exif"
	"github.com/javiapariciofoto/exifstats/internal/stats"
)

const lineWidth = 80

// PrintStatistics writes the ranked usage tables to stdout. Empty tables
// are skipped rather than printed as bare headers.
func PrintStatistics(bundle *stats.Bundle) {
	divider := strings.Repeat("=", lineWidth)

	fmt.Println("\n" + divider)
	fmt.Println("PHOTOGRAPHY STATISTICS")
	fmt.Println(divider + "\n")
	fmt.Printf("Total Photos Analyzed: %d\n\n", bundle.TotalPhotos)

	printTable("CAMERA USAGE (Top 10)", bundle.Cameras, "photos")
	printTable("LENS USAGE (Top 10)", bundle.Lenses, "photos")
	printBreakdowns("APERTURE USAGE BY LENS (Top 10 per lens)", bundle.AperturesByLens)
	printBreakdowns("FOCAL LENGTH USAGE BY LENS (Top 10 per lens)", bundle.FocalLengthsByLens)
	printISOTable(bundle.ISOs)
	printTable("SHUTTER SPEED USAGE (Top 10)", bundle.ShutterSpeeds, "photos")
	printTable("OVERALL APERTURE USAGE (Top 10)", bundle.Apertures, "photos")
	printTable("OVERALL FOCAL LENGTH USAGE (Top 10)", bundle.FocalLengths, "photos")
}

func printHeader(title string) {
	divider := strings.Repeat("=", lineWidth)
	fmt.Println(divider)
	fmt.Println(title)
	fmt.Println(divider)
}

func printTable(title string, entries []stats.Entry, unit string) {
	if len(entries) == 0 {
		return
	}
	printHeader(title)
	for _, e := range entries {
		fmt.Printf("  %-50s %4d %s (%5.1f%%)\n", e.Label, e.Count, unit, e.Percent)
	}
	fmt.Println()
}

func printISOTable(entries []stats.Entry) {
	if len(entries) == 0 {
		return
	}
	printHeader("ISO SENSITIVITY USAGE (Top 10)")
	for _, e := range entries {
		fmt.Printf("  ISO %-5s %4d photos (%5.1f%%)\n", e.Label, e.Count, e.Percent)
	}
	fmt.Println()
}

func printBreakdowns(title string, groups []stats.LensBreakdown) {
	if len(groups) == 0 {
		return
	}
	printHeader(title)
	for _, g := range groups {
		fmt.Printf("\n  %s\n", g.Lens)
		fmt.Println("  " + strings.Repeat("-", lineWidth-4))
		for _, e := range g.Entries {
			fmt.Printf("    %-15s %4d times (%5.1f%%)\n", e.Label, e.Count, e.Percent)
		}
	}
	fmt.Println()
}

// PrintDetails writes one block per record with every extracted field,
// showing N/A for fields the dump did not provide.
func PrintDetails(records []exif.Record) {
	divider := strings.Repeat("=", lineWidth)

	fmt.Println("\n" + divider)
	fmt.Println("EXIF DATA ANALYSIS")
	fmt.Println(divider + "\n")

	for i, rec := range records {
		fmt.Printf("File %d: %s\n", i+1, rec.SourceID)
		fmt.Printf("  Camera:       %s\n", orNA(rec.Camera))
		fmt.Printf("  Lens:         %s\n", orNA(rec.Lens))
		fmt.Printf("  ISO:          %s\n", orNA(isoLabel(rec.ISO)))
		fmt.Printf("  Speed:        %s\n", orNA(rec.ShutterSpeed))
		fmt.Printf("  Aperture:     %s\n", orNA(rec.Aperture))
		fmt.Printf("  Focal Length: %s\n", orNA(rec.FocalLength))
		fmt.Println()
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func isoLabel(iso int) string {
	if iso <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", iso)
}
