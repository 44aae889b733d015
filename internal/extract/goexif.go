package extract

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	// Register maker note parsers for better camera support
	exif.RegisterParsers(mknote.All...)
}

// GoExif is the fallback backend: it decodes EXIF directly and renders the
// tags it finds using ExifTool's key names, so the parser sees the same
// text either way. It covers fewer vendor-specific fields than ExifTool
// (no RF Lens Type, no Camera Type 2) but needs no external binary.
type GoExif struct{}

func NewGoExif() *GoExif { return &GoExif{} }

func (g *GoExif) Name() string { return "goexif" }

func (g *GoExif) Extract(_ context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode EXIF: %w", err)
	}

	var b strings.Builder

	writeText := func(key string, field exif.FieldName) {
		tag, err := x.Get(field)
		if err != nil {
			return
		}
		if val, err := tag.StringVal(); err == nil && strings.TrimSpace(val) != "" {
			fmt.Fprintf(&b, "%-32s: %s\n", key, strings.TrimSpace(val))
		}
	}

	writeText("Camera Model Name", exif.Model)
	writeText("Lens Model", exif.LensModel)

	if tag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if v, err := tag.Int(0); err == nil && v > 0 {
			fmt.Fprintf(&b, "%-32s: %d\n", "ISO", v)
		}
	}

	if tag, err := x.Get(exif.ExposureTime); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			fmt.Fprintf(&b, "%-32s: %s\n", "Exposure Time", formatExposure(num, den))
		}
	}

	if tag, err := x.Get(exif.FNumber); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			f := float64(num) / float64(den)
			fmt.Fprintf(&b, "%-32s: %s\n", "F Number", strconv.FormatFloat(f, 'f', 1, 64))
		}
	}

	if tag, err := x.Get(exif.FocalLength); err == nil {
		if num, den, err := tag.Rat2(0); err == nil && den != 0 {
			f := float64(num) / float64(den)
			fmt.Fprintf(&b, "%-32s: %s mm\n", "Focal Length", strconv.FormatFloat(f, 'f', -1, 64))
		}
	}

	return b.String(), nil
}

// formatExposure renders an exposure rational the way ExifTool prints it:
// "1/250" for fractional values, a plain number for whole seconds.
func formatExposure(num, den int64) string {
	if num%den == 0 {
		return strconv.FormatInt(num/den, 10)
	}
	if den%num == 0 {
		return fmt.Sprintf("1/%d", den/num)
	}
	return fmt.Sprintf("%d/%d", num, den)
}
