package exif

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRun   = regexp.MustCompile(`\d+`)
	decimalRun = regexp.MustCompile(`[\d.]+`)
	focalValue = regexp.MustCompile(`(?i)([\d.]+)\s*mm`)
)

// Parse scans one metadata dump and extracts a Record. It never fails:
// fields whose source keys are missing, or whose values do not match the
// expected pattern, simply stay unset. The text format varies across
// camera vendors, so parsing is tolerant. Blank values count as absent.
//
// Each relevant line is split at its first colon into a trimmed key and
// value; lines without a colon are skipped. Most fields are first-wins
// across their source keys. Lens resolution is tiered: "RF Lens Type" and
// "Lens ID" are authoritative and replace any earlier value, while
// "Lens Type", "Lens Model", and "Lens Info" only fill an empty field.
func Parse(raw, sourceID string) Record {
	rec := Record{SourceID: sourceID}

	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch key {
		case "Camera Model Name", "Camera Type 2":
			if rec.Camera == "" {
				rec.Camera = value
			}

		case "RF Lens Type", "Lens ID":
			rec.Lens = value
		case "Lens Type", "Lens Model", "Lens Info":
			if rec.Lens == "" {
				rec.Lens = value
			}

		case "ISO":
			if rec.ISO == 0 {
				rec.ISO = firstInt(value)
			}
		case "Camera ISO":
			// "Camera ISO: Auto" carries no real sensitivity reading.
			if rec.ISO == 0 && !strings.Contains(value, "Auto") {
				rec.ISO = firstInt(value)
			}

		case "Shutter Speed", "Exposure Time", "Shutter Speed Value":
			if rec.ShutterSpeed == "" {
				rec.ShutterSpeed = value
			}

		case "Aperture", "F Number", "Aperture Value":
			if rec.Aperture == "" {
				if m := decimalRun.FindString(value); m != "" {
					rec.Aperture = "f/" + m
				}
			}

		case "Focal Length":
			if rec.FocalLength == "" {
				if m := focalValue.FindStringSubmatch(value); m != nil {
					if f, err := strconv.ParseFloat(m[1], 64); err == nil {
						rec.FocalLength = formatFocal(f)
					}
				}
			}
		}
	}

	return rec
}

// firstInt extracts the first run of digits from value, or 0 when there is
// none or it is not a positive number.
func firstInt(value string) int {
	m := digitRun.FindString(value)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func formatFocal(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10) + "mm"
	}
	return strconv.FormatFloat(f, 'f', 1, 64) + "mm"
}
