package stats

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalRun = regexp.MustCompile(`[\d.]+`)

// firstNumber extracts the first decimal number embedded in a label, e.g.
// 2.8 from "f/2.8" or 40 from "40mm". Labels without a parsable number
// sort last (+Inf).
func firstNumber(label string) float64 {
	f, err := strconv.ParseFloat(decimalRun.FindString(label), 64)
	if err != nil {
		return math.Inf(1)
	}
	return f
}

// exposureSeconds converts a shutter speed label to its duration in
// seconds: "1/250" is 1÷250, a plain number stands for whole seconds.
// Anything unparsable sorts last (+Inf).
func exposureSeconds(label string) float64 {
	if num, den, found := strings.Cut(label, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return math.Inf(1)
		}
		return n / d
	}

	f, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return math.Inf(1)
	}
	return f
}
