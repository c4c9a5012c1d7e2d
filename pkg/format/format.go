// Package format renders numeric values together with a time unit label.
//
// The plural label is chosen from the magnitude of the value, not from the
// printed digits: 1.57 renders as "1.57 second" and 2.00 as "2.00 hours".
package format

import (
	"math"
	"strconv"

	"github.com/mash-protocol/exectime-go/pkg/unit"
)

// pluralFrom is the smallest value rendered with a plural label.
const pluralFrom = 2

// Integer renders n followed by the unit label, e.g. "1 day" or "2 days".
// Zero is singular.
func Integer(n uint64, u unit.Unit) string {
	return strconv.FormatUint(n, 10) + " " + u.Label(n >= pluralFrom)
}

// Float renders x with exactly decimals fractional digits followed by the
// unit label. A negative decimals is treated as zero.
func Float(x float64, decimals int, u unit.Unit) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(x, 'f', decimals, 64) + " " + u.Label(x >= pluralFrom)
}

// Round rounds x to the given number of decimal places, half away from zero.
// Zero or negative decimals round to the nearest whole number.
func Round(x float64, decimals int) float64 {
	if decimals <= 0 || x == 0 {
		return math.Round(x)
	}
	multiplier := math.Pow(10, float64(decimals))
	return math.Round(x*multiplier) / multiplier
}
