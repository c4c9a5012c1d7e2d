package timefmt

import (
	"strconv"
	"strings"
	"time"
)

// Raw renders d in the largest of s, ms, µs or ns that does not exceed it,
// keeping every significant fractional digit: 57ns, 80.057µs, 15.2ms,
// 65.000012345s.
func Raw(d time.Duration) string {
	n := uint64(d)
	sign := ""
	if d < 0 {
		n = -n
		sign = "-"
	}

	switch {
	case n >= uint64(time.Second):
		return sign + decimal(n, uint64(time.Second), 9) + "s"
	case n >= uint64(time.Millisecond):
		return sign + decimal(n, uint64(time.Millisecond), 6) + "ms"
	case n >= uint64(time.Microsecond):
		return sign + decimal(n, uint64(time.Microsecond), 3) + "µs"
	default:
		return sign + strconv.FormatUint(n, 10) + "ns"
	}
}

// decimal renders n/scale with trailing fractional zeros removed.
func decimal(n, scale uint64, digits int) string {
	whole := strconv.FormatUint(n/scale, 10)
	frac := n % scale
	if frac == 0 {
		return whole
	}

	fracStr := strconv.FormatUint(frac, 10)
	fracStr = strings.Repeat("0", digits-len(fracStr)) + fracStr
	return whole + "." + strings.TrimRight(fracStr, "0")
}
