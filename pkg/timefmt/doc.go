// Package timefmt decomposes durations into days, hours, minutes and
// fractional seconds and renders them as human-readable text.
//
// # Decomposition
//
// FromDuration converts a time.Duration to a Time record using the total
// number of fractional seconds S:
//
//	days    = floor(S / 86400)
//	hours   = floor((S mod 86400) / 3600)
//	minutes = floor(((S mod 86400) mod 3600) / 60)
//	seconds = round9(((S mod 86400) mod 3600) mod 60)
//
// When rounding seconds to nine fractional digits yields 60.0, the excess
// is carried into minutes (and from there into hours and days), so the
// record always satisfies hours < 24, minutes < 60 and seconds < 60.
//
// # Composition
//
// Format emits days, hours and minutes only once a larger unit (or the
// unit itself) is non-zero, and always emits seconds:
//
//	Time{Days: 1, Hours: 2, Minutes: 5, Seconds: 28.03}.Format()
//	// "1 day, 2 hours, 5 minutes, 28.030 seconds"
//
//	Time{Days: 1}.Format()
//	// "1 day, 0 hour, 0 minute, 0.0 second"
//
// The number of fractional digits shown for seconds depends on magnitude:
// one digit for zero, three from one second up, six from a millisecond up
// and nine below that.
//
// # Raw rendering
//
// Raw renders a duration in a single unit with every significant digit
// kept ("57ns", "80.057µs", "15.2ms", "3700.05689173s"). Unlike
// time.Duration.String it never splits into hours and minutes.
package timefmt
