package timefmt

import (
	"math"
	"strings"
	"time"

	"github.com/mash-protocol/exectime-go/pkg/format"
	"github.com/mash-protocol/exectime-go/pkg/unit"
)

// SecondsPrecision is the number of fractional digits kept in Time.Seconds.
const SecondsPrecision = 9

// zeroThreshold is the magnitude below which seconds are displayed as zero.
const zeroThreshold = 1e-10

var (
	secondsInDay    = unit.Day.Seconds()
	secondsInHour   = unit.Hour.Seconds()
	secondsInMinute = unit.Minute.Seconds()
)

// Time is a duration split into days, hours, minutes and fractional seconds.
// The zero value represents a zero duration.
type Time struct {
	Days    uint64  `cbor:"1,keyasint" json:"days" yaml:"days"`
	Hours   uint8   `cbor:"2,keyasint" json:"hours" yaml:"hours"`
	Minutes uint8   `cbor:"3,keyasint" json:"minutes" yaml:"minutes"`
	Seconds float64 `cbor:"4,keyasint" json:"seconds" yaml:"seconds"`
}

// FromDuration decomposes d. Negative durations are not supported.
func FromDuration(d time.Duration) Time {
	return FromSeconds(d.Seconds())
}

// FromSeconds decomposes a finite, non-negative number of seconds.
func FromSeconds(s float64) Time {
	remainingDay := math.Mod(s, secondsInDay)
	remainingHour := math.Mod(remainingDay, secondsInHour)

	t := Time{
		Days:    uint64(math.Floor(s / secondsInDay)),
		Hours:   uint8(math.Floor(remainingDay / secondsInHour)),
		Minutes: uint8(math.Floor(remainingHour / secondsInMinute)),
		Seconds: format.Round(math.Mod(remainingHour, secondsInMinute), SecondsPrecision),
	}
	return t.carry()
}

// carry moves overflow from rounded seconds up through the larger units.
func (t Time) carry() Time {
	if t.Seconds >= secondsInMinute {
		t.Seconds = format.Round(t.Seconds-secondsInMinute, SecondsPrecision)
		t.Minutes++
	}
	if t.Minutes >= 60 {
		t.Minutes -= 60
		t.Hours++
	}
	if t.Hours >= 24 {
		t.Hours -= 24
		t.Days++
	}
	return t
}

// Format renders t as text such as "1 hour, 1 minute, 40.057 seconds".
func (t Time) Format() string {
	parts := make([]string, 0, 4)

	if t.Days > 0 {
		parts = append(parts, format.Integer(t.Days, unit.Day))
	}

	// Once a larger unit is shown, every smaller one follows.
	if t.Hours > 0 || len(parts) > 0 {
		parts = append(parts, format.Integer(uint64(t.Hours), unit.Hour))
	}
	if t.Minutes > 0 || len(parts) > 0 {
		parts = append(parts, format.Integer(uint64(t.Minutes), unit.Minute))
	}

	parts = append(parts, format.Float(t.Seconds, t.Decimals(), unit.Second))

	return strings.Join(parts, ", ")
}

// String returns Format().
func (t Time) String() string {
	return t.Format()
}

// Decimals returns the number of fractional digits used to display Seconds.
func (t Time) Decimals() int {
	switch s := t.Seconds; {
	case s < zeroThreshold:
		return 1
	case s >= 1:
		return 3
	case s >= 0.001:
		return 6
	default:
		return 9
	}
}

// TotalSeconds recombines the record into fractional seconds.
func (t Time) TotalSeconds() float64 {
	return float64(t.Days)*secondsInDay +
		float64(t.Hours)*secondsInHour +
		float64(t.Minutes)*secondsInMinute +
		t.Seconds
}

// Duration converts the record back to a time.Duration, rounded to the
// nearest nanosecond.
func (t Time) Duration() time.Duration {
	return DurationFromSeconds(t.TotalSeconds())
}

// IsZero reports whether t is the zero record.
func (t Time) IsZero() bool {
	return t == Time{}
}

// DurationFromSeconds converts fractional seconds to a time.Duration,
// rounded to the nearest nanosecond.
func DurationFromSeconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
