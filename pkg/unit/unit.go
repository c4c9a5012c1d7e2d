// Package unit defines the time units used when rendering durations.
package unit

import (
	"errors"
	"strings"
)

// ErrUnknownUnit is returned by ParseUnit for labels outside the vocabulary.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit identifies a calendar-like unit of time.
type Unit uint8

const (
	// Second is one second.
	Second Unit = iota + 1

	// Minute is 60 seconds.
	Minute

	// Hour is 60 minutes.
	Hour

	// Day is 24 hours.
	Day
)

// All lists every unit from smallest to largest.
var All = []Unit{Second, Minute, Hour, Day}

// Singular returns the English singular label.
func (u Unit) Singular() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	default:
		return "unknown"
	}
}

// Plural returns the English plural label.
func (u Unit) Plural() string {
	switch u {
	case Second:
		return "seconds"
	case Minute:
		return "minutes"
	case Hour:
		return "hours"
	case Day:
		return "days"
	default:
		return "unknown"
	}
}

// Label returns the plural label when plural is true, the singular otherwise.
func (u Unit) Label(plural bool) string {
	if plural {
		return u.Plural()
	}
	return u.Singular()
}

// Seconds returns the length of the unit in seconds, or 0 for an unknown unit.
func (u Unit) Seconds() float64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	default:
		return 0
	}
}

// String returns the singular label.
func (u Unit) String() string {
	return u.Singular()
}

// ParseUnit maps a singular or plural label, in any case, to its Unit.
func ParseUnit(s string) (Unit, error) {
	label := strings.ToLower(strings.TrimSpace(s))
	for _, u := range All {
		if label == u.Singular() || label == u.Plural() {
			return u, nil
		}
	}
	return 0, ErrUnknownUnit
}
