package log

import (
	"time"

	"github.com/mash-protocol/exectime-go/pkg/timefmt"
)

// Event represents a stopwatch log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp is the wall-clock time of the reading (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID uniquely identifies the stopwatch that produced the event (UUID).
	RunID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Label is the caller-supplied stopwatch name.
	Label string `cbor:"4,keyasint,omitempty"`

	// Version is the log format version the event was written with.
	Version string `cbor:"5,keyasint,omitempty"`

	// Elapsed is the time since the stopwatch started. Stored as nanoseconds.
	Elapsed time.Duration `cbor:"6,keyasint"`

	// Time is Elapsed decomposed into days, hours, minutes and seconds.
	Time timefmt.Time `cbor:"7,keyasint"`

	// Type-specific payload (at most one of these is set).
	Lap     *LapEvent       `cbor:"8,keyasint,omitempty"`
	Command *CommandEvent   `cbor:"9,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"10,keyasint,omitempty"`
}

// Formatted returns the elapsed time as "{formatted} ({raw})".
func (e Event) Formatted() string {
	return e.Time.Format() + " (" + timefmt.Raw(e.Elapsed) + ")"
}

// Kind classifies a stopwatch event.
type Kind uint8

const (
	// KindStart marks the start of a stopwatch.
	KindStart Kind = 0
	// KindLap marks an intermediate reading.
	KindLap Kind = 1
	// KindStop marks the final reading.
	KindStop Kind = 2
	// KindPrint marks a reading written to an output.
	KindPrint Kind = 3
	// KindCommand marks the end of a timed command.
	KindCommand Kind = 4
	// KindError marks a failure while measuring.
	KindError Kind = 5
)

// AllKinds lists every event kind in declaration order.
var AllKinds = []Kind{KindStart, KindLap, KindStop, KindPrint, KindCommand, KindError}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "START"
	case KindLap:
		return "LAP"
	case KindStop:
		return "STOP"
	case KindPrint:
		return "PRINT"
	case KindCommand:
		return "COMMAND"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LapEvent captures an intermediate reading.
type LapEvent struct {
	// Name identifies the lap (may be empty).
	Name string `cbor:"1,keyasint,omitempty"`

	// Index is the 1-based lap number within the run.
	Index int `cbor:"2,keyasint"`

	// Split is the time since the previous lap (or the start for the first lap).
	Split time.Duration `cbor:"3,keyasint"`
}

// CommandEvent captures a timed child process.
type CommandEvent struct {
	// Path is the executable that was run.
	Path string `cbor:"1,keyasint"`

	// Args are the arguments passed to the executable.
	Args []string `cbor:"2,keyasint,omitempty"`

	// ExitCode is the process exit status (-1 if it could not be determined).
	ExitCode int `cbor:"3,keyasint"`
}

// ErrorEventData captures errors while measuring.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
