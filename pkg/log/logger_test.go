package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		RunID:     "test-run",
		Kind:      KindStart,
	}

	// Test with nil payloads
	logger.Log(event)

	event.Kind = KindLap
	event.Lap = &LapEvent{Index: 1}
	logger.Log(event)

	event.Kind = KindCommand
	event.Lap = nil
	event.Command = &CommandEvent{Path: "true"}
	logger.Log(event)

	event.Kind = KindError
	event.Command = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestLoggerInterfaceSatisfaction(t *testing.T) {
	// Compile-time check that NoopLogger satisfies Logger interface
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}
