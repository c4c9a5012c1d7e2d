package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/exectime-go/pkg/log"
	"github.com/mash-protocol/exectime-go/pkg/timefmt"
)

var testStart = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

const (
	runA = "aaaaaaaa-1111-2222-3333-444444444444"
	runB = "bbbbbbbb-1111-2222-3333-444444444444"
)

// newEvent builds an event for run at elapsed d.
func newEvent(run string, kind log.Kind, d time.Duration) log.Event {
	return log.Event{
		Timestamp: testStart.Add(d),
		RunID:     run,
		Kind:      kind,
		Elapsed:   d,
		Time:      timefmt.FromDuration(d),
	}
}

// sampleEvents returns two runs: a labelled build with two laps and a
// timed command that failed.
func sampleEvents() []log.Event {
	lap1 := newEvent(runA, log.KindLap, 2*time.Second)
	lap1.Lap = &log.LapEvent{Name: "compile", Index: 1, Split: 2 * time.Second}
	lap2 := newEvent(runA, log.KindLap, 65*time.Second+12_345)
	lap2.Lap = &log.LapEvent{Name: "link", Index: 2, Split: 63*time.Second + 12_345}

	cmd := newEvent(runB, log.KindCommand, 3700*time.Second+56_891_730)
	cmd.Command = &log.CommandEvent{Path: "make", Args: []string{"test"}, ExitCode: 2}

	events := []log.Event{
		newEvent(runA, log.KindStart, 0),
		lap1,
		lap2,
		newEvent(runA, log.KindStop, 65*time.Second+12_345),
		newEvent(runB, log.KindStart, 0),
		cmd,
	}
	for i := 0; i < 4; i++ {
		events[i].Label = "build"
	}
	return events
}

// createTestLogFile writes events to a new log file and returns its path.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.elog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}
