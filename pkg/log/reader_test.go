package log

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/exectime-go/pkg/version"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, reader *Reader) []Event {
	t.Helper()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), RunID: "run-1", Kind: KindStart},
		{Timestamp: time.Now(), RunID: "run-2", Kind: KindLap},
		{Timestamp: time.Now(), RunID: "run-3", Kind: KindStop},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}

	// Verify order
	if read[0].RunID != "run-1" {
		t.Errorf("first event RunID = %q, want %q", read[0].RunID, "run-1")
	}
	if read[2].RunID != "run-3" {
		t.Errorf("last event RunID = %q, want %q", read[2].RunID, "run-3")
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.elog")); err == nil {
		t.Error("NewReader should fail for a missing file")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.elog")

	// Create empty file
	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderReturnsEOFAfterLastEvent(t *testing.T) {
	path := createTestLogFile(t, []Event{{Timestamp: time.Now(), RunID: "run-1"}})

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err = reader.Next(); err != nil {
		t.Fatalf("first Next failed: %v", err)
	}

	if _, err = reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after all events, got %v", err)
	}
}

func TestReaderRejectsIncompatibleVersion(t *testing.T) {
	path := createTestLogFile(t, []Event{
		{Timestamp: time.Now(), RunID: "run-1", Version: "2.0"},
	})

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	_, err = reader.Next()
	if !errors.Is(err, version.ErrIncompatible) {
		t.Errorf("Next error = %v, want ErrIncompatible", err)
	}
}

func TestReaderFilterByRunID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), RunID: "run-A", Kind: KindStart},
		{Timestamp: time.Now(), RunID: "run-B", Kind: KindStart},
		{Timestamp: time.Now(), RunID: "run-A", Kind: KindStop},
		{Timestamp: time.Now(), RunID: "run-C", Kind: KindStart},
	}

	path := createTestLogFile(t, events)

	reader, err := NewFilteredReader(path, Filter{RunID: "run-A"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	for _, e := range read {
		if e.RunID != "run-A" {
			t.Errorf("unexpected RunID %q", e.RunID)
		}
	}
}

func TestReaderFilterByKindAndLabel(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), RunID: "run-1", Label: "build", Kind: KindLap},
		{Timestamp: time.Now(), RunID: "run-1", Label: "build", Kind: KindStop},
		{Timestamp: time.Now(), RunID: "run-2", Label: "test", Kind: KindLap},
		{Timestamp: time.Now(), RunID: "run-2", Label: "test", Kind: KindStop},
	}

	path := createTestLogFile(t, events)

	stop := KindStop
	reader, err := NewFilteredReader(path, Filter{Label: "test", Kind: &stop})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}
	if read[0].RunID != "run-2" || read[0].Kind != KindStop {
		t.Errorf("unexpected event %+v", read[0])
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, RunID: "before"},
		{Timestamp: base.Add(10 * time.Second), RunID: "start"},
		{Timestamp: base.Add(20 * time.Second), RunID: "middle"},
		{Timestamp: base.Add(30 * time.Second), RunID: "end"},
	}

	path := createTestLogFile(t, events)

	start := base.Add(10 * time.Second)
	end := base.Add(30 * time.Second)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	if read[0].RunID != "start" || read[1].RunID != "middle" {
		t.Errorf("got %q, %q; want start, middle", read[0].RunID, read[1].RunID)
	}
}

func TestReaderFilterByMinElapsed(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), RunID: "fast", Elapsed: 10 * time.Millisecond},
		{Timestamp: time.Now(), RunID: "exact", Elapsed: time.Second},
		{Timestamp: time.Now(), RunID: "slow", Elapsed: time.Minute},
	}

	path := createTestLogFile(t, events)

	minElapsed := time.Second
	reader, err := NewFilteredReader(path, Filter{MinElapsed: &minElapsed})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	if read[0].RunID != "exact" || read[1].RunID != "slow" {
		t.Errorf("got %q, %q; want exact, slow", read[0].RunID, read[1].RunID)
	}
}
