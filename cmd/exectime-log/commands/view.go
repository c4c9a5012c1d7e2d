// Package commands implements the exectime-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mash-protocol/exectime-go/pkg/log"
	"github.com/mash-protocol/exectime-go/pkg/timefmt"
	"github.com/mash-protocol/exectime-go/pkg/unit"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Kind  *log.Kind
	RunID string
	Label string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] KIND label
	ts := event.Timestamp.UTC().Format(timestampLayout)
	fmt.Fprintf(w, "%s [run:%s] %s", ts, shortenRunID(event.RunID), event.Kind.String())
	if event.Label != "" {
		fmt.Fprintf(w, " %s", event.Label)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Elapsed: %s\n", event.Formatted())

	switch {
	case event.Lap != nil:
		formatLapDetails(w, event.Lap)
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatLapDetails(w io.Writer, lap *log.LapEvent) {
	fmt.Fprintf(w, "  Lap: #%d", lap.Index)
	if lap.Name != "" {
		fmt.Fprintf(w, " %s", lap.Name)
	}
	fmt.Fprintf(w, " (split %s)\n", formatSplit(lap.Split))
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	fmt.Fprintf(w, "  Command: %s\n", strings.TrimSpace(cmd.Path+" "+strings.Join(cmd.Args, " ")))
	fmt.Fprintf(w, "  Exit code: %d\n", cmd.ExitCode)
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatSplit renders a lap split the same way as elapsed times.
func formatSplit(d time.Duration) string {
	return timefmt.FromDuration(d).Format() + ", " + timefmt.Raw(d)
}

// ParseKindFlag parses an event kind from a command-line flag (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	for _, k := range log.AllKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid kind: %s (must be start, lap, stop, print, command, or error)", s)
}

// ParseMinElapsedFlag parses a threshold such as "90s", "1.5h" or "2 minutes".
// Plain Go durations are accepted, as are "<number> <unit>" pairs using the
// unit names of the formatter.
func ParseMinElapsedFlag(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	u, err := unit.ParseUnit(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %s: %w", s, err)
	}

	return timefmt.DurationFromSeconds(n * u.Seconds()), nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Kind:  filter.Kind,
		RunID: filter.RunID,
		Label: filter.Label,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
