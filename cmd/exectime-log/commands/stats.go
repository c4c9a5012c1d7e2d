package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mash-protocol/exectime-go/pkg/log"
	"github.com/mash-protocol/exectime-go/pkg/timefmt"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Runs         map[string]*RunStatistics
	Errors       int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// RunStatistics holds statistics for a single stopwatch run.
type RunStatistics struct {
	Label     string
	FirstSeen time.Time
	Events    int
	Laps      int
	Elapsed   time.Duration
	ExitCode  *int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}

	printStats(w, stats)
	return nil
}

func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Runs:         make(map[string]*RunStatistics),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunStatistics{FirstSeen: event.Timestamp}
			stats.Runs[event.RunID] = run
		}
		run.Events++
		if run.Label == "" {
			run.Label = event.Label
		}
		if event.Timestamp.Before(run.FirstSeen) {
			run.FirstSeen = event.Timestamp
		}
		if event.Elapsed > run.Elapsed {
			run.Elapsed = event.Elapsed
		}
		if event.Lap != nil {
			run.Laps++
		}
		if event.Command != nil {
			code := event.Command.ExitCode
			run.ExitCode = &code
		}

		if event.Error != nil {
			stats.Errors++
		}
	}

	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Execution Time Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range log.AllKinds {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	if len(stats.Runs) > 0 {
		type runInfo struct {
			id    string
			stats *RunStatistics
		}
		runs := make([]runInfo, 0, len(stats.Runs))
		for id, rs := range stats.Runs {
			runs = append(runs, runInfo{id, rs})
		}
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		var total time.Duration
		for _, r := range runs {
			total += r.stats.Elapsed
			fmt.Fprintf(w, "  [%s] %d events, elapsed %s\n",
				shortenRunID(r.id), r.stats.Events, timefmt.FromDuration(r.stats.Elapsed).Format())
			if r.stats.Label != "" {
				fmt.Fprintf(w, "             Label: %s\n", r.stats.Label)
			}
			if r.stats.Laps > 0 {
				fmt.Fprintf(w, "             Laps: %d\n", r.stats.Laps)
			}
			if r.stats.ExitCode != nil {
				fmt.Fprintf(w, "             Exit code: %d\n", *r.stats.ExitCode)
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total Elapsed: %s\n", timefmt.FromDuration(total).Format())
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
