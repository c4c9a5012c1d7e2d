package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mash-protocol/exectime-go/pkg/log"
	"github.com/mash-protocol/exectime-go/pkg/timefmt"
)

// record is the flattened export form of an event.
type record struct {
	Timestamp string       `json:"timestamp"`
	RunID     string       `json:"run_id"`
	Kind      string       `json:"kind"`
	Label     string       `json:"label,omitempty"`
	ElapsedNs int64        `json:"elapsed_ns"`
	Time      timefmt.Time `json:"time"`
	Formatted string       `json:"formatted"`
	LapName   string       `json:"lap_name,omitempty"`
	LapIndex  int          `json:"lap_index,omitempty"`
	SplitNs   int64        `json:"split_ns,omitempty"`
	Command   string       `json:"command,omitempty"`
	ExitCode  *int         `json:"exit_code,omitempty"`
	Error     string       `json:"error,omitempty"`
}

func toRecord(event log.Event) record {
	r := record{
		Timestamp: event.Timestamp.UTC().Format(timestampLayout),
		RunID:     event.RunID,
		Kind:      event.Kind.String(),
		Label:     event.Label,
		ElapsedNs: int64(event.Elapsed),
		Time:      event.Time,
		Formatted: event.Formatted(),
	}
	switch {
	case event.Lap != nil:
		r.LapName = event.Lap.Name
		r.LapIndex = event.Lap.Index
		r.SplitNs = int64(event.Lap.Split)
	case event.Command != nil:
		r.Command = event.Command.Path
		code := event.Command.ExitCode
		r.ExitCode = &code
	case event.Error != nil:
		r.Error = event.Error.Message
	}
	return r
}

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return export(reader, format, w)
}

func export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "run_id", "kind", "label", "elapsed_ns", "formatted", "lap_index", "exit_code"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		r := toRecord(event)
		lapIndex, exitCode := "", ""
		if event.Lap != nil {
			lapIndex = strconv.Itoa(r.LapIndex)
		}
		if r.ExitCode != nil {
			exitCode = strconv.Itoa(*r.ExitCode)
		}

		row := []string{
			r.Timestamp,
			r.RunID,
			r.Kind,
			r.Label,
			strconv.FormatInt(r.ElapsedNs, 10),
			r.Formatted,
			lapIndex,
			exitCode,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
