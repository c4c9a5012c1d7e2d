// Command exectime-log is a tool for viewing and analyzing exectime event logs.
//
// Event logs are written by exectime with the -log flag, or by any program
// that passes a log.FileLogger to stopwatch.Start.
//
// Usage:
//
//	exectime-log <command> [flags] <file.elog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	exectime-log view build.elog
//
//	# View only lap events
//	exectime-log view -kind lap build.elog
//
//	# Export to JSONL
//	exectime-log export -format jsonl build.elog
//
//	# Keep only runs that took at least five minutes
//	exectime-log filter -kind stop -min-elapsed "5 minutes" -o slow.elog build.elog
//
//	# Show statistics
//	exectime-log stats build.elog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mash-protocol/exectime-go/cmd/exectime-log/commands"
)

const usage = `exectime-log - Execution Time Log Analyzer

Usage:
  exectime-log <command> [flags] <file.elog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "exectime-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// requirePath returns the single positional log file argument.
func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `exectime-log view - View log file in human-readable format

Usage:
  exectime-log view [flags] <file.elog>

Flags:
`)
		fs.PrintDefaults()
	}

	kind := fs.String("kind", "", "Filter by kind (start, lap, stop, print, command, error)")
	runID := fs.String("run-id", "", "Filter by run ID")
	label := fs.String("label", "", "Filter by stopwatch label")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{RunID: *runID, Label: *label}
	if *kind != "" {
		k, err := commands.ParseKindFlag(*kind)
		if err != nil {
			fail(err)
		}
		filter.Kind = &k
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `exectime-log export - Export log file to JSON or CSV format

Usage:
  exectime-log export [flags] <file.elog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `exectime-log filter - Filter log file and write to new file

Usage:
  exectime-log filter [flags] <file.elog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	runID := fs.String("run-id", "", "Filter by run ID")
	label := fs.String("label", "", "Filter by stopwatch label")
	kind := fs.String("kind", "", "Filter by kind (start, lap, stop, print, command, error)")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	minElapsed := fs.String("min-elapsed", "", `Minimum elapsed time ("90s", "2 minutes")`)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:     *output,
		RunID:      *runID,
		Label:      *label,
		Kind:       *kind,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
		MinElapsed: *minElapsed,
	}

	n, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `exectime-log stats - Show statistics about the log file

Usage:
  exectime-log stats <file.elog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
