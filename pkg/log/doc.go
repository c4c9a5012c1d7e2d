// Package log provides structured event capture for stopwatch readings.
//
// Every stopwatch can report what it measured: when it started, each lap,
// when it stopped and every time its elapsed time was printed. These
// events are separate from operational logging (slog) and form a
// machine-readable trace that can be inspected later with exectime-log.
//
// # Basic Usage
//
// Applications pass a Logger to the stopwatch:
//
//	// For development: log to console via slog
//	sw := stopwatch.Start(stopwatch.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For later analysis: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/exectime/build.elog")
//	sw := stopwatch.Start(stopwatch.WithLogger(fl))
//
//	// Both: use MultiLogger
//	sw := stopwatch.Start(stopwatch.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	)))
//
// # Event Kinds
//
//   - Start: the stopwatch captured its start instant
//   - Lap: an intermediate reading (LapEvent carries the split)
//   - Stop: the final reading
//   - Print: the elapsed string was written to an output
//   - Command: a timed child process finished (CommandEvent)
//   - Error: something went wrong while measuring (ErrorEventData)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys and use
// the .elog extension. Each event records the format version it was
// written with.
package log
