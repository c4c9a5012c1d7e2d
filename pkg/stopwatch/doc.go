// Package stopwatch measures wall-clock elapsed time and reports it in a
// human-readable form.
//
// A Stopwatch captures its start instant when created and is read-only
// afterwards, so it can be read from several goroutines at once:
//
//	sw := stopwatch.Start()
//	// ... work ...
//	sw.PrintElapsed()
//	// Elapsed time: 1 minute, 5.000 seconds (65.000012345s)
//
// Readings use the monotonic clock reading carried by time.Now, so they
// never go backwards even when the wall clock is adjusted.
//
// # Event Capture
//
// When created with WithLogger, the stopwatch reports START, LAP, STOP and
// PRINT events to a log.Logger. Each stopwatch gets a random run ID so
// events from several stopwatches sharing one log can be told apart.
package stopwatch
