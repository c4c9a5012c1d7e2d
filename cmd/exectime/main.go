// Command exectime runs a command and reports how long it took.
//
// The elapsed time is printed in the same form as stopwatch.PrintElapsed:
//
//	Elapsed time: 1 minute, 5.000 seconds (65.000012345s)
//
// Usage:
//
//	exectime [flags] [--] command [args...]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-label string      Label attached to logged events
//	-log string        Append CBOR events to this file
//	-log-level string  Log level: debug, info, warn, error (default "warn")
//	-stderr            Print the elapsed time to stderr instead of stdout
//	-version           Print version information and exit
//
// The exit status is the command's own exit status, 127 if it could not be
// started, and 2 for usage errors.
//
// Examples:
//
//	# Time a build
//	exectime make
//
//	# Record events for later analysis with exectime-log
//	exectime -label nightly -log build.elog -- make -j8 test
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
