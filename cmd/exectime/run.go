package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"github.com/mash-protocol/exectime-go/pkg/config"
	"github.com/mash-protocol/exectime-go/pkg/log"
	"github.com/mash-protocol/exectime-go/pkg/stopwatch"
	"github.com/mash-protocol/exectime-go/pkg/version"
)

// Exit codes for failures of exectime itself.
const (
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 127
)

// options holds the command-line flags.
type options struct {
	ConfigFile  string
	Label       string
	LogFile     string
	LogLevel    string
	Stderr      bool
	ShowVersion bool

	// set records which flags were given explicitly.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("exectime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, `exectime - Report the execution time of a command

Usage:
  exectime [flags] [--] command [args...]

Flags:
`)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&opts.Label, "label", "", "Label attached to logged events")
	fs.StringVar(&opts.LogFile, "log", "", "Append CBOR events to this file")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.Stderr, "stderr", false, "Print the elapsed time to stderr instead of stdout")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print version information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, fs.Args(), nil
}

// resolveConfig loads the config file, if any, and applies explicit flags on top.
func resolveConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if opts.set["label"] {
		cfg.Label = opts.Label
	}
	if opts.set["log"] {
		cfg.LogFile = opts.LogFile
	}
	if opts.set["log-level"] {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Stderr {
		cfg.Output = config.OutputStderr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newSlogger(cfg *config.Config, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.Slog == config.SlogJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, cmdArgs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return exitUsage
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "exectime (event log format %s)\n", version.Current)
		return 0
	}

	if len(cmdArgs) == 0 {
		fmt.Fprintln(stderr, "Error: command required")
		return exitUsage
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	slogger := newSlogger(cfg, stderr)
	loggers := []log.Logger{log.NewSlogAdapter(slogger)}
	if cfg.LogFile != "" {
		fileLogger, err := log.NewFileLogger(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to open event log: %v\n", err)
			return exitFailure
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
	}

	out := stdout
	if cfg.Output == config.OutputStderr {
		out = stderr
	}

	// The child receives terminal interrupts directly; keep running until it
	// exits so the elapsed time is still reported.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	sw := stopwatch.Start(
		stopwatch.WithOutput(out),
		stopwatch.WithLogger(log.NewMultiLogger(loggers...)),
		stopwatch.WithSlog(slogger),
		stopwatch.WithLabel(cfg.Label),
	)

	exitCode, runErr := execute(cmdArgs, stdin, stdout, stderr)

	event := sw.Event(log.KindCommand, sw.Elapsed())
	event.Command = &log.CommandEvent{Path: cmdArgs[0], Args: cmdArgs[1:], ExitCode: exitCode}
	sw.Log(event)

	if runErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", runErr)
		errEvent := sw.Event(log.KindError, sw.Elapsed())
		errEvent.Error = &log.ErrorEventData{Message: runErr.Error(), Context: "start command"}
		sw.Log(errEvent)
	}

	sw.Finish()
	sw.PrintElapsed()

	if exitCode < 0 {
		return exitFailure
	}
	return exitCode
}

// execute runs the command with the given standard streams and returns its
// exit code. A non-nil error means the command could not be started.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return exitNotFound, fmt.Errorf("failed to run %s: %w", args[0], err)
}
