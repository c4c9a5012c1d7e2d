// Package config loads exectime settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output destinations for the elapsed-time line.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Formats for operational slog output.
const (
	SlogText = "text"
	SlogJSON = "json"
)

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidOutput   = errors.New("invalid output")
	ErrInvalidSlog     = errors.New("invalid slog format")
)

// Config holds exectime settings. Zero-valued fields fall back to Default.
type Config struct {
	// Label is attached to every logged event.
	Label string `yaml:"label"`

	// LogFile is the path of the CBOR event log. Empty disables it.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Output is where the elapsed-time line is printed.
	Output string `yaml:"output"`

	// Slog selects the operational log handler.
	Slog string `yaml:"slog"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Output:   OutputStdout,
		Slog:     SlogText,
	}
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid configuration",
			Cause:   err,
		}
	}

	return &cfg, nil
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.Output {
	case OutputStdout, OutputStderr:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}

	switch c.Slog {
	case SlogText, SlogJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSlog, c.Slog)
	}

	return nil
}

// Level returns the parsed log level, or slog.LevelWarn if it is invalid.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}

// LoadError provides details about a config loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
