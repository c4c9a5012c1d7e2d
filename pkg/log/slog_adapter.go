package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes stopwatch events to an slog.Logger.
// Useful for development when you want to see readings in the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter that logs at the given level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("kind", event.Kind.String()),
		slog.Duration("elapsed", event.Elapsed),
		slog.String("formatted", event.Time.Format()),
	}

	if event.Label != "" {
		attrs = append(attrs, slog.String("label", event.Label))
	}

	// Add type-specific attributes
	switch {
	case event.Lap != nil:
		attrs = append(attrs,
			slog.Int("lap", event.Lap.Index),
			slog.Duration("split", event.Lap.Split),
		)
		if event.Lap.Name != "" {
			attrs = append(attrs, slog.String("lap_name", event.Lap.Name))
		}
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("command", event.Command.Path),
			slog.Int("exit_code", event.Command.ExitCode),
		)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), a.level, "stopwatch", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
