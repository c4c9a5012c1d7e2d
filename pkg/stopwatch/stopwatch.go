package stopwatch

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mash-protocol/exectime-go/pkg/log"
	"github.com/mash-protocol/exectime-go/pkg/timefmt"
	"github.com/mash-protocol/exectime-go/pkg/version"
)

// Prefix is written before the elapsed string by PrintElapsed and Fprint.
const Prefix = "Elapsed time: "

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(clock Clock) Option {
	return func(sw *Stopwatch) {
		if clock != nil {
			sw.clock = clock
		}
	}
}

// WithOutput sets the writer used by PrintElapsed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(sw *Stopwatch) {
		if w != nil {
			sw.out = w
		}
	}
}

// WithLogger sets the event logger. Defaults to log.NoopLogger.
func WithLogger(logger log.Logger) Option {
	return func(sw *Stopwatch) {
		if logger != nil {
			sw.logger = logger
		}
	}
}

// WithSlog sets the operational logger. Defaults to slog.Default().
func WithSlog(logger *slog.Logger) Option {
	return func(sw *Stopwatch) {
		if logger != nil {
			sw.slog = logger
		}
	}
}

// WithLabel names the stopwatch in logged events.
func WithLabel(label string) Option {
	return func(sw *Stopwatch) {
		sw.label = label
	}
}

// WithRunID overrides the randomly generated run ID.
func WithRunID(id string) Option {
	return func(sw *Stopwatch) {
		if id != "" {
			sw.runID = id
		}
	}
}

// Stopwatch measures the time elapsed since it was started.
// All methods are safe for concurrent use.
type Stopwatch struct {
	start  time.Time
	clock  Clock
	out    io.Writer
	logger log.Logger
	slog   *slog.Logger
	label  string
	runID  string

	// laps guards the lap counter; plain readings never take it.
	laps struct {
		sync.Mutex
		count int
		last  time.Duration
	}
}

// Start captures the current instant and returns a running Stopwatch.
func Start(opts ...Option) *Stopwatch {
	sw := &Stopwatch{
		clock:  SystemClock,
		out:    os.Stdout,
		logger: log.NoopLogger{},
		slog:   slog.Default(),
	}
	for _, opt := range opts {
		opt(sw)
	}
	if sw.runID == "" {
		sw.runID = uuid.NewString()
	}

	sw.start = sw.clock.Now()
	sw.logger.Log(sw.event(log.KindStart, 0))
	sw.slog.Debug("stopwatch started", "run_id", sw.runID, "label", sw.label)

	return sw
}

// StartedAt returns the instant captured by Start.
func (sw *Stopwatch) StartedAt() time.Time {
	return sw.start
}

// RunID returns the identifier attached to logged events.
func (sw *Stopwatch) RunID() string {
	return sw.runID
}

// Label returns the stopwatch label.
func (sw *Stopwatch) Label() string {
	return sw.label
}

// Elapsed returns the time since Start. Successive calls never decrease.
func (sw *Stopwatch) Elapsed() time.Duration {
	d := sw.clock.Now().Sub(sw.start)
	if d < 0 {
		return 0
	}
	return d
}

// Time returns Elapsed decomposed into days, hours, minutes and seconds.
func (sw *Stopwatch) Time() timefmt.Time {
	return timefmt.FromDuration(sw.Elapsed())
}

// ElapsedString returns the elapsed time as "{formatted} ({raw})", e.g.
// "1 minute, 5.000 seconds (65.000012345s)".
func (sw *Stopwatch) ElapsedString() string {
	return render(sw.Elapsed())
}

// PrintElapsed writes "Elapsed time: {ElapsedString}" and a newline to the
// configured output (standard output by default). Write errors are ignored.
func (sw *Stopwatch) PrintElapsed() {
	_ = sw.Fprint(sw.out)
}

// Fprint writes the PrintElapsed line to w and returns any write error.
func (sw *Stopwatch) Fprint(w io.Writer) error {
	d := sw.Elapsed()

	_, err := io.WriteString(w, Prefix+render(d)+"\n")
	if err != nil {
		sw.slog.Debug("failed to print elapsed time", "run_id", sw.runID, "error", err)

		event := sw.event(log.KindError, d)
		event.Error = &log.ErrorEventData{Message: err.Error(), Context: "print elapsed time"}
		sw.logger.Log(event)
		return err
	}

	sw.logger.Log(sw.event(log.KindPrint, d))
	return nil
}

// Lap records an intermediate reading and returns the time since the
// previous lap, or since Start for the first lap.
func (sw *Stopwatch) Lap(name string) time.Duration {
	sw.laps.Lock()
	defer sw.laps.Unlock()

	d := sw.Elapsed()
	split := d - sw.laps.last
	if split < 0 {
		split = 0
	}
	sw.laps.count++
	sw.laps.last = d

	event := sw.event(log.KindLap, d)
	event.Lap = &log.LapEvent{Name: name, Index: sw.laps.count, Split: split}
	sw.logger.Log(event)

	return split
}

// Laps returns the number of laps recorded so far.
func (sw *Stopwatch) Laps() int {
	sw.laps.Lock()
	defer sw.laps.Unlock()
	return sw.laps.count
}

// Finish records a final STOP reading and returns it. The stopwatch keeps
// running; later readings continue from the same start instant.
func (sw *Stopwatch) Finish() time.Duration {
	d := sw.Elapsed()
	sw.logger.Log(sw.event(log.KindStop, d))
	sw.slog.Debug("stopwatch finished", "run_id", sw.runID, "label", sw.label, "elapsed", d)
	return d
}

// Event builds a log event of the given kind for a reading of d.
// Callers attach their own payload before logging it.
func (sw *Stopwatch) Event(kind log.Kind, d time.Duration) log.Event {
	return sw.event(kind, d)
}

// Log sends event to the configured event logger.
func (sw *Stopwatch) Log(event log.Event) {
	sw.logger.Log(event)
}

func (sw *Stopwatch) event(kind log.Kind, d time.Duration) log.Event {
	return log.Event{
		Timestamp: sw.start.Add(d),
		RunID:     sw.runID,
		Kind:      kind,
		Label:     sw.label,
		Version:   version.Current,
		Elapsed:   d,
		Time:      timefmt.FromDuration(d),
	}
}

// render formats d as "{formatted} ({raw})".
func render(d time.Duration) string {
	return timefmt.FromDuration(d).Format() + " (" + timefmt.Raw(d) + ")"
}
