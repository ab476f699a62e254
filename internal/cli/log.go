package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes "15:04:05.00 INFO classics: msg key=value" lines to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "classics",
		Level:           level,
	})
}

// resolveLevel maps the configured level name to a log.Level.
// --verbose wins over the config file.
func resolveLevel(name string, verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("cli: log level %q: %w", name, err)
	}
	return level, nil
}

// stopwatch times one algorithm run and reports it as a structured entry.
// Algorithm packages measure their own Elapsed; this one also covers flag
// handling and result printing, so the two differ slightly.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and a trailing "took" field.
func (s stopwatch) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(s.start).Round(time.Microsecond))
	s.logger.Info(msg, keyvals...)
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default()
// when a command runs outside the root's pre-run hook.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
