// Package cli implements the brickpath command-line interface.
//
// # Commands
//
//   - place: compute a wall from a design file and export it
//   - inspect: log the per-row course summary of a design
//   - defaults: print the default design
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
)

// Trace keys of the library packages.
var traceKeys = []string{
	"brickpath", "spline", "curve", "course", "falloff",
	"transform", "polygon", "pipeline", "export",
}

// newLogger creates a logger writing to w, filtering at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// setTraceLevel adjusts the tracers of the library packages.
func setTraceLevel(verbose bool) {
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// progress logs the duration of an operation.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Microsecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
