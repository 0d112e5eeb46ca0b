package kform

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// The package logger carries the single diagnostic this library emits: the
// post-solve residual warning. It defaults to the process-wide slog logger
// so the warning is visible out of the box, matching the reference
// behavior of warning on large residuals without aborting.
var logger = slog.Default()

// SetLogger overrides the package logger. Pass a logger scoped to your own
// handler to route or silence the residual diagnostic.
func SetLogger(l *slog.Logger) {
	logger = l
}

// DisableLogging drops all package diagnostics.
func DisableLogging() {
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ConsoleLogger returns a colorized console logger suitable for demos and
// CLI consumers.
func ConsoleLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
