package engine

import (
	"log/slog"
	"sync/atomic"
)

// logger is package-level because the dev-only warnings in spec.md §7
// (ReadOnlyWrite, MissingActiveEffectCleanup, InternalInvariantViolation)
// are not tied to any one Context — they are diagnostics about how the
// engine as a whole is being used. SetLogger lets an embedding application
// route them wherever it routes its own structured logs.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.Default())
}

// SetLogger replaces the logger used for dev-mode warnings.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// warnf emits a dev-mode warning when ctx.DevMode is enabled. No warning is
// ever fatal to the engine; callers never treat this as an error return.
func warnf(ctx *Context, msg string, args ...any) {
	if ctx == nil || !ctx.DevMode {
		return
	}
	logger.Load().Warn(msg, args...)
}

// Warn is the exported form of warnf for callers outside this package
// (the root reactive package) that need to surface a dev-mode warning
// through the same logger and DevMode gate.
func Warn(ctx *Context, msg string, args ...any) {
	warnf(ctx, msg, args...)
}
