package reactive

import (
	"log/slog"

	"github.com/vireo-dev/reactive/internal/engine"
)

// SetDevMode toggles dev-only diagnostics (ReadOnlyWrite, missing-cleanup,
// and internal invariant warnings, and the OnTrack/OnTrigger effect hooks)
// for the calling goroutine's Context.
// Off by default: production code pays nothing for these checks.
func SetDevMode(enabled bool) {
	engine.Current().DevMode = enabled
}

// SetLogger replaces the logger dev-mode warnings are written to. It
// applies process-wide, not per Context.
func SetLogger(l *slog.Logger) {
	engine.SetLogger(l)
}
