package reactive

import "github.com/vireo-dev/reactive/internal/engine"

// PauseTracking suspends dependency capture for subsequent reads, even
// inside an actively running Effect or Computed. Pair with ResetTracking.
func PauseTracking() {
	engine.PauseTracking(engine.Current())
}

// EnableTracking resumes dependency capture.
func EnableTracking() {
	engine.EnableTracking(engine.Current())
}

// ResetTracking restores whatever tracking state was active before the
// most recent PauseTracking/EnableTracking call.
func ResetTracking() {
	engine.ResetTracking(engine.Current())
}

// Untrack runs fn with tracking suspended and restores the previous state
// afterward, even if fn panics — the common case wrapped as one call.
func Untrack[T any](fn func() T) T {
	ctx := engine.Current()
	engine.PauseTracking(ctx)
	defer engine.ResetTracking(ctx)
	return fn()
}
