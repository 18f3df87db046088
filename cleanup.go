package reactive

import "github.com/vireo-dev/reactive/internal/engine"

// OnEffectCleanup registers fn to run once: before the enclosing Effect's
// next run, or when the effect is stopped if that comes first. A second
// call within the same run replaces fn. It must be called from
// inside a running Effect's fn; calling it with no active effect is a
// no-op that logs a dev-mode warning (spec.md §7's
// MissingActiveEffectCleanup).
func OnEffectCleanup(fn func()) {
	ctx := engine.Current()

	eff, ok := ctx.ActiveSub.(*Effect)
	if !ok {
		engine.Warn(ctx, "OnEffectCleanup called with no active effect")
		return
	}
	eff.cleanup = fn
}
