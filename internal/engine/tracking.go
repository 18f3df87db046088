package engine

// PauseTracking suspends dependency capture: reads during the paused
// window do not create Links, even inside an active Subscriber's run.
func PauseTracking(ctx *Context) {
	ctx.TrackStack = append(ctx.TrackStack, ctx.ShouldTrack)
	ctx.ShouldTrack = false
}

// EnableTracking resumes dependency capture.
func EnableTracking(ctx *Context) {
	ctx.TrackStack = append(ctx.TrackStack, ctx.ShouldTrack)
	ctx.ShouldTrack = true
}

// ResetTracking pops the most recently pushed tracking state, defaulting to
// enabled if the stack is empty.
func ResetTracking(ctx *Context) {
	n := len(ctx.TrackStack)
	if n == 0 {
		ctx.ShouldTrack = true
		return
	}
	ctx.ShouldTrack = ctx.TrackStack[n-1]
	ctx.TrackStack = ctx.TrackStack[:n-1]
}

// RunTracked runs body with sub installed as ctx's active, tracking
// subscriber, flanked by PrepareDeps/CleanupDeps so stale dependency Links
// are culled in one pass. It restores the previous active subscriber and
// tracking state even if body panics, and re-panics after cleanup so the
// caller's own recover (if any) still observes the failure.
func RunTracked(ctx *Context, sub Subscriber, body func()) {
	node := sub.Node()
	node.Flags.Set(Running)

	PrepareDeps(sub)

	prevSub := ctx.ActiveSub
	prevTrack := ctx.ShouldTrack
	ctx.ActiveSub = sub
	ctx.ShouldTrack = true

	defer func() {
		CleanupDeps(sub)

		if ctx.ActiveSub != sub {
			warnf(ctx, "internal invariant violation: active subscriber changed during run")
		}
		ctx.ActiveSub = prevSub
		ctx.ShouldTrack = prevTrack

		node.Flags.Clear(Running)
	}()

	body()
}
