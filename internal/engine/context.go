package engine

// Context bundles the handful of process-wide mutable globals the
// algorithm in spec.md §3 describes (activeSub, shouldTrack, trackStack,
// batchDepth, the two batch queues, globalVersion) into one explicit handle
// instead of true package-level variables. Each calling goroutine gets its
// own Context — see context_default.go / context_wasm.go — so the engine
// stays reentrancy-safe without any locking, matching the "single-threaded,
// cooperative" contract spec.md §5 describes per execution context.
type Context struct {
	ActiveSub   Subscriber
	ShouldTrack bool
	TrackStack  []bool

	BatchDepth       int
	BatchedEffects   Subscriber
	BatchedComputeds Subscriber

	GlobalVersion int64

	DevMode       bool
	OnTrackHook   func(DebugInfo)
	OnTriggerHook func(DebugInfo)
}

func newContext() *Context {
	return &Context{ShouldTrack: true}
}
