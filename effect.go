package reactive

import "github.com/vireo-dev/reactive/internal/engine"

// EffectOptions configures an Effect's behavior beyond the default
// run-immediately-and-on-every-dependency-change contract.
type EffectOptions struct {
	// Scheduler, if set, replaces self-invocation: on every trigger the
	// scheduler is called instead of the effect running directly, and it
	// decides when (or whether) to call the passed run func.
	Scheduler func(run func())

	// AllowRecurse permits the effect to retrigger itself while already
	// running — e.g. a write to one of its own dependencies from inside fn.
	AllowRecurse bool

	// OnStop is invoked once, after final cleanup, when Stop is called.
	OnStop func()

	// OnTrack and OnTrigger are dev hooks fired on every dependency read
	// and every dependency write observed while this effect runs, active
	// only when the owning Context has DevMode enabled.
	OnTrack   func(engine.DebugInfo)
	OnTrigger func(engine.DebugInfo)
}

// Effect is a side-effectful closure that re-runs automatically whenever
// any Signal or Computed it read on its last run has changed.
type Effect struct {
	node engine.Node

	fn      func()
	cleanup func()

	scheduler    func(run func())
	onStop       func()
	onTrack      func(engine.DebugInfo)
	onTrigger    func(engine.DebugInfo)
	allowRecurse bool

	pendingRerun bool // trigger arrived while Paused; released on Resume
}

// NewEffect constructs and immediately runs an Effect with default options.
func NewEffect(fn func()) *Effect {
	return NewEffectWithOptions(fn, EffectOptions{})
}

// NewEffectWithOptions constructs and immediately runs an Effect, unless
// opts.Scheduler intercepts that first run too.
func NewEffectWithOptions(fn func(), opts EffectOptions) *Effect {
	e := &Effect{
		fn:           fn,
		scheduler:    opts.Scheduler,
		onStop:       opts.OnStop,
		onTrack:      opts.OnTrack,
		onTrigger:    opts.OnTrigger,
		allowRecurse: opts.AllowRecurse,
	}
	if e.allowRecurse {
		e.node.Flags.Set(engine.AllowRecurse)
	}
	e.node.Flags.Set(engine.Active | engine.Tracking)

	if e.scheduler != nil {
		e.scheduler(e.run)
	} else {
		e.run()
	}
	return e
}

func (e *Effect) Node() *engine.Node { return &e.node }
func (e *Effect) AsDep() *engine.Dep { return nil }

// Notify implements engine.Subscriber: queues the effect for the next batch
// drain unless it is already queued, or it is RUNNING without the
// AllowRecurse opt-in (self-retrigger guard).
func (e *Effect) Notify(ctx *engine.Context) bool {
	if e.node.Flags.Has(engine.Running) && !e.node.Flags.Has(engine.AllowRecurse) {
		return false
	}
	if !e.node.Flags.Has(engine.Notified) {
		engine.QueueSubscriber(ctx, e, false)
	}
	return false
}

// Trigger implements engine.Subscriber: called by batch drain once this
// effect is dequeued and still Active. If Paused, the rerun is deferred to
// Resume; else the scheduler (if any) is called and decides when to call
// the run func it receives, which reruns the effect only if it is dirty;
// otherwise run is called directly when dirty.
func (e *Effect) Trigger(ctx *engine.Context) {
	if e.node.Flags.Has(engine.Paused) {
		e.pendingRerun = true
		return
	}
	if e.scheduler != nil {
		e.scheduler(func() { e.runIfDirty(engine.Current()) })
		return
	}
	e.runIfDirty(ctx)
}

func (e *Effect) runIfDirty(ctx *engine.Context) {
	if engine.IsDirty(ctx, e) {
		e.run()
	}
}

// run executes fn, capturing a fresh dependency set. Inactive (stopped)
// effects run fn once, untracked, per spec.md §4.3.
func (e *Effect) run() {
	ctx := engine.Current()

	if !e.node.Flags.Has(engine.Active) {
		e.fn()
		return
	}

	e.node.Flags.Set(engine.Running)

	e.runCleanup(ctx)

	engine.PrepareDeps(e)

	prevSub := ctx.ActiveSub
	prevTrack := ctx.ShouldTrack
	prevOnTrack, prevOnTrigger := ctx.OnTrackHook, ctx.OnTriggerHook
	ctx.ActiveSub = e
	ctx.ShouldTrack = true
	if e.onTrack != nil && ctx.DevMode {
		ctx.OnTrackHook = func(d engine.DebugInfo) { e.onTrack(d) }
	}
	if e.onTrigger != nil && ctx.DevMode {
		ctx.OnTriggerHook = func(d engine.DebugInfo) { e.onTrigger(d) }
	}

	defer func() {
		engine.CleanupDeps(e)

		ctx.ActiveSub = prevSub
		ctx.ShouldTrack = prevTrack
		ctx.OnTrackHook = prevOnTrack
		ctx.OnTriggerHook = prevOnTrigger

		e.node.Flags.Clear(engine.Running)
	}()

	e.fn()
}

// runCleanup invokes any pending cleanup registered by the previous run,
// with the active subscriber cleared so the cleanup itself cannot
// accidentally be mistaken for tracked reads.
func (e *Effect) runCleanup(ctx *engine.Context) {
	if e.cleanup == nil {
		return
	}
	cleanup := e.cleanup
	e.cleanup = nil

	prevSub := ctx.ActiveSub
	ctx.ActiveSub = nil
	defer func() { ctx.ActiveSub = prevSub }()

	cleanup()
}

// Pause suspends triggering: subsequent writes still mark the effect dirty
// and queue it, but Trigger defers to Resume instead of running.
func (e *Effect) Pause() {
	e.node.Flags.Set(engine.Paused)
}

// Resume clears Paused and, if a trigger arrived while paused, calls
// Trigger — the same scheduler-or-runIfDirty path a live trigger takes —
// now that Paused no longer makes it defer.
func (e *Effect) Resume() {
	e.node.Flags.Clear(engine.Paused)
	if e.pendingRerun {
		e.pendingRerun = false
		e.Trigger(engine.Current())
	}
}

// Stop disconnects every dependency Link, runs final cleanup, clears
// Active, and calls onStop. Idempotent and safe to call from within the
// effect's own fn (the Running flag prevents re-entry).
func (e *Effect) Stop() {
	if !e.node.Flags.Has(engine.Active) {
		return
	}

	ctx := engine.Current()
	engine.DetachSubscriber(e)
	e.runCleanup(ctx)
	e.node.Flags.Clear(engine.Active)

	if e.onStop != nil {
		e.onStop()
	}
}
