package reactive

import "github.com/vireo-dev/reactive/internal/engine"

// Computed is a cached derived value: its formula reads other Signals and
// Computeds, and is re-evaluated lazily — only on read, only after some
// transitive dependency actually changed.
type Computed[T comparable] struct {
	node engine.Node
	dep  engine.Dep

	fn    func(prev T) T
	value T

	// globalVersionAtRefresh powers the "nothing changed anywhere since we
	// last looked" fast path in refresh: if the context's GlobalVersion is
	// unchanged, no Signal anywhere was written, so this Computed cannot
	// possibly be stale regardless of its own Dirty flag's provenance.
	globalVersionAtRefresh int64

	setFn func(T)

	// isSSR disables the "no deps changed" fast path in refresh (step 5),
	// forcing a real recompute whenever a refresh gets past steps 1 and 3
	// (the Computed is Dirty or untracked, and some write happened since the
	// last refresh). Intended for server-side
	// rendering, where a Computed is read exactly once per render and must
	// not short-circuit on stale dependency bookkeeping from a previous
	// request sharing the same process.
	isSSR bool
}

// NewComputed creates a lazily-evaluated Computed from fn. It does not run
// fn until the first Get or Peek, whether or not that read is tracked.
func NewComputed[T comparable](fn func() T) *Computed[T] {
	return newComputed[T](func(T) T { return fn() }, nil)
}

// NewComputedFrom is like NewComputed but passes the previously cached
// value to fn on every recompute (zero value on the first run), for
// accumulator-style derivations.
func NewComputedFrom[T comparable](fn func(prev T) T) *Computed[T] {
	return newComputed[T](fn, nil)
}

// NewWritableComputed creates a Computed whose Set delegates to setFn
// instead of rejecting writes, the "writable computed" surface spec.md §6
// mentions without specifying; setFn is responsible for writing whatever
// Signals the formula reads from.
func NewWritableComputed[T comparable](fn func() T, setFn func(T)) *Computed[T] {
	return newComputed[T](func(T) T { return fn() }, setFn)
}

func newComputed[T comparable](fn func(prev T) T, setFn func(T)) *Computed[T] {
	c := &Computed[T]{fn: fn, setFn: setFn}
	c.node.Flags.Set(engine.Active)
	c.dep.OwnerComputed = c
	c.dep.EnsureFresh = func(ctx *engine.Context) { c.refresh(ctx) }
	c.dep.SoftUnsubscribe = func() {
		engine.DetachSubscriber(c)
		// No longer notified by its former deps: the next read must
		// re-evaluate instead of trusting steps 1, 3 or 5 of refresh.
		c.node.Flags.Clear(engine.Tracking | engine.Evaluated)
	}
	return c
}

func (c *Computed[T]) Node() *engine.Node { return &c.node }
func (c *Computed[T]) AsDep() *engine.Dep { return &c.dep }

// Notify implements engine.Subscriber. It marks the Computed Dirty and, the
// first time this happens since the last drain and provided the Computed
// is not mid-evaluation of its own formula, queues it as a computed batch
// member and reports true so Dep.notify keeps propagating into whatever
// reads this Computed transitively.
func (c *Computed[T]) Notify(ctx *engine.Context) bool {
	c.node.Flags.Set(engine.Dirty)

	if !c.node.Flags.Has(engine.Notified) && ctx.ActiveSub != c {
		engine.QueueSubscriber(ctx, c, true)
		return true
	}
	return false
}

// Trigger is unreachable in practice: nothing ever queues a Computed into
// BatchedEffects (drain's computed phase only clears flags), so this never
// actually runs, but Computed still must implement Subscriber.
func (c *Computed[T]) Trigger(ctx *engine.Context) {}

// Get conditionally refreshes the cached value, registers the caller as a
// subscriber, and returns the cached value.
func (c *Computed[T]) Get() T {
	ctx := engine.Current()
	c.refresh(ctx)
	c.dep.Track(ctx, &engine.DebugInfo{Target: c, Type: engine.OpGet})
	return c.value
}

// Peek returns the cached value after a conditional refresh, without
// registering the caller as a subscriber.
func (c *Computed[T]) Peek() T {
	ctx := engine.Current()
	c.refresh(ctx)
	return c.value
}

// Set writes through to the Computed's backing signals via the function
// supplied to NewWritableComputed. It panics if this Computed was created
// with NewComputed/NewComputedFrom (read-only) — callers should check
// Writable() first if that distinction matters at the call site.
func (c *Computed[T]) Set(v T) {
	if c.setFn == nil {
		panic("reactive: Set called on a read-only Computed")
	}
	c.setFn(v)
}

// Writable reports whether Set is usable on this Computed.
func (c *Computed[T]) Writable() bool { return c.setFn != nil }

// SetSSR toggles SSR mode on this Computed. While enabled, refresh skips the
// "no deps changed" fast path (step 5), so a refresh that is not stopped by
// step 1 or step 3 re-evaluates fn even when no dependency changed, per
// spec.md §6's "SSR mode flag on a computed disables the 'no deps' fast
// path so each render re-evaluates".
func (c *Computed[T]) SetSSR(enabled bool) { c.isSSR = enabled }

// refresh implements spec.md §4.4's refreshComputed: the lazy/cached
// contract at the center of Computed.
func (c *Computed[T]) refresh(ctx *engine.Context) {
	// 1. Already fresh: tracking and not dirty.
	if c.node.Flags.Has(engine.Tracking) && !c.node.Flags.Has(engine.Dirty) {
		return
	}
	// 2. Clear DIRTY.
	c.node.Flags.Clear(engine.Dirty)

	// 3. Global fast path: nothing written anywhere since last refresh.
	if c.node.Flags.Has(engine.Evaluated) && c.globalVersionAtRefresh == ctx.GlobalVersion {
		return
	}
	// 4. Record the version we're refreshing against.
	c.globalVersionAtRefresh = ctx.GlobalVersion

	// 5. Evaluated already and (no deps, or deps still fresh) → still fresh.
	// Skipped entirely in SSR mode: every refresh must recompute.
	if !c.isSSR && c.node.Flags.Has(engine.Evaluated) && (c.node.Deps == nil || !engine.IsDirty(ctx, c)) {
		return
	}

	// 6. Recompute.
	c.node.Flags.Set(engine.Running)
	engine.PrepareDeps(c)

	prevSub := ctx.ActiveSub
	prevTrack := ctx.ShouldTrack
	ctx.ActiveSub = c
	ctx.ShouldTrack = true

	defer func() {
		r := recover()

		engine.CleanupDeps(c)
		ctx.ActiveSub = prevSub
		ctx.ShouldTrack = prevTrack
		c.node.Flags.Clear(engine.Running)

		if r != nil {
			// Evaluation failed: still bump version so subscribers
			// recompute next time, per spec.md §4.9, then rethrow.
			c.dep.Version++
			panic(r)
		}
	}()

	next := c.fn(c.value)

	c.node.Flags.Set(engine.Tracking)
	if c.dep.Version == 0 || changed(c.value, next) {
		c.node.Flags.Set(engine.Evaluated)
		c.value = next
		c.dep.Version++
	}
}
