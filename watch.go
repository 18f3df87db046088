package reactive

// WatchOptions configures NewWatch. Use WithImmediate/WithOnce to build one
// rather than constructing it directly.
type WatchOptions struct {
	// Immediate calls back once with (initial, zero value of T) on
	// creation, instead of only after the first observed change.
	Immediate bool

	// Once stops the watch after its first callback invocation.
	Once bool
}

// WatchOption mutates a WatchOptions during NewWatch construction.
type WatchOption func(*WatchOptions)

// WithImmediate makes the watch invoke its callback once immediately, with
// the new argument set to the source's initial value and the old argument
// set to the zero value of T.
func WithImmediate() WatchOption {
	return func(o *WatchOptions) { o.Immediate = true }
}

// WithOnce stops the watch right after its first callback invocation.
func WithOnce() WatchOption {
	return func(o *WatchOptions) { o.Once = true }
}

// Watch observes source and invokes callback with (new, old) whenever
// source's value changes under the changed predicate. It is built directly
// on Effect: each run reads source (so it is tracked like any other
// dependency) and compares against the value captured on the previous run.
type Watch[T comparable] struct {
	effect *Effect
}

// NewWatch creates and starts a Watch over source.
func NewWatch[T comparable](source func() T, callback func(newVal, oldVal T), opts ...WatchOption) *Watch[T] {
	var cfg WatchOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Watch[T]{}

	first := true
	stopAfterCreate := false
	var last T

	w.effect = NewEffect(func() {
		next := source()

		if first {
			first = false
			last = next
			if cfg.Immediate {
				var zero T
				callback(next, zero)
				if cfg.Once {
					// w.effect is not assigned until NewEffect returns.
					stopAfterCreate = true
				}
			}
			return
		}

		if !changed(last, next) {
			return
		}

		prev := last
		last = next
		callback(next, prev)
		if cfg.Once {
			w.effect.Stop()
		}
	})
	if stopAfterCreate {
		w.effect.Stop()
	}

	return w
}

// Stop disconnects the watch permanently.
func (w *Watch[T]) Stop() { w.effect.Stop() }

// Pause suspends callback invocation until Resume.
func (w *Watch[T]) Pause() { w.effect.Pause() }

// Resume re-enables a paused watch.
func (w *Watch[T]) Resume() { w.effect.Resume() }
