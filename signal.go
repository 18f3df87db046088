package reactive

import "github.com/vireo-dev/reactive/internal/engine"

// Signal is a writable reactive cell of type T. The zero value holds T's
// zero value and is ready to use; NewSignal sets an initial value.
type Signal[T comparable] struct {
	dep   engine.Dep
	value T
}

// NewSignal creates a signal holding initial.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the signal's current value, tracking it as a dependency of
// the currently running Effect or Computed, if any.
func (s *Signal[T]) Get() T {
	ctx := engine.Current()
	s.dep.Track(ctx, &engine.DebugInfo{Target: s, Type: engine.OpGet})
	return s.value
}

// Peek returns the current value without tracking it as a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set replaces the signal's value. If the new value does not differ from
// the old one under the changed predicate, this is a no-op: no version
// bump, no notification.
func (s *Signal[T]) Set(v T) {
	ctx := engine.Current()

	old := s.value
	if !changed(old, v) {
		return
	}
	s.value = v

	s.dep.Trigger(ctx, &engine.DebugInfo{Target: s, NewValue: v, OldValue: old})
}

// Update replaces the signal's value with fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

// ReadOnly returns a read-only view of this signal, for encapsulation: keep
// the Signal private and expose ReadOnlySignal from an API.
func (s *Signal[T]) ReadOnly() ReadOnlySignal[T] {
	return readOnlySignal[T]{s}
}

// ReadOnlySignal exposes a Signal's Get without exposing Set/Update. Unlike
// a JS Proxy-based read-only wrapper, this is a compile-time guarantee —
// there is no runtime path from a ReadOnlySignal back to Set, so the
// ReadOnlyWrite dev-warning described in spec.md §7 applies to the
// property-proxy bridge (internal/proxybridge), not to primitive signals.
type ReadOnlySignal[T comparable] interface {
	Get() T
	Peek() T
}

type readOnlySignal[T comparable] struct {
	source *Signal[T]
}

func (r readOnlySignal[T]) Get() T  { return r.source.Get() }
func (r readOnlySignal[T]) Peek() T { return r.source.Peek() }
