// Package reactive is a fine-grained, push-pull reactivity runtime: a small
// embedded engine that tracks data dependencies between mutable state cells
// and user-supplied side-effect closures, and re-executes those closures in
// the correct order and exactly as needed when state changes.
//
// # Core Types
//
// Signal[T] — a writable cell of type T.
//
// Computed[T] — a cached derived value, re-evaluated lazily on read after
// any transitive dependency changed.
//
// Effect — a side-effectful closure re-run automatically when any
// dependency changes, with optional scheduler, pause/resume and cleanup.
//
// Watch — an effect variant that observes a designated source and invokes
// a callback with (new, old).
//
// # Example
//
//	count := reactive.NewSignal(0)
//	double := reactive.NewComputed(func() int { return count.Get() * 2 })
//
//	reactive.NewEffect(func() {
//	    fmt.Println("double is now", double.Get())
//	})
//
//	count.Set(5) // prints "double is now 10"
//
// # Scope
//
// The engine is single-threaded per execution context — see Context in
// package internal/engine — and assumes cooperative callers; thread-safety
// across goroutines sharing one Signal/Computed/Effect is not promised.
// UI rendering, DOM/platform bindings, persistence, and networking are out
// of scope; see internal/proxybridge for the track/trigger surface a
// property-proxy collaborator would build against.
package reactive
