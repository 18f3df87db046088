//go:build wasm

package engine

import "sync"

var (
	wasmOnce sync.Once
	wasmCtx  *Context
)

// Current returns the single process-wide Context. WASM builds run on one
// thread with no goroutine-id syscall available, so there is exactly one
// reactive graph for the whole program.
func Current() *Context {
	wasmOnce.Do(func() {
		wasmCtx = newContext()
	})
	return wasmCtx
}
