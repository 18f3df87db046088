//go:build !wasm

package engine

import (
	"sync"

	"github.com/petermattis/goid"
)

// contexts keys one Context per goroutine, mirroring how a host runtime
// that multiplexes reactive graphs across goroutines would keep them
// isolated, without requiring callers to thread a handle through every
// call. This is strictly an ergonomics layer: the Context found here is
// still only ever touched by the one goroutine that owns it.
var contexts sync.Map

// Current returns the calling goroutine's Context, creating it on first use.
func Current() *Context {
	gid := goid.Get()

	if c, ok := contexts.Load(gid); ok {
		return c.(*Context)
	}

	c := newContext()
	contexts.Store(gid, c)
	return c
}
