package proxybridge

import (
	"sync"

	"github.com/vireo-dev/reactive/internal/engine"
)

// readOnlyTargets tracks which targets a collaborator has marked read-only.
// It is keyed by target alone and shared by every goroutine's Context, so it
// is a sync.Map, like the perContext index in proxybridge.go.
var readOnlyTargets sync.Map

// MarkReadOnly flags target so TryWrite refuses mutations against it.
func MarkReadOnly(target any) {
	readOnlyTargets.Store(target, true)
}

// IsReadOnly reports whether target was marked read-only.
func IsReadOnly(target any) bool {
	_, ok := readOnlyTargets.Load(target)
	return ok
}

// TryWrite runs write unless target is read-only. A write attempt against a
// read-only target is a spec.md §7 ReadOnlyWrite: it is never fatal, the
// collaborator's operation still "succeeds" (no state change), and in dev
// mode a warning is logged. Returns whether write actually ran.
func TryWrite(ctx *engine.Context, target any, write func()) bool {
	if IsReadOnly(target) {
		engine.Warn(ctx, "write attempted against a read-only target", "target", target)
		return false
	}
	write()
	return true
}
