// Package proxybridge implements the fine-grained track/trigger surface a
// property-proxy collaborator calls into (spec.md §6). It does not
// implement the proxy itself — it is the per-target, per-key Dep registry
// that such a proxy layer would use to get exactly the dependency reuse,
// GET/HAS/ITERATE/ADD/SET/DELETE/CLEAR semantics, and "length"/iterate-key
// propagation described there, without this repository building a real
// reflect-based object proxy (out of scope — spec.md §1).
package proxybridge

import (
	"sync"

	"github.com/vireo-dev/reactive/internal/engine"
)

// TrackType mirrors spec.md §6's enumerated read reasons.
type TrackType = engine.TrackOpType

const (
	Get     = engine.OpGet
	Has     = engine.OpHas
	Iterate = engine.OpIterate
)

// TriggerType mirrors spec.md §6's enumerated write reasons.
type TriggerType = engine.TriggerOpType

const (
	Add    = engine.OpAdd
	Set    = engine.OpSet
	Delete = engine.OpDelete
	Clear  = engine.OpClear
)

// IterateKey is the synthetic key used to track/notify "the shape of this
// object changed" (an ADD or DELETE, on a plain object or a keyed map);
// MapIterateKey is notified as well for an ADD or DELETE on a keyed map.
// LengthKey is the synthetic key for an ordered sequence's
// length, notified when an integer index changes membership.
const (
	IterateKey    = "__reactive_iterate__"
	MapIterateKey = "__reactive_map_iterate__"
	LengthKey     = "length"
)

type depKey struct {
	target any
	key    any
}

// registry holds one Dep per (target, key) pair, created on first Track and
// removed once its subscriber count drops to zero (Dep.OnEmpty).
type registry struct {
	deps map[depKey]*engine.Dep
}

func newRegistry() *registry {
	return &registry{deps: make(map[depKey]*engine.Dep)}
}

// perContext keys a registry by *engine.Context identity so each goroutine's
// reactive graph gets its own keyed-map bookkeeping, matching the rest of
// the engine's per-Context isolation. A sync.Map, not a bare map, because
// the map itself is shared across every calling goroutine even though each
// *registry value it stores is only ever touched by the one goroutine that
// owns its Context — mirrors the contexts registry in
// internal/engine/context_default.go.
var perContext sync.Map

func registryFor(ctx *engine.Context) *registry {
	if r, ok := perContext.Load(ctx); ok {
		return r.(*registry)
	}
	r := newRegistry()
	actual, _ := perContext.LoadOrStore(ctx, r)
	return actual.(*registry)
}

func depFor(ctx *engine.Context, target, key any) *engine.Dep {
	r := registryFor(ctx)
	k := depKey{target, key}

	d, ok := r.deps[k]
	if !ok {
		d = &engine.Dep{}
		d.OnEmpty = func() {
			delete(r.deps, k)
		}
		r.deps[k] = d
	}
	return d
}

// Track registers ctx's active subscriber as depending on target[key].
func Track(ctx *engine.Context, target any, typ TrackType, key any) {
	dep := depFor(ctx, target, key)
	dep.Track(ctx, &engine.DebugInfo{Target: target, Type: typ, Key: key})
}

// Trigger notifies subscribers of target[key]. For Clear it notifies every
// Dep registered under target. For Add/Delete it also notifies the
// iterate key (and the map-iterate key when isMap is set) since the set of
// keys changed, not just one value. Callers touching an ordered sequence's
// integer index should additionally call NotifyLength/NotifyShrink.
func Trigger(ctx *engine.Context, target any, typ TriggerType, key any, newValue, oldValue, oldTarget any, isMap bool) {
	r := registryFor(ctx)

	debug := &engine.DebugInfo{
		Target: target, Type: typ, Key: key,
		NewValue: newValue, OldValue: oldValue, OldTarget: oldTarget,
	}

	if typ == Clear {
		for k, dep := range r.deps {
			if k.target == target {
				dep.Trigger(ctx, debug)
			}
		}
		return
	}

	if dep, ok := r.deps[depKey{target, key}]; ok {
		dep.Trigger(ctx, debug)
	}

	if typ == Add || typ == Delete {
		if dep, ok := r.deps[depKey{target, IterateKey}]; ok {
			dep.Trigger(ctx, debug)
		}
		if isMap {
			if dep, ok := r.deps[depKey{target, MapIterateKey}]; ok {
				dep.Trigger(ctx, debug)
			}
		}
	}
}

// NotifyLength notifies target's "length" key, used when an integer index
// is added to or changed on an ordered sequence.
func NotifyLength(ctx *engine.Context, target any) {
	r := registryFor(ctx)
	if dep, ok := r.deps[depKey{target, LengthKey}]; ok {
		dep.Trigger(ctx, &engine.DebugInfo{Target: target, Key: LengthKey})
	}
}

// NotifyShrink notifies every index Dep at or beyond newLength, plus the
// iterate key, when an ordered sequence's length shrinks.
func NotifyShrink(ctx *engine.Context, target any, newLength int) {
	r := registryFor(ctx)
	for k, dep := range r.deps {
		if k.target != target {
			continue
		}
		if idx, ok := k.key.(int); ok && idx >= newLength {
			dep.Trigger(ctx, &engine.DebugInfo{Target: target, Key: k.key})
		}
	}
	if dep, ok := r.deps[depKey{target, IterateKey}]; ok {
		dep.Trigger(ctx, &engine.DebugInfo{Target: target, Key: IterateKey})
	}
	NotifyLength(ctx, target)
}

// Release drops every Dep registered for target, e.g. when the proxy
// collaborator finalizes the underlying object. Tests use this to keep
// per-target state from leaking across cases; a real proxy layer would
// call it from a finalizer or explicit dispose.
func Release(ctx *engine.Context, target any) {
	r := registryFor(ctx)
	for k := range r.deps {
		if k.target == target {
			delete(r.deps, k)
		}
	}
}
