package engine

// Dep is a reactive source's subscriber list: a Signal owns one directly, a
// Computed owns one because it is itself observable.
type Dep struct {
	Version int64

	SubsHead *Link
	SubsTail *Link
	SubCount int

	// ActiveLink caches the Link currently being re-evaluated during this
	// Dep's Track, so repeated reads of the same Dep within one run find
	// their Link in O(1) instead of walking the subscriber list.
	ActiveLink *Link

	// OwnerComputed is set when this Dep belongs to a Computed (the Computed
	// is both a Subscriber and a Dep). Track short-circuits when the active
	// subscriber is this Dep's own owner, preventing self-dependency.
	OwnerComputed Subscriber

	// OnEmpty fires once SubCount reaches zero, letting an external keyed
	// map (the property-proxy bridge) drop its entry for this Dep.
	OnEmpty func()

	// EnsureFresh, set only on a Computed's own Dep, lazily refreshes that
	// Computed before IsDirty compares Link.Version against Dep.Version.
	EnsureFresh func(ctx *Context)

	// SoftUnsubscribe, set only on a Computed's own Dep, detaches that
	// Computed from its own dependencies once nothing subscribes to it
	// anymore, so it becomes eligible for collection without an explicit
	// teardown call.
	SoftUnsubscribe func()
}

// Track registers ctx's active subscriber as a subscriber of d, reusing an
// existing Link where possible. Returns nil when tracking does not apply:
// no active subscriber, tracking disabled, or the active subscriber is this
// Dep's own owning Computed (self-dependency guard). debugInfo, when
// non-nil, is forwarded to any installed onTrack hook whenever tracking
// actually happens.
func (d *Dep) Track(ctx *Context, debugInfo *DebugInfo) *Link {
	sub := ctx.ActiveSub
	if sub == nil || !ctx.ShouldTrack || sub == d.OwnerComputed {
		return nil
	}

	node := sub.Node()

	if hook := ctx.OnTrackHook; hook != nil && debugInfo != nil {
		hook(*debugInfo)
	}

	link := d.ActiveLink
	if link == nil || link.Sub != sub {
		link = &Link{Dep: d, Sub: sub, Version: d.Version}
		d.ActiveLink = link
		appendSubLink(d, link)
		appendDepLink(node, link)
		return link
	}

	if link.Version != d.Version {
		link.Version = d.Version
		if node.DepsTail != link {
			moveDepLinkToTail(node, link)
		}
	}
	return link
}

// Trigger bumps this Dep's version and the context's global version, then
// notifies subscribers. debugInfo, when non-nil, is forwarded to any
// installed onTrigger hook.
func (d *Dep) Trigger(ctx *Context, debugInfo *DebugInfo) {
	d.Version++
	ctx.GlobalVersion++
	if hook := ctx.OnTriggerHook; hook != nil && debugInfo != nil {
		hook(*debugInfo)
	}
	d.notify(ctx)
}

// notify walks d's subscribers tail-first (reverse insertion order),
// queueing each for its batch and recursing into any Computed subscriber's
// own Dep so transitive propagation reaches the effects that ultimately
// consume it.
func (d *Dep) notify(ctx *Context) {
	ctx.BatchDepth++

	for link := d.SubsTail; link != nil; link = link.PrevSub {
		sub := link.Sub
		if sub.Notify(ctx) {
			if cd := sub.AsDep(); cd != nil {
				cd.notify(ctx)
			}
		}
	}

	ctx.BatchDepth--
	if ctx.BatchDepth == 0 {
		drain(ctx)
	}
}

func appendSubLink(d *Dep, link *Link) {
	link.PrevSub = d.SubsTail
	link.NextSub = nil
	if d.SubsTail != nil {
		d.SubsTail.NextSub = link
	} else {
		d.SubsHead = link
	}
	d.SubsTail = link
	d.SubCount++
}

func appendDepLink(node *Node, link *Link) {
	link.PrevDep = node.DepsTail
	link.NextDep = nil
	if node.DepsTail != nil {
		node.DepsTail.NextDep = link
	} else {
		node.Deps = link
	}
	node.DepsTail = link
}

// moveDepLinkToTail implements the LRU discipline: the most recently
// accessed dependency ends up at the tail of the subscriber's dep list, so
// untouched links accumulate at the head and CleanupDeps can cull them.
func moveDepLinkToTail(node *Node, link *Link) {
	if link.PrevDep != nil {
		link.PrevDep.NextDep = link.NextDep
	} else {
		node.Deps = link.NextDep
	}
	if link.NextDep != nil {
		link.NextDep.PrevDep = link.PrevDep
	}

	link.PrevDep = node.DepsTail
	link.NextDep = nil
	if node.DepsTail != nil {
		node.DepsTail.NextDep = link
	}
	node.DepsTail = link
	if node.Deps == nil {
		node.Deps = link
	}
}

// unlinkFromDep removes link from its Dep's subscriber list. Used both by
// CleanupDeps (link went stale) and by Stop (unconditional teardown).
func unlinkFromDep(link *Link) {
	dep := link.Dep

	if link.PrevSub != nil {
		link.PrevSub.NextSub = link.NextSub
	} else {
		dep.SubsHead = link.NextSub
	}
	if link.NextSub != nil {
		link.NextSub.PrevSub = link.PrevSub
	} else {
		dep.SubsTail = link.PrevSub
	}
	link.PrevSub = nil
	link.NextSub = nil

	if dep.ActiveLink == link {
		dep.ActiveLink = nil
	}

	dep.SubCount--
	if dep.SubCount == 0 {
		if dep.OnEmpty != nil {
			dep.OnEmpty()
		}
		if dep.OwnerComputed != nil && dep.SoftUnsubscribe != nil {
			dep.SoftUnsubscribe()
		}
	}
}

// DetachSubscriber removes every Link in sub's dependency list, decrementing
// each Dep's subscriber count. Used for Effect.Stop and for a Computed's
// soft-unsubscribe from its own dependencies.
func DetachSubscriber(sub Subscriber) {
	node := sub.Node()
	for link := node.Deps; link != nil; {
		next := link.NextDep
		unlinkFromDep(link)
		link.PrevDep = nil
		link.NextDep = nil
		link = next
	}
	node.Deps = nil
	node.DepsTail = nil
}
