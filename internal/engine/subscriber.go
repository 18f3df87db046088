package engine

// Node is the shared state of every Subscriber (Effect or Computed): the
// head/tail of its dependency list, its flags, and its link into whichever
// batch queue it is currently sitting in.
type Node struct {
	Deps     *Link
	DepsTail *Link

	Flags Flags

	// Next chains this Subscriber into BatchedEffects or BatchedComputeds.
	Next Subscriber
}

// Subscriber is the variant {Effect, Computed}. Two implementors is exactly
// the dispatch surface this engine needs, so a plain interface (rather than
// a tagged union) is enough.
type Subscriber interface {
	Node() *Node

	// Notify is called by a Dep walking its subscriber list on trigger. It
	// returns true when the caller should keep propagating into this
	// Subscriber's own Dep (true only from a Computed, the first time it is
	// notified since the last drain).
	Notify(ctx *Context) bool

	// AsDep returns the Subscriber's own Dep if it has one (Computed),
	// nil otherwise (Effect).
	AsDep() *Dep

	// Trigger is invoked by batch drain for queued effects once dequeued.
	// Computed implementations are unreachable in practice (nothing ever
	// queues a Computed into BatchedEffects) and may no-op.
	Trigger(ctx *Context)
}

// PrepareDeps walks sub's existing dependency list and marks every Link
// stale, caching sub's own link on each Dep's ActiveLink so Dep.Track can
// reuse it in O(1) instead of searching. Call before re-running sub's fn.
func PrepareDeps(sub Subscriber) {
	node := sub.Node()
	for link := node.Deps; link != nil; link = link.NextDep {
		link.Version = staleVersion
		link.PrevActiveLink = link.Dep.ActiveLink
		link.Dep.ActiveLink = link
	}
}

// CleanupDeps walks sub's dependency list from the tail backward, dropping
// every Link that was not re-tracked during the run just finished (still at
// staleVersion), and restoring Dep.ActiveLink on the links that survived.
// Call after sub's fn returns (or panics).
func CleanupDeps(sub Subscriber) {
	node := sub.Node()

	link := node.DepsTail
	for link != nil {
		prev := link.PrevDep

		if link.Version == staleVersion {
			removeDepLink(node, link)
			unlinkFromDep(link)
		} else {
			link.Dep.ActiveLink = link.PrevActiveLink
			link.PrevActiveLink = nil
		}

		link = prev
	}
}

// removeDepLink splices link out of the subscriber-side dependency list.
func removeDepLink(node *Node, link *Link) {
	if link.PrevDep != nil {
		link.PrevDep.NextDep = link.NextDep
	} else {
		node.Deps = link.NextDep
	}

	if link.NextDep != nil {
		link.NextDep.PrevDep = link.PrevDep
	} else {
		node.DepsTail = link.PrevDep
	}

	link.PrevDep = nil
	link.NextDep = nil
}

// IsDirty reports whether any of sub's dependency links are out of date —
// either because the plain version stamp mismatches, or because the
// dependency is itself a Computed whose refresh (triggered via its
// EnsureFresh hook) ends with a mismatch.
func IsDirty(ctx *Context, sub Subscriber) bool {
	node := sub.Node()
	for link := node.Deps; link != nil; link = link.NextDep {
		dep := link.Dep
		if dep.EnsureFresh != nil {
			dep.EnsureFresh(ctx)
		}
		if link.Version != dep.Version {
			return true
		}
	}
	return false
}
