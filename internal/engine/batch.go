package engine

// QueueSubscriber sets Notified on sub and pushes it onto the head of
// whichever batch queue it belongs in. isComputed selects BatchedComputeds
// vs BatchedEffects.
func QueueSubscriber(ctx *Context, sub Subscriber, isComputed bool) {
	node := sub.Node()
	node.Flags.Set(Notified)

	if isComputed {
		node.Next = ctx.BatchedComputeds
		ctx.BatchedComputeds = sub
	} else {
		node.Next = ctx.BatchedEffects
		ctx.BatchedEffects = sub
	}
}

// StartBatch opens (or nests into) a batch transaction, deferring effect
// triggers until the matching EndBatch at depth zero.
func StartBatch(ctx *Context) {
	ctx.BatchDepth++
}

// EndBatch closes one level of batch nesting. At depth zero it drains the
// queued computeds (clearing Notified without evaluating — they stay lazy)
// and then the queued effects (running each still-Active one), re-raising
// the first panic collected across the whole effect drain only after every
// queued effect has been attempted.
func EndBatch(ctx *Context) {
	ctx.BatchDepth--
	if ctx.BatchDepth > 0 {
		return
	}
	drain(ctx)
}

func drain(ctx *Context) {
	// Phase 1: computeds are never evaluated here — they recompute lazily
	// the next time something reads them. Just release the queue slot.
	for sub := ctx.BatchedComputeds; sub != nil; {
		node := sub.Node()
		next := node.Next
		node.Next = nil
		node.Flags.Clear(Notified)
		sub = next
	}
	ctx.BatchedComputeds = nil

	// Phase 2: effects. Triggering one effect may enqueue more (it writes a
	// signal another effect reads), so keep draining until the queue is
	// empty at the top of the loop.
	var firstPanic any
	hasPanic := false

	for ctx.BatchedEffects != nil {
		sub := ctx.BatchedEffects
		ctx.BatchedEffects = nil

		for sub != nil {
			node := sub.Node()
			next := node.Next
			node.Next = nil
			node.Flags.Clear(Notified)

			if node.Flags.Has(Active) {
				func() {
					defer func() {
						if r := recover(); r != nil && !hasPanic {
							firstPanic = r
							hasPanic = true
						}
					}()
					sub.Trigger(ctx)
				}()
			}

			sub = next
		}
	}

	if hasPanic {
		panic(firstPanic)
	}
}
