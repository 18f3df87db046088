package reactive

import "github.com/vireo-dev/reactive/internal/engine"

// Batch defers effect triggers until fn returns, so multiple writes in one
// transaction schedule every dependent effect at most once. Batches nest:
// only the outermost call's return drains the queues.
func Batch(fn func()) {
	ctx := engine.Current()
	engine.StartBatch(ctx)
	defer engine.EndBatch(ctx)
	fn()
}

// StartBatch and EndBatch expose manual batch control for callers that
// cannot structure a transaction as a single closure (e.g. a collaborator
// driving writes from callback-based event handling). Prefer Batch.
func StartBatch() {
	engine.StartBatch(engine.Current())
}

// EndBatch closes one level of batching opened by StartBatch.
func EndBatch() {
	engine.EndBatch(engine.Current())
}
