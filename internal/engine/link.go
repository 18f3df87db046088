package engine

// Link is the edge joining one Dep to one Subscriber. A Link sits on
// exactly two doubly-linked lists at once: the Dep's subscriber list
// (PrevSub/NextSub) and the Subscriber's dependency list (PrevDep/NextDep).
// Links are reused across runs rather than reallocated — see Dep.Track.
type Link struct {
	Dep *Dep
	Sub Subscriber

	// Version is stamped from Dep.Version the last time this Link was seen
	// during the owning Subscriber's current run. PrepareDeps sets it to the
	// sentinel staleVersion before the run so CleanupDeps can tell which
	// links were not revisited.
	Version int64

	PrevSub *Link
	NextSub *Link

	PrevDep *Link
	NextDep *Link

	// PrevActiveLink saves the Dep's previous ActiveLink so a reentrant run
	// (a nested or cross-referenced Subscriber reading the same Dep) can
	// restore it once that inner run finishes. See PrepareDeps/CleanupDeps.
	PrevActiveLink *Link
}

// staleVersion is stamped onto every Link by PrepareDeps before a run; any
// Link still carrying it after the run did not get re-tracked.
const staleVersion int64 = -1
