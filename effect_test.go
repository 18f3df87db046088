package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vireo-dev/reactive/internal/engine"
)

func TestEffect(t *testing.T) {
	t.Run("runs immediately and on signal change, with cleanup", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
			OnEffectCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Set(10)
		count.Set(20)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 10",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("cascades through an intermediate signal write", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		double := NewSignal(0)

		NewEffect(func() {
			double.Set(count.Get() * 2)
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", double.Get()))
		})

		count.Set(10)

		assert.Equal(t, []string{
			"changed 0",
			"changed 20",
		}, log)
	})

	t.Run("diamond dependency trace", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		double := NewComputed(func() int { return count.Get() * 2 })
		quad := NewComputed(func() int { return count.Get() * 4 })

		NewEffect(func() {
			log = append(log, fmt.Sprintf("running %d %d", double.Get(), quad.Get()))
			OnEffectCleanup(func() {
				log = append(log, fmt.Sprintf("cleanup %d %d", double.Get(), quad.Get()))
			})
		})

		count.Set(10)

		assert.Equal(t, []string{
			"running 0 0",
			"cleanup 20 40",
			"running 20 40",
		}, log)
	})

	t.Run("drops a dependency it no longer reads", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		first := true
		NewEffect(func() {
			log = append(log, "running")
			if first {
				count.Get()
			}
			first = false
		})

		count.Set(1)
		count.Set(2) // no longer tracked after the first run: no rerun

		assert.Equal(t, []string{
			"running",
			"running",
		}, log)
	})

	t.Run("recursion guard ignores a self-retrigger", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)

		NewEffect(func() {
			runs++
			if count.Get() < 3 {
				count.Set(count.Peek() + 1)
			}
		})

		// The effect is still RUNNING when its own write would otherwise
		// re-notify it; without AllowRecurse that notification is ignored
		// outright, so it runs exactly once despite writing its own dep.
		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, count.Get())
	})

	t.Run("AllowRecurse lets a self-write requeue instead of being ignored", func(t *testing.T) {
		runs := 0
		count := NewSignal(0)
		done := false

		NewEffectWithOptions(func() {
			runs++
			count.Get()
			if !done {
				done = true
				count.Set(1)
			}
		}, EffectOptions{AllowRecurse: true})

		assert.GreaterOrEqual(t, runs, 2)
		assert.Equal(t, 1, count.Get())
	})

	t.Run("pause suppresses triggers until resume", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		eff := NewEffect(func() {
			log = append(log, fmt.Sprintf("ran %d", count.Get()))
		})

		eff.Pause()
		count.Set(1)
		count.Set(2)
		assert.Equal(t, []string{"ran 0"}, log)

		eff.Resume()
		assert.Equal(t, []string{"ran 0", "ran 2"}, log)
	})

	t.Run("stop disconnects deps and runs final cleanup exactly once", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		eff := NewEffect(func() {
			log = append(log, fmt.Sprintf("ran %d", count.Get()))
			OnEffectCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		eff.Stop()
		eff.Stop() // idempotent
		count.Set(1)

		assert.Equal(t, []string{"ran 0", "cleanup"}, log)
	})

	t.Run("scheduler intercepts every trigger", func(t *testing.T) {
		var scheduled []func()
		count := NewSignal(0)

		NewEffectWithOptions(func() {
			count.Get()
		}, EffectOptions{
			Scheduler: func(run func()) {
				scheduled = append(scheduled, run)
			},
		})
		assert.Len(t, scheduled, 1) // the immediate first run also goes through the scheduler
		scheduled[0]()             // actually run it, establishing the count dependency

		count.Set(1)
		assert.Len(t, scheduled, 2)

		scheduled[1]()
	})

	t.Run("resuming a paused scheduled effect reruns through the scheduler", func(t *testing.T) {
		var scheduled []func()
		count := NewSignal(0)

		eff := NewEffectWithOptions(func() {
			count.Get()
		}, EffectOptions{
			Scheduler: func(run func()) {
				scheduled = append(scheduled, run)
			},
		})
		scheduled[0]() // establish the dependency

		eff.Pause()
		count.Set(1)
		assert.Len(t, scheduled, 1, "paused effect must not schedule a rerun yet")

		eff.Resume()
		assert.Len(t, scheduled, 2, "resume must hand the pending rerun to the scheduler, not run it directly")

		scheduled[1]()
	})

	t.Run("OnTrack and OnTrigger hooks fire for reads and writes observed during an effect's own run", func(t *testing.T) {
		SetDevMode(true) // the hooks are only installed in dev mode
		count := NewSignal(0)
		other := NewSignal(100)
		var tracked, triggered []any

		NewEffectWithOptions(func() {
			count.Get()
			other.Set(other.Peek() + 1)
		}, EffectOptions{
			OnTrack:   func(d engine.DebugInfo) { tracked = append(tracked, d.Target) },
			OnTrigger: func(d engine.DebugInfo) { triggered = append(triggered, d.NewValue) },
		})

		assert.Len(t, tracked, 1, "the construction run must report its read")
		assert.Equal(t, []any{101}, triggered, "the construction run's own write must report through OnTrigger")

		count.Set(1)
		assert.Len(t, tracked, 2, "the rerun triggered by count.Set must report its own read")
		assert.Equal(t, []any{101, 102}, triggered)
	})

	t.Run("error isolation: one effect panicking does not block the rest", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, "a")
			if count.Get() == 1 {
				panic("boom")
			}
		})
		NewEffect(func() {
			log = append(log, "b")
			count.Get()
		})

		assert.PanicsWithValue(t, "boom", func() {
			count.Set(1)
		})

		assert.Equal(t, []string{"a", "b", "a", "b"}, log)
	})
}
