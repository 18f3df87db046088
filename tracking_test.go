package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingControl(t *testing.T) {
	t.Run("Untrack reads without establishing a dependency", func(t *testing.T) {
		log := []string{}

		tracked := NewSignal(0)
		untracked := NewSignal(100)

		NewEffect(func() {
			v := Untrack(untracked.Get)
			log = append(log, fmt.Sprintf("%d %d", tracked.Get(), v))
		})

		untracked.Set(200) // never tracked: no rerun
		assert.Equal(t, []string{"0 100"}, log)

		tracked.Set(1) // tracked: reruns, observing the latest untracked value
		assert.Equal(t, []string{"0 100", "1 200"}, log)
	})

	t.Run("PauseTracking/ResetTracking bracket a read region", func(t *testing.T) {
		log := []string{}
		count := NewSignal(0)

		NewEffect(func() {
			PauseTracking()
			v := count.Get()
			ResetTracking()
			log = append(log, fmt.Sprintf("%d", v))
		})

		count.Set(1)
		assert.Equal(t, []string{"0"}, log, "read happened while tracking was paused")
	})

	t.Run("EnableTracking re-enables tracking inside a paused region", func(t *testing.T) {
		log := []string{}
		outer := NewSignal(0)
		inner := NewSignal(0)

		NewEffect(func() {
			PauseTracking()
			_ = outer.Get() // untracked
			EnableTracking()
			v := inner.Get() // tracked
			ResetTracking()  // back to paused
			ResetTracking()  // back to the run's default (tracking enabled)
			log = append(log, fmt.Sprintf("%d", v))
		})

		outer.Set(1) // not tracked: no rerun
		assert.Len(t, log, 1)

		inner.Set(2) // tracked: reruns
		assert.Len(t, log, 2)
	})
}
