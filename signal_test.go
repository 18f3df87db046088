package reactive

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Run("get returns the stored value", func(t *testing.T) {
		count := NewSignal(1)
		assert.Equal(t, 1, count.Get())
	})

	t.Run("set replaces the value", func(t *testing.T) {
		count := NewSignal(1)
		count.Set(2)
		assert.Equal(t, 2, count.Get())
	})

	t.Run("set does not notify on an unchanged value", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		count.Set(1) // same value: no-op, no rerun
		count.Set(2) // actually changes: reruns

		assert.Equal(t, []string{
			"changed 1",
			"changed 2",
		}, log)
	})

	t.Run("NaN is treated as equal to itself", func(t *testing.T) {
		log := []string{}

		nan := NewSignal(float64(0))
		NewEffect(func() {
			log = append(log, fmt.Sprintf("%v", nan.Get()))
		})

		nanVal := math.NaN()
		nan.Set(nanVal)
		nan.Set(nanVal) // second write with a NaN: no rerun, NaN treated as equal to itself

		assert.Equal(t, []string{
			"0",
			"NaN",
		}, log)
	})

	t.Run("peek does not track a dependency", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("peeked %d", count.Peek()))
		})

		count.Set(2) // effect never tracked count via Peek, so this does nothing

		assert.Equal(t, []string{"peeked 1"}, log)
	})

	t.Run("update applies a function to the current value", func(t *testing.T) {
		count := NewSignal(1)
		count.Update(func(v int) int { return v + 41 })
		assert.Equal(t, 42, count.Get())
	})

	t.Run("read-only view exposes Get but not Set", func(t *testing.T) {
		count := NewSignal(1)
		ro := count.ReadOnly()

		assert.Equal(t, 1, ro.Get())
		count.Set(2)
		assert.Equal(t, 2, ro.Get())
	})
}
