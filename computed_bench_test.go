package reactive

import "testing"

// BenchmarkComputedGetClean measures the global-version fast path: no
// write occurred since the last refresh, so Get must not re-run fn.
func BenchmarkComputedGetClean(b *testing.B) {
	count := NewSignal(42)
	double := NewComputed(func() int { return count.Get() * 2 })
	_ = double.Get() // prime

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = double.Get()
	}
}

// BenchmarkComputedGetDirty measures the recompute path: every iteration
// writes the source signal first, forcing a real recompute on Get.
func BenchmarkComputedGetDirty(b *testing.B) {
	count := NewSignal(0)
	double := NewComputed(func() int { return count.Get() * 2 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
		_ = double.Get()
	}
}

// BenchmarkComputedChained measures a three-deep chain of computeds.
func BenchmarkComputedChained(b *testing.B) {
	count := NewSignal(5)
	a := NewComputed(func() int { return count.Get() * 2 })
	c := NewComputed(func() int { return a.Get() + 1 })
	d := NewComputed(func() int { return c.Get() * 3 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
		_ = d.Get()
	}
}

// BenchmarkComputedMultipleDeps measures a computed with several sources.
func BenchmarkComputedMultipleDeps(b *testing.B) {
	x := NewSignal(1)
	y := NewSignal(2)
	z := NewSignal(3)
	sum := NewComputed(func() int { return x.Get() + y.Get() + z.Get() })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sum.Get()
	}
}
