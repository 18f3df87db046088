package main

import (
	"fmt"

	"github.com/vireo-dev/reactive"
)

func main() {
	a := reactive.NewSignal(1)
	b := reactive.NewSignal(2)

	sum := reactive.NewComputed(func() int {
		result := a.Get() + b.Get()
		fmt.Println("  [computed] recomputing sum:", result)
		return result
	})

	reactive.NewEffect(func() {
		fmt.Println("  [effect] sum is:", sum.Get())
	})

	fmt.Println("\nupdating both a and b inside one batch...")
	reactive.Batch(func() {
		a.Set(10)
		b.Set(20)
	})

	fmt.Println("\nsum recomputes exactly once and the effect observes 30 exactly once")
}
