package graphable_test

import (
	"fmt"

	"github.com/katalvlaran/plotkit/graphable"
)

// ExampleSeries builds a sorted series and reads interpolated values
// under a moving cursor.
func ExampleSeries() {
	alt, _ := graphable.NewSeries("altitude",
		[]float64{0, 10, 20, 30},
		[]float64{0, 120, 200, 210},
		graphable.WithUnit("m"))

	fmt.Println(alt.ValueText(10, 0, 0, 0, true))
	fmt.Println(alt.ValueText(15, 0, 0, 0, false))
	// Output:
	// altitude: 120 m
	// 160 m
}

// ExampleSurface queries a bilinear patch at a corner and at its center.
func ExampleSurface() {
	heat, _ := graphable.NewSurface("heat",
		[][]float64{{0, 10}, {20, 30}}, 0, 1, 0, 1)

	fmt.Println(heat.ValueAt(0, 0, 0, 0))
	fmt.Println(heat.ValueAt(0.5, 0.5, 0, 0))
	// Output:
	// 0
	// 15
}
