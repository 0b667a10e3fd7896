package parcover_test

import (
	"fmt"

	"github.com/exascience/parcover"
)

func ExampleCovering_Run() {
	intervals := [][2]int{{0, 50}, {10, 60}, {15, 70}, {30, 80}, {35, 90}}

	c := parcover.New(len(intervals),
		func(i int) int { return intervals[i][0] },
		func(i int) int { return intervals[i][1] })
	c.Run()

	for i, selected := range c.V {
		if selected {
			fmt.Printf("(%d, %d)\n", intervals[i][0], intervals[i][1])
		}
	}
	// Output:
	// (0, 50)
	// (35, 90)
}
