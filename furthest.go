package parcover

import (
	"github.com/exascience/parcover/internal"
	"github.com/exascience/parcover/parallel"
)

// findFurthestBlock fills furthest[s:e]. The head of the block is found
// by binary search; the remaining entries reuse the previous entry as a
// starting point, which is correct because the right endpoints increase
// strictly and therefore the furthest table is non-decreasing. The sweep
// makes the work per block amortized linear.
func (c *Covering[T]) findFurthestBlock(s, e int) {
	rs := c.right(s)
	low, high := s, c.n
	for low+1 < high {
		mid := (low + high) / 2
		if c.left(mid) <= rs {
			low = mid
		} else {
			high = mid
		}
	}
	c.furthest[s] = low

	for j := s + 1; j < e; j++ {
		id := c.furthest[j-1]
		rj := c.right(j)
		for id < c.n && c.left(id) <= rj {
			id++
		}
		c.furthest[j] = id - 1
	}
}

// findFurthest computes, for every interval i, the index of the last
// interval whose left endpoint still lies within [L(i), R(i)]. Blocks
// are independent: each one restarts with its own binary search, so no
// data flows across block boundaries.
func (c *Covering[T]) findFurthest() {
	c.furthest = make([]int, c.n)
	parallel.Sliced(c.n, internal.BlockSize, func(_, low, high int) {
		c.findFurthestBlock(low, high)
	})

	if debugChecks {
		got := make([]int, c.n)
		copy(got, c.furthest)
		c.findFurthestBlock(0, c.n)
		for i := range got {
			if got[i] != c.furthest[i] {
				panicf("furthest table mismatch at %v: parallel=%v serial=%v", i, got[i], c.furthest[i])
			}
		}
	}
}
