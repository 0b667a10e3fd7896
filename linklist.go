package parcover

import (
	"github.com/exascience/parcover/parallel"
)

// buildLinkList wires the 2n endpoint nodes into a single chain that
// linearizes the greedy selection: following next from the L-node of
// the last interval visits every node exactly once and ends at the
// R-node of the last interval. With only the R-node of interval 0
// marked valid before the scan, the prefix-or along this chain flips
// exactly between the L-node and R-node of the intervals the greedy
// would pick.
//
// The successor of any single node is written by exactly one loop
// iteration in exactly one of the passes below, so the passes need no
// atomics.
func (c *Covering[T]) buildLinkList() {
	c.nodes = make([]node, 2*c.n)
	parallel.Range(0, 2*c.n, 0, func(low, high int) {
		for id := low; id < high; id++ {
			c.nodes[id] = nullNode
		}
	})

	c.rnode(0).setValid(true)

	parallel.Range(0, c.n-1, 0, func(low, high int) {
		for i := low; i < high; i++ {
			// The L-node of i hangs off the L-node of its furthest
			// interval when i opens a new furthest group, and off the
			// R-node of its left neighbor otherwise.
			if i == 0 || c.furthest[i-1] != c.furthest[i] {
				c.nodes[lnodeID(c.furthest[i])].setNext(lnodeID(i))
			} else {
				c.nodes[rnodeID(i-1)].setNext(lnodeID(i))
			}

			if c.furthest[i+1] != c.furthest[i] {
				c.rnode(i).setNext(rnodeID(c.furthest[i]))
			} else if i+1 == c.furthest[i] {
				c.rnode(i).setNext(rnodeID(i + 1))
			}
			// Otherwise the successor of the i-th R-node is assigned by
			// the left-neighbor rule of a later interval.
		}
	})

	// Any L-node still unlinked closes over its own interval.
	parallel.Range(0, c.n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			if c.lnode(i).next() == nullNode {
				c.lnode(i).setNext(rnodeID(i))
			}
		}
	})

	c.rnode(c.n - 1).setNext(nullNode)

	if debugChecks {
		c.checkChain()
	}
}

// checkChain asserts that the chain starting at the L-node of the last
// interval reaches the R-node of the last interval after exactly 2n-1
// hops, and terminates right after it.
func (c *Covering[T]) checkChain() {
	id := lnodeID(c.n - 1)
	hops := 0
	for id != rnodeID(c.n-1) && id != nullNode {
		hops++
		id = c.nodes[id].next()
	}
	if id != rnodeID(c.n-1) || hops != 2*c.n-1 {
		panicf("malformed euler tour: reached node %v after %v hops", id, hops)
	}
	if c.nodes[id].next() != nullNode {
		panicf("euler tour does not terminate after node %v", id)
	}
}
