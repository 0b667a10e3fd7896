package parcover

import (
	"cmp"
	"fmt"
	"time"

	"github.com/exascience/parcover/parallel"
)

// A Covering selects a minimum-cardinality subset of a strictly
// monotone sequence of closed intervals whose union covers the same
// range as the full input.
//
// The input contract, validated only in covdebug builds: for every
// valid i, L(i) < L(i+1), R(i) < R(i+1), L(i) < R(i), and
// L(i+1) <= R(i). The selection is undefined for inputs that violate
// the contract.
type Covering[T cmp.Ordered] struct {
	// V is the selection bitmap. After Run, V[i] reports whether
	// interval i belongs to the minimum cover.
	V []bool

	// Observe, when non-nil, is invoked after each phase of Run with
	// the phase name and its elapsed time.
	Observe Observer

	n           int
	left, right Endpoint[T]

	furthest []int
	nodes    []node
	seeds    []int
	segNext  []int
	segCarry []bool

	phaseStart time.Time
}

// New returns a solver over n intervals whose endpoints are produced by
// the left and right accessors. The accessors must be safe for
// concurrent calls; they are invoked from multiple workers during Run.
//
// New panics if n is negative or if the 2n endpoint nodes would not fit
// the node id space.
func New[T cmp.Ordered](n int, left, right Endpoint[T]) *Covering[T] {
	if n < 0 {
		panic(fmt.Sprintf("invalid interval count: %v", n))
	}
	if uint64(n) >= nullNode/2 {
		panic(fmt.Sprintf("interval count exceeds node id space: %v", n))
	}
	return &Covering[T]{n: n, left: left, right: right}
}

// Run computes the selection bitmap V. The phases run in strict
// sequence; parallelism exists only within a phase. Run allocates O(n)
// words and performs no I/O.
//
// For n == 0, Run returns immediately with V empty.
func (c *Covering[T]) Run() {
	if c.n == 0 {
		c.V = nil
		return
	}

	if debugChecks {
		c.validate()
	}

	c.V = make([]bool, c.n)
	c.phaseStart = time.Now()

	c.findFurthest()
	c.observe("furthest")
	c.buildLinkList()
	c.observe("link")
	c.scanLinkList()
	c.extract()
	c.observe("extract")

	if debugChecks {
		ref := make([]bool, c.n)
		c.serialCover(ref)
		for i := range ref {
			if c.V[i] != ref[i] {
				panicf("selection mismatch at %v: parallel=%v serial=%v", i, c.V[i], ref[i])
			}
		}
	}
}

// extract reads the selection off the scanned chain: interval i is part
// of the cover iff the prefix-or changes between its L-node and R-node.
func (c *Covering[T]) extract() {
	parallel.Range(0, c.n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			c.V[i] = c.lnode(i).valid() != c.rnode(i).valid()
		}
	})
}

// RunSerial computes V with the serial greedy instead of the parallel
// kernel. It produces bit-identical output to Run on every input that
// satisfies the contract, in O(n) time on a single worker. It serves as
// the reference oracle for tests and as the baseline for benchmarks.
func (c *Covering[T]) RunSerial() {
	if c.n == 0 {
		c.V = nil
		return
	}
	c.V = make([]bool, c.n)
	c.serialCover(c.V)
}

func (c *Covering[T]) serialCover(v []bool) {
	v[0] = true
	v[c.n-1] = true

	id := 0
	for i := 1; i < c.n-1; i++ {
		if c.left(i+1) > c.right(id) {
			v[i] = true
			id = i
		} else {
			v[i] = false
		}
	}
}

// validate checks the input contract in parallel, panicking on the
// first violation it observes.
func (c *Covering[T]) validate() {
	parallel.Range(0, c.n, 0, func(low, high int) {
		for i := low; i < high; i++ {
			if !(c.left(i) < c.right(i)) {
				panicf("degenerate interval %v", i)
			}
		}
	})
	parallel.Range(0, c.n-1, 0, func(low, high int) {
		for i := low; i < high; i++ {
			if !(c.left(i) < c.left(i+1)) || !(c.right(i) < c.right(i+1)) {
				panicf("interval %v breaks strict monotonicity", i)
			}
			if c.right(i) < c.left(i+1) {
				panicf("gap between intervals %v and %v", i, i+1)
			}
		}
	})
}

func (c *Covering[T]) lnode(i int) *node { return &c.nodes[2*i] }
func (c *Covering[T]) rnode(i int) *node { return &c.nodes[2*i+1] }

func (c *Covering[T]) observe(phase string) {
	if c.Observe == nil {
		return
	}
	now := time.Now()
	c.Observe(phase, now.Sub(c.phaseStart))
	c.phaseStart = now
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
