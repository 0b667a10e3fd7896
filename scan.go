package parcover

import (
	"github.com/exascience/parcover/internal"
	"github.com/exascience/parcover/parallel"
)

// buildSamples selects the seed nodes of the scan. Seed 0 is the start
// of the chain; the others are drawn from a fixed pseudorandom sequence
// over all 2n node ids, so the sample set is a deterministic function
// of n. A drawn id that is already sampled is dropped: keeping it would
// make two workers walk the same segment, and the second walk buys
// nothing.
func (c *Covering[T]) buildSamples() {
	nn := 2 * c.n
	parallel.Range(0, nn, 0, func(low, high int) {
		for id := low; id < high; id++ {
			c.nodes[id].clearSampled()
		}
	})

	k := 1 + (nn+internal.BlockSize-1)/internal.BlockSize
	c.seeds = c.seeds[:0]

	start := lnodeID(c.n - 1)
	c.nodes[start].setSampled()
	c.seeds = append(c.seeds, start)

	for i := 1; i < k; i++ {
		id := int(internal.IthRand(uint64(i)) % uint64(nn))
		if c.nodes[id].sampled() {
			continue
		}
		c.nodes[id].setSampled()
		c.seeds = append(c.seeds, id)
	}
}

// scanSegment ors validity forward along the chain from seed, stopping
// at the next sampled node, which belongs to the walk seeded there and
// is left untouched. It returns the accumulated or past the end of the
// segment and the id of the terminating node, nullNode at the chain's
// end.
func (c *Covering[T]) scanSegment(seed int) (carry bool, next int) {
	id := seed
	v := false
	for {
		nd := c.nodes[id].load()
		v = v || nd.valid()
		nd.setValid(v)
		c.nodes[id].store(nd)
		id = nd.next()
		if id == nullNode || c.nodes[id].load().sampled() {
			return v, id
		}
	}
}

// stitchSeeds propagates carries across segment boundaries. The seeds
// partition the chain, so visiting them in chain order and or-ing each
// segment's carry into the next seed computes the prefix-or restricted
// to the sampled skeleton in O(k) steps, without touching the segment
// interiors again.
func (c *Covering[T]) stitchSeeds() {
	index := make(map[int]int, len(c.seeds))
	for i, id := range c.seeds {
		index[id] = i
	}

	carry := false
	for i := 0; ; {
		if carry {
			c.nodes[c.seeds[i]].setValid(true)
		}
		carry = carry || c.segCarry[i]
		next := c.segNext[i]
		if next == nullNode {
			return
		}
		i = index[next]
	}
}

// scanLinkList replaces the valid flag of every node on the chain with
// the prefix-or of the valid flags from the chain's start through that
// node. It runs in three phases: per-segment scans in parallel, a
// serial stitch over the sampled skeleton, and a second round of
// per-segment scans that lets every segment observe the carry settled
// into its seed.
func (c *Covering[T]) scanLinkList() {
	var saved []node
	if debugChecks {
		saved = append([]node(nil), c.nodes...)
	}

	c.buildSamples()
	c.observe("sample")

	k := len(c.seeds)
	c.segNext = make([]int, k)
	c.segCarry = make([]bool, k)
	scanSegments := func() {
		parallel.Range(0, k, 0, func(low, high int) {
			for i := low; i < high; i++ {
				c.segCarry[i], c.segNext[i] = c.scanSegment(c.seeds[i])
			}
		})
	}

	scanSegments()
	c.observe("segments")
	c.stitchSeeds()
	c.observe("stitch")
	scanSegments()
	c.observe("rescan")

	if debugChecks {
		got := c.nodes
		c.nodes = saved
		c.scanSerial()
		for id := range got {
			if got[id].valid() != c.nodes[id].valid() {
				panicf("scan mismatch at node %v: parallel=%v serial=%v",
					id, got[id].valid(), c.nodes[id].valid())
			}
		}
		c.nodes = got
	}
}

// scanSerial is the reference scan: one serial walk over the whole
// chain carrying the running or. Used by the debug cross-check and by
// tests.
func (c *Covering[T]) scanSerial() {
	id := lnodeID(c.n - 1)
	v := false
	for id != nullNode {
		nd := &c.nodes[id]
		v = v || nd.valid()
		nd.setValid(v)
		id = nd.next()
	}
}
