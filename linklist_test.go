package parcover

import (
	"math/rand"
	"testing"
)

func buildChain(lefts, rights []int) *Covering[int] {
	c := solverOver(lefts, rights)
	c.findFurthest()
	c.buildLinkList()
	return c
}

func TestBuildLinkList(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, n := range []int{1, 2, 3, 10, 1000, 20000} {
		lefts, rights := monotoneInput(n, rng)
		c := buildChain(lefts, rights)

		visited := make([]bool, 2*n)
		id := lnodeID(n - 1)
		hops := 0
		for id != nullNode {
			if visited[id] {
				t.Fatalf("n=%v: node %v visited twice", n, id)
			}
			visited[id] = true
			hops++
			if hops > 2*n {
				t.Fatalf("n=%v: chain longer than %v nodes", n, 2*n)
			}
			next := c.nodes[id].next()
			if next == nullNode && id != rnodeID(n-1) {
				t.Fatalf("n=%v: chain terminates at node %v", n, id)
			}
			id = next
		}
		if hops != 2*n {
			t.Errorf("n=%v: chain visits %v of %v nodes", n, hops, 2*n)
		}
	}
}

func TestBuildLinkListSeedsValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	lefts, rights := monotoneInput(500, rng)
	c := buildChain(lefts, rights)

	for id, nd := range c.nodes {
		if want := id == rnodeID(0); nd.valid() != want {
			t.Errorf("pre-scan validity of node %v is %v", id, nd.valid())
		}
	}
}

func TestNodePacking(t *testing.T) {
	var nd node = nullNode
	if nd.next() != nullNode || nd.sampled() || nd.valid() {
		t.Fatalf("fresh node is %#x", uint64(nd))
	}

	nd.setNext(42)
	nd.setSampled()
	nd.setValid(true)
	if nd.next() != 42 || !nd.sampled() || !nd.valid() {
		t.Errorf("packed node is %#x", uint64(nd))
	}

	nd.setValid(false)
	nd.clearSampled()
	if nd.next() != 42 || nd.sampled() || nd.valid() {
		t.Errorf("cleared node is %#x", uint64(nd))
	}

	nd.setNext(nullNode)
	if nd.next() != nullNode {
		t.Errorf("sentinel next is %v", nd.next())
	}
}
