package parcover

import (
	"math/rand"
	"testing"
)

// monotoneInput returns n intervals satisfying the input contract:
// strictly increasing endpoints, non-degenerate, and no gaps.
func monotoneInput(n int, rng *rand.Rand) (lefts, rights []int) {
	lefts = make([]int, n)
	rights = make([]int, n)
	for i := 1; i < n; i++ {
		lefts[i] = lefts[i-1] + rng.Intn(10) + 1
	}
	for i := 0; i < n; i++ {
		r := lefts[i] + rng.Intn(16) + 5
		if i+1 < n && r < lefts[i+1] {
			r = lefts[i+1]
		}
		if i > 0 && r <= rights[i-1] {
			r = rights[i-1] + 1
		}
		rights[i] = r
	}
	return
}

func solverOver(lefts, rights []int) *Covering[int] {
	return New(len(lefts),
		func(i int) int { return lefts[i] },
		func(i int) int { return rights[i] })
}

func TestFindFurthest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 7, 100, 5000, 50000} {
		lefts, rights := monotoneInput(n, rng)
		c := solverOver(lefts, rights)
		c.findFurthest()

		prev := 0
		for i := 0; i < n; i++ {
			f := c.furthest[i]
			if f < i || f >= n {
				t.Fatalf("n=%v: furthest[%v] = %v out of range", n, i, f)
			}
			if lefts[f] > rights[i] {
				t.Errorf("n=%v: interval %v does not reach %v", n, i, f)
			}
			if f+1 < n && lefts[f+1] <= rights[i] {
				t.Errorf("n=%v: furthest[%v] = %v is not maximal", n, i, f)
			}
			if f < prev {
				t.Errorf("n=%v: furthest table decreases at %v", n, i)
			}
			prev = f
		}
		if c.furthest[n-1] != n-1 {
			t.Errorf("n=%v: furthest of the last interval is %v", n, c.furthest[n-1])
		}
	}
}

func TestFindFurthestMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	lefts, rights := monotoneInput(30000, rng)

	c := solverOver(lefts, rights)
	c.findFurthest()

	s := solverOver(lefts, rights)
	s.furthest = make([]int, s.n)
	s.findFurthestBlock(0, s.n)

	for i := range s.furthest {
		if c.furthest[i] != s.furthest[i] {
			t.Fatalf("furthest mismatch at %v: parallel=%v serial=%v",
				i, c.furthest[i], s.furthest[i])
		}
	}
}
