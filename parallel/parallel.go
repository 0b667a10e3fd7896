// Package parallel provides the fork-join primitives the interval-cover
// solver is built on: executing series of thunks, indexed ranges, and
// fixed-size block slices in parallel.
package parallel

import (
	"fmt"
	"sync"

	"github.com/exascience/parcover/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only when
// all thunks have terminated.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value, annotated with the stack of the goroutine it was recovered in.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			thunks[1]()
		}()
		thunks[0]()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			Do(thunks[half:]...)
		}()
		Do(thunks[:half]...)
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
}

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches in parallel, covering the half-open interval
// from low to high, including low but excluding high.
//
// The range is specified by a low and high integer, with low <= high.
// The batches are determined by dividing up the size of the range
// (high - low) by n. If n is 0, a reasonable default is used that takes
// runtime.GOMAXPROCS(0) into account.
//
// The range function is invoked for each batch in its own goroutine,
// with 0 <= low <= high, and Range returns only when all range
// functions have terminated.
//
// Range panics if high < low, or if n < 0.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with the
// left-most recovered panic value.
func Range(low, high, n int, f func(low, high int)) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				f(low, high)
				return
			}
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				recur(mid, high, n-half)
			}()
			recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// Sliced partitions the range [0, n) into contiguous blocks of
// approximately blockSize elements and invokes the slice function for
// each of these blocks in parallel. Within a block, the slice function
// runs serially on a single worker, which lets it carry loop-local
// state across the elements of its block.
//
// The slice function receives the index of the block and the half-open
// element range it covers, with 0 <= low < high <= n. Sliced returns
// only when all slice functions have terminated.
//
// Sliced panics if n < 0, or if blockSize < 1.
//
// If one or more slice function invocations panic, the corresponding
// goroutines recover the panics, and Sliced eventually panics with the
// left-most recovered panic value.
func Sliced(n, blockSize int, f func(block, low, high int)) {
	if n < 0 {
		panic(fmt.Sprintf("invalid range size: %v", n))
	}
	if blockSize < 1 {
		panic(fmt.Sprintf("invalid block size: %v", blockSize))
	}
	if n == 0 {
		return
	}
	blocks := ((n - 1) / blockSize) + 1
	var recur func(int, int)
	recur = func(lo, hi int) {
		if hi-lo == 1 {
			low := lo * blockSize
			high := low + blockSize
			if high > n {
				high = n
			}
			f(lo, low, high)
			return
		}
		mid := lo + (hi-lo)/2
		var p interface{}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			recur(mid, hi)
		}()
		recur(lo, mid)
		wg.Wait()
		if p != nil {
			panic(p)
		}
	}
	recur(0, blocks)
}
