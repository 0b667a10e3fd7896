// Package sequential provides sequential implementations of the
// functions provided by the parallel package. This is useful for
// testing and debugging.
//
// It is not recommended to use the implementations of this package for
// any other purpose, because they are almost certainly too inefficient
// for regular sequential programs.
package sequential

import (
	"fmt"

	"github.com/exascience/parcover/internal"
)

// Do receives zero or more thunks and executes them sequentially.
func Do(thunks ...func()) {
	for _, thunk := range thunks {
		thunk()
	}
}

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches sequentially, covering the half-open interval
// from low to high, including low but excluding high.
//
// The range is specified by a low and high integer, with low <= high.
// The batches are determined by dividing up the size of the range
// (high - low) by n. If n is 0, a reasonable default is used that takes
// runtime.GOMAXPROCS(0) into account.
//
// Range panics if high < low, or if n < 0.
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
			recur(low, mid, half)
			recur(mid, high, n-half)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// Sliced partitions the range [0, n) into contiguous blocks of
// approximately blockSize elements and invokes the slice function for
// each of these blocks sequentially, in block order.
//
// Sliced panics if n < 0, or if blockSize < 1.
func Sliced(n, blockSize int, f func(block, low, high int)) {
	if n < 0 {
		panic(fmt.Sprintf("invalid range size: %v", n))
	}
	if blockSize < 1 {
		panic(fmt.Sprintf("invalid block size: %v", blockSize))
	}
	for block, low := 0, 0; low < n; block, low = block+1, low+blockSize {
		high := low + blockSize
		if high > n {
			high = n
		}
		f(block, low, high)
	}
}
