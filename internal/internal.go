package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// BlockSize is the natural granularity of the parallel block loops in
// this module: the target number of elements processed serially by one
// worker before scheduling overhead is amortized.
const BlockSize = 0x800

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		if n < 0 {
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// IthRand returns the i-th value of a fixed pseudorandom sequence. It is
// a pure function of i, so callers may evaluate arbitrary positions of
// the sequence independently and in any order. The mixer is splitmix64.
func IthRand(i uint64) uint64 {
	z := (i + 1) * 0x9e3779b97f4a7c15
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	return z ^ (z >> 31)
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
