package parcover

import (
	"cmp"
	"time"
)

type (
	// An Endpoint returns the left or right endpoint of the interval
	// with index i. Endpoints are never mutated by the solver and may be
	// backed by any storage, including storage that materializes values
	// on demand. An Endpoint must be safe for concurrent calls.
	Endpoint[T cmp.Ordered] func(i int) T

	// An Observer receives the name of a solver phase and its elapsed
	// wall-clock time after the phase completes. Observers exist for
	// benchmark instrumentation; they are invoked between phases, never
	// concurrently.
	Observer func(phase string, elapsed time.Duration)
)
