// Package parcover selects a minimum-cardinality cover from a strictly
// monotone sequence of closed intervals, in parallel. While the classical
// problem has a trivial linear-time greedy solution, this library computes
// the same selection with near-linear work and polylogarithmic span, which
// pays off on large inputs and high core counts.
//
// The solver proceeds in phases: a block-parallel furthest-reachable
// table, an Euler-tour linked list over the doubled interval endpoints, a
// sample-based list-ranking scan that evaluates a prefix-or along the
// chain, and a per-interval extraction of the selection. The selection is
// always identical to the one the serial greedy produces.
//
// Parcover provides the following subpackages:
//
// parcover/parallel provides the fork-join primitives the solver is built
// on: executing series of thunks, indexed ranges, and fixed-size block
// slices in parallel.
//
// parcover/sequential provides sequential implementations of the
// functions from parcover/parallel, for testing and debugging purposes.
//
// The task-parallel substrate has been influenced to various extents by
// ideas from Cilk and Threading Building Blocks. See
// http://supertech.csail.mit.edu/papers/steal.pdf for some theoretical
// background on the scheduling model, and the JaJa list-ranking
// literature for background on prefix evaluation over linked lists by
// random sampling.
package parcover
