// Package search holds the mutable state a solver recursion walks: the set
// of signals built so far, which of them remain free (undriven, eligible to
// merge into), and the query the search is trying to satisfy.
//
// What:
//
//   - State[T]: the built-signal map (via undomap.Map), paired with the
//     query under search.
//
// Why:
//
//   - Separating mutable search state from the recursive walk (in package
//     solver) keeps the undo discipline in one place and lets circuit
//     reconstruction reuse the exact same state shape.
package search
