// Package query describes the target of a synthesis run: the power rails,
// input nets, and desired output behavior the solver must realize.
//
// What:
//
//   - Query[T]: power signals, input signals, and output care-signals, all
//     sharing one ignored-lane mask.
//   - Check: validates that every signal in a Query agrees on that mask.
//
// Errors:
//
//   - ErrNoOutputs: a Query with no outputs has nothing to satisfy.
//   - ErrMismatchedIgnoredMask: a Power, Input, or Output signal disagrees
//     with the others on which lanes are padding.
package query
