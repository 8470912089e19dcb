// Package circuit reconstructs and renders a device list from a successful
// synthesis search. Reconstruction is a separate post-pass over package
// solver's raw trail, deliberately kept out of the hot search loop: the
// search state is the set of realizable signals, not a graph of devices, and
// two circuits realizing the same set are equivalent for goal attainment.
//
// What:
//
//   - Reconstruct: re-runs a single-depth search with trail recording and
//     returns its device list.
//   - Summarize: renders a device list as a human-readable, one-line-per-
//     device report.
//
// Errors:
//
//   - ErrNoWitnessAtDepth: no circuit of at most the requested depth
//     realizes the query's outputs.
package circuit
