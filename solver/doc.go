// Package solver implements the synthesis search itself: an iterative-
// deepening depth-first walk over circuit states that grows a set of
// realized "built" signals one transistor at a time, until every output
// care-signal is satisfied or the device budget is exhausted.
//
// Key features:
//
//   - Solve(query, opts): iterative deepening from 0 up to opts.MaxDevices,
//     returning the shallowest depth at which every output is realized.
//   - SolveDepth(query, depth): a single-depth search that also records the
//     device trail of the first witness found, for reconstruction.
//   - Undo-based recursion: each candidate device is installed via
//     undomap.WithBinding and reverted on backtrack, so the built map itself
//     is never copied; each recursive step takes only a slice of its keys
//     and a canonical string for the transposition table.
//   - A canonical-key transposition table collapses circuit states that
//     realize the same signal set, regardless of how they were built.
//
// Complexity:
//
//   - Time: branching factor is O((|power|+|built|) * (|inputs|+|built|) * 2)
//     per recursive step, bounded by opts.MaxDevices in depth.
//   - Memory: O(devices built) for the undo stack, plus one per-depth
//     transposition-table entry for every distinct state visited.
//
// Errors:
//
//   - ErrNilQuery: a nil *query.Query was passed to Solve or SolveDepth.
//   - any error returned by query.Query.Check.
//   - context.Canceled / context.DeadlineExceeded: if opts.Ctx is done.
package solver
