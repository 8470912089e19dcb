package solver

import "errors"

// ErrNilQuery indicates Solve or SolveDepth was called with a nil query.
var ErrNilQuery = errors.New("solver: query is nil")
