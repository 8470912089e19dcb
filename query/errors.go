package query

import "errors"

// Sentinel errors for Query validation.
var (
	// ErrNoOutputs indicates a Query with zero output care-signals: there is
	// nothing for the solver to satisfy.
	ErrNoOutputs = errors.New("query: no outputs specified")

	// ErrMismatchedIgnoredMask indicates two signals within the same Query
	// disagree on which lanes are padding beyond the valuation width.
	ErrMismatchedIgnoredMask = errors.New("query: signals disagree on ignored-lane mask")
)
