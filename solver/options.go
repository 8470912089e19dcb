package solver

import "context"

// Option configures optional behavior of a synthesis run.
// Use with Solve(query, opts...) or SolveDepth(query, depth, opts...).
type Option func(*Options)

// Options holds configurable parameters for a synthesis search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is polled once per depth of the iterative-deepening loop.
	Ctx context.Context

	// MaxDevices bounds the iterative-deepening search: Solve tries every
	// depth from 0 up to and including MaxDevices before giving up.
	MaxDevices int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - MaxDevices = 8
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDevices: 8,
	}
}

// WithContext returns an Option that sets the Context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDevices returns an Option that bounds the device budget searched.
func WithMaxDevices(n int) Option {
	return func(o *Options) {
		o.MaxDevices = n
	}
}
