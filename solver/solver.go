package solver

import (
	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/search"
)

// Result reports the outcome of an iterative-deepening search.
type Result struct {
	// Found is true if some depth up to Options.MaxDevices satisfies every
	// output.
	Found bool

	// Depth is the shallowest device count at which the outputs were
	// satisfied. Meaningless when Found is false.
	Depth int
}

// Solve searches for the smallest device count, from 0 up to
// opts.MaxDevices inclusive, that realizes every output in q. It returns as
// soon as the shallowest satisfying depth is found; absence of a solution at
// the configured budget means only that no solution uses that many devices
// or fewer.
func Solve[T bitlane.Unsigned](q *query.Query[T], opts ...Option) (Result, error) {
	if q == nil {
		return Result{}, ErrNilQuery
	}
	if err := q.Check(); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	for depth := 0; depth <= o.MaxDevices; depth++ {
		select {
		case <-o.Ctx.Done():
			return Result{}, o.Ctx.Err()
		default:
		}

		e := newEngine(q, false)
		if e.recurse(search.New(q), depth) {
			return Result{Found: true, Depth: depth}, nil
		}
	}

	return Result{Found: false}, nil
}

// SolveDepth runs a single-depth search and, if a witness exists, returns
// the device trail of the first one found along with found=true. The trail
// is ordered as devices were placed along that witnessing path, which is not
// necessarily the only way to realize the outputs at that depth.
func SolveDepth[T bitlane.Unsigned](q *query.Query[T], depth int, opts ...Option) (found bool, trail []Device[T], err error) {
	if q == nil {
		return false, nil, ErrNilQuery
	}
	if err := q.Check(); err != nil {
		return false, nil, err
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	select {
	case <-o.Ctx.Done():
		return false, nil, o.Ctx.Err()
	default:
	}

	e := newEngine(q, true)
	if !e.recurse(search.New(q), depth) {
		return false, nil, nil
	}

	return true, e.witness, nil
}
