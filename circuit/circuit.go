package circuit

import (
	"fmt"
	"strings"

	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/solver"
)

// Reconstruct re-runs a depth-bounded search over q with device-trail
// recording enabled and returns the device list of the first witness found
// using at most depth devices. Callers typically call this only after
// solver.Solve has already reported a satisfying depth, so the replay is
// guaranteed to succeed; passing a depth below the true minimum returns
// ErrNoWitnessAtDepth. Above the minimum, the returned list may hold fewer
// than depth devices.
func Reconstruct[T bitlane.Unsigned](q *query.Query[T], depth int, opts ...solver.Option) ([]solver.Device[T], error) {
	found, trail, err := solver.SolveDepth(q, depth, opts...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoWitnessAtDepth
	}

	return trail, nil
}

// Summarize renders devices as a human-readable report, one line per
// device in placement order.
func Summarize[T bitlane.Unsigned](devices []solver.Device[T]) string {
	var b strings.Builder
	for i, d := range devices {
		fmt.Fprintf(&b, "%2d: %s  gate=%s  power=%s  net=%s", i+1, d.Kind, d.Gate, d.Power, d.Net)
		if d.MergedWith != nil {
			fmt.Fprintf(&b, "  merged-with=%s", *d.MergedWith)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
