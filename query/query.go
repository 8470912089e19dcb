package query

import (
	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/signal"
)

// Query is the target behavior the solver searches a circuit for: the power
// rails and input nets already present on the board, and the care-signals
// the outputs must match.
type Query[T bitlane.Unsigned] struct {
	// Power lists the fixed supply nets available to every device, typically
	// a strong-high rail and a strong-low rail.
	Power []signal.Signal[T]

	// Inputs lists the nets the synthesized circuit may gate transistors on,
	// but may not itself drive.
	Inputs []signal.Signal[T]

	// Outputs lists the care-signals a built net must match to count as a
	// realization of that output.
	Outputs []signal.CareSignal[T]
}

// New builds a Query from its three signal lists. It does not validate; call
// Check before handing the Query to a solver.
func New[T bitlane.Unsigned](power, inputs []signal.Signal[T], outputs []signal.CareSignal[T]) Query[T] {
	return Query[T]{Power: power, Inputs: inputs, Outputs: outputs}
}

// IgnoredMask returns the shared ignored-lane mask across the Query's
// signals, taken from the first signal found among Outputs, Power, and
// Inputs in that order. Callers should validate consistency with Check
// before relying on this value.
func (q Query[T]) IgnoredMask() bitlane.Lane[T] {
	if len(q.Outputs) > 0 {
		return q.Outputs[0].Target.IgnoredMask()
	}
	if len(q.Power) > 0 {
		return q.Power[0].IgnoredMask()
	}
	if len(q.Inputs) > 0 {
		return q.Inputs[0].IgnoredMask()
	}

	return bitlane.Zero[T]()
}

// Check validates a Query before it is handed to a solver: there must be at
// least one output, and every Power, Input, and Output signal must agree on
// which lanes are padding.
func (q Query[T]) Check() error {
	if len(q.Outputs) == 0 {
		return ErrNoOutputs
	}

	mask := q.IgnoredMask()

	for _, s := range q.Power {
		if !s.IgnoredMask().Equal(mask) {
			return ErrMismatchedIgnoredMask
		}
	}
	for _, s := range q.Inputs {
		if !s.IgnoredMask().Equal(mask) {
			return ErrMismatchedIgnoredMask
		}
	}
	for _, cs := range q.Outputs {
		if !cs.Target.IgnoredMask().Equal(mask) {
			return ErrMismatchedIgnoredMask
		}
	}

	return nil
}
