package search

import (
	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/internal/undomap"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/signal"
)

// State is the mutable frontier of a single search branch: every signal
// built so far, mapped to whether its net is still free (a dangling drain
// eligible to be merged into by a future device), alongside the query being
// satisfied.
type State[T bitlane.Unsigned] struct {
	// Built maps each signal produced during the walk to its free/bound
	// flag. A signal absent from Built has not been produced at all.
	Built *undomap.Map[signal.Signal[T], bool]

	// Query is the target the walk is trying to satisfy. It does not change
	// across a search.
	Query *query.Query[T]
}

// New returns an empty State for q. Power and Input signals are never
// entered into Built: they are read directly from Query by the solver as
// candidate power/gate sources, and since they never appear in Built they
// can never be picked up as a free net to merge a new device's output into.
func New[T bitlane.Unsigned](q *query.Query[T]) *State[T] {
	return &State[T]{
		Built: undomap.New[signal.Signal[T], bool](),
		Query: q,
	}
}

// Free reports whether signal s is currently present and marked free.
func (st *State[T]) Free(s signal.Signal[T]) bool {
	free, present := st.Built.Get(s)
	return present && free
}

// Present reports whether signal s has been produced at all.
func (st *State[T]) Present(s signal.Signal[T]) bool {
	_, present := st.Built.Get(s)
	return present
}
