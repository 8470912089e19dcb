package solver

import (
	"sort"
	"strings"

	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/internal/undomap"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/search"
	"github.com/silicasynth/moscad/signal"
)

// engine carries the per-search-run state shared across one depth's
// recursive walk: the query being satisfied, a transposition table keyed by
// canonical circuit state, and — when asked — the device trail of the first
// witness found.
type engine[T bitlane.Unsigned] struct {
	q           *query.Query[T]
	ignoredMask bitlane.Lane[T]
	seen        map[string]struct{}

	recordTrail bool
	trail       []Device[T]
	witness     []Device[T]
}

// newEngine builds an engine for a single depth's search over q.
func newEngine[T bitlane.Unsigned](q *query.Query[T], recordTrail bool) *engine[T] {
	return &engine[T]{
		q:           q,
		ignoredMask: q.IgnoredMask(),
		seen:        make(map[string]struct{}),
		recordTrail: recordTrail,
	}
}

// satisfied reports whether every output care-signal is realized by some
// signal currently present in built.
func (e *engine[T]) satisfied(built *undomap.Map[signal.Signal[T], bool]) bool {
	for _, cs := range e.q.Outputs {
		if !e.outputSatisfied(cs, built) {
			return false
		}
	}

	return true
}

// outputSatisfied implements the goal test's two paths: when cs cares about
// every meaningful lane, a direct key lookup suffices; otherwise every built
// signal must be checked against cs.Matches.
func (e *engine[T]) outputSatisfied(cs signal.CareSignal[T], built *undomap.Map[signal.Signal[T], bool]) bool {
	if cs.Care.Equal(e.ignoredMask.Not()) {
		_, present := built.Get(cs.Target)
		return present
	}

	for _, k := range built.Keys() {
		if cs.Matches(k) {
			return true
		}
	}

	return false
}

// canonicalKey encodes the full (signal, free) assignment of built as an
// order-independent string, so two states reaching the same signal set by
// different device orderings collapse to one transposition-table entry.
// Correctness is chosen over raw hash-only speed here: a canonical key never
// collides two distinct states, at the cost of one sort and one string build
// per recursive step.
func canonicalKey[T bitlane.Unsigned](built *undomap.Map[signal.Signal[T], bool]) string {
	keys := built.Keys()
	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		free, _ := built.Get(k)
		var tag byte = '0'
		if free {
			tag = '1'
		}
		entries = append(entries, k.String()+string(tag))
	}
	sort.Strings(entries)

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e)
		b.WriteByte('|')
	}

	return b.String()
}

// recurse is the depth-first walk's single step: check the goal, check the
// budget, dedupe against the transposition table, then try every (power,
// gate) combination reachable from the current built set.
func (e *engine[T]) recurse(st *search.State[T], left int) bool {
	// 1. Goal test.
	if e.satisfied(st.Built) {
		if e.recordTrail && e.witness == nil {
			e.witness = append([]Device[T]{}, e.trail...)
		}
		return true
	}

	// 2. Budget exhausted.
	if left == 0 {
		return false
	}

	// 3. Transposition check: skip states already explored at this depth.
	key := canonicalKey(st.Built)
	if _, dup := e.seen[key]; dup {
		return false
	}
	e.seen[key] = struct{}{}

	// 4. Candidate power/gate nets: the query's fixed rails plus every
	// signal built so far (free or bound — any built net can feed a new
	// transistor's gate or power terminal).
	built := st.Built.Keys()
	powerCands := make([]signal.Signal[T], 0, len(e.q.Power)+len(built))
	powerCands = append(powerCands, e.q.Power...)
	powerCands = append(powerCands, built...)
	gateCands := make([]signal.Signal[T], 0, len(e.q.Inputs)+len(built))
	gateCands = append(gateCands, e.q.Inputs...)
	gateCands = append(gateCands, built...)

	// 5. Try every combination.
	for _, power := range powerCands {
		for _, gate := range gateCands {
			if e.visitCombination(st, power, gate, built, left) {
				return true
			}
		}
	}

	return false
}

// visitCombination tries both transistor kinds for one (power, gate) pair.
//
// power and gate are each being consumed as this device's terminals, so for
// the duration of this call neither may also serve as a free merge partner
// in visitResult's merge loop — forceNotFree pins both (through UndoMap, so
// the flags are restored on return) before either kind is tried.
func (e *engine[T]) visitCombination(st *search.State[T], power, gate signal.Signal[T], free []signal.Signal[T], left int) bool {
	return e.forceNotFree(st, []signal.Signal[T]{power, gate}, func() bool {
		if out, ok := signal.PMOS(gate, power, e.ignoredMask); ok {
			if e.visitResult(st, PMOSDevice, gate, power, out, free, left) {
				return true
			}
		}
		if out, ok := signal.NMOS(gate, power, e.ignoredMask); ok {
			if e.visitResult(st, NMOSDevice, gate, power, out, free, left) {
				return true
			}
		}

		return false
	})
}

// forceNotFree forces every net in nets that is currently built with
// free=true to free=false for the duration of body, restoring each on
// return. Nets that are absent from built, or already bound free=false, are
// left untouched — the binding is only meaningful (and only installed) when
// it actually changes the flag. Processing one net at a time lets a
// repeated net (power == gate) fall through as a no-op on its second
// occurrence, since by then it has already been pinned false.
func (e *engine[T]) forceNotFree(st *search.State[T], nets []signal.Signal[T], body func() bool) bool {
	if len(nets) == 0 {
		return body()
	}

	net, rest := nets[0], nets[1:]
	if free, present := st.Built.Get(net); !present || !free {
		return e.forceNotFree(st, rest, body)
	}

	result, _ := undomap.WithBinding(st.Built, net, false, true, func() bool {
		return e.forceNotFree(st, rest, body)
	})

	return result
}

// visitResult installs a device's raw output as a new free net, then also
// tries merging that output into every currently free net in turn — each
// merge stands alone as a new built net, the absorbed net removed for the
// duration of that branch.
func (e *engine[T]) visitResult(st *search.State[T], kind Kind, gate, power, result signal.Signal[T], candidates []signal.Signal[T], left int) bool {
	dev := Device[T]{Kind: kind, Gate: gate, Power: power, Output: result, Net: result}
	if e.visitAsFree(st, dev, left) {
		return true
	}

	for _, other := range candidates {
		if !st.Free(other) {
			continue
		}
		merged, ok := signal.Connect(result, other)
		if !ok {
			continue
		}

		otherCopy := other
		mergedDev := Device[T]{Kind: kind, Gate: gate, Power: power, Output: result, MergedWith: &otherCopy, Net: merged}

		found := undomap.WithRemoved(st.Built, other, func() bool {
			return e.visitAsFree(st, mergedDev, left)
		})
		if found {
			return true
		}
	}

	return false
}

// visitAsFree installs dev.Net as a free signal and recurses one level
// deeper. If dev.Net is already bound to free=true, the install is a no-op
// and recursion is skipped — that state has already been reached by some
// other path at this depth.
func (e *engine[T]) visitAsFree(st *search.State[T], dev Device[T], left int) bool {
	_, present := st.Built.Get(dev.Net)

	result, ran := undomap.WithBinding(st.Built, dev.Net, true, present, func() bool {
		if e.recordTrail {
			e.trail = append(e.trail, dev)
		}
		found := e.recurse(st, left-1)
		if !found && e.recordTrail {
			e.trail = e.trail[:len(e.trail)-1]
		}
		return found
	})
	if !ran {
		return false
	}

	return result
}
