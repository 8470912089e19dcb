package signal

import "github.com/silicasynth/moscad/bitlane"

// CareSignal pairs a target Signal with a care mask: bits outside Care are
// don't-cares for matching purposes.
type CareSignal[T bitlane.Unsigned] struct {
	Target Signal[T]
	Care   bitlane.Lane[T]
}

// NewCareSignal builds a CareSignal from a target and a care mask.
func NewCareSignal[T bitlane.Unsigned](target Signal[T], care bitlane.Lane[T]) CareSignal[T] {
	return CareSignal[T]{Target: target, Care: care}
}

// Matches reports whether built signal s satisfies cs: every lane within
// Care must agree between cs.Target and s across low, high, and strong.
func (cs CareSignal[T]) Matches(s Signal[T]) bool {
	if !cs.Target.Low.Xor(s.Low).And(cs.Care).IsZero() {
		return false
	}
	if !cs.Target.High.Xor(s.High).And(cs.Care).IsZero() {
		return false
	}

	return cs.Target.Strong.Xor(s.Strong).And(cs.Care).IsZero()
}
