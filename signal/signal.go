package signal

import (
	"strings"

	"github.com/silicasynth/moscad/bitlane"
)

// Signal is a lane-parallel five-valued value: one (low, high, strong) code
// per truth-table row, packed across all rows of T at once.
//
// Per lane i, the encoded value is:
//
//	low[i] high[i] strong[i]   meaning          glyph
//	  1       0        1       strong low       0
//	  0       1        1       strong high      1
//	  1       0        0       weak low         ↓
//	  0       1        0       weak high        ↑
//	  0       0        0       high impedance   Z
//	  1       1        1       ignored / masked .
//
// Every other (low, high, strong) combination is invalid: low & high &
// !strong must be zero, and !low & !high & strong must be zero.
type Signal[T bitlane.Unsigned] struct {
	Low    bitlane.Lane[T]
	High   bitlane.Lane[T]
	Strong bitlane.Lane[T]
}

// newUnchecked builds a Signal without validating the encoding. Used only
// internally, by operators whose output formulas are known by construction
// to produce a valid triple — paying for validation on every transistor
// evaluation would defeat the point of a branching factor well over 100.
func newUnchecked[T bitlane.Unsigned](low, high, strong bitlane.Lane[T]) Signal[T] {
	return Signal[T]{Low: low, High: high, Strong: strong}
}

// New validates (low, high, strong) against the two encoding invariants and
// returns the resulting Signal, or ErrInvalidEncoding if the triple contains
// a lane outside the six permitted codes.
func New[T bitlane.Unsigned](low, high, strong bitlane.Lane[T]) (Signal[T], error) {
	if !low.And(high).And(strong.Not()).IsZero() {
		return Signal[T]{}, ErrInvalidEncoding
	}
	if !low.Not().And(high.Not()).And(strong).IsZero() {
		return Signal[T]{}, ErrInvalidEncoding
	}

	return newUnchecked(low, high, strong), nil
}

// IgnoredMask returns the lanes outside the caller's valuation width: the
// positions where low, high, and strong are all set (the reserved "ignored"
// code). All signals within a single Query must share the same ignored mask.
func (s Signal[T]) IgnoredMask() bitlane.Lane[T] {
	return s.Low.And(s.High).And(s.Strong)
}

// Equal reports whether s and o encode the same value in every lane.
func (s Signal[T]) Equal(o Signal[T]) bool {
	return s.Low.Equal(o.Low) && s.High.Equal(o.High) && s.Strong.Equal(o.Strong)
}

// Connect ties two nets together: the lane-wise union of a and b. It fails
// (returns ok=false) if any lane has one signal driving low where the other
// drives high, weakly or strongly — a contradiction that cannot be wired.
//
// Lanes where either signal carries the reserved "ignored" code are excluded
// from the contradiction check: that code sets both low and high, so without
// this exclusion connecting any two signals sharing a padded width would
// always spuriously contradict on their padding lanes.
func Connect[T bitlane.Unsigned](a, b Signal[T]) (result Signal[T], ok bool) {
	live := a.IgnoredMask().Or(b.IgnoredMask()).Not()

	if !a.Low.And(b.High).And(live).IsZero() {
		return Signal[T]{}, false
	}
	if !a.High.And(b.Low).And(live).IsZero() {
		return Signal[T]{}, false
	}

	return newUnchecked(a.Low.Or(b.Low), a.High.Or(b.High), a.Strong.Or(b.Strong)), true
}

// PMOS models a P-type transistor conducting drain through to the output
// wherever gate is low. ignoredMask widens the "gate fully determined"
// requirement to lanes outside the query's valuation width (gate.Strong |
// ignoredMask must be all-ones), so a mixed-width query's padding lanes
// never spuriously block an otherwise-valid device.
func PMOS[T bitlane.Unsigned](gate, drain Signal[T], ignoredMask bitlane.Lane[T]) (result Signal[T], ok bool) {
	if !gate.Strong.Or(ignoredMask).IsAllOnes() {
		return Signal[T]{}, false
	}

	low := gate.Low.And(drain.Low)
	high := gate.Low.And(drain.High)
	strong := gate.Low.And(drain.High).And(drain.Strong)

	return newUnchecked(low, high, strong), true
}

// NMOS models an N-type transistor conducting drain through to the output
// wherever gate is high; see PMOS for the ignoredMask gating rule.
func NMOS[T bitlane.Unsigned](gate, drain Signal[T], ignoredMask bitlane.Lane[T]) (result Signal[T], ok bool) {
	if !gate.Strong.Or(ignoredMask).IsAllOnes() {
		return Signal[T]{}, false
	}

	low := gate.High.And(drain.Low)
	high := gate.High.And(drain.High)
	strong := gate.High.And(drain.Low).And(drain.Strong)

	return newUnchecked(low, high, strong), true
}

// runeOf decodes one lane's triple to its display rune, including the
// multi-byte weak-signal arrows.
func runeOf(low, high, strong bool) rune {
	switch {
	case low && !high && strong:
		return '0'
	case !low && high && strong:
		return '1'
	case low && !high && !strong:
		return '↓'
	case !low && high && !strong:
		return '↑'
	case !low && !high && !strong:
		return 'Z'
	default:
		return '.'
	}
}

// String renders s as a glyph string of exactly Width[T]() characters,
// lane N-1 first (leftmost), lane 0 last (rightmost). Ignored lanes render
// as '.'.
func (s Signal[T]) String() string {
	width := bitlane.Width[T]()
	var b strings.Builder
	b.Grow(width)
	for i := width - 1; i >= 0; i-- {
		b.WriteRune(runeOf(s.Low.Bit(i), s.High.Bit(i), s.Strong.Bit(i)))
	}

	return b.String()
}

// Parse decodes a glyph string into a Signal[T]. Characters are consumed
// right to left into lane 0, 1, ...; an optional '_' may appear anywhere as
// a visual separator and is ignored, and '.' decodes to the reserved
// "ignored" code, so Parse accepts everything String prints. Lanes beyond
// the string's length (up to Width[T]()) are also set to the "ignored" code,
// which is the starting value for every lane before the string is applied.
func Parse[T bitlane.Unsigned](s string) (Signal[T], error) {
	width := bitlane.Width[T]()

	low := bitlane.AllOnes[T]()
	high := bitlane.AllOnes[T]()
	strong := bitlane.AllOnes[T]()

	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '_' {
			continue
		}
		runes = append(runes, r)
	}
	if len(runes) > width {
		return Signal[T]{}, ErrStringTooWide
	}

	for i := 0; i < len(runes); i++ {
		r := runes[len(runes)-1-i]
		var l, h, st bool
		switch r {
		case '0':
			l, h, st = true, false, true
		case '1':
			l, h, st = false, true, true
		case '↓':
			l, h, st = true, false, false
		case '↑':
			l, h, st = false, true, false
		case 'Z', 'z':
			l, h, st = false, false, false
		case '.':
			l, h, st = true, true, true
		default:
			return Signal[T]{}, ErrUnknownGlyph
		}
		low = low.WithBit(i, l)
		high = high.WithBit(i, h)
		strong = strong.WithBit(i, st)
	}

	return newUnchecked(low, high, strong), nil
}
