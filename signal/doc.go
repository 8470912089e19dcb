// Package signal implements the five-valued, lane-parallel signal algebra
// the synthesizer searches over: strong/weak high and low, high-impedance,
// and a reserved "ignored" code for lanes outside a query's valuation width.
//
// What:
//
//   - Signal[T]: a (low, high, strong) triple of bitlane.Lane[T], one
//     encoded value per truth-table row.
//   - Connect: ties two nets together (wire union), failing on contradiction.
//   - PMOS, NMOS: the pass-transistor models, each requiring a fully
//     determined gate.
//   - Parse, String: the textual glyph form ({0,1,↓,↑,Z}, with '.' for
//     ignored lanes and '_' as an input-only visual separator).
//   - CareSignal[T]: a target Signal plus a don't-care mask.
//
// Why:
//
//   - Packing all five states into three bitlanes lets every operator run
//     lane-parallel across an entire truth table in O(1) machine words,
//     instead of per-row branching.
//
// Errors:
//
//   - ErrInvalidEncoding: a (low, high, strong) triple outside the six
//     permitted codes (see the table in doc comments on Signal).
//   - ErrStringTooWide: a parsed glyph string has more characters than the
//     target T has bits.
//   - ErrUnknownGlyph: an unrecognized rune in a parsed string.
package signal
