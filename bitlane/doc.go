// Package bitlane implements the fixed-width bitvector abstraction that the
// rest of moscad builds on: a lane-parallel set of bits, one per truth-table
// row, with and/or/xor/not, zero/all-ones constructors, and indexed get/set.
//
// What:
//
//   - Lane[T]: a bit vector backed by an unsigned integer of type T.
//     Supported widths are 8, 16, 32, and 64 bits (T ∈ {uint8, uint16,
//     uint32, uint64}); the caller picks the smallest T that covers the
//     truth table being evaluated.
//   - Zero, AllOnes: the all-clear and all-set lanes for a given T.
//   - And, Or, Xor, Not, Equal, IsZero: lane-parallel boolean algebra.
//   - Bit, WithBit: indexed read and (copy-on-write) write.
//
// Why:
//
//   - Every row of a multi-valued truth table is evaluated simultaneously,
//     one bit position per row, across all Signal operators. BitLane is the
//     capability set {zero, all-ones, and, or, xor, not, eq, get(i),
//     set(i,b)} that the rest of the module (Signal, the solver) is written
//     against once, independent of how many rows a particular query has.
//
// Complexity: every operation is O(1) — a handful of machine-word ops.
package bitlane
