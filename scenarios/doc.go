// Package scenarios provides preset Query builders for the small standard
// cells commonly used to exercise a synthesis solver: pass transistors,
// inverters, buffers, and the basic two-input gates, through a half adder
// and a three-input NAND.
//
// What:
//
//   - One function per cell, each returning a ready-to-solve
//     query.Query[uint8] value with Check already satisfied.
package scenarios
