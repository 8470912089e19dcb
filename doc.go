// Package moscad synthesizes minimal CMOS transistor networks.
//
// Given a target truth table expressed over a five-valued signal algebra
// (strong-0, strong-1, weak-pull-down, weak-pull-up, and high-Z) and a set
// of available power rails and input wires, moscad searches for the
// smallest interconnection of P-type and N-type MOS transistors whose
// output nets realize that table, subject to don't-care bits.
//
// The search is an iterative-deepening depth-first search: at each device
// budget, every combination of power/gate source and transistor polarity is
// tried, newly produced nets are either kept standalone or merged onto an
// existing free net, and a transposition table prunes states already
// visited at that depth.
//
//	bitlane/   — lane-parallel bitvector primitives the signal algebra is built on
//	signal/    — the five-valued signal type, transistor conduction, and care masks
//	query/     — the solver's input: power rails, inputs, and care-signal outputs
//	search/    — the mutable built-signals state threaded through the recursion
//	solver/    — the iterative-deepening search itself
//	circuit/   — reconstructing and rendering a witnessing device list
//	scenarios/ — bundled preset truth tables (inverter, NAND, half adder, ...)
//	cmd/moscad — a cobra-based CLI over the solver and scenario presets
package moscad
