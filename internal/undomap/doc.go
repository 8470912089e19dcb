// Package undomap implements a map that remembers how to reverse a single
// binding change, so a depth-first search can install state on the way down
// and restore it exactly on the way back up without copying the whole map
// at every step.
//
// What:
//
//   - Map[K, V]: a thin wrapper over a native Go map.
//   - WithBinding: installs key=value, invokes body only if that actually
//     changed the map, then restores the prior binding (or absence) before
//     returning.
//
// Why:
//
//   - The search tree backtracks far more often than it commits, so undo
//     must be O(1) per step rather than O(size of map).
package undomap
