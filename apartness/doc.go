// Package apartness decides whether two observation-tree nodes have
// been distinguished by the SUL's recorded behavior, and if so
// produces the witnessing input suffix.
//
// Two nodes are apart iff some input sequence, read from both, drives
// them to a divergent output. ComputeWitness performs a breadth-first
// joint traversal of the two nodes' subtrees so the returned witness
// is both shortest and, among shortest witnesses, lexicographically
// first — a canonical choice that makes the result cache-stable and
// reproducible across runs.
package apartness
