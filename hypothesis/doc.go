// Package hypothesis defines Mealy, the transparent data object the
// L# learner produces on every round: a finite set of states, a
// transition function, and an output function, all keyed by plain
// state-name strings.
//
// Mealy carries no hidden invariants beyond what its field comments
// state — callers needing to validate completeness or canonicity do
// so explicitly (package oracle's characterization-set construction
// is the main such caller).
package hypothesis
