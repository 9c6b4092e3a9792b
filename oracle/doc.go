// Package oracle implements a W-method equivalence oracle: given a
// hypothesis Mealy machine and a reference to the SUL, it generates a
// finite test suite (transition cover × middle sequences up to length
// k × characterization set), replays it against the SUL, and returns
// the first counterexample found.
package oracle
