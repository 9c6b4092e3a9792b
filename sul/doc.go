// Package sul defines the System Under Learning contract consumed by
// the learner and the oracle, plus a handful of in-memory reference
// SULs used by this repository's own tests and by cmd/lsharpctl's
// --demo flag.
//
// Loading a SUL from a .dot file, a benchmark driver, or any kind of
// external process boundary is out of scope here; everything in this
// package is a pure in-memory Mealy-machine simulator.
package sul
