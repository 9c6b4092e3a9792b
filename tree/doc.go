// Package tree implements the observation tree at the heart of the L#
// learning engine: a rooted, prefix-closed record of every
// input/output observation collected from a System Under Learning.
//
// A Tree owns an arena of *Node values reachable from its Root. Each
// Node carries a stable integer identity (assigned by an
// instance-owned counter — never a process-global one, so two
// learners never collide) and, for every input symbol it has been
// extended with, the observed output and the child Node reached.
//
// The tree is output-consistent by construction: extending a Node
// with an input already on file for a different output is rejected
// with ErrOutputMismatch rather than silently overwritten, since that
// would mean the SUL is non-deterministic.
//
// Tree is single-writer. It is owned exclusively by one learner and is
// never accessed from more than one goroutine at a time (see spec §5
// of the engine design: the learner is single-threaded cooperative).
package tree
