package lsharp

import (
	"fmt"

	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/tree"
)

// constructHypothesis builds a Mealy machine from the current basis:
// one state per basis node (numbered in basisOrder), with transitions
// resolved through any still-tracked frontier successor down to its
// (by now unique) basis candidate.
func (l *learner) constructHypothesis() (*hypothesis.Mealy, error) {
	l.basisToState = make(map[*tree.Node]string, len(l.basisOrder))
	l.stateToBasis = make(map[string]*tree.Node, len(l.basisOrder))
	for i, b := range l.basisOrder {
		id := fmt.Sprintf("s%d", i)
		l.basisToState[b] = id
		l.stateToBasis[id] = b
	}

	m := hypothesis.New(l.basisToState[l.tree.Root()])
	for _, b := range l.basisOrder {
		srcID := l.basisToState[b]
		for _, in := range l.alphabet {
			out, hasOut := b.Output(in)
			succ, hasSucc := b.Successor(in)
			if !hasOut || !hasSucc {
				return nil, ErrMissingObservation
			}

			resolved := succ
			if list, isFrontier := l.frontier[succ]; isFrontier {
				if list.Size() != 1 {
					return nil, ErrMalformedBasis
				}
				v, _ := list.Get(0)
				resolved = v.(*tree.Node)
			}

			destID, ok := l.basisToState[resolved]
			if !ok {
				return nil, ErrMalformedBasis
			}
			m.SetTransition(srcID, in, out, destID)
		}
	}
	return m, nil
}

// nodeForState resolves a hypothesis state id back to the basis tree
// node it was constructed from.
func (l *learner) nodeForState(state string) (*tree.Node, bool) {
	n, ok := l.stateToBasis[state]
	return n, ok
}
