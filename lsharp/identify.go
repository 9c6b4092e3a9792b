package lsharp

import (
	"errors"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/lsharp/ads"
	"github.com/katalvlaran/lsharp/tree"
)

// identifyFrontier narrows frontierNode's candidate list down to a
// single basis state by issuing one more query, using the configured
// separation rule once ≥2 candidates remain (SepSeq is always used
// for exactly two, regardless of the configured rule — ADS would add
// no power over a single witness there).
func (l *learner) identifyFrontier(frontierNode *tree.Node) error {
	list, ok := l.frontier[frontierNode]
	if !ok {
		return ErrMalformedBasis
	}
	l.filterCandidates(frontierNode, list)
	list = l.frontier[frontierNode]

	size := list.Size()
	if size < 2 {
		return nil
	}

	var err error
	if l.cfg.separationRule == SepSeqRule || size == 2 {
		err = l.identifyFrontierSepSeq(frontierNode, list)
	} else {
		err = l.identifyFrontierADS(frontierNode, list)
	}
	if err != nil {
		return err
	}

	l.filterCandidates(frontierNode, l.frontier[frontierNode])
	return nil
}

func (l *learner) identifyFrontierSepSeq(frontierNode *tree.Node, list *arraylist.List) error {
	v0, _ := list.Get(0)
	v1, _ := list.Get(1)
	b1, b2 := v0.(*tree.Node), v1.(*tree.Node)

	witness, ok := l.getOrComputeWitness(b1, b2)
	if !ok {
		return ErrMalformedBasis
	}
	inputs := l.tree.AccessSequence(frontierNode)
	inputs = append(inputs, witness...)
	return l.query(inputs)
}

// identifyFrontierADS builds an ADS over list's candidates and drives
// it adaptively. Per spec.md §4.3, when no input exists that
// distinguishes the candidate set (ads.ErrNoDistinguishingInput), the
// caller falls back to pairwise (SepSeq) separation instead of
// aborting.
func (l *learner) identifyFrontierADS(frontierNode *tree.Node, list *arraylist.List) error {
	candidates := make([]*tree.Node, 0, list.Size())
	for _, v := range list.Values() {
		candidates = append(candidates, v.(*tree.Node))
	}
	dt, err := ads.Build(candidates)
	if err != nil {
		if errors.Is(err, ads.ErrNoDistinguishingInput) {
			return l.identifyFrontierSepSeq(frontierNode, list)
		}
		return err
	}
	prefix := l.tree.AccessSequence(frontierNode)
	return l.adaptiveOutputQueryBase(prefix, ads.NewCursor(dt))
}
