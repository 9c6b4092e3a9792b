package lsharp

import (
	"github.com/katalvlaran/lsharp/apartness"
	"github.com/katalvlaran/lsharp/hypothesis"
)

// processCounterExample folds (cexInputs, cexOutputs) into the tree,
// finds the first index at which the hypothesis's own replay diverges
// from the observed outputs, and hands the strict prefix before that
// divergence to binary-search refinement.
func (l *learner) processCounterExample(hyp *hypothesis.Mealy, cexInputs, cexOutputs []string) error {
	if err := l.tree.Insert(cexInputs, cexOutputs); err != nil {
		return err
	}

	hypOutputs, _, ok := hyp.Run(cexInputs)
	if !ok {
		return ErrMissingObservation
	}

	idx := -1
	for i := range cexOutputs {
		if cexOutputs[i] != hypOutputs[i] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrMalformedBasis
	}

	return l.processBinarySearch(hyp, cexInputs[:idx], cexOutputs[:idx])
}

// processBinarySearch narrows a counterexample prefix down to a
// single-symbol divergence by repeatedly splitting it at its midpoint
// between the longest basis-only prefix and the full prefix, querying
// whichever half still shows a witness between the tree and the
// hypothesis, and recursing into that half.
func (l *learner) processBinarySearch(hyp *hypothesis.Mealy, cexInputs, cexOutputs []string) error {
	treeNode, ok, err := l.tree.Successor(cexInputs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingObservation
	}

	l.updateFrontierAndBasis()

	if _, isFrontier := l.frontier[treeNode]; isFrontier {
		return nil
	}
	if _, isBasis := l.basis[treeNode]; isBasis {
		return nil
	}

	hypState, ok := runMealyFrom(hyp, hyp.Init, cexInputs)
	if !ok {
		return ErrMissingObservation
	}
	hypNode, ok := l.nodeForState(hypState)
	if !ok {
		return ErrMalformedBasis
	}

	var prefix []string
	cur := l.tree.Root()
	for _, in := range cexInputs {
		if _, isFrontier := l.frontier[cur]; isFrontier {
			break
		}
		succ, ok := cur.Successor(in)
		if !ok {
			return ErrMissingObservation
		}
		cur = succ
		prefix = append(prefix, in)
	}

	h := (len(prefix) + len(cexInputs)) / 2
	sigma1 := cexInputs[:h]
	sigma2 := cexInputs[h:]

	hypStateP, ok := runMealyFrom(hyp, hyp.Init, sigma1)
	if !ok {
		return ErrMissingObservation
	}
	hypNodeP, ok := l.nodeForState(hypStateP)
	if !ok {
		return ErrMalformedBasis
	}
	hypPAccess := l.tree.AccessSequence(hypNodeP)

	witness, ok := apartness.ComputeWitness(treeNode, hypNode)
	if !ok {
		return ErrMalformedBasis
	}

	queryInputs := append(append(append([]string{}, hypPAccess...), sigma2...), witness...)
	if err := l.query(queryInputs); err != nil {
		return err
	}
	queryOutputs, gotQ, qerr := l.tree.Observe(queryInputs)
	if qerr != nil {
		return qerr
	}
	if !gotQ {
		return ErrMissingObservation
	}

	treeNodeP, ok, err := l.tree.Successor(sigma1)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingObservation
	}

	if _, apart := apartness.ComputeWitness(treeNodeP, hypNodeP); apart {
		return l.processBinarySearch(hyp, sigma1, cexOutputs[:h])
	}

	newInputs := append(append([]string{}, hypPAccess...), sigma2...)
	return l.processBinarySearch(hyp, newInputs, queryOutputs[:len(newInputs)])
}

func runMealyFrom(hyp *hypothesis.Mealy, from string, inputs []string) (string, bool) {
	_, final, ok := hyp.RunFrom(from, inputs)
	return final, ok
}
