package lsharp

import (
	"errors"

	"github.com/katalvlaran/lsharp/ads"
	"github.com/katalvlaran/lsharp/tree"
)

// exploreFrontier obtains the first observation for (basisState,
// input) according to the configured extension rule.
func (l *learner) exploreFrontier(basisState *tree.Node, input string) error {
	switch {
	case l.cfg.extensionRule == ADS:
		return l.exploreFrontierADS(basisState, input)

	default:
		return l.exploreFrontierSepSeq(basisState, input)
	}
}

// exploreFrontierSepSeq issues access(basisState)+input, appending a
// witness between the first two basis states when SepSeq applies and
// at least two exist (falling back to a plain Nothing-style query
// with fewer than two, or when the rule is Nothing outright).
func (l *learner) exploreFrontierSepSeq(basisState *tree.Node, input string) error {
	prefix := l.tree.AccessSequence(basisState)
	inputs := append(append([]string{}, prefix...), input)

	if l.cfg.extensionRule == SepSeq && len(l.basisOrder) >= 2 {
		b1, b2 := l.basisOrder[0], l.basisOrder[1]
		witness, ok := l.getOrComputeWitness(b1, b2)
		if !ok {
			return ErrMalformedBasis
		}
		inputs = append(inputs, witness...)
	}
	return l.query(inputs)
}

// exploreFrontierADS builds an ADS over the current basis and drives
// it adaptively. Per spec.md §4.3, when no input exists that
// distinguishes the basis (ads.ErrNoDistinguishingInput), the caller
// falls back to pairwise (SepSeq) separation instead of aborting.
func (l *learner) exploreFrontierADS(basisState *tree.Node, input string) error {
	dt, err := ads.Build(l.basisOrder)
	if err != nil {
		if errors.Is(err, ads.ErrNoDistinguishingInput) {
			return l.exploreFrontierSepSeq(basisState, input)
		}
		return err
	}
	prefix := l.tree.AccessSequence(basisState)
	prefix = append(prefix, input)
	return l.adaptiveOutputQueryBase(prefix, ads.NewCursor(dt))
}

// adaptiveOutputQueryBase answers an adaptive distinguishing-sequence
// query for prefix, preferring to replay it straight from the tree if
// every step along dt's decisions is already on file there; only the
// inputs dt actually asks for are ever sent to the SUL.
func (l *learner) adaptiveOutputQueryBase(prefix []string, cur *ads.Cursor) error {
	fromNode, found, err := l.tree.Successor(prefix)
	if err != nil {
		return err
	}
	if found {
		inputs, outputs, success := answerADSFromTree(cur, fromNode)
		cur.ResetToRoot()
		if success {
			prefixOutputs, gotPrefix, perr := l.tree.Observe(prefix)
			if perr != nil {
				return perr
			}
			if !gotPrefix {
				return ErrMissingObservation
			}
			fullInputs := append(append([]string{}, prefix...), inputs...)
			fullOutputs := append(append([]string{}, prefixOutputs...), outputs...)
			return l.tree.Insert(fullInputs, fullOutputs)
		}
	}
	return l.sulAdaptiveQuery(prefix, cur)
}

// answerADSFromTree drives cur using outputs already recorded from
// fromNode onward, without touching the SUL. success is false the
// moment the tree lacks an observation dt needs next.
func answerADSFromTree(cur *ads.Cursor, fromNode *tree.Node) (inputs, outputs []string, success bool) {
	node := fromNode
	in, ok := cur.Start()
	for ok {
		out, hasOut := node.Output(in)
		succ, hasSucc := node.Successor(in)
		if !hasOut || !hasSucc {
			return nil, nil, false
		}
		inputs = append(inputs, in)
		outputs = append(outputs, out)
		node = succ
		in, ok = cur.NextInput(out)
	}
	return inputs, outputs, true
}

// sulAdaptiveQuery opens a fresh SUL session, replays prefix, then
// drives cur step by step against the SUL until it resolves, folding
// the whole observed sequence into the tree as one query.
func (l *learner) sulAdaptiveQuery(prefix []string, cur *ads.Cursor) error {
	l.sul.Post()
	l.sul.Pre()

	inputs := append([]string{}, prefix...)
	outputs := make([]string, 0, len(prefix))
	for _, in := range prefix {
		out, err := l.sul.Step(in)
		if err != nil {
			return err
		}
		l.metrics.SULSteps++
		outputs = append(outputs, out)
	}

	lastOutput := ""
	in, ok := cur.Start()
	for ok {
		out, err := l.sul.Step(in)
		if err != nil {
			return err
		}
		l.metrics.SULSteps++
		inputs = append(inputs, in)
		outputs = append(outputs, out)
		lastOutput = out
		in, ok = cur.NextInput(lastOutput)
	}
	l.metrics.SULQueries++

	return l.tree.Insert(inputs, outputs)
}
