package lsharp

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/lsharp/apartness"
	"github.com/katalvlaran/lsharp/tree"
)

// makeTreeAdequate updates the frontier/basis bookkeeping and then
// repeatedly completes the basis, identifies ambiguous frontier
// states, and promotes isolated ones until the tree is adequate: every
// frontier state has exactly one surviving basis candidate and every
// basis state has an observed output for every input.
func (l *learner) makeTreeAdequate() error {
	l.updateFrontierAndBasis()
	for !l.isTreeAdequate() {
		if err := l.makeBasisComplete(); err != nil {
			return err
		}
		if err := l.makeFrontiersIdentified(); err != nil {
			return err
		}
		l.promoteFrontierState()
	}
	return nil
}

func (l *learner) updateFrontierAndBasis() {
	l.updateFrontierToBasisDict()
	l.promoteFrontierState()
	l.checkFrontierConsistency()
	l.updateFrontierToBasisDict()
}

// updateFrontierToBasisDict re-filters every frontier's candidate list
// against the tree's current apartness relation: a basis candidate
// proven apart from its frontier state is dropped for good.
func (l *learner) updateFrontierToBasisDict() {
	for _, f := range l.frontierOrder {
		l.filterCandidates(f, l.frontier[f])
	}
}

func (l *learner) filterCandidates(frontierNode *tree.Node, list *arraylist.List) {
	kept := arraylist.New()
	for _, v := range list.Values() {
		cand := v.(*tree.Node)
		if !apartness.StatesAreApart(frontierNode, cand) {
			kept.Add(cand)
		}
	}
	l.frontier[frontierNode] = kept
}

// promoteFrontierState promotes the first frontier state (in
// insertion order) whose candidate list has emptied out — it matches
// no surviving basis state, so it must become a new basis state
// itself — and appends it as a fresh candidate to every other
// frontier's list it is not apart from. At most one promotion happens
// per call, matching the algorithm's single-promotion-per-pass shape;
// callers loop until nothing is left isolated.
func (l *learner) promoteFrontierState() {
	for _, f := range l.frontierOrder {
		if l.frontier[f].Size() != 0 {
			continue
		}
		l.basis[f] = struct{}{}
		l.basisOrder = append(l.basisOrder, f)
		l.removeFrontier(f)

		for _, other := range l.frontierOrder {
			if !apartness.StatesAreApart(f, other) {
				l.frontier[other].Add(f)
			}
		}
		return
	}
}

// checkFrontierConsistency finds successors of basis states that are
// neither basis nor already-tracked frontier states, and registers
// them as new frontier states with their initial candidate list.
func (l *learner) checkFrontierConsistency() {
	for _, b := range l.basisOrder {
		for _, in := range l.alphabet {
			succ, ok := b.Successor(in)
			if !ok {
				continue
			}
			if _, isBasis := l.basis[succ]; isBasis {
				continue
			}
			if _, isFrontier := l.frontier[succ]; isFrontier {
				continue
			}
			candidates := arraylist.New()
			for _, other := range l.basisOrder {
				if !apartness.StatesAreApart(other, succ) {
					candidates.Add(other)
				}
			}
			l.addFrontier(succ, candidates)
		}
	}
}

// isTreeAdequate reports whether every frontier state has exactly one
// surviving basis candidate and every basis state answers every
// input.
func (l *learner) isTreeAdequate() bool {
	l.checkFrontierConsistency()

	for _, f := range l.frontierOrder {
		if l.frontier[f].Size() != 1 {
			return false
		}
	}
	for _, b := range l.basisOrder {
		for _, in := range l.alphabet {
			if _, ok := b.Output(in); !ok {
				return false
			}
		}
	}
	return true
}

// makeBasisComplete explores, via exploreFrontier, every
// not-yet-defined (basis state, input) pair, then registers the
// resulting successor as a frontier state.
func (l *learner) makeBasisComplete() error {
	for _, b := range l.basisOrder {
		for _, in := range l.alphabet {
			if _, ok := b.Successor(in); ok {
				continue
			}
			if err := l.exploreFrontier(b, in); err != nil {
				return err
			}
			newFrontier, ok := b.Successor(in)
			if !ok {
				return ErrMissingObservation
			}
			candidates := arraylist.New()
			for _, other := range l.basisOrder {
				if !apartness.StatesAreApart(other, newFrontier) {
					candidates.Add(other)
				}
			}
			l.addFrontier(newFrontier, candidates)
		}
	}
	return nil
}

// makeFrontiersIdentified runs identifyFrontier over every currently
// tracked frontier state.
func (l *learner) makeFrontiersIdentified() error {
	for _, f := range l.frontierOrder {
		if err := l.identifyFrontier(f); err != nil {
			return err
		}
	}
	return nil
}

func (l *learner) addFrontier(n *tree.Node, candidates *arraylist.List) {
	if _, ok := l.frontier[n]; ok {
		return
	}
	l.frontier[n] = candidates
	l.frontierOrder = append(l.frontierOrder, n)
}

func (l *learner) removeFrontier(n *tree.Node) {
	delete(l.frontier, n)
	for i, f := range l.frontierOrder {
		if f == n {
			l.frontierOrder = append(l.frontierOrder[:i], l.frontierOrder[i+1:]...)
			break
		}
	}
}
