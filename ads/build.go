package ads

import (
	"sort"

	"github.com/katalvlaran/lsharp/tree"
)

// Build constructs a DecisionTree that adaptively identifies which
// member of candidates a live session is in, by recursively choosing
// an input that splits the current group by recorded output into
// smaller, non-trivial subgroups and recursing on each subgroup's
// next-state set.
//
// Returns ErrEmptyCandidateSet for an empty input, or
// ErrNoDistinguishingInput if some reachable group of size > 1 cannot
// be split further by any input both fully defined across the group
// and actually partitioning it.
func Build(candidates []*tree.Node) (*DecisionTree, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	pairs := make([]candidatePair, len(candidates))
	for i, c := range candidates {
		pairs[i] = candidatePair{orig: c, cur: c}
	}
	root, err := buildNode(pairs)
	if err != nil {
		return nil, err
	}
	return &DecisionTree{root: root}, nil
}

// buildNode recursively builds one level of the decision tree for
// the given (still-undistinguished) candidate pairs.
func buildNode(pairs []candidatePair) (*node, error) {
	if len(pairs) == 1 {
		return &node{isLeaf: true, leaf: pairs[0].orig}, nil
	}

	for _, in := range commonInputs(pairs) {
		groups := splitByOutput(pairs, in)
		if len(groups) < 2 {
			continue // every pair agrees on this input: no partition
		}

		branches := make(map[string]*node, len(groups))
		ok := true
		for out, grp := range groups {
			child, err := childFor(grp, in)
			if err != nil {
				ok = false
				break
			}
			branches[out] = child
		}
		if ok {
			return &node{input: in, branches: branches}, nil
		}
	}
	return nil, ErrNoDistinguishingInput
}

// childFor builds the subtree for one output-group: a leaf directly
// if the group already singles out one candidate, otherwise a
// recursive split over that group's next-state set.
func childFor(grp []candidatePair, in string) (*node, error) {
	if len(grp) == 1 {
		return &node{isLeaf: true, leaf: grp[0].orig}, nil
	}
	next := make([]candidatePair, len(grp))
	for i, p := range grp {
		succ, _ := p.cur.Successor(in)
		next[i] = candidatePair{orig: p.orig, cur: succ}
	}
	return buildNode(next)
}

// commonInputs returns, sorted, the inputs every pair's current node
// has a recorded output for.
func commonInputs(pairs []candidatePair) []string {
	common := pairs[0].cur.DefinedInputs()
	for _, p := range pairs[1:] {
		common = intersect(common, p.cur.DefinedInputs())
	}
	return common
}

func intersect(a, b []string) []string {
	bset := make(map[string]struct{}, len(b))
	for _, x := range b {
		bset[x] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, x := range a {
		if _, ok := bset[x]; ok {
			out = append(out, x)
		}
	}
	sort.Strings(out)
	return out
}

// splitByOutput groups pairs by their current node's recorded output
// for input in.
func splitByOutput(pairs []candidatePair, in string) map[string][]candidatePair {
	groups := make(map[string][]candidatePair)
	for _, p := range pairs {
		out, _ := p.cur.Output(in)
		groups[out] = append(groups[out], p)
	}
	return groups
}
