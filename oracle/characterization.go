package oracle

import "github.com/katalvlaran/lsharp/hypothesis"

// shortestPaths returns, for every state of m, the shortest input
// sequence reaching it from m.Init (empty for Init itself), found by a
// single breadth-first sweep over the (complete) transition function.
func shortestPaths(m *hypothesis.Mealy, alphabet []string) map[string][]string {
	paths := map[string][]string{m.Init: {}}
	queue := []string{m.Init}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, in := range alphabet {
			_, next, ok := m.Step(s, in)
			if !ok {
				continue
			}
			if _, seen := paths[next]; seen {
				continue
			}
			p := append(append([]string{}, paths[s]...), in)
			paths[next] = p
			queue = append(queue, next)
		}
	}
	return paths
}

// findDistinguishingSeq returns the shortest input sequence on which
// states s1 and s2 of m produce different output traces, found by a
// breadth-first search over state pairs. Returns (nil, false) if no
// such sequence exists within the reachable pair space (m is
// non-canonical with respect to these two states).
func findDistinguishingSeq(m *hypothesis.Mealy, s1, s2 string, alphabet []string) ([]string, bool) {
	type framePair struct {
		a, b string
		path []string
	}
	visited := map[[2]string]struct{}{{s1, s2}: {}}
	queue := []framePair{{s1, s2, nil}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, in := range alphabet {
			outA, nextA, okA := m.Step(f.a, in)
			outB, nextB, okB := m.Step(f.b, in)
			if !okA || !okB {
				continue
			}
			path := append(append([]string{}, f.path...), in)
			if outA != outB {
				return path, true
			}
			key := [2]string{nextA, nextB}
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, framePair{nextA, nextB, path})
		}
	}
	return nil, false
}

// splitBlocks partitions every block of m's states by the output
// trace each member produces on seq, returning the refined block
// list.
func splitBlocks(m *hypothesis.Mealy, blocks [][]string, seq []string) [][]string {
	out := make([][]string, 0, len(blocks))
	for _, block := range blocks {
		groups := map[string][]string{}
		order := make([]string, 0, len(block))
		for _, s := range block {
			outs, _, _ := m.RunFrom(s, seq)
			key := joinOutputs(outs)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], s)
		}
		for _, key := range order {
			out = append(out, groups[key])
		}
	}
	return out
}

func joinOutputs(outs []string) string {
	s := ""
	for i, o := range outs {
		if i > 0 {
			s += "\x1f"
		}
		s += o
	}
	return s
}

// characterizationSet computes a set of input sequences that pairwise
// distinguishes every state of m, via iterative block refinement: the
// states start as one block; while any block has more than one
// member, a distinguishing sequence for its first two members is
// found, every suffix of it is added to the characterization set, and
// every block is re-split by each new suffix.
//
// Returns ErrNonCanonicalHypothesis if some non-singleton block
// cannot be split further.
func characterizationSet(m *hypothesis.Mealy, alphabet []string) ([][]string, error) {
	if len(m.States) == 1 {
		charSet := make([][]string, len(alphabet))
		for i, a := range alphabet {
			charSet[i] = []string{a}
		}
		return charSet, nil
	}

	blocks := [][]string{append([]string{}, m.SortedStates()...)}
	var charSet [][]string
	seen := map[string]struct{}{}

	for {
		var toSplit []string
		for _, b := range blocks {
			if len(b) > 1 {
				toSplit = b
				break
			}
		}
		if toSplit == nil {
			break
		}

		dist, ok := findDistinguishingSeq(m, toSplit[0], toSplit[1], alphabet)
		if !ok {
			return nil, ErrNonCanonicalHypothesis
		}

		for i := range dist {
			suffix := dist[len(dist)-i-1:]
			key := joinOutputs(suffix)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			charSet = append(charSet, append([]string{}, suffix...))
			blocks = splitBlocks(m, blocks, suffix)
		}
	}
	return charSet, nil
}
