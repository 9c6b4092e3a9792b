package apartness

import (
	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/tree"
)

// frame is one item of the breadth-first joint-traversal worklist:
// a pair of nodes reached by the same input path from the original
// (n1, n2), plus that path itself.
type frame struct {
	a, b *tree.Node
	path []string
}

// ComputeWitness returns the shortest input sequence that drives n1
// and n2 to divergent outputs, breaking ties lexicographically, or
// (nil, false) if no such sequence is observable yet in the tree.
//
// Complexity: O(size of the smaller subtree × alphabet size).
func ComputeWitness(n1, n2 *tree.Node) ([]string, bool) {
	q := arrayqueue.New()
	q.Enqueue(frame{a: n1, b: n2, path: nil})

	for !q.Empty() {
		raw, _ := q.Dequeue()
		f := raw.(frame)

		inputs := sortedIntersect(f.a.DefinedInputs(), f.b.DefinedInputs())
		for _, in := range inputs {
			oa, _ := f.a.Output(in)
			ob, _ := f.b.Output(in)
			if oa != ob {
				witness := append(append([]string{}, f.path...), in)
				return witness, true
			}
		}
		for _, in := range inputs {
			ca, _ := f.a.Successor(in)
			cb, _ := f.b.Successor(in)
			q.Enqueue(frame{a: ca, b: cb, path: append(append([]string{}, f.path...), in)})
		}
	}
	return nil, false
}

// StatesAreApart reports whether a witness exists for (n1, n2).
func StatesAreApart(n1, n2 *tree.Node) bool {
	_, ok := ComputeWitness(n1, n2)
	return ok
}

// Witness returns the cached witness for (n1, n2) if present,
// otherwise computes it via ComputeWitness and caches a positive
// result.
func (c *Cache) Witness(n1, n2 *tree.Node) ([]string, bool) {
	if w, ok := c.get(n1.ID(), n2.ID()); ok {
		return w, true
	}
	w, ok := ComputeWitness(n1, n2)
	if ok {
		c.put(n1.ID(), n2.ID(), w)
	}
	return w, ok
}

// Apart reports apartness of (n1, n2), consulting/populating the
// cache.
func (c *Cache) Apart(n1, n2 *tree.Node) bool {
	_, ok := c.Witness(n1, n2)
	return ok
}

// ComputeWitnessInTreeAndHypothesis walks the observation tree from
// its root in breadth-first, lexicographic order, driving hyp in
// lockstep from its initial state. It returns the first (shortest,
// lexicographically-first) input sequence whose tree-recorded output
// disagrees with what hyp would produce, or (nil, false) if the tree
// and hyp agree on every tree-observed trace.
func ComputeWitnessInTreeAndHypothesis(t *tree.Tree, hyp *hypothesis.Mealy) ([]string, bool) {
	type hframe struct {
		node     *tree.Node
		hypState string
		path     []string
	}

	q := arrayqueue.New()
	q.Enqueue(hframe{node: t.Root(), hypState: hyp.Init, path: nil})

	for !q.Empty() {
		raw, _ := q.Dequeue()
		f := raw.(hframe)

		for _, in := range f.node.DefinedInputs() {
			treeOut, _ := f.node.Output(in)
			hypOut, hypNext, ok := hyp.Step(f.hypState, in)
			path := append(append([]string{}, f.path...), in)
			if !ok || treeOut != hypOut {
				return path, true
			}
			child, _ := f.node.Successor(in)
			q.Enqueue(hframe{node: child, hypState: hypNext, path: path})
		}
	}
	return nil, false
}

// sortedIntersect returns the intersection of two already-sorted,
// duplicate-free string slices, itself sorted.
func sortedIntersect(a, b []string) []string {
	out := make([]string, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
