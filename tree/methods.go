package tree

// Insert folds an observation (inputs, outputs) into the tree,
// extending or following edges from the root. Returns ErrLengthMismatch
// if the two slices differ in length, ErrInvalidInput if any input
// symbol is outside the alphabet, or ErrOutputMismatch if an existing
// edge disagrees with the supplied output.
//
// Complexity: O(len(inputs)).
func (t *Tree) Insert(inputs, outputs []string) error {
	if len(inputs) != len(outputs) {
		return ErrLengthMismatch
	}
	if err := t.validate(inputs); err != nil {
		return err
	}

	cur := t.root
	for i, in := range inputs {
		out := outputs[i]
		if e, ok := cur.succ[in]; ok {
			if e.output != out {
				return ErrOutputMismatch
			}
			cur = e.child
			continue
		}
		child := t.newNode(cur, in)
		cur.succ[in] = edge{output: out, child: child}
		cur = child
	}
	return nil
}

// Observe returns the output sequence read off the tree along inputs,
// or (nil, false) if any prefix of inputs is not yet on file.
//
// Complexity: O(len(inputs)).
func (t *Tree) Observe(inputs []string) ([]string, bool, error) {
	if err := t.validate(inputs); err != nil {
		return nil, false, err
	}
	cur := t.root
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		e, ok := cur.succ[in]
		if !ok {
			return nil, false, nil
		}
		out = append(out, e.output)
		cur = e.child
	}
	return out, true, nil
}

// Successor returns the Node reached by following inputs from the
// root, or (nil, false) if the path is not (yet) in the tree.
//
// Complexity: O(len(inputs)).
func (t *Tree) Successor(inputs []string) (*Node, bool, error) {
	if err := t.validate(inputs); err != nil {
		return nil, false, err
	}
	cur := t.root
	for _, in := range inputs {
		e, ok := cur.succ[in]
		if !ok {
			return nil, false, nil
		}
		cur = e.child
	}
	return cur, true, nil
}

// TransferSequence returns the unique sequence of inputs that, read
// from `from`, reaches `to` — reconstructed by following parent
// pointers from `to` upward. Returns (nil, false) if `to` is not in
// the subtree rooted at `from`.
//
// Complexity: O(depth(to)).
func (t *Tree) TransferSequence(from, to *Node) ([]string, bool) {
	var rev []string
	cur := to
	for cur != from {
		parent, ok := cur.Parent()
		if !ok {
			return nil, false
		}
		in, _ := cur.InputToParent()
		rev = append(rev, in)
		cur = parent
	}
	seq := make([]string, len(rev))
	for i, in := range rev {
		seq[len(rev)-1-i] = in
	}
	return seq, true
}

// AccessSequence is a convenience for TransferSequence(t.Root(), n).
func (t *Tree) AccessSequence(n *Node) []string {
	seq, ok := t.TransferSequence(t.root, n)
	if !ok {
		// n is always reachable from root for nodes owned by t; a
		// caller passing a foreign Node is a programmer error.
		panic("tree: node does not belong to this tree")
	}
	return seq
}
