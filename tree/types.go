package tree

import (
	"errors"
	"sort"
)

// Sentinel errors returned by package tree.
var (
	// ErrOutputMismatch indicates that an Insert extended a Node with an
	// input symbol that was already on file with a different output —
	// the SUL appears to be non-deterministic. Fatal.
	ErrOutputMismatch = errors.New("tree: output mismatch on existing edge")

	// ErrLengthMismatch indicates Insert was called with inputs and
	// outputs slices of differing length.
	ErrLengthMismatch = errors.New("tree: inputs and outputs length mismatch")

	// ErrInvalidInput indicates a query contained a symbol outside the
	// tree's alphabet.
	ErrInvalidInput = errors.New("tree: input not in alphabet")
)

// edge bundles an observed output with the child Node it leads to.
type edge struct {
	output string
	child  *Node
}

// Node is one vertex of the observation tree: a point reached by some
// (possibly empty) sequence of inputs from the root.
//
// Node is an arena-owned value; callers never allocate one directly.
// The parent pointer is a non-owning back-reference — the Tree (via
// child pointers) is the sole owner.
type Node struct {
	id            int
	parent        *Node
	inputToParent string
	hasParent     bool
	succ          map[string]edge
}

// ID returns the Node's identity, unique within its Tree (nodes of
// different Trees may share an ID). Identities are stable for the
// lifetime of the Tree: nodes are never deleted or renumbered.
func (n *Node) ID() int { return n.id }

// Parent returns the Node's parent and true, or (nil, false) at the
// root.
func (n *Node) Parent() (*Node, bool) {
	if !n.hasParent {
		return nil, false
	}
	return n.parent, true
}

// InputToParent returns the input symbol labelling the edge from the
// parent to this Node, or ("", false) at the root.
func (n *Node) InputToParent() (string, bool) {
	if !n.hasParent {
		return "", false
	}
	return n.inputToParent, true
}

// Output returns the output observed for input on this Node, or
// ("", false) if input has not yet been observed here.
func (n *Node) Output(input string) (string, bool) {
	e, ok := n.succ[input]
	if !ok {
		return "", false
	}
	return e.output, true
}

// Successor returns the child reached by input, or (nil, false) if
// input has not yet been observed on this Node.
func (n *Node) Successor(input string) (*Node, bool) {
	e, ok := n.succ[input]
	if !ok {
		return nil, false
	}
	return e.child, true
}

// DefinedInputs returns the sorted list of inputs this Node has an
// observed successor for. Sorted order makes downstream traversals
// (apartness, ADS construction) deterministic.
func (n *Node) DefinedInputs() []string {
	out := make([]string, 0, len(n.succ))
	for in := range n.succ {
		out = append(out, in)
	}
	sort.Strings(out)
	return out
}

// Complete reports whether every input of alphabet has a recorded
// output on this Node.
func (n *Node) Complete(alphabet []string) bool {
	for _, a := range alphabet {
		if _, ok := n.succ[a]; !ok {
			return false
		}
	}
	return true
}

// Tree is a prefix tree of input/output observations, rooted at Root.
// It owns every reachable Node and is the only mutator of tree shape.
type Tree struct {
	alphabet    []string
	alphabetSet map[string]struct{}
	root        *Node
	nextID      int
}

// New creates an empty Tree over the given input alphabet, with a
// freshly allocated root Node. alphabet is copied defensively.
func New(alphabet []string) *Tree {
	set := make(map[string]struct{}, len(alphabet))
	cp := make([]string, len(alphabet))
	copy(cp, alphabet)
	for _, a := range alphabet {
		set[a] = struct{}{}
	}
	t := &Tree{alphabet: cp, alphabetSet: set}
	t.root = t.newNode(nil, "")
	return t
}

// Alphabet returns the Tree's input alphabet.
func (t *Tree) Alphabet() []string { return t.alphabet }

// Root returns the Tree's root Node.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of Nodes currently in the Tree (including
// the root).
func (t *Tree) Size() int { return t.nextID }

func (t *Tree) newNode(parent *Node, inputToParent string) *Node {
	n := &Node{
		id:   t.nextID,
		succ: make(map[string]edge),
	}
	t.nextID++
	if parent != nil {
		n.parent = parent
		n.inputToParent = inputToParent
		n.hasParent = true
	}
	return n
}

func (t *Tree) validate(inputs []string) error {
	for _, in := range inputs {
		if _, ok := t.alphabetSet[in]; !ok {
			return ErrInvalidInput
		}
	}
	return nil
}
