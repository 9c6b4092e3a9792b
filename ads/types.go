package ads

import (
	"errors"

	"github.com/katalvlaran/lsharp/tree"
)

// ErrNoDistinguishingInput indicates that, at some point while
// building the decision tree, no remaining input separates the
// current candidate group by recorded output — Build fails and the
// caller should fall back to pairwise (SepSeq) separation instead.
var ErrNoDistinguishingInput = errors.New("ads: no distinguishing input for candidate set")

// ErrEmptyCandidateSet indicates Build was called with zero
// candidates.
var ErrEmptyCandidateSet = errors.New("ads: candidate set is empty")

// node is one vertex of the decision tree: either a leaf identifying
// a specific candidate, or an internal node naming the input to send
// next and, per observed output, which child to descend into.
type node struct {
	isLeaf   bool
	leaf     *tree.Node
	input    string
	branches map[string]*node
}

// DecisionTree is a built Adaptive Distinguishing Sequence, ready to
// be driven by one or more independent Cursors.
type DecisionTree struct {
	root *node
}

// candidatePair tracks, during construction, the original top-level
// candidate a partial path is still consistent with (orig) alongside
// the tree position that candidate's recorded behavior has reached
// so far (cur).
type candidatePair struct {
	orig, cur *tree.Node
}
