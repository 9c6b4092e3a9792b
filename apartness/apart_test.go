package apartness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsharp/apartness"
	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/tree"
)

// TestComputeWitnessDeterminism mirrors spec scenario 4: two tree
// nodes that diverge on "a b" must yield that exact witness.
func TestComputeWitnessDeterminism(t *testing.T) {
	tr := tree.New([]string{"a", "b"})

	// n1 (reached by "a") records (a a, 0 0) and (a b, 0 1); n2
	// (reached by "b") records (a a, 0 0) and (a b, 0 0).
	require.NoError(t, tr.Insert([]string{"a", "a", "a"}, []string{"0", "0", "0"}))
	require.NoError(t, tr.Insert([]string{"a", "a", "b"}, []string{"0", "0", "1"}))
	require.NoError(t, tr.Insert([]string{"b", "a", "a"}, []string{"0", "0", "0"}))
	require.NoError(t, tr.Insert([]string{"b", "a", "b"}, []string{"0", "0", "0"}))

	n1, _, _ := tr.Successor([]string{"a"})
	n2, _, _ := tr.Successor([]string{"b"})

	witness, ok := apartness.ComputeWitness(n1, n2)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, witness)
}

func TestStatesAreApartFalseWhenIndistinguishable(t *testing.T) {
	tr := tree.New([]string{"a"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))
	require.NoError(t, tr.Insert([]string{}, []string{}))

	root := tr.Root()
	assert.False(t, apartness.StatesAreApart(root, root))
}

func TestCacheIsSymmetric(t *testing.T) {
	// Cache operates within one tree's node arena, so build a single
	// tree with two distinguishable subtrees.
	shared := tree.New([]string{"a", "x0", "x1"})
	require.NoError(t, shared.Insert([]string{"x0", "a"}, []string{"s", "0"}))
	require.NoError(t, shared.Insert([]string{"x1", "a"}, []string{"s", "1"}))

	c := apartness.NewCache()
	a, _, _ := shared.Successor([]string{"x0"})
	b, _, _ := shared.Successor([]string{"x1"})

	w1 := c.Apart(a, b)
	w2 := c.Apart(b, a)
	assert.Equal(t, w1, w2)

	wit1, _ := c.Witness(a, b)
	wit2, _ := c.Witness(b, a)
	assert.Equal(t, wit1, wit2)
}

func TestComputeWitnessInTreeAndHypothesisFindsDivergence(t *testing.T) {
	tr := tree.New([]string{"a"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))

	hyp := hypothesis.New("s0")
	hyp.SetTransition("s0", "a", "1", "s0") // disagrees with tree's "0"

	seq, ok := apartness.ComputeWitnessInTreeAndHypothesis(tr, hyp)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, seq)
}

func TestComputeWitnessInTreeAndHypothesisAgreesReturnsAbsent(t *testing.T) {
	tr := tree.New([]string{"a"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))

	hyp := hypothesis.New("s0")
	hyp.SetTransition("s0", "a", "0", "s0")

	_, ok := apartness.ComputeWitnessInTreeAndHypothesis(tr, hyp)
	assert.False(t, ok)
}
