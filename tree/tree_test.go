package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsharp/tree"
)

func TestInsertAndObserveRoundTrip(t *testing.T) {
	tr := tree.New([]string{"a", "b"})

	require.NoError(t, tr.Insert([]string{"a", "b"}, []string{"0", "1"}))

	outs, ok, err := tr.Observe([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1"}, outs)

	_, ok, err = tr.Observe([]string{"a", "a"})
	require.NoError(t, err)
	assert.False(t, ok, "unobserved prefix must report absent")
}

func TestInsertDetectsOutputMismatch(t *testing.T) {
	tr := tree.New([]string{"a"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))
	err := tr.Insert([]string{"a"}, []string{"1"})
	assert.ErrorIs(t, err, tree.ErrOutputMismatch)
}

func TestInsertRejectsLengthMismatch(t *testing.T) {
	tr := tree.New([]string{"a"})
	err := tr.Insert([]string{"a", "a"}, []string{"0"})
	assert.ErrorIs(t, err, tree.ErrLengthMismatch)
}

func TestInsertRejectsUnknownInput(t *testing.T) {
	tr := tree.New([]string{"a"})
	err := tr.Insert([]string{"z"}, []string{"0"})
	assert.ErrorIs(t, err, tree.ErrInvalidInput)
}

func TestSuccessorAndTransferSequenceRoundTrip(t *testing.T) {
	tr := tree.New([]string{"a", "b"})
	require.NoError(t, tr.Insert([]string{"a", "b", "a"}, []string{"0", "1", "0"}))

	n, ok, err := tr.Successor([]string{"a", "b", "a"})
	require.NoError(t, err)
	require.True(t, ok)

	seq, ok := tr.TransferSequence(tr.Root(), n)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "a"}, seq)
}

func TestTransferSequenceAbsentWhenNotDescendant(t *testing.T) {
	tr := tree.New([]string{"a", "b"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))
	require.NoError(t, tr.Insert([]string{"b"}, []string{"0"}))

	a, _, _ := tr.Successor([]string{"a"})
	b, _, _ := tr.Successor([]string{"b"})

	_, ok := tr.TransferSequence(a, b)
	assert.False(t, ok)
}

func TestNodeCompleteAndDefinedInputs(t *testing.T) {
	tr := tree.New([]string{"a", "b"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))

	root := tr.Root()
	assert.False(t, root.Complete([]string{"a", "b"}))
	assert.Equal(t, []string{"a"}, root.DefinedInputs())

	require.NoError(t, tr.Insert([]string{"b"}, []string{"0"}))
	assert.True(t, root.Complete([]string{"a", "b"}))
}

func TestNodeIdentityIsStable(t *testing.T) {
	tr := tree.New([]string{"a"})
	root := tr.Root()
	id := root.ID()
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))
	assert.Equal(t, id, root.ID())
}
