package ads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsharp/ads"
	"github.com/katalvlaran/lsharp/tree"
)

func TestBuildSingletonNeedsNoQuery(t *testing.T) {
	tr := tree.New([]string{"a"})
	require.NoError(t, tr.Insert([]string{"a"}, []string{"0"}))
	root := tr.Root()

	dt, err := ads.Build([]*tree.Node{root})
	require.NoError(t, err)

	cur := ads.NewCursor(dt)
	_, ok := cur.Start()
	assert.False(t, ok)

	resolved, ok := cur.Resolved()
	require.True(t, ok)
	assert.Equal(t, root, resolved)
}

func TestBuildAndDriveDistinguishesThreeCandidates(t *testing.T) {
	tr := tree.New([]string{"a", "b", "x0", "x1", "x2"})
	// c0 is immediately distinguished by the first probe "a" (output
	// "0"). c1 and c2 both answer "1" on "a" and need a second probe
	// "b", read from each one's own "a"-successor, to separate.
	require.NoError(t, tr.Insert([]string{"x0", "a"}, []string{"s", "0"}))
	require.NoError(t, tr.Insert([]string{"x1", "a", "b"}, []string{"s", "1", "0"}))
	require.NoError(t, tr.Insert([]string{"x2", "a", "b"}, []string{"s", "1", "1"}))

	c0, _, _ := tr.Successor([]string{"x0"})
	c1, _, _ := tr.Successor([]string{"x1"})
	c2, _, _ := tr.Successor([]string{"x2"})

	dt, err := ads.Build([]*tree.Node{c0, c1, c2})
	require.NoError(t, err)

	// Drive as if the live state were c1: first probe "a" -> "1",
	// second probe "b" -> "0", should resolve to c1.
	cur := ads.NewCursor(dt)
	in, ok := cur.Start()
	require.True(t, ok)
	assert.Equal(t, "a", in)

	in, ok = cur.NextInput("1")
	require.True(t, ok)
	assert.Equal(t, "b", in)

	_, ok = cur.NextInput("0")
	assert.False(t, ok)

	resolved, ok := cur.Resolved()
	require.True(t, ok)
	assert.Equal(t, c1, resolved)
}

func TestBuildFailsWithoutDistinguishingInput(t *testing.T) {
	tr := tree.New([]string{"a", "x0", "x1"})
	// Both candidates agree on the only recorded input forever.
	require.NoError(t, tr.Insert([]string{"x0", "a"}, []string{"s", "0"}))
	require.NoError(t, tr.Insert([]string{"x1", "a"}, []string{"s", "0"}))

	c0, _, _ := tr.Successor([]string{"x0"})
	c1, _, _ := tr.Successor([]string{"x1"})

	_, err := ads.Build([]*tree.Node{c0, c1})
	assert.ErrorIs(t, err, ads.ErrNoDistinguishingInput)
}

func TestBuildRejectsEmptySet(t *testing.T) {
	_, err := ads.Build(nil)
	assert.ErrorIs(t, err, ads.ErrEmptyCandidateSet)
}
