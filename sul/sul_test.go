package sul_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsharp/sul"
)

func TestMealySULQueryRoundTrip(t *testing.T) {
	s := sul.DemoTwoStateToggle()

	out, err := s.Query([]string{"a", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, out)
	assert.Equal(t, 1, s.Queries())
	assert.Equal(t, 2, s.Steps())
}

func TestMealySULStepWithoutPreFails(t *testing.T) {
	s := sul.DemoSingleStateIdentity()
	_, err := s.Step("a")
	assert.ErrorIs(t, err, sul.ErrNoActiveSession)
}

func TestMealySULRejectsInvalidInput(t *testing.T) {
	s := sul.DemoTwoStateToggle()
	s.Pre()
	defer s.Post()
	_, err := s.Step("z")
	assert.ErrorIs(t, err, sul.ErrInvalidInput)
}

func TestDemoThreeStateSeparationMatchesSpecTrace(t *testing.T) {
	s := sul.DemoThreeStateSeparation()
	out, err := s.Query([]string{"a", "a", "b", "a"})
	require.NoError(t, err)
	// s0 -a/0-> s1 -a/0-> s2 -b/0-> s0 -a/0-> s1
	assert.Equal(t, []string{"0", "0", "0", "0"}, out)
}

func TestMealySULSessionsAreIndependent(t *testing.T) {
	s := sul.DemoTwoStateToggle()
	out1, err := s.Query([]string{"a"})
	require.NoError(t, err)
	out2, err := s.Query([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, out1, out2, "Query always starts from a fresh Pre")
}
