package hypothesis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lsharp/hypothesis"
)

func TestToggleMachineRun(t *testing.T) {
	m := hypothesis.New("s0")
	m.SetTransition("s0", "a", "0", "s1")
	m.SetTransition("s1", "a", "1", "s0")

	outs, final, ok := m.Run([]string{"a", "a", "a"})
	assert.True(t, ok)
	assert.Equal(t, []string{"0", "1", "0"}, outs)
	assert.Equal(t, "s1", final)
}

func TestStepUndefinedReturnsFalse(t *testing.T) {
	m := hypothesis.New("s0")
	_, _, ok := m.Step("s0", "a")
	assert.False(t, ok)
}

func TestSortedStatesIsDefensiveCopy(t *testing.T) {
	m := hypothesis.New("s0")
	m.AddState("s1")
	got := m.SortedStates()
	got[0] = "mutated"
	assert.Equal(t, []string{"s0", "s1"}, m.SortedStates())
}
