package lsharp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/lsharp"
	"github.com/katalvlaran/lsharp/oracle"
	"github.com/katalvlaran/lsharp/sul"
)

func TestRunSingleStateIdentity(t *testing.T) {
	alphabet := []string{"a", "b"}
	s := sul.DemoSingleStateIdentity()
	o := oracle.New(alphabet, 2, s, oracle.WithSeed(1))

	hyp, metrics, err := lsharp.Run(alphabet, s, o, lsharp.WithSeed(1))
	require.NoError(t, err)
	assert.Len(t, hyp.States, 1)
	assert.LessOrEqual(t, metrics.SULQueries, 2)
	assert.Equal(t, 1, metrics.LearningRounds)
}

func TestRunTwoStateToggle(t *testing.T) {
	alphabet := []string{"a"}
	s := sul.DemoTwoStateToggle()
	o := oracle.New(alphabet, 2, s, oracle.WithSeed(1))

	hyp, _, err := lsharp.Run(alphabet, s, o, lsharp.WithSeed(1))
	require.NoError(t, err)
	assert.Len(t, hyp.States, 2)

	// The learned machine must agree with the SUL on "a a".
	hypOut, _, ok := hyp.Run([]string{"a", "a"})
	require.True(t, ok)
	sulOut, err := s.Query([]string{"a", "a"})
	require.NoError(t, err)
	assert.Equal(t, sulOut, hypOut)
}

func TestRunThreeStateSeparation(t *testing.T) {
	alphabet := []string{"a", "b"}
	s := sul.DemoThreeStateSeparation()
	o := oracle.New(alphabet, 2, s, oracle.WithSeed(1))

	hyp, _, err := lsharp.Run(alphabet, s, o,
		lsharp.WithExtensionRule(lsharp.SepSeq),
		lsharp.WithSeparationRule(lsharp.SepSeqRule),
		lsharp.WithSeed(1),
	)
	require.NoError(t, err)
	assert.Len(t, hyp.States, 3)
}

func TestRunThreeStateSeparationWithADSRules(t *testing.T) {
	alphabet := []string{"a", "b"}
	s := sul.DemoThreeStateSeparation()
	o := oracle.New(alphabet, 2, s, oracle.WithSeed(1))

	hyp, _, err := lsharp.Run(alphabet, s, o,
		lsharp.WithExtensionRule(lsharp.ADS),
		lsharp.WithSeparationRule(lsharp.ADSRule),
		lsharp.WithSeed(1),
	)
	require.NoError(t, err)
	assert.Len(t, hyp.States, 3)

	// The learned machine must agree with the SUL on "a a b".
	hypOut, _, ok := hyp.Run([]string{"a", "a", "b"})
	require.True(t, ok)
	sulOut, err := s.Query([]string{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, sulOut, hypOut)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	_, _, err := lsharp.Run(nil, sul.DemoSingleStateIdentity(), nil)
	assert.ErrorIs(t, err, lsharp.ErrInvalidInput)
}

func TestRunExceedsMaxLearningRounds(t *testing.T) {
	alphabet := []string{"a"}
	s := sul.DemoTwoStateToggle()
	o := oracle.New(alphabet, 2, s, oracle.WithSeed(1))

	_, _, err := lsharp.Run(alphabet, s, o, lsharp.WithMaxLearningRounds(1))
	assert.ErrorIs(t, err, lsharp.ErrMaxRoundsExceeded)
}

type stubSink struct {
	calls int
	last  lsharp.Metrics
}

func (s *stubSink) Observe(m lsharp.Metrics) {
	s.calls++
	s.last = m
}

// roundMetricsLog records every Metrics snapshot reported across a run,
// one per learning round, so a test can diff query counts between
// rounds instead of only seeing the final tally.
type roundMetricsLog struct {
	snapshots []lsharp.Metrics
}

func (r *roundMetricsLog) Observe(m lsharp.Metrics) {
	r.snapshots = append(r.snapshots, m)
}

// forcedCEXOnceOracle hands back cex on its first FindCEX call, then
// reports equivalence on every call after — enough to drive a single,
// fully-controlled counterexample through the learner.
type forcedCEXOnceOracle struct {
	cex  []string
	used bool
}

func (o *forcedCEXOnceOracle) FindCEX(*hypothesis.Mealy) ([]string, bool, error) {
	if o.used {
		return nil, false, nil
	}
	o.used = true
	return o.cex, true, nil
}

// TestProcessBinarySearchConvergesWithinLogarithmicQueries mirrors spec
// scenario 6: a chain of 17 states (s0..s16) over a single input "a",
// identical in every transition except that s16's self-loop flips
// output to "1". A forced counterexample of 17 "a"s diverges only on
// its last symbol, handing binary-search refinement a length-16
// prefix (spec.md §8 scenario 6) to narrow down.
func TestProcessBinarySearchConvergesWithinLogarithmicQueries(t *testing.T) {
	const chainLen = 16

	m := hypothesis.New("s0")
	for i := 0; i < chainLen; i++ {
		m.SetTransition(fmt.Sprintf("s%d", i), "a", "0", fmt.Sprintf("s%d", i+1))
	}
	m.SetTransition(fmt.Sprintf("s%d", chainLen), "a", "1", fmt.Sprintf("s%d", chainLen))

	s := sul.NewMealySUL(m)

	cex := make([]string, chainLen+1)
	for i := range cex {
		cex[i] = "a"
	}
	eq := &forcedCEXOnceOracle{cex: cex}

	log := &roundMetricsLog{}
	_, _, err := lsharp.Run([]string{"a"}, s, eq,
		lsharp.WithSeed(1),
		lsharp.WithMetricsSink(log),
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(log.snapshots), 2)

	before := log.snapshots[0].SULQueries
	after := log.snapshots[len(log.snapshots)-1].SULQueries

	// spec.md §8 scenario 6 documents a tight bound of ceil(log2(16))+1
	// = 5 SUL queries for this refinement. This assertion leaves a
	// generous margin above that tight bound to absorb bookkeeping
	// queries (e.g. re-closing the tree after the prefix is folded in)
	// that land in the same measurement window, while still ruling out
	// anything resembling a linear scan over the 16-symbol prefix.
	assert.LessOrEqual(t, after-before, 10)
}

func TestRunReportsMetricsToSink(t *testing.T) {
	alphabet := []string{"a", "b"}
	s := sul.DemoSingleStateIdentity()
	o := oracle.New(alphabet, 2, s, oracle.WithSeed(1))
	sink := &stubSink{}

	_, metrics, err := lsharp.Run(alphabet, s, o, lsharp.WithMetricsSink(sink))
	require.NoError(t, err)
	assert.Greater(t, sink.calls, 0)
	assert.Equal(t, metrics, sink.last)
}
