package oracle

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lsharp/tree"
)

// ErrNonCanonicalHypothesis is returned by FindCEX when the
// characterization-set construction cannot distinguish every pair of
// hypothesis states: a non-singleton block has no distinguishing
// input across the given alphabet.
var ErrNonCanonicalHypothesis = errors.New("oracle: non-canonical hypothesis")

// ErrEmptyAlphabet names the empty-alphabet condition; a W-method
// test suite is undefined without input symbols. New does not return
// it: DefaultOptions panics on an empty alphabet instead.
var ErrEmptyAlphabet = errors.New("oracle: empty alphabet")

// Options configures an Oracle. Build one with DefaultOptions and the
// With* functions below rather than constructing it directly.
type Options struct {
	alphabet  []string
	k         int
	rng       *rand.Rand
	tree      *tree.Tree
	addToTree bool
}

// Option mutates an Options in place.
type Option func(*Options)

// DefaultOptions returns the base configuration for alphabet and
// extra-states bound k: a deterministically-seeded shuffle (seed 1)
// and no observation-tree folding.
//
// Panics if alphabet is empty or k is negative: both are programmer
// errors, never a runtime condition.
func DefaultOptions(alphabet []string, k int) Options {
	if len(alphabet) == 0 {
		panic("oracle: DefaultOptions with empty alphabet")
	}
	if k < 0 {
		panic("oracle: DefaultOptions with negative k")
	}
	cp := make([]string, len(alphabet))
	copy(cp, alphabet)
	return Options{
		alphabet: cp,
		k:        k,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// WithSeed replaces the shuffle RNG with a freshly seeded one,
// making the test-suite order reproducible across runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("oracle: WithRand(nil)")
	}
	return func(o *Options) {
		o.rng = r
	}
}

// WithObservationTree enables folding every fully-consistent replayed
// sequence back into t, the same tree the learner is building its
// basis/frontier from. Panics on nil.
func WithObservationTree(t *tree.Tree) Option {
	if t == nil {
		panic("oracle: WithObservationTree(nil)")
	}
	return func(o *Options) {
		o.tree = t
		o.addToTree = true
	}
}
