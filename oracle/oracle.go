package oracle

import (
	"strings"

	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/sul"
)

// Oracle is a W-method equivalence oracle: it generates a finite test
// suite from a hypothesis's transition cover, middle sequences up to
// length k, and characterization set, and replays it against the SUL
// looking for the first point of disagreement.
type Oracle struct {
	sul    sul.SUL
	opts   Options
	cache  map[string]struct{}
	resets int
	steps  int
}

// New creates an Oracle over alphabet with extra-states bound k,
// driving s. Panics (via DefaultOptions) on an empty alphabet or
// negative k.
func New(alphabet []string, k int, s sul.SUL, opts ...Option) *Oracle {
	o := DefaultOptions(alphabet, k)
	for _, opt := range opts {
		opt(&o)
	}
	return &Oracle{sul: s, opts: o, cache: map[string]struct{}{}}
}

// Resets returns the number of SUL sessions the oracle has opened so
// far.
func (o *Oracle) Resets() int { return o.resets }

// Steps returns the number of SUL steps the oracle has issued so far.
func (o *Oracle) Steps() int { return o.steps }

// FindCEX searches for an input sequence on which hyp and the SUL
// disagree. It returns (cex, true, nil) on the first divergence
// found, (nil, false, nil) if the entire test suite is exhausted
// without one, or a non-nil error if the characterization set cannot
// be computed (ErrNonCanonicalHypothesis).
func (o *Oracle) FindCEX(hyp *hypothesis.Mealy) ([]string, bool, error) {
	charSet, err := characterizationSet(hyp, o.opts.alphabet)
	if err != nil {
		return nil, false, err
	}

	paths := shortestPaths(hyp, o.opts.alphabet)
	var transitionCover [][]string
	for _, s := range hyp.SortedStates() {
		for _, in := range o.opts.alphabet {
			transitionCover = append(transitionCover, append(append([]string{}, paths[s]...), in))
		}
	}
	middles := allSequencesUpTo(o.opts.alphabet, o.opts.k)

	suite := make([][]string, 0, len(transitionCover)*len(middles)*len(charSet))
	for _, tc := range transitionCover {
		for _, mid := range middles {
			for _, cs := range charSet {
				seq := make([]string, 0, len(tc)+len(mid)+len(cs))
				seq = append(seq, tc...)
				seq = append(seq, mid...)
				seq = append(seq, cs...)
				suite = append(suite, seq)
			}
		}
	}
	o.opts.rng.Shuffle(len(suite), func(i, j int) { suite[i], suite[j] = suite[j], suite[i] })

	for _, seq := range suite {
		key := strings.Join(seq, "\x1f")
		if _, done := o.cache[key]; done {
			continue
		}

		o.sul.Pre()
		o.resets++
		cur := hyp.Init
		outputs := make([]string, 0, len(seq))
		diverged := -1
		for i, in := range seq {
			hypOut, hypNext, ok := hyp.Step(cur, in)
			if !ok {
				diverged = i
				break
			}
			sulOut, err := o.sul.Step(in)
			if err != nil {
				diverged = i
				break
			}
			o.steps++
			outputs = append(outputs, sulOut)
			if hypOut != sulOut {
				diverged = i
				break
			}
			cur = hypNext
		}
		o.sul.Post()

		if diverged >= 0 {
			return seq[:diverged+1], true, nil
		}

		if o.opts.addToTree {
			_ = o.opts.tree.Insert(seq, outputs)
		}
		o.cache[key] = struct{}{}
	}
	return nil, false, nil
}

// allSequencesUpTo returns every sequence over alphabet of length
// 0..k inclusive, shortest first.
func allSequencesUpTo(alphabet []string, k int) [][]string {
	seqs := [][]string{{}}
	frontier := [][]string{{}}
	for length := 1; length <= k; length++ {
		var next [][]string
		for _, prefix := range frontier {
			for _, a := range alphabet {
				s := append(append([]string{}, prefix...), a)
				next = append(next, s)
				seqs = append(seqs, s)
			}
		}
		frontier = next
	}
	return seqs
}
