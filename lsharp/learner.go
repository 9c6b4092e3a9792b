package lsharp

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/lsharp/apartness"
	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/sul"
	"github.com/katalvlaran/lsharp/tree"
)

// EqOracle is the equivalence-oracle contract the learner drives: it
// searches for an input sequence on which a hypothesis and the SUL
// disagree. Package oracle's *Oracle satisfies this interface.
type EqOracle interface {
	FindCEX(hyp *hypothesis.Mealy) ([]string, bool, error)
}

// oracleCounters is an optional interface an EqOracle may implement to
// expose reset/step counters for Metrics; package oracle's *Oracle
// does.
type oracleCounters interface {
	Resets() int
	Steps() int
}

// learner holds all state for one run of the L# algorithm: the
// observation tree, the basis and frontier, and the caches that make
// repeated apartness/witness queries cheap. It is not safe for
// concurrent use and is never exposed outside this package — Run is
// the only entry point.
type learner struct {
	alphabet []string
	sul      sul.SUL
	oracle   EqOracle
	cfg      Config

	tree *tree.Tree

	basis      map[*tree.Node]struct{}
	basisOrder []*tree.Node

	frontier      map[*tree.Node]*arraylist.List
	frontierOrder []*tree.Node

	witnessCache *apartness.Cache

	basisToState map[*tree.Node]string
	stateToBasis map[string]*tree.Node

	metrics Metrics
}

func newLearner(alphabet []string, s sul.SUL, eq EqOracle, cfg Config) *learner {
	t := tree.New(alphabet)
	root := t.Root()
	l := &learner{
		alphabet:     alphabet,
		sul:          s,
		oracle:       eq,
		cfg:          cfg,
		tree:         t,
		basis:        map[*tree.Node]struct{}{root: {}},
		basisOrder:   []*tree.Node{root},
		frontier:     map[*tree.Node]*arraylist.List{},
		witnessCache: apartness.NewCache(),
	}
	return l
}

// Run executes the L# algorithm against sul using eq as the
// equivalence oracle, returning the accepted hypothesis and the final
// metrics, or an error (including ErrMaxRoundsExceeded or a cancelled
// context).
func Run(alphabet []string, s sul.SUL, eq EqOracle, opts ...Option) (*hypothesis.Mealy, Metrics, error) {
	if len(alphabet) == 0 || s == nil || eq == nil {
		return nil, Metrics{}, ErrInvalidInput
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := newLearner(alphabet, s, eq, cfg)
	return l.run()
}

func (l *learner) run() (*hypothesis.Mealy, Metrics, error) {
	l.sul.Post()
	l.sul.Pre()

	rounds := 0
	for {
		if err := l.cfg.ctx.Err(); err != nil {
			return nil, l.metrics, err
		}
		if l.cfg.maxRounds > 0 && rounds == l.cfg.maxRounds {
			return nil, l.metrics, ErrMaxRoundsExceeded
		}
		rounds++
		l.metrics.LearningRounds = rounds

		hyp, err := l.buildHypothesis()
		if err != nil {
			return nil, l.metrics, err
		}
		l.metrics.FinalTreeSize = l.tree.Size()

		cex, ok, err := l.oracle.FindCEX(hyp)
		if oc, isOC := l.oracle.(oracleCounters); isOC {
			l.metrics.OracleResets = oc.Resets()
			l.metrics.OracleSteps = oc.Steps()
		}
		l.reportMetrics()
		if err != nil {
			return nil, l.metrics, err
		}
		if !ok {
			return hyp, l.metrics, nil
		}

		cexOutputs, err := l.sul.Query(cex)
		if err != nil {
			return nil, l.metrics, err
		}
		l.metrics.SULQueries++
		l.metrics.SULSteps += len(cex)

		if err := l.processCounterExample(hyp, cex, cexOutputs); err != nil {
			return nil, l.metrics, err
		}
	}
}

func (l *learner) reportMetrics() {
	if l.cfg.sink != nil {
		l.cfg.sink.Observe(l.metrics)
	}
}

// buildHypothesis repeatedly makes the tree adequate and constructs a
// hypothesis from the basis until the tree and the hypothesis fully
// agree, folding any internal (tree-vs-hypothesis) counterexample
// back in via the same binary-search refinement used for real
// counterexamples.
func (l *learner) buildHypothesis() (*hypothesis.Mealy, error) {
	for {
		if err := l.makeTreeAdequate(); err != nil {
			return nil, err
		}
		hyp, err := l.constructHypothesis()
		if err != nil {
			return nil, err
		}

		cex, ok := apartness.ComputeWitnessInTreeAndHypothesis(l.tree, hyp)
		if !ok {
			return hyp, nil
		}

		cexOutputs, gotCex, err := l.tree.Observe(cex)
		if err != nil {
			return nil, err
		}
		if !gotCex {
			return nil, ErrMissingObservation
		}
		if err := l.processCounterExample(hyp, cex, cexOutputs); err != nil {
			return nil, err
		}
	}
}

// query issues inputs against the SUL as one logical query, counts it
// in Metrics, and folds the response into the tree.
func (l *learner) query(inputs []string) error {
	outputs, err := l.sul.Query(inputs)
	if err != nil {
		return err
	}
	l.metrics.SULQueries++
	l.metrics.SULSteps += len(inputs)
	return l.tree.Insert(inputs, outputs)
}

// getOrComputeWitness returns a witness between two basis states,
// consulting/populating the learner's witness cache.
func (l *learner) getOrComputeWitness(a, b *tree.Node) ([]string, bool) {
	return l.witnessCache.Witness(a, b)
}
