package lsharp

import (
	"context"
	"errors"
)

// Sentinel errors returned by package lsharp. All are fatal: the
// learner itself never retries.
var (
	// ErrMalformedBasis indicates hypothesis construction found a
	// frontier mapped to other than exactly one basis candidate, or a
	// successor that maps to no basis state at all. This is a bug in
	// the learner's own bookkeeping, never a user error.
	ErrMalformedBasis = errors.New("lsharp: malformed basis")

	// ErrMissingObservation indicates hypothesis construction needed
	// an output the basis does not yet have on file.
	ErrMissingObservation = errors.New("lsharp: missing observation")

	// ErrMaxRoundsExceeded indicates Run reached the round bound set by
	// WithMaxLearningRounds without producing an accepted hypothesis.
	ErrMaxRoundsExceeded = errors.New("lsharp: max learning rounds exceeded")

	// ErrInvalidInput indicates Run was called with an empty alphabet
	// or a nil SUL/oracle.
	ErrInvalidInput = errors.New("lsharp: invalid input")
)

// ExtensionRule selects how a newly-discovered frontier state's first
// observation is obtained.
type ExtensionRule int

const (
	// Nothing issues access(basis)+input with no suffix at all.
	Nothing ExtensionRule = iota
	// SepSeq appends a witness between two arbitrary basis states
	// (falling back to Nothing behavior once the basis has fewer
	// than two members).
	SepSeq
	// ADS drives an adaptive distinguishing sequence built over the
	// whole current basis.
	ADS
)

func (r ExtensionRule) String() string {
	switch r {
	case Nothing:
		return "Nothing"
	case SepSeq:
		return "SepSeq"
	case ADS:
		return "ADS"
	default:
		return "Unknown"
	}
}

// SeparationRule selects how a frontier state with ≥2 surviving basis
// candidates is identified.
type SeparationRule int

const (
	// SepSeqRule always separates using a two-candidate witness
	// (applied repeatedly; the candidate set shrinks by at least one
	// member each call since one of the two is fully eliminated).
	SepSeqRule SeparationRule = iota
	// ADSRule builds one adaptive distinguishing sequence across all
	// surviving candidates at once.
	ADSRule
)

func (r SeparationRule) String() string {
	switch r {
	case SepSeqRule:
		return "SepSeq"
	case ADSRule:
		return "ADS"
	default:
		return "Unknown"
	}
}

// Metrics is the plain data the learner always returns, regardless of
// whether telemetry wiring is enabled.
type Metrics struct {
	LearningRounds int
	SULQueries     int
	SULSteps       int
	OracleResets   int
	OracleSteps    int
	FinalTreeSize  int
}

// MetricsSink receives a live snapshot of Metrics after every learning
// round. Package telemetry's Recorder implements this to mirror the
// metrics as Prometheus gauges; it is the only extension
// point Run exposes for observability.
type MetricsSink interface {
	Observe(m Metrics)
}

// Config holds the learner's runtime configuration. Build one with
// DefaultConfig and the With* options below.
type Config struct {
	extensionRule   ExtensionRule
	separationRule  SeparationRule
	maxRounds       int
	seed            int64
	sink            MetricsSink
	ctx             context.Context
}

// Option mutates a Config in place.
type Option func(*Config)

// DefaultConfig returns the baseline configuration: extension rule
// Nothing, separation rule SepSeq, unlimited rounds, seed 0, no
// metrics sink, background context.
func DefaultConfig() Config {
	return Config{
		extensionRule:  Nothing,
		separationRule: SepSeqRule,
		maxRounds:      0,
		seed:           0,
		ctx:            context.Background(),
	}
}

// WithExtensionRule sets how new frontier states are first explored.
func WithExtensionRule(r ExtensionRule) Option {
	return func(c *Config) { c.extensionRule = r }
}

// WithSeparationRule sets how ambiguous frontier states are identified.
func WithSeparationRule(r SeparationRule) Option {
	return func(c *Config) { c.separationRule = r }
}

// WithMaxLearningRounds bounds the number of hypothesis-construction
// rounds Run will attempt before returning ErrMaxRoundsExceeded. Zero
// (the default) means unlimited. Panics on a negative bound.
func WithMaxLearningRounds(n int) Option {
	if n < 0 {
		panic("lsharp: WithMaxLearningRounds(n<0)")
	}
	return func(c *Config) { c.maxRounds = n }
}

// WithSeed records seed in the Config. Run does not pass it to the
// equivalence oracle: the oracle's test-suite shuffle uses the seed
// the oracle itself was constructed with (oracle.WithSeed).
func WithSeed(seed int64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithMetricsSink installs a MetricsSink observed after every learning
// round; construct one from package telemetry via telemetry.New to
// mirror metrics as Prometheus gauges. Panics on nil.
func WithMetricsSink(sink MetricsSink) Option {
	if sink == nil {
		panic("lsharp: WithMetricsSink(nil)")
	}
	return func(c *Config) { c.sink = sink }
}

// WithContext installs a context checked at the start of every
// learning round, so a caller can cancel a long run cooperatively
// between rounds. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("lsharp: WithContext(nil)")
	}
	return func(c *Config) { c.ctx = ctx }
}
