package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lsharp/lsharp"
)

// Recorder mirrors the fields of lsharp.Metrics as Prometheus gauges.
// Every field is a gauge rather than a counter: Metrics is always a
// cumulative snapshot, not a per-event delta, so Set is the right
// operation.
type Recorder struct {
	learningRounds prometheus.Gauge
	sulQueries     prometheus.Gauge
	sulSteps       prometheus.Gauge
	oracleResets   prometheus.Gauge
	oracleSteps    prometheus.Gauge
	treeSize       prometheus.Gauge
}

// New creates a Recorder and registers its gauges with reg. Panics
// (via prometheus.MustRegister) if the registry already has gauges
// under the same names.
func New(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		learningRounds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lsharp", Name: "learning_rounds", Help: "Number of hypothesis-construction rounds completed so far.",
		}),
		sulQueries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lsharp", Name: "sul_queries_total", Help: "Number of SUL queries issued so far.",
		}),
		sulSteps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lsharp", Name: "sul_steps_total", Help: "Number of SUL steps issued so far.",
		}),
		oracleResets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lsharp", Name: "oracle_resets_total", Help: "Number of equivalence-oracle SUL sessions opened so far.",
		}),
		oracleSteps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lsharp", Name: "oracle_steps_total", Help: "Number of equivalence-oracle SUL steps issued so far.",
		}),
		treeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lsharp", Name: "tree_size", Help: "Number of nodes currently in the observation tree.",
		}),
	}
	reg.MustRegister(
		r.learningRounds,
		r.sulQueries,
		r.sulSteps,
		r.oracleResets,
		r.oracleSteps,
		r.treeSize,
	)
	return r
}

// Observe implements lsharp.MetricsSink.
func (r *Recorder) Observe(m lsharp.Metrics) {
	r.learningRounds.Set(float64(m.LearningRounds))
	r.sulQueries.Set(float64(m.SULQueries))
	r.sulSteps.Set(float64(m.SULSteps))
	r.oracleResets.Set(float64(m.OracleResets))
	r.oracleSteps.Set(float64(m.OracleSteps))
	r.treeSize.Set(float64(m.FinalTreeSize))
}
