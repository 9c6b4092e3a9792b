package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsharp/hypothesis"
	"github.com/katalvlaran/lsharp/lsharp"
	"github.com/katalvlaran/lsharp/oracle"
	"github.com/katalvlaran/lsharp/sul"
	"github.com/katalvlaran/lsharp/telemetry"
)

var (
	learnExtensionRule  string
	learnSeparationRule string
	learnMaxRounds      int
	learnSeed           int64
	learnExtraStates    int
	learnDemo           string
	learnMetrics        bool
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Learn a Mealy machine from a built-in demo SUL",
	RunE:  runLearn,
}

func init() {
	learnCmd.Flags().StringVar(&learnExtensionRule, "extension-rule", "nothing",
		"frontier extension rule: nothing, sepseq, ads")
	learnCmd.Flags().StringVar(&learnSeparationRule, "separation-rule", "sepseq",
		"frontier separation rule: sepseq, ads")
	learnCmd.Flags().IntVar(&learnMaxRounds, "max-rounds", 0,
		"maximum learning rounds, 0 for unlimited")
	learnCmd.Flags().Int64Var(&learnSeed, "seed", 1,
		"deterministic seed for the equivalence oracle's test-suite shuffle")
	learnCmd.Flags().IntVar(&learnExtraStates, "extra-states", 2,
		"extra states k bound for the W-method test suite")
	learnCmd.Flags().StringVar(&learnDemo, "demo", "toggle",
		"demo SUL to learn: identity, toggle, separation")
	learnCmd.Flags().BoolVar(&learnMetrics, "metrics", false,
		"print Prometheus-gathered metrics after the run")

	rootCmd.AddCommand(learnCmd)
}

func demoSUL(name string) (sul.SUL, []string, error) {
	switch name {
	case "identity":
		return sul.DemoSingleStateIdentity(), []string{"a", "b"}, nil
	case "toggle":
		return sul.DemoTwoStateToggle(), []string{"a"}, nil
	case "separation":
		return sul.DemoThreeStateSeparation(), []string{"a", "b"}, nil
	default:
		return nil, nil, fmt.Errorf("lsharpctl: unknown --demo %q (want identity, toggle, or separation)", name)
	}
}

func extensionRule(name string) (lsharp.ExtensionRule, error) {
	switch name {
	case "nothing":
		return lsharp.Nothing, nil
	case "sepseq":
		return lsharp.SepSeq, nil
	case "ads":
		return lsharp.ADS, nil
	default:
		return 0, fmt.Errorf("lsharpctl: unknown --extension-rule %q (want nothing, sepseq, or ads)", name)
	}
}

func separationRule(name string) (lsharp.SeparationRule, error) {
	switch name {
	case "sepseq":
		return lsharp.SepSeqRule, nil
	case "ads":
		return lsharp.ADSRule, nil
	default:
		return 0, fmt.Errorf("lsharpctl: unknown --separation-rule %q (want sepseq or ads)", name)
	}
}

func runLearn(cmd *cobra.Command, args []string) error {
	s, alphabet, err := demoSUL(learnDemo)
	if err != nil {
		return err
	}
	extRule, err := extensionRule(learnExtensionRule)
	if err != nil {
		return err
	}
	sepRule, err := separationRule(learnSeparationRule)
	if err != nil {
		return err
	}

	o := oracle.New(alphabet, learnExtraStates, s, oracle.WithSeed(learnSeed))

	lsharpOpts := []lsharp.Option{
		lsharp.WithExtensionRule(extRule),
		lsharp.WithSeparationRule(sepRule),
		lsharp.WithMaxLearningRounds(learnMaxRounds),
		lsharp.WithSeed(learnSeed),
	}

	var reg *prometheus.Registry
	var rec *telemetry.Recorder
	if learnMetrics {
		reg = prometheus.NewRegistry()
		rec = telemetry.New(reg)
		lsharpOpts = append(lsharpOpts, lsharp.WithMetricsSink(rec))
	}

	hyp, metrics, err := lsharp.Run(alphabet, s, o, lsharpOpts...)
	if err != nil {
		return fmt.Errorf("lsharpctl: learning failed: %w", err)
	}

	printHypothesis(cmd, hyp, alphabet)
	printMetrics(cmd, metrics)
	if learnMetrics {
		printGatheredMetrics(cmd, reg)
	}
	return nil
}

func printHypothesis(cmd *cobra.Command, hyp *hypothesis.Mealy, alphabet []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "learned hypothesis: %d state(s), initial state %s\n", len(hyp.States), hyp.Init)
	for _, state := range hyp.SortedStates() {
		for _, input := range alphabet {
			output, next, ok := hyp.Step(state, input)
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %s --%s/%s--> %s\n", state, input, output, next)
		}
	}
}

func printMetrics(cmd *cobra.Command, m lsharp.Metrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "learning rounds: %d\n", m.LearningRounds)
	fmt.Fprintf(out, "SUL queries:     %d\n", m.SULQueries)
	fmt.Fprintf(out, "SUL steps:       %d\n", m.SULSteps)
	fmt.Fprintf(out, "oracle resets:   %d\n", m.OracleResets)
	fmt.Fprintf(out, "oracle steps:    %d\n", m.OracleSteps)
	fmt.Fprintf(out, "final tree size: %d\n", m.FinalTreeSize)
}

func printGatheredMetrics(cmd *cobra.Command, reg *prometheus.Registry) {
	out := cmd.OutOrStdout()
	families, err := reg.Gather()
	if err != nil {
		fmt.Fprintf(out, "metrics gather failed: %v\n", err)
		return
	}
	for _, fam := range families {
		for _, metric := range fam.Metric {
			fmt.Fprintf(out, "%s %g\n", fam.GetName(), metric.GetGauge().GetValue())
		}
	}
}
