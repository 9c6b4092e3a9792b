// Package telemetry mirrors a learner's lsharp.Metrics as Prometheus
// gauges, for callers who want to scrape or export learning progress
// rather than just inspect the final returned struct.
//
// Recorder implements lsharp.MetricsSink; install one with
// lsharp.WithMetricsSink(telemetry.New(registry)).
package telemetry
