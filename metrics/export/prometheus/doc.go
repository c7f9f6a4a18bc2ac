// Package prometheus provides Prometheus collectors for goPassCheck metrics.
//
// [NewPrometheusExporter] accepts a [goPassCheck.Engine] and exposes an [http.Handler]
// that renders all goPassCheck counters and histograms in Prometheus text exposition
// format. Counter names are prefixed gopasscheck_*_total; the single histogram is
// gopasscheck_lookup_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
