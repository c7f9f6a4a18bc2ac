package internaldefs

import (
	goPassCheck "github.com/MrEthical07/goPassCheck"
)

// CounterDef defines a public type used by goPassCheck APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goPassCheck.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goPassCheck APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goPassCheck.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the password check engine.
var CounterDefs = []CounterDef{
	{ID: goPassCheck.MetricCheckCompleted, Name: "gopasscheck_check_completed_total", Help: "Completed password checks."},
	{ID: goPassCheck.MetricBlocklistHit, Name: "gopasscheck_blocklist_hit_total", Help: "Passwords rejected by the weak password blocklist."},
	{ID: goPassCheck.MetricBreachFound, Name: "gopasscheck_breach_found_total", Help: "Breach lookups that matched a known breached hash."},
	{ID: goPassCheck.MetricBreachNotFound, Name: "gopasscheck_breach_not_found_total", Help: "Breach lookups confirmed absent from the corpus."},
	{ID: goPassCheck.MetricBreachUnknown, Name: "gopasscheck_breach_unknown_total", Help: "Breach lookups that could not be completed."},
	{ID: goPassCheck.MetricRangeCacheHit, Name: "gopasscheck_range_cache_hit_total", Help: "Hash-range responses served from cache."},
	{ID: goPassCheck.MetricRangeCacheMiss, Name: "gopasscheck_range_cache_miss_total", Help: "Hash-range cache misses."},
	{ID: goPassCheck.MetricLookupRateLimited, Name: "gopasscheck_lookup_rate_limited_total", Help: "Breach lookups denied by the lookup throttle."},
}

// HistogramDefs is an exported constant or variable used by the password check engine.
var HistogramDefs = []HistogramDef{
	{ID: goPassCheck.MetricLookupLatency, Name: "gopasscheck_lookup_latency_seconds", Help: "Breach lookup latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the password check engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the password check engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
