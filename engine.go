package goPassCheck

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/goPassCheck/hibp"
	"github.com/MrEthical07/goPassCheck/strength"
)

// Engine defines a public type used by goPassCheck APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config        Config
	analyzer      *strength.Analyzer
	breachClient  *hibp.Client
	rangeCache    *rangeCache
	lookupLimiter *lookupLimiter
	audit         *auditDispatcher
	metrics       *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// AnalyzeStrength describes the analyzestrength operation and its observable behavior.
//
// AnalyzeStrength may return an error when input validation, dependency calls, or security checks fail.
// AnalyzeStrength does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AnalyzeStrength(password string) (PasswordAnalysis, error) {
	if e == nil || e.analyzer == nil {
		return PasswordAnalysis{}, ErrEngineNotReady
	}
	if password == "" {
		return PasswordAnalysis{}, ErrPasswordEmpty
	}

	return e.analyzer.Analyze(password), nil
}

// LookupBreach describes the lookupbreach operation and its observable behavior.
//
// LookupBreach may return an error when input validation, dependency calls, or security checks fail.
// LookupBreach does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) LookupBreach(ctx context.Context, password string) (BreachResult, error) {
	if e == nil {
		return hibp.UnknownResult(), ErrEngineNotReady
	}
	if password == "" {
		return hibp.UnknownResult(), ErrPasswordEmpty
	}
	if e.breachClient == nil {
		return hibp.UnknownResult(), ErrBreachCheckDisabled
	}
	if ctx == nil {
		ctx = context.Background()
	}

	prefix, suffix := hibp.SplitHash(hibp.HashPassword(password))
	return e.lookupRange(ctx, prefix, suffix)
}

// lookupRange runs limiter, cache, and remote fetch for a single hash prefix.
// The suffix comparison always happens locally; every failure path degrades to
// the unknown result instead of surfacing a transport fault.
func (e *Engine) lookupRange(ctx context.Context, prefix, suffix string) (BreachResult, error) {
	if e.lookupLimiter != nil {
		if err := e.lookupLimiter.Check(ctx, clientIPFromContext(ctx)); err != nil {
			if errors.Is(err, ErrLookupRateLimited) {
				e.metricInc(MetricLookupRateLimited)
				e.metricInc(MetricBreachUnknown)
				return hibp.UnknownResult(), ErrLookupRateLimited
			}
			e.metricInc(MetricBreachUnknown)
			return hibp.UnknownResult(), nil
		}
	}

	body, cached := e.cachedRange(ctx, prefix)
	if !cached {
		start := time.Now()

		fetched, err := e.breachClient.FetchRange(ctx, prefix)
		if e.metrics.LatencyEnabled() {
			e.metrics.Observe(MetricLookupLatency, time.Since(start))
		}
		if err != nil {
			e.metricInc(MetricBreachUnknown)
			return hibp.UnknownResult(), nil
		}

		body = fetched
		if e.rangeCache != nil {
			// Cache write failure never fails the lookup.
			_ = e.rangeCache.Set(ctx, prefix, []byte(body))
		}
	}

	if count, ok := hibp.MatchSuffix(hibp.ParseRange(body), suffix); ok {
		e.metricInc(MetricBreachFound)
		return hibp.FoundResult(count), nil
	}

	e.metricInc(MetricBreachNotFound)
	return hibp.NotFoundResult(), nil
}

func (e *Engine) cachedRange(ctx context.Context, prefix string) (string, bool) {
	if e.rangeCache == nil {
		return "", false
	}

	data, err := e.rangeCache.Get(ctx, prefix)
	if err != nil {
		e.metricInc(MetricRangeCacheMiss)
		return "", false
	}

	e.metricInc(MetricRangeCacheHit)
	return string(data), true
}

// CheckPassword describes the checkpassword operation and its observable behavior.
//
// CheckPassword may return an error when input validation, dependency calls, or security checks fail.
// CheckPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) CheckPassword(ctx context.Context, password string) (*CheckResult, error) {
	if e == nil || e.analyzer == nil {
		return nil, ErrEngineNotReady
	}
	if password == "" {
		return nil, ErrPasswordEmpty
	}
	if ctx == nil {
		ctx = context.Background()
	}

	analysis := e.analyzer.Analyze(password)
	if analysis.Blocklisted {
		e.metricInc(MetricBlocklistHit)
	}

	breach := hibp.UnknownResult()
	hashPrefix := ""

	if e.breachClient != nil {
		prefix, suffix := hibp.SplitHash(hibp.HashPassword(password))
		hashPrefix = prefix

		result, err := e.lookupRange(ctx, prefix, suffix)
		if err != nil && !errors.Is(err, ErrLookupRateLimited) {
			return nil, err
		}
		breach = result
	}

	recommendations := Recommend(analysis, breach)

	e.metricInc(MetricCheckCompleted)
	e.emitCheckAudit(ctx, hashPrefix, analysis, breach)

	return &CheckResult{
		Analysis:        analysis,
		Breach:          breach,
		Recommendations: recommendations,
	}, nil
}

func (e *Engine) emitCheckAudit(ctx context.Context, hashPrefix string, analysis PasswordAnalysis, breach BreachResult) {
	if e.audit == nil {
		return
	}

	e.audit.Emit(ctx, AuditEvent{
		Timestamp:  time.Now().UTC(),
		EventType:  "password_check",
		CheckID:    uuid.NewString(),
		HashPrefix: hashPrefix,
		Score:      analysis.Score,
		Label:      analysis.Label.String(),
		Outcome:    breach.Outcome.String(),
		IP:         clientIPFromContext(ctx),
		Success:    true,
	})
}
