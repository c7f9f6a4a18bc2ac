package goPassCheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MrEthical07/goPassCheck/hibp"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// rangeBody builds a valid range response containing the password's own
// suffix plus unrelated candidates.
func rangeBody(password string, count string) string {
	_, suffix := hibp.SplitHash(hibp.HashPassword(password))
	return strings.Join([]string{
		"0018A45C4D1DEF81644B54AB7F969B88D65:1",
		suffix + ":" + count,
		"011053FD0102E94D6AE2F8B83D76FAF94F6:5",
	}, "\r\n")
}

func newRangeServer(t *testing.T, body string, requests *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestCheckPasswordComposesAnalysisBreachAndRecommendations(t *testing.T) {
	server := newRangeServer(t, rangeBody("password", "3303003"), nil)

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL
	cfg.Metrics.Enabled = true

	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	result, err := engine.CheckPassword(context.Background(), "password")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}

	if result.Analysis.Score != 0 {
		t.Fatalf("expected blocklisted score 0, got %d", result.Analysis.Score)
	}
	if result.Analysis.Label != StrengthWeak {
		t.Fatalf("expected Weak label, got %v", result.Analysis.Label)
	}
	if !result.Analysis.Blocklisted {
		t.Fatal("expected blocklisted analysis")
	}

	if result.Breach.Outcome != BreachFound || !result.Breach.Found {
		t.Fatalf("expected found breach outcome, got %+v", result.Breach)
	}
	if result.Breach.Count != 3303003 {
		t.Fatalf("expected count 3303003, got %d", result.Breach.Count)
	}

	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	if !strings.Contains(result.Recommendations[0], "URGENT") {
		t.Fatalf("expected urgent breach warning first, got %q", result.Recommendations[0])
	}

	snapshot := engine.MetricsSnapshot()
	if snapshot.Counters[MetricCheckCompleted] != 1 {
		t.Fatalf("expected 1 completed check, got %d", snapshot.Counters[MetricCheckCompleted])
	}
	if snapshot.Counters[MetricBlocklistHit] != 1 {
		t.Fatalf("expected 1 blocklist hit, got %d", snapshot.Counters[MetricBlocklistHit])
	}
	if snapshot.Counters[MetricBreachFound] != 1 {
		t.Fatalf("expected 1 breach found, got %d", snapshot.Counters[MetricBreachFound])
	}
}

func TestCheckPasswordNotFoundInCorpus(t *testing.T) {
	server := newRangeServer(t, rangeBody("password", "42"), nil)

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL

	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	result, err := engine.CheckPassword(context.Background(), "Tr0ub4dor&3XQ!")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}

	if result.Breach.Outcome != BreachNotFound || result.Breach.Found {
		t.Fatalf("expected not-found outcome, got %+v", result.Breach)
	}
	if result.Breach.Count != 0 {
		t.Fatalf("expected count 0, got %d", result.Breach.Count)
	}
	if result.Analysis.Score != 8 || result.Analysis.Label != StrengthExcellent {
		t.Fatalf("expected 8/Excellent, got %d/%v", result.Analysis.Score, result.Analysis.Label)
	}
}

func TestCheckPasswordEmpty(t *testing.T) {
	engine, err := New().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.CheckPassword(context.Background(), ""); !errors.Is(err, ErrPasswordEmpty) {
		t.Fatalf("expected ErrPasswordEmpty, got %v", err)
	}
}

func TestCheckPasswordBreachDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Breach.Enabled = false

	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	result, err := engine.CheckPassword(context.Background(), "Ab1!xyzw")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}

	if result.Breach.Outcome != BreachUnknown {
		t.Fatalf("expected unknown outcome, got %v", result.Breach.Outcome)
	}
	if result.Breach.Count != hibp.UnknownCount {
		t.Fatalf("expected -1 sentinel, got %d", result.Breach.Count)
	}
}

func TestCheckPasswordTransportFailureDegradesToUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL
	cfg.Metrics.Enabled = true

	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	result, err := engine.CheckPassword(context.Background(), "Ab1!xyzw")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}

	if result.Breach.Outcome != BreachUnknown || result.Breach.Count != -1 {
		t.Fatalf("expected unknown result, got %+v", result.Breach)
	}
	if got := engine.MetricsSnapshot().Counters[MetricBreachUnknown]; got != 1 {
		t.Fatalf("expected 1 unknown lookup, got %d", got)
	}
}

func TestRangeCacheAvoidsSecondFetch(t *testing.T) {
	var requests atomic.Int64
	server := newRangeServer(t, rangeBody("password", "7"), &requests)

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL
	cfg.Cache.Enabled = true
	cfg.Metrics.Enabled = true

	engine, err := New().WithConfig(cfg).WithRedis(newTestRedis(t)).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	for i := 0; i < 2; i++ {
		result, err := engine.CheckPassword(context.Background(), "password")
		if err != nil {
			t.Fatalf("CheckPassword %d failed: %v", i, err)
		}
		if result.Breach.Count != 7 {
			t.Fatalf("CheckPassword %d: expected count 7, got %d", i, result.Breach.Count)
		}
	}

	if got := requests.Load(); got != 1 {
		t.Fatalf("expected exactly 1 remote fetch, got %d", got)
	}

	snapshot := engine.MetricsSnapshot()
	if snapshot.Counters[MetricRangeCacheMiss] != 1 {
		t.Fatalf("expected 1 cache miss, got %d", snapshot.Counters[MetricRangeCacheMiss])
	}
	if snapshot.Counters[MetricRangeCacheHit] != 1 {
		t.Fatalf("expected 1 cache hit, got %d", snapshot.Counters[MetricRangeCacheHit])
	}
}

func TestLookupThrottleDegradesToUnknown(t *testing.T) {
	server := newRangeServer(t, rangeBody("password", "7"), nil)

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL
	cfg.Security.EnableLookupThrottle = true
	cfg.Security.MaxLookupsPerWindow = 1
	cfg.Security.LookupWindow = time.Minute
	cfg.Metrics.Enabled = true

	engine, err := New().WithConfig(cfg).WithRedis(newTestRedis(t)).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	ctx := WithClientIP(context.Background(), "10.0.0.1")

	first, err := engine.CheckPassword(ctx, "password")
	if err != nil {
		t.Fatalf("first CheckPassword failed: %v", err)
	}
	if first.Breach.Outcome != BreachFound {
		t.Fatalf("expected first lookup to reach the corpus, got %v", first.Breach.Outcome)
	}

	second, err := engine.CheckPassword(ctx, "password")
	if err != nil {
		t.Fatalf("second CheckPassword failed: %v", err)
	}
	if second.Breach.Outcome != BreachUnknown || second.Breach.Count != -1 {
		t.Fatalf("expected throttled lookup to degrade to unknown, got %+v", second.Breach)
	}

	if got := engine.MetricsSnapshot().Counters[MetricLookupRateLimited]; got != 1 {
		t.Fatalf("expected 1 rate limited lookup, got %d", got)
	}
}

func TestLookupBreachRateLimitedError(t *testing.T) {
	server := newRangeServer(t, rangeBody("password", "7"), nil)

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL
	cfg.Security.EnableLookupThrottle = true
	cfg.Security.MaxLookupsPerWindow = 1
	cfg.Security.LookupWindow = time.Minute

	engine, err := New().WithConfig(cfg).WithRedis(newTestRedis(t)).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	ctx := WithClientIP(context.Background(), "10.0.0.2")

	if _, err := engine.LookupBreach(ctx, "password"); err != nil {
		t.Fatalf("first LookupBreach failed: %v", err)
	}

	result, err := engine.LookupBreach(ctx, "password")
	if !errors.Is(err, ErrLookupRateLimited) {
		t.Fatalf("expected ErrLookupRateLimited, got %v", err)
	}
	if result.Outcome != BreachUnknown {
		t.Fatalf("expected unknown result alongside the error, got %v", result.Outcome)
	}
}

func TestAuditEventCarriesPrefixOnly(t *testing.T) {
	server := newRangeServer(t, rangeBody("password", "7"), nil)

	cfg := DefaultConfig()
	cfg.Breach.BaseURL = server.URL
	cfg.Audit.Enabled = true

	sink := NewChannelSink(8)

	engine, err := New().WithConfig(cfg).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	ctx := WithClientIP(context.Background(), "192.0.2.1")
	if _, err := engine.CheckPassword(ctx, "password"); err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}

	select {
	case event := <-sink.Events():
		if event.EventType != "password_check" {
			t.Fatalf("unexpected event type %q", event.EventType)
		}
		if event.CheckID == "" {
			t.Fatal("expected a check ID")
		}
		if len(event.HashPrefix) != hibp.PrefixLength {
			t.Fatalf("expected 5-character hash prefix, got %q", event.HashPrefix)
		}
		if strings.Contains(event.HashPrefix, "password") {
			t.Fatal("audit event must never carry the password")
		}
		if event.Outcome != "found" {
			t.Fatalf("expected found outcome, got %q", event.Outcome)
		}
		if event.IP != "192.0.2.1" {
			t.Fatalf("expected client IP in event, got %q", event.IP)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit event")
	}
}

func TestAnalyzeStrengthValidation(t *testing.T) {
	engine, err := New().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.AnalyzeStrength(""); !errors.Is(err, ErrPasswordEmpty) {
		t.Fatalf("expected ErrPasswordEmpty, got %v", err)
	}

	analysis, err := engine.AnalyzeStrength("Ab1!xyzw")
	if err != nil {
		t.Fatalf("AnalyzeStrength failed: %v", err)
	}
	if analysis.Score != 7 || analysis.Label != StrengthGood {
		t.Fatalf("expected 7/Good, got %d/%v", analysis.Score, analysis.Label)
	}
}

func TestLookupBreachDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Breach.Enabled = false

	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.LookupBreach(context.Background(), "password"); !errors.Is(err, ErrBreachCheckDisabled) {
		t.Fatalf("expected ErrBreachCheckDisabled, got %v", err)
	}
}

func TestExtraBlocklistEntriesZeroScore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Breach.Enabled = false

	engine, err := New().WithConfig(cfg).WithBlocklistEntries([]string{"CompanyName2024"}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	analysis, err := engine.AnalyzeStrength("companyname2024")
	if err != nil {
		t.Fatalf("AnalyzeStrength failed: %v", err)
	}
	if analysis.Score != 0 || !analysis.Blocklisted {
		t.Fatalf("expected blocklisted zero score, got %d", analysis.Score)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Breach.Enabled = false

	builder := New().WithConfig(cfg)
	if _, err := builder.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := builder.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}

func TestBuildRequiresRedisForCacheAndThrottle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = true
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected Build to fail without redis for cache")
	}

	cfg = DefaultConfig()
	cfg.Security.EnableLookupThrottle = true
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected Build to fail without redis for throttle")
	}
}
