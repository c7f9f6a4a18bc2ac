package goPassCheck

import (
	"errors"
	"net/http"

	"github.com/MrEthical07/goPassCheck/hibp"
	"github.com/MrEthical07/goPassCheck/strength"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goPassCheck APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  *redis.Client

	httpClient *http.Client
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient may return an error when input validation, dependency calls, or security checks fail.
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithBlocklistEntries describes the withblocklistentries operation and its observable behavior.
//
// WithBlocklistEntries may return an error when input validation, dependency calls, or security checks fail.
// WithBlocklistEntries does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithBlocklistEntries(entries []string) *Builder {
	b.config.Strength.ExtraBlocklist = append(b.config.Strength.ExtraBlocklist, entries...)
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.redis == nil {
		if cfg.Cache.Enabled {
			return nil, errors.New("Cache requires redis client")
		}
		if cfg.Security.EnableLookupThrottle {
			return nil, errors.New("LookupThrottle requires redis client")
		}
	}

	engine := &Engine{
		config:   cfg,
		analyzer: strength.NewAnalyzer(strength.Config{ExtraBlocklist: cfg.Strength.ExtraBlocklist}),
	}

	if cfg.Breach.Enabled {
		client, err := hibp.NewClient(hibp.Config{
			BaseURL:    cfg.Breach.BaseURL,
			Timeout:    cfg.Breach.Timeout,
			UserAgent:  cfg.Breach.UserAgent,
			AddPadding: cfg.Breach.AddPadding,
			HTTPClient: b.httpClient,
		})
		if err != nil {
			return nil, err
		}
		engine.breachClient = client
	}

	if cfg.Cache.Enabled {
		engine.rangeCache = newRangeCache(b.redis, cfg.Cache)
	}
	if cfg.Security.EnableLookupThrottle {
		engine.lookupLimiter = newLookupLimiter(b.redis, cfg.Security)
	}

	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return engine, nil
}
