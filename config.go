package goPassCheck

import (
	"errors"
	"strings"
	"time"

	"github.com/MrEthical07/goPassCheck/hibp"
)

// Config defines a public type used by goPassCheck APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Strength StrengthConfig
	Breach   BreachConfig
	Cache    CacheConfig
	Security SecurityConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
STRENGTH CONFIG
====================================
*/

// StrengthConfig defines a public type used by goPassCheck APIs.
//
// StrengthConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StrengthConfig struct {
	// ExtraBlocklist entries are merged into the built-in weak password set.
	// Scoring point values and label thresholds are fixed contract and are
	// deliberately not configurable.
	ExtraBlocklist []string
}

/*
====================================
BREACH CONFIG
====================================
*/

// BreachConfig defines a public type used by goPassCheck APIs.
//
// BreachConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type BreachConfig struct {
	Enabled    bool
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	AddPadding bool
}

/*
====================================
CACHE CONFIG
====================================
*/

// CacheConfig defines a public type used by goPassCheck APIs.
//
// CacheConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CacheConfig struct {
	Enabled     bool
	RedisPrefix string
	TTL         time.Duration
}

/*
====================================
SECURITY CONFIG
====================================
*/

// SecurityConfig defines a public type used by goPassCheck APIs.
//
// SecurityConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SecurityConfig struct {
	EnableLookupThrottle bool
	MaxLookupsPerWindow  int
	LookupWindow         time.Duration
}

/*
====================================
AUDIT + METRICS CONFIG
====================================
*/

// AuditConfig defines a public type used by goPassCheck APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goPassCheck APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the configuration used when [Builder.WithConfig] is
// not called: breach lookups enabled against the public endpoint with the
// reference 5-second timeout, cache, throttle, audit, and metrics disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Strength: StrengthConfig{},
		Breach: BreachConfig{
			Enabled:    true,
			BaseURL:    hibp.DefaultBaseURL,
			Timeout:    hibp.DefaultTimeout,
			UserAgent:  "goPassCheck",
			AddPadding: false,
		},
		Cache: CacheConfig{
			Enabled:     false,
			RedisPrefix: "pcr",
			TTL:         30 * time.Minute,
		},
		Security: SecurityConfig{
			EnableLookupThrottle: false,
			MaxLookupsPerWindow:  30,
			LookupWindow:         time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Strength.ExtraBlocklist = cloneStrings(cfg.Strength.ExtraBlocklist)
	return out
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Breach
	if c.Breach.Enabled {
		if strings.TrimSpace(c.Breach.BaseURL) == "" {
			return errors.New("Breach BaseURL is required when breach checks are enabled")
		}
		if c.Breach.Timeout <= 0 {
			return errors.New("Breach Timeout must be > 0")
		}
	}

	// Cache
	if c.Cache.Enabled {
		if !c.Breach.Enabled {
			return errors.New("Cache requires breach checks to be enabled")
		}
		if c.Cache.RedisPrefix == "" {
			return errors.New("Cache RedisPrefix is required when cache is enabled")
		}
		if c.Cache.TTL <= 0 {
			return errors.New("Cache TTL must be > 0")
		}
	}

	// Security
	if c.Security.EnableLookupThrottle {
		if !c.Breach.Enabled {
			return errors.New("LookupThrottle requires breach checks to be enabled")
		}
		if c.Security.MaxLookupsPerWindow <= 0 {
			return errors.New("MaxLookupsPerWindow must be > 0 when lookup throttle is enabled")
		}
		if c.Security.LookupWindow <= 0 {
			return errors.New("LookupWindow must be > 0 when lookup throttle is enabled")
		}
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
