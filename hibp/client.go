package hibp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is an exported constant or variable used by the password check engine.
	DefaultBaseURL = "https://api.pwnedpasswords.com"
	// DefaultTimeout is an exported constant or variable used by the password check engine.
	DefaultTimeout = 5 * time.Second

	// PrefixLength is an exported constant or variable used by the password check engine.
	PrefixLength = 5
	// SuffixLength is an exported constant or variable used by the password check engine.
	SuffixLength = 35

	// UnknownCount is the occurrence-count sentinel reported when a lookup
	// could not be completed. It is never a valid corpus count.
	UnknownCount = -1

	maxResponseBytes = 4 << 20
)

var (
	// ErrBaseURLRequired is an exported constant or variable used by the password check engine.
	ErrBaseURLRequired = errors.New("hibp base URL required")
	// ErrInvalidPrefix is an exported constant or variable used by the password check engine.
	ErrInvalidPrefix = errors.New("range prefix must be 5 uppercase hex characters")

	errRangeStatus = errors.New("range endpoint returned non-200 status")
)

// Outcome defines a public type used by goPassCheck APIs.
//
// Outcome instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Outcome uint8

const (
	// OutcomeUnknown is an exported constant or variable used by the password check engine.
	OutcomeUnknown Outcome = iota
	// OutcomeNotFound is an exported constant or variable used by the password check engine.
	OutcomeNotFound
	// OutcomeFound is an exported constant or variable used by the password check engine.
	OutcomeFound
)

// String describes the string operation and its observable behavior.
//
// String may return an error when input validation, dependency calls, or security checks fail.
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result defines a public type used by goPassCheck APIs.
//
// Result instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Result struct {
	Outcome Outcome
	Found   bool
	Count   int
}

// FoundResult describes the foundresult operation and its observable behavior.
//
// FoundResult may return an error when input validation, dependency calls, or security checks fail.
// FoundResult does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func FoundResult(count int) Result {
	return Result{Outcome: OutcomeFound, Found: true, Count: count}
}

// NotFoundResult describes the notfoundresult operation and its observable behavior.
//
// NotFoundResult may return an error when input validation, dependency calls, or security checks fail.
// NotFoundResult does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NotFoundResult() Result {
	return Result{Outcome: OutcomeNotFound, Found: false, Count: 0}
}

// UnknownResult describes the unknownresult operation and its observable behavior.
//
// UnknownResult may return an error when input validation, dependency calls, or security checks fail.
// UnknownResult does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func UnknownResult() Result {
	return Result{Outcome: OutcomeUnknown, Found: false, Count: UnknownCount}
}

// RangeRecord defines a public type used by goPassCheck APIs.
//
// RangeRecord instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RangeRecord struct {
	Suffix string
	Count  int
}

// Config defines a public type used by goPassCheck APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	AddPadding bool
	HTTPClient *http.Client
}

// Client defines a public type used by goPassCheck APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	baseURL    string
	userAgent  string
	addPadding bool
	httpClient *http.Client
}

// NewClient describes the newclient operation and its observable behavior.
//
// NewClient may return an error when input validation, dependency calls, or security checks fail.
// NewClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		addPadding: cfg.AddPadding,
		httpClient: httpClient,
	}, nil
}

// HashPassword returns the uppercase hexadecimal SHA-1 digest of the
// password's UTF-8 byte encoding: 40 characters, suitable for [SplitHash].
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// SplitHash splits a 40-character digest into the 5-character prefix that is
// transmitted and the 35-character suffix that stays local.
func SplitHash(digest string) (prefix, suffix string) {
	return digest[:PrefixLength], digest[PrefixLength:]
}

// FetchRange issues the range query for a 5-character hash prefix and returns
// the raw response body. Only the prefix is disclosed to the remote service.
func (c *Client) FetchRange(ctx context.Context, prefix string) (string, error) {
	if !validPrefix(prefix) {
		return "", ErrInvalidPrefix
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/range/"+prefix, nil)
	if err != nil {
		return "", err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.addPadding {
		req.Header.Set("Add-Padding", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", errRangeStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// ParseRange parses a newline-separated range response body. Records that do
// not match the <35-hex-suffix>:<decimal-count> form are skipped rather than
// failing the whole lookup.
func ParseRange(body string) []RangeRecord {
	lines := strings.Split(body, "\n")
	records := make([]RangeRecord, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		suffix, countText, ok := strings.Cut(line, ":")
		if !ok || len(suffix) != SuffixLength || !isHex(suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil || count < 0 {
			continue
		}

		records = append(records, RangeRecord{Suffix: strings.ToUpper(suffix), Count: count})
	}

	return records
}

// MatchSuffix scans candidate records for an exact suffix match and returns
// the record's count. Padding records carry a zero count and therefore never
// report a breached password as found.
func MatchSuffix(records []RangeRecord, suffix string) (int, bool) {
	for _, record := range records {
		if record.Suffix == suffix && record.Count > 0 {
			return record.Count, true
		}
	}
	return 0, false
}

// Check hashes the password, performs the range query, and matches the local
// suffix against the returned candidates. Transport failures and malformed
// responses degrade to [UnknownResult]; Check never returns an error.
func (c *Client) Check(ctx context.Context, password string) Result {
	prefix, suffix := SplitHash(HashPassword(password))

	body, err := c.FetchRange(ctx, prefix)
	if err != nil {
		return UnknownResult()
	}

	if count, ok := MatchSuffix(ParseRange(body), suffix); ok {
		return FoundResult(count)
	}
	return NotFoundResult()
}

func validPrefix(prefix string) bool {
	return len(prefix) == PrefixLength && isHex(prefix)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
