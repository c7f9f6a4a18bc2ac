// Package goPassCheck provides a password security check engine combining
// deterministic local strength scoring with a k-anonymity breach-corpus
// lookup, plus optional Redis-backed response caching and lookup throttling.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goPassCheck is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (CheckResult, MetricsSnapshot, AuditEvent, etc.). Scoring
// lives in the strength sub-package and the range-query protocol in the hibp
// sub-package; both are usable standalone.
//
// # What this package must NOT do
//
//   - Transmit a plaintext password or a full password hash over any
//     transport. Only the 5-character SHA-1 prefix may leave the process.
//   - Persist passwords or password hashes. The range cache holds only
//     public corpus data keyed by hash prefix.
//   - Let a breach-lookup failure abort a password check. Failures degrade
//     to the unknown outcome.
package goPassCheck
