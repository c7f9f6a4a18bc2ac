// Package hibp implements a k-anonymity range-query client for
// Pwned-Passwords-compatible breach corpora.
//
// # Privacy contract
//
// The plaintext password and its full SHA-1 digest never leave the process.
// A lookup transmits exactly the first 5 uppercase hexadecimal characters of
// the digest; the remaining 35 characters are matched locally against the
// candidate suffixes returned by the service. This is the one genuine
// security property of the system and must be preserved by every caller.
//
// # Failure model
//
// Transport failures, timeouts, and non-200 responses are degraded to the
// Unknown outcome (count sentinel -1) instead of propagating as errors, so a
// breach lookup can never abort an overall password check. Unparsable
// response records are skipped, not fatal.
//
// # Architecture boundaries
//
// This package owns hashing, the range transport, and response parsing.
// Caching and throttling of range queries belong to the Engine.
//
// # What this package must NOT do
//
//   - Send a full hash or plaintext password over any transport.
//   - Retain passwords, digests, or response bodies between calls.
//   - Import any other goPassCheck package.
package hibp
