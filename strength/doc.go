// Package strength implements deterministic local password strength scoring.
//
// # Scoring model
//
// Five criteria are evaluated in a fixed order and scored additively into a
// 0..10 range: length, digits, case mixing, special characters, and a final
// blocklist override that resets the score to zero when the password matches
// a known weak password case-insensitively. The criteria order affects only
// the order of the findings list, never the score.
//
// # Architecture boundaries
//
// This package owns scoring and the static blocklist. Breach lookups and
// recommendation composition are handled by the Engine; an [Analysis] never
// depends on breach-check results.
//
// # What this package must NOT do
//
//   - Perform any I/O. [Analyzer.Analyze] is a pure function over its input.
//   - Import any other goPassCheck package.
//   - Retain or log the passwords it scores.
package strength
