package goPassCheck

import (
	"github.com/MrEthical07/goPassCheck/hibp"
	"github.com/MrEthical07/goPassCheck/strength"
)

// PasswordAnalysis is the scored strength analysis of a single password.
//
//	Docs: strength package
type PasswordAnalysis = strength.Analysis

// Finding is a single pass/fail criterion outcome within a [PasswordAnalysis].
type Finding = strength.Finding

// StrengthLabel is the coarse strength classification derived from the score.
type StrengthLabel = strength.Label

const (
	// StrengthWeak is an exported constant or variable used by the password check engine.
	StrengthWeak = strength.LabelWeak
	// StrengthMedium is an exported constant or variable used by the password check engine.
	StrengthMedium = strength.LabelMedium
	// StrengthGood is an exported constant or variable used by the password check engine.
	StrengthGood = strength.LabelGood
	// StrengthExcellent is an exported constant or variable used by the password check engine.
	StrengthExcellent = strength.LabelExcellent
)

// BreachResult is the outcome of a k-anonymity breach lookup. The Count field
// carries the occurrence count when found, 0 when confirmed absent, and the
// -1 sentinel when the lookup could not be completed.
type BreachResult = hibp.Result

// BreachOutcome is the discriminated lookup outcome (found / not found /
// unknown). Unknown never means "confirmed clean".
type BreachOutcome = hibp.Outcome

const (
	// BreachUnknown is an exported constant or variable used by the password check engine.
	BreachUnknown = hibp.OutcomeUnknown
	// BreachNotFound is an exported constant or variable used by the password check engine.
	BreachNotFound = hibp.OutcomeNotFound
	// BreachFound is an exported constant or variable used by the password check engine.
	BreachFound = hibp.OutcomeFound
)

// CheckResult defines a public type used by goPassCheck APIs.
//
// CheckResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CheckResult struct {
	Analysis        PasswordAnalysis
	Breach          BreachResult
	Recommendations []string
}
