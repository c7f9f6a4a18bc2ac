package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxScore is an exported constant or variable used by the password check engine.
	MaxScore = 10

	lengthExcellent = 12
	lengthGood      = 8

	pointsLengthExcellent = 3
	pointsLengthGood      = 2
	pointsDigits          = 1
	pointsMixedCase       = 2
	pointsAnyLetter       = 1
	pointsSpecial         = 2

	labelThresholdExcellent = 8
	labelThresholdGood      = 5
	labelThresholdMedium    = 3

	// specialRunes is the exact punctuation set a password must draw from to
	// earn the special-character points.
	specialRunes = `!@#$%^&*(),.?":{}|<>`
)

// Label defines a public type used by goPassCheck APIs.
//
// Label instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Label uint8

const (
	// LabelWeak is an exported constant or variable used by the password check engine.
	LabelWeak Label = iota
	// LabelMedium is an exported constant or variable used by the password check engine.
	LabelMedium
	// LabelGood is an exported constant or variable used by the password check engine.
	LabelGood
	// LabelExcellent is an exported constant or variable used by the password check engine.
	LabelExcellent
)

// String describes the string operation and its observable behavior.
//
// String may return an error when input validation, dependency calls, or security checks fail.
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (l Label) String() string {
	switch l {
	case LabelExcellent:
		return "Excellent"
	case LabelGood:
		return "Good"
	case LabelMedium:
		return "Medium"
	default:
		return "Weak"
	}
}

// Finding defines a public type used by goPassCheck APIs.
//
// Finding instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Finding struct {
	Message string
	Passed  bool
}

// Analysis defines a public type used by goPassCheck APIs.
//
// Analysis instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Analysis struct {
	Score       int
	MaxScore    int
	Label       Label
	Findings    []Finding
	Length      int
	Blocklisted bool
}

// Config defines a public type used by goPassCheck APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	// ExtraBlocklist entries are merged into the built-in weak password set.
	ExtraBlocklist []string
}

// Analyzer defines a public type used by goPassCheck APIs.
//
// Analyzer instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Analyzer struct {
	blocklist *blocklist
}

// NewAnalyzer describes the newanalyzer operation and its observable behavior.
//
// NewAnalyzer may return an error when input validation, dependency calls, or security checks fail.
// NewAnalyzer does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{
		blocklist: newBlocklist(cfg.ExtraBlocklist),
	}
}

// Analyze scores a password against the five criteria and returns the
// resulting [Analysis]. It never fails: every input string, including the
// empty string, produces a result.
func (a *Analyzer) Analyze(password string) Analysis {
	score := 0
	findings := make([]Finding, 0, 5)
	length := utf8.RuneCountInString(password)

	// Criterion 1: length.
	switch {
	case length >= lengthExcellent:
		score += pointsLengthExcellent
		findings = append(findings, Finding{Message: "password length is excellent (12+ characters)", Passed: true})
	case length >= lengthGood:
		score += pointsLengthGood
		findings = append(findings, Finding{Message: "password length is good (8+ characters)", Passed: true})
	default:
		findings = append(findings, Finding{Message: "password is too short (8+ characters recommended)", Passed: false})
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
		if strings.ContainsRune(specialRunes, r) {
			hasSpecial = true
		}
	}

	// Criterion 2: digits.
	if hasDigit {
		score += pointsDigits
		findings = append(findings, Finding{Message: "contains digits", Passed: true})
	} else {
		findings = append(findings, Finding{Message: "add digits to increase complexity", Passed: false})
	}

	// Criterion 3: case mixing. A letter-free password earns no points and
	// produces no finding for this branch.
	if hasLower && hasUpper {
		score += pointsMixedCase
		findings = append(findings, Finding{Message: "uses mixed upper and lower case", Passed: true})
	} else if hasLower || hasUpper {
		score += pointsAnyLetter
		findings = append(findings, Finding{Message: "add letters in both upper and lower case", Passed: false})
	}

	// Criterion 4: special characters.
	if hasSpecial {
		score += pointsSpecial
		findings = append(findings, Finding{Message: "contains special characters", Passed: true})
	} else {
		findings = append(findings, Finding{Message: "add special characters (!@#$ and similar)", Passed: false})
	}

	// Criterion 5: blocklist override. Runs last so the earlier findings stay
	// visible even when the override zeroes the score.
	blocklisted := a != nil && a.blocklist.Contains(password)
	if blocklisted {
		score = 0
		findings = append(findings, Finding{Message: "password is on the list of most common weak passwords", Passed: false})
	}

	return Analysis{
		Score:       score,
		MaxScore:    MaxScore,
		Label:       labelForScore(score),
		Findings:    findings,
		Length:      length,
		Blocklisted: blocklisted,
	}
}

func labelForScore(score int) Label {
	switch {
	case score >= labelThresholdExcellent:
		return LabelExcellent
	case score >= labelThresholdGood:
		return LabelGood
	case score >= labelThresholdMedium:
		return LabelMedium
	default:
		return LabelWeak
	}
}
