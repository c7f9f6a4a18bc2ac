package goPassCheck

import "fmt"

const (
	adviseLengthBelow = 8
	adviseScoreBelow  = 5
)

// Recommend composes an ordered advisory list from a strength analysis and a
// breach lookup result. An urgent breach warning always comes first, followed
// by length and composition advice, then two fixed general entries.
//
// Recommend is pure and carries no state between calls.
func Recommend(analysis PasswordAnalysis, breach BreachResult) []string {
	recommendations := make([]string, 0, 5)

	if breach.Found && breach.Count > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"URGENT: this password appeared in %d known breaches, change it everywhere it is used", breach.Count))
	}

	if analysis.Length < adviseLengthBelow {
		recommendations = append(recommendations, fmt.Sprintf(
			"increase password length to at least 12 characters, current length is %d", analysis.Length))
	}

	if analysis.Score < adviseScoreBelow {
		recommendations = append(recommendations,
			"combine uppercase and lowercase letters, digits, and special characters")
	}

	recommendations = append(recommendations,
		"do not reuse this password across different sites",
		"consider using a password manager",
	)

	return recommendations
}
