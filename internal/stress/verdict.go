// Package stress holds the pure analytical layer of the API: risk
// classification, cohort statistics, and the threshold-driven policy text
// generators. Nothing in this package touches storage or HTTP.
package stress

// RiskVerdict classifies a single risk score into a coarse band.
type RiskVerdict struct {
	Verdict     string `json:"verdict"`
	Description string `json:"description"`
}

// Verdict band boundaries. Scores are small fractions; the model emits values
// in roughly [0, 0.1].
const (
	mediumRiskFloor = 0.01
	highRiskFloor   = 0.03
)

// Verdict is a pure step function over the risk score: LOW below 0.01,
// MEDIUM below 0.03, HIGH otherwise.
func Verdict(score float64) RiskVerdict {
	switch {
	case score < mediumRiskFloor:
		return RiskVerdict{
			Verdict:     "LOW",
			Description: "Minimal service stress - operations running smoothly",
		}
	case score < highRiskFloor:
		return RiskVerdict{
			Verdict:     "MEDIUM",
			Description: "Moderate service stress - requires monitoring",
		}
	default:
		return RiskVerdict{
			Verdict:     "HIGH",
			Description: "High service stress - immediate attention needed",
		}
	}
}
