// Package risk holds the supplier risk scoring rules: the blend of static
// baseline and event-driven impact, and the alerting threshold.
package risk

// Scoring constants. The blend weights are a design constant of the scoring
// model, not runtime configuration.
const (
	BaseWeight  = 0.6
	EventWeight = 0.4

	// AlertThreshold is the computed score at or above which an open alert
	// is created or refreshed for a supplier.
	AlertThreshold = 0.5
)

// EventImpact is the mean severity of a supplier's linked events, 0 when the
// supplier has none.
func EventImpact(severities []float64) float64 {
	if len(severities) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range severities {
		sum += s
	}
	return sum / float64(len(severities))
}

// Blend computes a supplier's risk score from its static baseline and the
// severities of its linked events.
func Blend(baseRisk float64, severities []float64) float64 {
	return BaseWeight*baseRisk + EventWeight*EventImpact(severities)
}

// ShouldAlert reports whether a computed score crosses the alert threshold.
func ShouldAlert(score float64) bool {
	return score >= AlertThreshold
}
