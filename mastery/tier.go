// Package mastery maps inference scores to the content tiers a student has
// unlocked and provides a client for the inference endpoint.
package mastery

// Score thresholds at which hints, worked examples and full solutions unlock.
const (
	HintsThreshold     = 0.30
	ExamplesThreshold  = 0.60
	SolutionsThreshold = 0.90
)

const (
	TierNone = iota
	TierHints
	TierExamples
	TierSolutions
)

// Tier returns the highest tier whose threshold score reaches.
func Tier(score float64) int {
	switch {
	case score < HintsThreshold:
		return TierNone
	case score < ExamplesThreshold:
		return TierHints
	case score < SolutionsThreshold:
		return TierExamples
	default:
		return TierSolutions
	}
}
