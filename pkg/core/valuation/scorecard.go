package valuation

import "valuationengine/pkg/core/model"

// computeScorecard normalizes scorecard_weights to sum to 1 and prices the
// DCF equity value against the resulting score. Since the weights are
// normalized to their own sum, the score is always 1 regardless of the
// weights supplied — this is what the reference implementation computes,
// preserved here rather than "fixed" (SPEC_FULL.md §6, decision 4). Returns
// nil when no weights are supplied.
func computeScorecard(settings model.ValuationSettings, baseEquityValue float64) *model.ScorecardValuationResult {
	if len(settings.ScorecardWeights) == 0 {
		return nil
	}
	var totalWeight float64
	for _, w := range settings.ScorecardWeights {
		totalWeight += w
	}
	var score float64
	for _, w := range settings.ScorecardWeights {
		score += w / totalWeight
	}
	return &model.ScorecardValuationResult{
		TotalScore: score,
		Valuation:  baseEquityValue * score,
	}
}
