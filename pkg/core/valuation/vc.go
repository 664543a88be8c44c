package valuation

import "valuationengine/pkg/core/model"

// computeVCMethod implements the venture-capital valuation method: an exit
// multiple on the last year's net revenue, discounted back at a VC hurdle
// rate, translated into the ownership a current investment would require.
func computeVCMethod(annual []model.AnnualSummary, funding model.FundingModel, settings model.ValuationSettings) model.VCValuationResult {
	if len(annual) == 0 {
		return model.VCValuationResult{}
	}
	last := annual[len(annual)-1]

	exitMetric := last.IncomeStatement.NetRevenue
	exitValue := exitMetric * settings.ExitYearMultiple

	discountedExit := exitValue / pow1pInt(settings.DiscountRateVC, settings.TargetExitYear)

	var investment float64
	for _, round := range funding.EquityRounds {
		investment += round.Amount
	}

	var requiredOwnership float64
	if discountedExit != 0 {
		requiredOwnership = investment / (discountedExit * settings.ProbabilityOfSuccess)
	}

	var postMoney float64
	if requiredOwnership != 0 {
		denom := requiredOwnership
		if denom < 1e-6 {
			denom = 1e-6
		}
		postMoney = investment / denom
	} else {
		postMoney = exitValue
	}
	preMoney := postMoney - investment

	ownership := requiredOwnership
	if ownership < 0 {
		ownership = 0
	}
	if ownership > 1 {
		ownership = 1
	}

	return model.VCValuationResult{
		ExitValue:         exitValue,
		OwnershipRequired: ownership,
		PostMoney:         postMoney,
		PreMoney:          preMoney,
	}
}

func pow1pInt(rate float64, years int) float64 {
	result := 1.0
	base := 1 + rate
	for i := 0; i < years; i++ {
		result *= base
	}
	return result
}
