// Package valuation implements the scenario calculator's valuation layer:
// a discounted-cash-flow model, comparable multiples, the venture-capital
// method, and an optional scorecard blend, run once over a finished set of
// monthly and annual projections. Grounded on the teacher's
// pkg/core/valuation package (dcf.go, wacc.go), adapted from an annual
// SEC-filing DCF to the monthly-discounting, multi-method valuation layer
// spec.md §4.5 describes.
package valuation

import "valuationengine/pkg/core/model"

// Run executes every valuation method spec.md §4.5 names and returns the
// combined result. WACC is taken from settings.WACC unless settings.CapmInputs
// is set, in which case it is derived first (SPEC_FULL.md §4.2).
func Run(
	monthly []model.MonthlyProjection,
	annual []model.AnnualSummary,
	settings model.ValuationSettings,
	funding model.FundingModel,
) (model.ValuationResult, error) {
	wacc := settings.WACC
	if settings.CapmInputs != nil {
		wacc = deriveWACC(*settings.CapmInputs)
	}

	dcfResult := computeDCF(monthly, annual, wacc, settings)
	multiples := computeMultiples(annual, settings)
	vcResult := computeVCMethod(annual, funding, settings)
	scorecard := computeScorecard(settings, dcfResult.EquityValue)

	return model.ValuationResult{
		DCF:       dcfResult,
		Multiples: multiples,
		VCMethod:  vcResult,
		Scorecard: scorecard,
	}, nil
}
