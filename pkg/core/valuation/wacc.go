package valuation

import "valuationengine/pkg/core/model"

// deriveWACC computes a flat WACC from CapmInputs via a Hamada re-levered
// beta and CAPM cost of equity, adapted from the teacher's
// pkg/core/valuation/wacc.go (itself a standard CAPM/Hamada build-up). The
// reference scenario schema takes a flat `wacc` field directly; CapmInputs
// is the supplemented optional path described in DESIGN.md — when present
// it replaces the flat rate before the DCF runs.
func deriveWACC(inputs model.CapmInputs) float64 {
	// 1. Re-lever beta: BetaL = BetaU * (1 + (1-t)*(D/E))
	leveredBeta := inputs.UnleveredBeta * (1 + (1-inputs.TaxRate)*inputs.TargetDebtToEquity)

	// 2. Cost of equity (CAPM): Ke = Rf + BetaL * ERP
	costOfEquity := inputs.RiskFreeRate + leveredBeta*inputs.MarketRiskPremium

	// 3. After-tax cost of debt: Kd = PreTaxKd * (1-t)
	costOfDebt := inputs.PreTaxCostOfDebt * (1 - inputs.TaxRate)

	// 4. Weights from target D/E
	weightDebt := inputs.TargetDebtToEquity / (1 + inputs.TargetDebtToEquity)
	weightEquity := 1.0 / (1 + inputs.TargetDebtToEquity)

	return costOfEquity*weightEquity + costOfDebt*weightDebt
}
