package valuation

import (
	"math"

	"valuationengine/pkg/core/model"
)

// computeDCF discounts every month's FCFF at the scenario's WACC and adds a
// discounted terminal value, following the reference implementation's
// monthly-equivalent discounting: discount_factor(i) = (1+wacc)^(i/12) for
// i in [1, N], i.e. month i is i/12 years out from the valuation date.
//
// This replaces the teacher's cumulative per-year discount-factor loop
// (pkg/core/valuation/dcf.go in the teacher repo divided a running factor by
// (1+wacc) once per projection year) with the absolute exponent form
// spec.md §4.5 requires; the accumulation structure (loop once, track PV of
// cash flows plus PV of terminal value) is kept.
func computeDCF(monthly []model.MonthlyProjection, annual []model.AnnualSummary, wacc float64, settings model.ValuationSettings) model.DiscountedCashFlowResult {
	discountFactors := make([]float64, len(monthly))
	var pvCashFlows float64
	for i, month := range monthly {
		discountFactors[i] = math.Pow(1+wacc, float64(i+1)/12.0)
		pvCashFlows += month.CashFlow.FCFF / discountFactors[i]
	}

	terminalValue := computeTerminalValue(annual, wacc, settings)

	n := float64(len(monthly))
	pvTerminal := terminalValue / math.Pow(1+wacc, n/12.0)

	enterpriseValue := pvCashFlows + pvTerminal

	var equityValue float64
	if len(monthly) > 0 {
		last := monthly[len(monthly)-1].BalanceSheet
		equityValue = enterpriseValue - last.Debt + last.Cash
	}

	return model.DiscountedCashFlowResult{
		EnterpriseValue:   enterpriseValue,
		EquityValue:       equityValue,
		PVOfCashFlows:     pvCashFlows,
		PVOfTerminalValue: pvTerminal,
		TerminalValue:     terminalValue,
		DiscountFactors:   discountFactors,
	}
}

// computeTerminalValue implements spec.md §4.5's two terminal-value
// methods. Perpetuity division by (wacc - g) is left unguarded when the two
// rates are equal: the result is ±Inf and propagates, matching the
// reference implementation (SPEC_FULL.md §6, decision 5).
func computeTerminalValue(annual []model.AnnualSummary, wacc float64, settings model.ValuationSettings) float64 {
	if len(annual) == 0 {
		return 0.0
	}
	last := annual[len(annual)-1]

	if settings.TerminalMethod == model.TerminalPerpetuity {
		fcffLastMonthly := last.CashFlow.FCFF / 12
		return (fcffLastMonthly * (1 + settings.PerpetualGrowthRate)) / (wacc - settings.PerpetualGrowthRate)
	}

	metric := terminalMetricValue(last, settings.TerminalMultipleMetric)
	return metric * settings.TerminalMultiple
}

// terminalMetricValue resolves a MultipleMetric against an annual summary.
// ARR uses the annual net_revenue figure, per spec.md §4.5's note that for
// `arr` the annual-summary net revenue stands in for a true ARR figure.
func terminalMetricValue(annual model.AnnualSummary, metric model.MultipleMetric) float64 {
	switch metric {
	case model.MetricRevenue, model.MetricARR:
		return annual.IncomeStatement.NetRevenue
	case model.MetricEBITDA:
		return annual.IncomeStatement.EBITDA
	default:
		return annual.IncomeStatement.EBITDA
	}
}
