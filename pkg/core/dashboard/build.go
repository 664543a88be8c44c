// Package dashboard builds the four dashboard payload bundles a finished
// scenario run exposes over the API: revenue and cash trends, the headline
// valuation numbers, and unit-economics series. Grounded on the teacher's
// heterogeneous JSON payload handling (pkg/core/projection's dynamic-key
// NodeDrivers/AdditionalItem maps) and on original_source's
// ScenarioCalculator._build_dashboards, which this package ports field for
// field. The sum type these bundles are built from, model.DashboardValue,
// lives in pkg/core/model rather than here to avoid a model<->dashboard
// import cycle: model.ScenarioResult embeds []DashboardSlice.
package dashboard

import "valuationengine/pkg/core/model"

// Build assembles the "revenue", "cash", "valuation" and "unit_economics"
// slices from a finished run's monthly projections and valuation result.
func Build(monthly []model.MonthlyProjection, valuation model.ValuationResult) []model.DashboardSlice {
	months := make([]string, len(monthly))
	netRevenue := make([]float64, len(monthly))
	ebitda := make([]float64, len(monthly))
	cash := make([]float64, len(monthly))
	fcff := make([]float64, len(monthly))
	grossMarginPct := make([]float64, len(monthly))
	burnRate := make([]float64, len(monthly))

	for i, m := range monthly {
		months[i] = m.PeriodStart.Format("2006-01-02")
		netRevenue[i] = m.IncomeStatement.NetRevenue
		ebitda[i] = m.IncomeStatement.EBITDA
		cash[i] = m.BalanceSheet.Cash
		fcff[i] = m.CashFlow.FCFF
		if m.IncomeStatement.NetRevenue != 0 {
			grossMarginPct[i] = m.IncomeStatement.GrossMargin / m.IncomeStatement.NetRevenue
		}
		burnRate[i] = -(m.CashFlow.OperatingCashFlow + m.CashFlow.InvestingCashFlow)
	}

	revenue := model.DashboardSlice{
		Name: "revenue",
		Data: map[string]model.DashboardValue{
			"months":      model.NewLabels(months),
			"net_revenue": model.NewSeries(netRevenue),
			"ebitda":      model.NewSeries(ebitda),
		},
	}
	cashSlice := model.DashboardSlice{
		Name: "cash",
		Data: map[string]model.DashboardValue{
			"months": model.NewLabels(months),
			"cash":   model.NewSeries(cash),
			"fcff":   model.NewSeries(fcff),
		},
	}
	valuationSlice := model.DashboardSlice{
		Name: "valuation",
		Data: map[string]model.DashboardValue{
			"enterprise_value": model.NewScalar(valuation.DCF.EnterpriseValue),
			"equity_value":     model.NewScalar(valuation.DCF.EquityValue),
			"pv_cash_flows":    model.NewScalar(valuation.DCF.PVOfCashFlows),
			"pv_terminal":      model.NewScalar(valuation.DCF.PVOfTerminalValue),
		},
	}
	unitEconomics := model.DashboardSlice{
		Name: "unit_economics",
		Data: map[string]model.DashboardValue{
			"gross_margin_pct": model.NewSeries(grossMarginPct),
			"burn_rate":        model.NewSeries(burnRate),
		},
	}

	return []model.DashboardSlice{revenue, cashSlice, valuationSlice, unitEconomics}
}
