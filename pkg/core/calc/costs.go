package calc

import "valuationengine/pkg/core/model"

// computeCosts evaluates every fixed/variable cost item and escalating
// supplier contract for monthIndex, returning a per-cost-center breakdown
// plus the COGS/OPEX totals from those two sources. The caller still needs
// to add cogs_per_customer and cogs_variable_pct on top (spec.md §4.4 step
// 2), since those two drivers need revenue_summary and active-customer
// counts that are not cost-model concerns.
func computeCosts(monthIndex int, costs model.CostModel, revenue model.RevenueSummary) ([]model.CostBreakdown, float64, float64) {
	byCenter := map[model.CostCenter]float64{}
	centerOrder := []model.CostCenter{}
	addTo := func(center model.CostCenter, amount float64) {
		if _, ok := byCenter[center]; !ok {
			centerOrder = append(centerOrder, center)
		}
		byCenter[center] += amount
	}

	var cogsTotal, opexTotal float64

	for _, item := range costs.Items {
		baseAmount := item.BaseAmount
		if item.Nature == model.CostVariable {
			driverValue := revenue.TotalGross
			if item.Driver == "revenue" {
				driverValue = revenue.TotalNet
			}
			baseAmount = driverValue * item.VariableRate
		}
		amount := baseAmount * item.Schedule.ValueFor(monthIndex)
		amount *= 1 + item.PriceAdjustment.FactorForMonth(monthIndex)

		addTo(item.CostCenter, amount)
		if item.Allocation == model.AllocationCOGS {
			cogsTotal += amount
		} else {
			opexTotal += amount
		}
	}

	for _, contract := range costs.SupplierContracts {
		if monthIndex < contract.StartMonth {
			continue
		}
		escalations := 0
		if contract.EscalationFrequencyMonths > 0 {
			escalations = (monthIndex - contract.StartMonth) / contract.EscalationFrequencyMonths
		}
		if escalations < 0 {
			escalations = 0
		}
		amount := contract.BaseAmount * pow1p(contract.EscalationPct, escalations)

		addTo(contract.CostCenter, amount)
		if contract.Allocation == model.AllocationCOGS {
			cogsTotal += amount
		} else {
			opexTotal += amount
		}
	}

	breakdown := make([]model.CostBreakdown, 0, len(centerOrder))
	for _, center := range centerOrder {
		breakdown = append(breakdown, model.CostBreakdown{CostCenter: center, Amount: byCenter[center]})
	}
	return breakdown, cogsTotal, opexTotal
}

// pow1p returns (1+rate)^n for integer n >= 0.
func pow1p(rate float64, n int) float64 {
	result := 1.0
	base := 1 + rate
	for i := 0; i < n; i++ {
		result *= base
	}
	return result
}
