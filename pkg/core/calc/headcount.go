package calc

import "valuationengine/pkg/core/model"

// computeHeadcount applies this month's scheduled hires, advances attrition,
// and rolls every position's payroll cost into an area-level breakdown plus
// the month's total payroll. states is mutated in place and carries forward
// to later months.
//
// salary_adjustment on a position is read into the schema but never applied
// here, per the reference implementation (SPEC_FULL.md §6, decision 2).
func computeHeadcount(
	monthIndex int,
	headcount model.HeadcountModel,
	states *headcountStates,
	hiringByMonth map[int][]model.HiringPlan,
) ([]model.HeadcountCostBreakdown, float64) {
	for _, hire := range hiringByMonth[monthIndex] {
		state, ok := states.get(hire.Role)
		if !ok {
			var matching *model.HeadcountPosition
			for i := range headcount.Positions {
				if headcount.Positions[i].Role == hire.Role {
					matching = &headcount.Positions[i]
					break
				}
			}
			if matching == nil {
				continue
			}
			state = &headcountState{position: *matching, fte: 0, currentSalary: matching.BaseSalary}
			states.set(hire.Role, state)
		}
		state.fte += hire.Quantity
		if hire.SalaryOverride != nil && *hire.SalaryOverride != 0 {
			state.currentSalary = *hire.SalaryOverride
		}
	}

	attritionRate := headcount.AttritionPct.ValueFor(monthIndex)
	var payrollTotal float64

	type areaTotals struct {
		salaries, benefits, subscriptions, total, fte float64
	}
	areas := map[string]*areaTotals{}
	areaOrder := []string{}

	for _, state := range states.inOrder() {
		if state.fte <= 0 {
			continue
		}
		state.fte *= 1 - attritionRate

		monthlySalary := state.currentSalary / 12
		salaryCost := state.fte * monthlySalary
		benefits := salaryCost*state.position.BenefitsPct + state.fte*state.position.BenefitsFixed
		bonus := salaryCost * state.position.BonusPct
		payrollTaxes := salaryCost * state.position.PayrollTaxesPct

		var subsCost float64
		for _, sub := range state.position.Subscriptions {
			subsCost += sub.MonthlyCost * (1 + sub.PriceAdjustment.FactorForMonth(monthIndex))
		}
		subsCost *= state.fte

		total := salaryCost + benefits + bonus + payrollTaxes + subsCost
		payrollTotal += total

		area := areas[state.position.Area]
		if area == nil {
			area = &areaTotals{}
			areas[state.position.Area] = area
			areaOrder = append(areaOrder, state.position.Area)
		}
		area.salaries += salaryCost
		area.benefits += benefits + bonus + payrollTaxes
		area.subscriptions += subsCost
		area.total += total
		area.fte += state.fte
	}

	breakdown := make([]model.HeadcountCostBreakdown, 0, len(areaOrder))
	for _, area := range areaOrder {
		totals := areas[area]
		breakdown = append(breakdown, model.HeadcountCostBreakdown{
			Area:          area,
			Salaries:      totals.salaries,
			Benefits:      totals.benefits,
			Subscriptions: totals.subscriptions,
			Total:         totals.total,
			FTE:           totals.fte,
		})
	}
	return breakdown, payrollTotal
}
