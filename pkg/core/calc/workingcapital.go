package calc

import "valuationengine/pkg/core/model"

// computeWorkingCapital derives this month's target AR/AP/inventory
// balances from days-outstanding assumptions and returns the deltas against
// the carried balances. It does not mutate the carried balances itself; the
// caller applies the deltas (spec.md §4.4 step 9).
func computeWorkingCapital(
	wc model.WorkingCapitalModel,
	netRevenue float64,
	costBase float64,
	revenue model.RevenueSummary,
	previousAR, previousAP, previousInventory float64,
) model.WorkingCapitalDelta {
	targetAR := netRevenue * (wc.DSO / 30)
	targetAP := costBase * (wc.DPO / 30)
	targetInventory := revenue.TotalGross * (wc.DIO / 30)

	changeAR := targetAR - previousAR
	changeAP := targetAP - previousAP
	changeInventory := targetInventory - previousInventory
	totalChange := changeAR - changeAP + changeInventory

	return model.WorkingCapitalDelta{
		ChangeAR:        changeAR,
		ChangeAP:        changeAP,
		ChangeInventory: changeInventory,
		TotalChange:     totalChange,
	}
}
