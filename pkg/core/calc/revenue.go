package calc

import (
	"math"

	"valuationengine/pkg/core/model"
)

// computeRevenue evaluates every plan for monthIndex and rolls them into a
// single RevenueSummary. Each plan's active-customer count and deferred
// revenue queue in states are advanced in place.
//
// ramp_up is read off each plan but, per the reference implementation,
// never applied to new-customer acquisition (SPEC_FULL.md §6, decision 2).
func computeRevenue(monthIndex int, revenue model.RevenueModel, states map[string]*planState) model.RevenueSummary {
	var totalGross, totalNet, totalChurn, totalExpansion, arr float64

	for _, plan := range revenue.Plans {
		state := states[plan.Name]

		newCustomers := math.Max(0, plan.NewCustomers.ValueFor(monthIndex))
		churnRate := plan.ChurnRate.ValueFor(monthIndex)
		expansionRate := plan.ExpansionRate.ValueFor(monthIndex)
		contractionRate := plan.ContractionRate.ValueFor(monthIndex)
		arpaGrowth := plan.ARPAGrowthRate.ValueFor(monthIndex)
		seasonalFactor := plan.SeasonalPattern.Factor(monthIndex)

		churnedCustomers := state.activeCustomers * churnRate
		state.activeCustomers = math.Max(0, state.activeCustomers+newCustomers-churnedCustomers)

		arpa := plan.InitialARPA * math.Pow(1+arpaGrowth, float64(monthIndex+1))
		arpa *= seasonalFactor

		baseRevenue := state.activeCustomers * arpa
		discount := baseRevenue * plan.DiscountRate.ValueFor(monthIndex)
		expansionRevenue := baseRevenue * expansionRate
		contractionRevenue := baseRevenue * contractionRate
		grossRevenue := baseRevenue + expansionRevenue - contractionRevenue

		servicesRevenue := plan.ServicesAttachRate * newCustomers * plan.ServicesASP
		transactionalRevenue := plan.TransactionalVolume.ValueFor(monthIndex) * plan.TransactionalFee
		grossRevenue += servicesRevenue + transactionalRevenue

		var recognized float64
		if plan.RevenueDeferralMonths > 0 {
			recognized = state.pushPop(grossRevenue) / math.Max(1, float64(plan.RevenueDeferralMonths))
		} else {
			recognized = grossRevenue
		}

		totalGross += grossRevenue
		totalNet += recognized - discount
		totalChurn += churnedCustomers * arpa
		totalExpansion += expansionRevenue
		arr += recognized * 12
	}

	totalGross += revenue.ProfessionalServicesRevenue.ValueFor(monthIndex)
	totalNet += revenue.OtherRecurringRevenue.ValueFor(monthIndex)

	return model.RevenueSummary{
		TotalGross:     totalGross,
		TotalNet:       totalNet,
		TotalChurn:     totalChurn,
		TotalExpansion: totalExpansion,
		ARR:            arr,
	}
}
