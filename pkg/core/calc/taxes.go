package calc

import "valuationengine/pkg/core/model"

// computeRevenueTaxes evaluates each flat TaxComponent against the base it
// names. Only components based on gross or net revenue feed back into
// revenue_taxes_amount (spec.md §4.4 step 3); payroll- and EBIT/EBT-based
// components are reported in the breakdown but excluded from that total, to
// avoid double-counting payroll taxes already folded into headcount cost
// and because EBT/EBIT aren't known yet at this point in the month.
func computeRevenueTaxes(revenue model.RevenueSummary, taxes model.TaxModel, payrollTotal float64) (float64, []model.TaxBreakdown) {
	var taxAmount float64
	breakdown := make([]model.TaxBreakdown, 0, len(taxes.Taxes))

	for _, tax := range taxes.Taxes {
		base := revenue.TotalNet
		switch tax.Base {
		case model.TaxBaseGrossRevenue:
			base = revenue.TotalGross
		case model.TaxBaseNetRevenue:
			base = revenue.TotalNet
		case model.TaxBasePayroll:
			base = payrollTotal
		}
		amount := base * tax.Rate
		breakdown = append(breakdown, model.TaxBreakdown{Name: tax.Name, Amount: amount})
		if tax.Base == model.TaxBaseGrossRevenue || tax.Base == model.TaxBaseNetRevenue {
			taxAmount += amount
		}
	}
	return taxAmount, breakdown
}
