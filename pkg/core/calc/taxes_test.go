package calc

import (
	"testing"

	"valuationengine/pkg/core/model"
)

func TestComputeRevenueTaxes_OnlyRevenueBasedTaxesFeedTheTotal(t *testing.T) {
	revenue := model.RevenueSummary{TotalGross: 100_000, TotalNet: 90_000}
	taxes := model.TaxModel{
		Taxes: []model.TaxComponent{
			{Name: "iss", Base: model.TaxBaseGrossRevenue, Rate: 0.05},
			{Name: "payroll-tax", Base: model.TaxBasePayroll, Rate: 0.2},
		},
	}

	total, breakdown := computeRevenueTaxes(revenue, taxes, 40_000)

	if total != 5_000 {
		t.Errorf("revenue_taxes_amount = %f, want 5000 (only the gross-revenue-based component)", total)
	}
	if len(breakdown) != 2 {
		t.Fatalf("expected both components in the breakdown, got %d", len(breakdown))
	}
	if breakdown[1].Name != "payroll-tax" || breakdown[1].Amount != 8_000 {
		t.Errorf("payroll-tax breakdown = %+v, want amount 8000 (40000*0.2), still reported though excluded from the total", breakdown[1])
	}
}

func TestComputeRevenueTaxes_NetRevenueBase(t *testing.T) {
	revenue := model.RevenueSummary{TotalGross: 100_000, TotalNet: 80_000}
	taxes := model.TaxModel{Taxes: []model.TaxComponent{{Name: "vat", Base: model.TaxBaseNetRevenue, Rate: 0.1}}}

	total, _ := computeRevenueTaxes(revenue, taxes, 0)
	if total != 8_000 {
		t.Errorf("total = %f, want 8000", total)
	}
}

func TestComputeRevenueTaxes_NoComponents(t *testing.T) {
	total, breakdown := computeRevenueTaxes(model.RevenueSummary{}, model.TaxModel{}, 0)
	if total != 0 || len(breakdown) != 0 {
		t.Errorf("expected zero total and empty breakdown, got total=%f breakdown=%v", total, breakdown)
	}
}
