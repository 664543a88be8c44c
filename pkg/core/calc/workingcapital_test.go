package calc

import (
	"testing"

	"valuationengine/pkg/core/model"
)

func TestComputeWorkingCapital_DeltasAgainstTarget(t *testing.T) {
	wc := model.WorkingCapitalModel{DSO: 30, DPO: 15, DIO: 60}
	revenue := model.RevenueSummary{TotalGross: 50_000}

	delta := computeWorkingCapital(wc, 100_000, 40_000, revenue, 90_000, 10_000, 80_000)

	if delta.ChangeAR != 10_000 {
		t.Errorf("change_ar = %f, want 10000 (target 100000, previous 90000)", delta.ChangeAR)
	}
	if delta.ChangeAP != 10_000 {
		t.Errorf("change_ap = %f, want 10000 (target 20000, previous 10000)", delta.ChangeAP)
	}
	if delta.ChangeInventory != 20_000 {
		t.Errorf("change_inventory = %f, want 20000 (target 100000, previous 80000)", delta.ChangeInventory)
	}
	wantTotal := delta.ChangeAR - delta.ChangeAP + delta.ChangeInventory
	if delta.TotalChange != wantTotal {
		t.Errorf("total_change = %f, want %f (change_ar - change_ap + change_inventory)", delta.TotalChange, wantTotal)
	}
}

func TestComputeWorkingCapital_ZeroDSODPODIOYieldsNoTargetBalance(t *testing.T) {
	wc := model.WorkingCapitalModel{}
	revenue := model.RevenueSummary{TotalGross: 10_000}

	delta := computeWorkingCapital(wc, 50_000, 20_000, revenue, 0, 0, 0)

	if delta.ChangeAR != 0 || delta.ChangeAP != 0 || delta.ChangeInventory != 0 {
		t.Errorf("expected no change when days-outstanding are all zero, got %+v", delta)
	}
}
