package calc

import (
	"math"
	"testing"

	"valuationengine/pkg/core/model"
)

func TestComputeDepreciation_CapitalizesAtScheduledMonth(t *testing.T) {
	items := []model.CapexItem{
		{MonthIndex: 2, Amount: 12_000, UsefulLifeMonths: 12, SalvageValue: 0},
	}

	dep0, accum0, fa0, tracks0 := computeDepreciation(0, items, nil, 0, 0)
	if dep0 != 0 || accum0 != 0 || fa0 != 0 || len(tracks0) != 0 {
		t.Fatalf("expected no depreciation before the capex month, got dep=%f accum=%f fa=%f tracks=%d", dep0, accum0, fa0, len(tracks0))
	}

	dep2, accum2, fa2, tracks2 := computeDepreciation(2, items, tracks0, fa0, accum0)
	if fa2 != 12_000 {
		t.Errorf("fixed_assets after capitalization = %f, want 12000", fa2)
	}
	wantDep2 := 12_000.0 / 12.0
	if math.Abs(dep2-wantDep2) > 1e-9 {
		t.Errorf("first month depreciation = %f, want %f", dep2, wantDep2)
	}
	if accum2 != wantDep2 {
		t.Errorf("accumulated depreciation = %f, want %f", accum2, wantDep2)
	}
	if len(tracks2) != 1 || tracks2[0].remaining != 11 {
		t.Fatalf("expected one track with 11 months remaining, got %+v", tracks2)
	}
}

func TestComputeDepreciation_RecomputesAgainstCurrentRemainingEachMonth(t *testing.T) {
	// Faithfully replicates the reference implementation: monthly_dep is
	// recomputed each month as (amount-salvage)/remaining with the original
	// (undepreciated) amount, so the per-month figure rises as remaining
	// months fall rather than staying flat.
	tracks := []depreciationTrack{{remaining: 2, amount: 1_000, salvage: 0}}

	dep1, _, _, tracks1 := computeDepreciation(5, nil, tracks, 1_000, 0)
	if dep1 != 500 {
		t.Errorf("month with remaining=2 depreciation = %f, want 500", dep1)
	}

	dep2, _, _, tracks2 := computeDepreciation(6, nil, tracks1, 1_000, 500)
	if dep2 != 1_000 {
		t.Errorf("month with remaining=1 depreciation = %f, want 1000", dep2)
	}
	if len(tracks2) != 0 {
		t.Errorf("expected track exhausted after remaining reaches 0, got %+v", tracks2)
	}
}

func TestComputeDepreciation_ExhaustedTrackIsDropped(t *testing.T) {
	tracks := []depreciationTrack{{remaining: 0, amount: 1_000, salvage: 0}}
	dep, _, _, updated := computeDepreciation(0, nil, tracks, 0, 0)
	if dep != 0 {
		t.Errorf("expected zero depreciation for an already-exhausted track, got %f", dep)
	}
	if len(updated) != 0 {
		t.Errorf("expected exhausted track dropped, got %+v", updated)
	}
}
