package calc

import (
	"math"
	"testing"

	"valuationengine/pkg/core/model"
)

func TestComputeDebt_DrawsAtScheduledMonth(t *testing.T) {
	instruments := []model.DebtInstrument{
		{Name: "term-loan", MonthIndex: 1, Amount: 120_000, InterestRateAnnual: 0.12, TermMonths: 12},
	}

	interest0, principal0, states0 := computeDebt(0, instruments, nil)
	if interest0 != 0 || principal0 != 0 || len(states0) != 0 {
		t.Fatalf("expected no debt activity before the draw month, got interest=%f principal=%f states=%d", interest0, principal0, len(states0))
	}

	interest1, principal1, states1 := computeDebt(1, instruments, states0)
	wantInterest := 120_000.0 * (0.12 / 12)
	if math.Abs(interest1-wantInterest) > 1e-9 {
		t.Errorf("first-month interest = %f, want %f", interest1, wantInterest)
	}
	wantPrincipal := 120_000.0 / 12
	if math.Abs(principal1-wantPrincipal) > 1e-9 {
		t.Errorf("first-month principal = %f, want %f", principal1, wantPrincipal)
	}
	if len(states1) != 1 {
		t.Fatalf("expected one surviving debt state, got %d", len(states1))
	}
}

func TestComputeDebt_GracePeriodDefersAmortization(t *testing.T) {
	states := []debtState{{name: "term-loan", outstanding: 100_000, interestRate: 0.1, termMonths: 10, remainingTerm: 10, graceMonths: 2}}

	interest, principal, updated := computeDebt(0, nil, states)
	if principal != 0 {
		t.Errorf("expected no principal paid during grace period, got %f", principal)
	}
	wantInterest := 100_000.0 * (0.1 / 12)
	if math.Abs(interest-wantInterest) > 1e-9 {
		t.Errorf("interest during grace = %f, want %f", interest, wantInterest)
	}
	if len(updated) != 1 || updated[0].graceMonths != 1 || updated[0].outstanding != 100_000 {
		t.Fatalf("expected grace_months decremented and outstanding untouched, got %+v", updated)
	}
}

func TestComputeDebt_FullyRepaidStateIsDropped(t *testing.T) {
	states := []debtState{{name: "small-loan", outstanding: 100, interestRate: 0.1, termMonths: 1, remainingTerm: 1, graceMonths: 0}}

	_, principal, updated := computeDebt(0, nil, states)
	if principal != 100 {
		t.Errorf("expected full outstanding balance repaid in final term month, got %f", principal)
	}
	if len(updated) != 0 {
		t.Errorf("expected loan dropped once fully repaid, got %+v", updated)
	}
}
