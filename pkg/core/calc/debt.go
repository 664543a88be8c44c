package calc

import "valuationengine/pkg/core/model"

// computeDebt draws any debt instrument scheduled at monthIndex, accrues
// interest on every outstanding balance, and applies straight-line
// amortization once a state's grace period has elapsed. states is replaced
// in place with the surviving debt states (outstanding > 1e-6).
func computeDebt(
	monthIndex int,
	debtInstruments []model.DebtInstrument,
	states []debtState,
) (float64, float64, []debtState) {
	for _, instrument := range debtInstruments {
		if instrument.MonthIndex != monthIndex {
			continue
		}
		states = append(states, debtState{
			name:          instrument.Name,
			outstanding:   instrument.Amount,
			interestRate:  instrument.InterestRateAnnual,
			termMonths:    instrument.TermMonths,
			remainingTerm: instrument.TermMonths,
			graceMonths:   instrument.GracePeriodMonths,
		})
	}

	var interestExpense, principalPaid float64
	updated := make([]debtState, 0, len(states))

	for _, state := range states {
		if state.outstanding <= 0 {
			continue
		}
		interest := state.outstanding * (state.interestRate / 12)
		interestExpense += interest

		if state.graceMonths > 0 {
			state.graceMonths--
			updated = append(updated, state)
			continue
		}

		var principalPayment float64
		if state.remainingTerm > 0 {
			principalPayment = state.outstanding / float64(state.remainingTerm)
		} else {
			principalPayment = state.outstanding
		}
		if principalPayment > state.outstanding {
			principalPayment = state.outstanding
		}
		principalPaid += principalPayment
		state.outstanding -= principalPayment
		state.remainingTerm--
		if state.remainingTerm < 0 {
			state.remainingTerm = 0
		}
		if state.outstanding > 1e-6 {
			updated = append(updated, state)
		}
	}

	return interestExpense, principalPaid, updated
}
