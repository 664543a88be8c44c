// Package calc implements the monthly scenario calculator: the running
// state for each sub-model and the single-threaded, strictly-ordered
// orchestrator that walks a ScenarioInput month by month into a
// ScenarioResult. Grounded on the three-pass articulation sequencing in
// the teacher's pkg/core/projection/engine.go (income statement → balance
// sheet → cash flow) and on the exact per-month arithmetic of
// original_source/src/valuation_app/services/calculator.py.
package calc

import "valuationengine/pkg/core/model"

// planState is the running state carried forward for one revenue plan:
// the active customer count and a fixed-length FIFO queue of unrecognized
// gross revenue, one entry per deferral month.
type planState struct {
	activeCustomers float64
	deferredRevenue []float64 // front = oldest, back = newest
}

func newPlanState(plan model.RevenuePlan) *planState {
	queue := make([]float64, plan.RevenueDeferralMonths)
	return &planState{activeCustomers: plan.InitialCustomers, deferredRevenue: queue}
}

// pushPop appends v to the back of the queue and pops+returns the front value,
// keeping the queue's length fixed. Used only when the plan defers revenue.
func (p *planState) pushPop(v float64) float64 {
	p.deferredRevenue = append(p.deferredRevenue, v)
	front := p.deferredRevenue[0]
	p.deferredRevenue = p.deferredRevenue[1:]
	return front
}

// headcountState is the running state for one headcount position: current
// FTE count (affected by hires and attrition) and the salary in effect
// (affected by hiring salary overrides).
type headcountState struct {
	position      model.HeadcountPosition
	fte           float64
	currentSalary float64
}

// headcountStates tracks headcount states in first-seen order so that area
// breakdowns come out in a stable order across runs. Hires whose role has no
// matching starting position are skipped and never add a state.
type headcountStates struct {
	byRole map[string]*headcountState
	order  []string
}

func newHeadcountStates(positions []model.HeadcountPosition) *headcountStates {
	hs := &headcountStates{byRole: make(map[string]*headcountState, len(positions))}
	for _, pos := range positions {
		hs.set(pos.Role, &headcountState{position: pos, fte: pos.CurrentFTE, currentSalary: pos.BaseSalary})
	}
	return hs
}

func (hs *headcountStates) get(role string) (*headcountState, bool) {
	s, ok := hs.byRole[role]
	return s, ok
}

func (hs *headcountStates) set(role string, s *headcountState) {
	if _, exists := hs.byRole[role]; !exists {
		hs.order = append(hs.order, role)
	}
	hs.byRole[role] = s
}

func (hs *headcountStates) inOrder() []*headcountState {
	out := make([]*headcountState, 0, len(hs.order))
	for _, role := range hs.order {
		out = append(out, hs.byRole[role])
	}
	return out
}

// debtState is the running state for one drawn debt instrument.
type debtState struct {
	name          string
	outstanding   float64
	interestRate  float64
	termMonths    int
	remainingTerm int
	graceMonths   int
}

// depreciationTrack is one capitalized asset's remaining depreciation
// schedule: months left, original amount, and salvage value.
type depreciationTrack struct {
	remaining int
	amount    float64
	salvage   float64
}
