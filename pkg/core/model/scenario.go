package model

// ScenarioInput is the complete, fully-specified description of a startup
// scenario: every driver the monthly calculator reads.
type ScenarioInput struct {
	Meta           ScenarioMeta         `json:"meta"`
	Currency       CurrencySettings     `json:"currency"`
	Timeframe      TimeframeSettings    `json:"timeframe"`
	CompanyState   CompanyState         `json:"company_state"`
	Revenue        RevenueModel         `json:"revenue"`
	Headcount      HeadcountModel       `json:"headcount"`
	Costs          CostModel            `json:"costs"`
	Taxes          TaxModel             `json:"taxes"`
	Capex          CapexModel           `json:"capex"`
	WorkingCapital WorkingCapitalModel  `json:"working_capital"`
	Funding        FundingModel         `json:"funding"`
	Valuation      ValuationSettings    `json:"valuation"`
}

// Validate reports the first structural problem found in the scenario, the
// shape-level checks spec.md §7 calls for (months, ramp-up factor range,
// required identifiers). It does not evaluate financial plausibility.
func (s ScenarioInput) Validate() error {
	if s.Meta.ID == "" {
		return &ValidationError{Field: "meta.id", Message: "must not be empty"}
	}
	if s.Timeframe.Months < 1 {
		return &ValidationError{Field: "timeframe.months", Message: "must be >= 1"}
	}
	for _, plan := range s.Revenue.Plans {
		if plan.RampUp.Factor < 0 || plan.RampUp.Factor > 1 {
			return &ValidationError{Field: "revenue.plans[" + plan.Name + "].ramp_up.factor", Message: "must be between 0 and 1"}
		}
		if plan.RevenueDeferralMonths < 0 {
			return &ValidationError{Field: "revenue.plans[" + plan.Name + "].revenue_deferral_months", Message: "must be >= 0"}
		}
	}
	return nil
}

// Clone returns a deep copy of the scenario so a stored scenario can be
// mutated (e.g. via clone_from, or a per-run months override) without
// affecting the original.
func (s ScenarioInput) Clone() ScenarioInput {
	clone := s

	clone.Revenue.Plans = append([]RevenuePlan(nil), s.Revenue.Plans...)
	for i, plan := range clone.Revenue.Plans {
		clone.Revenue.Plans[i].NewCustomers.Adjustments = cloneFloatMap(plan.NewCustomers.Adjustments)
		clone.Revenue.Plans[i].ChurnRate.Adjustments = cloneFloatMap(plan.ChurnRate.Adjustments)
		clone.Revenue.Plans[i].ExpansionRate.Adjustments = cloneFloatMap(plan.ExpansionRate.Adjustments)
		clone.Revenue.Plans[i].ContractionRate.Adjustments = cloneFloatMap(plan.ContractionRate.Adjustments)
		clone.Revenue.Plans[i].DiscountRate.Adjustments = cloneFloatMap(plan.DiscountRate.Adjustments)
		clone.Revenue.Plans[i].ARPAGrowthRate.Adjustments = cloneFloatMap(plan.ARPAGrowthRate.Adjustments)
		clone.Revenue.Plans[i].TransactionalVolume.Adjustments = cloneFloatMap(plan.TransactionalVolume.Adjustments)
		clone.Revenue.Plans[i].SeasonalPattern.Values = append([]float64(nil), plan.SeasonalPattern.Values...)
	}
	clone.Revenue.OtherRecurringRevenue.Adjustments = cloneFloatMap(s.Revenue.OtherRecurringRevenue.Adjustments)
	clone.Revenue.ProfessionalServicesRevenue.Adjustments = cloneFloatMap(s.Revenue.ProfessionalServicesRevenue.Adjustments)
	clone.Revenue.Adjustments = cloneFloatMapString(s.Revenue.Adjustments)

	clone.Headcount.Positions = append([]HeadcountPosition(nil), s.Headcount.Positions...)
	for i := range clone.Headcount.Positions {
		clone.Headcount.Positions[i].Subscriptions = append([]SubscriptionCost(nil), s.Headcount.Positions[i].Subscriptions...)
	}
	clone.Headcount.Hires = append([]HiringPlan(nil), s.Headcount.Hires...)
	clone.Headcount.AttritionPct.Adjustments = cloneFloatMap(s.Headcount.AttritionPct.Adjustments)

	clone.Costs.Items = append([]CostItem(nil), s.Costs.Items...)
	for i := range clone.Costs.Items {
		clone.Costs.Items[i].Schedule.Adjustments = cloneFloatMap(s.Costs.Items[i].Schedule.Adjustments)
	}
	clone.Costs.SupplierContracts = append([]SupplierContract(nil), s.Costs.SupplierContracts...)

	clone.Taxes.Taxes = append([]TaxComponent(nil), s.Taxes.Taxes...)
	clone.Taxes.Progressive = append([]ProgressiveTax(nil), s.Taxes.Progressive...)
	clone.Taxes.Credits = append([]TaxCredit(nil), s.Taxes.Credits...)

	clone.Capex.Items = append([]CapexItem(nil), s.Capex.Items...)

	clone.Funding.EquityRounds = append([]EquityRound(nil), s.Funding.EquityRounds...)
	clone.Funding.Debt = append([]DebtInstrument(nil), s.Funding.Debt...)

	if s.Valuation.CapmInputs != nil {
		capm := *s.Valuation.CapmInputs
		clone.Valuation.CapmInputs = &capm
	}
	clone.Valuation.ScorecardWeights = cloneFloatMapString(s.Valuation.ScorecardWeights)

	return clone
}

func cloneFloatMap(m map[int]float64) map[int]float64 {
	if m == nil {
		return nil
	}
	out := make(map[int]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneFloatMapString(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
