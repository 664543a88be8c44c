package model

// DebtType distinguishes an amortizing term loan from a revolver.
type DebtType string

const (
	DebtTerm     DebtType = "term"
	DebtRevolver DebtType = "revolver"
)

// EquityRound is a priced equity injection at a given month.
type EquityRound struct {
	Name               string  `json:"name"`
	MonthIndex         int     `json:"month_index"`
	Amount             float64 `json:"amount"`
	PostMoneyValuation float64 `json:"post_money_valuation"`
	DilutionPct        float64 `json:"dilution_pct"`
}

// DebtInstrument is a loan drawn at a given month, amortized over TermMonths
// after an optional grace period during which only interest accrues.
type DebtInstrument struct {
	Name                string   `json:"name"`
	MonthIndex          int      `json:"month_index"`
	Amount              float64  `json:"amount"`
	InterestRateAnnual  float64  `json:"interest_rate_annual"`
	TermMonths          int      `json:"term_months"`
	DebtType            DebtType `json:"debt_type"`
	GracePeriodMonths   int      `json:"grace_period_months"`
}

// FundingModel is every capital event the scenario injects.
type FundingModel struct {
	EquityRounds []EquityRound    `json:"equity_rounds,omitempty"`
	Debt         []DebtInstrument `json:"debt,omitempty"`
}

// CapitalStructureSnapshot reports a point-in-time cap table summary.
type CapitalStructureSnapshot struct {
	EquityValue    float64 `json:"equity_value"`
	DebtOutstanding float64 `json:"debt_outstanding"`
	OptionPoolPct  float64 `json:"option_pool_pct"`
}
