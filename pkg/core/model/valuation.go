package model

// TerminalValueMethod selects how the DCF's terminal value is derived.
type TerminalValueMethod string

const (
	TerminalPerpetuity TerminalValueMethod = "perpetuity"
	TerminalMultiple   TerminalValueMethod = "multiple"
)

// MultipleMetric names the financial figure a valuation multiple applies to.
type MultipleMetric string

const (
	MetricRevenue MultipleMetric = "revenue"
	MetricEBITDA  MultipleMetric = "ebitda"
	MetricARR     MultipleMetric = "arr"
)

// VCExitStrategy is carried on scenarios for reporting; the VC method itself
// is exit-metric driven regardless of which strategy is named.
type VCExitStrategy string

const (
	ExitIPO        VCExitStrategy = "ipo"
	ExitStrategic  VCExitStrategy = "strategic"
	ExitSecondary  VCExitStrategy = "secondary"
)

// CapmInputs optionally derives ValuationSettings.WACC via CAPM and a
// Hamada re-levered beta, rather than requiring the caller to supply a flat
// rate directly. When set, the calculator replaces WACC with the derived
// value before running the DCF; this is additive to the reference
// implementation (see SPEC_FULL.md §4.2).
type CapmInputs struct {
	UnleveredBeta      float64 `json:"unlevered_beta"`
	RiskFreeRate       float64 `json:"risk_free_rate"`
	MarketRiskPremium  float64 `json:"market_risk_premium"`
	PreTaxCostOfDebt   float64 `json:"pre_tax_cost_of_debt"`
	TargetDebtToEquity float64 `json:"target_debt_to_equity"`
	TaxRate            float64 `json:"tax_rate"`
}

// ValuationSettings configures every valuation method the engine runs.
type ValuationSettings struct {
	WACC                    float64            `json:"wacc"`
	CapmInputs              *CapmInputs        `json:"capm_inputs,omitempty"`
	PerpetualGrowthRate     float64            `json:"perpetual_growth_rate"`
	TerminalMethod          TerminalValueMethod `json:"terminal_method"`
	TerminalMultiple        float64            `json:"terminal_multiple"`
	TerminalMultipleMetric  MultipleMetric     `json:"terminal_multiple_metric"`
	ExitYearMultiple        float64            `json:"exit_year_multiple"`
	TargetExitYear          int                `json:"target_exit_year"`
	DiscountRateVC          float64            `json:"discount_rate_vc"`
	ProbabilityOfSuccess    float64            `json:"probability_of_success"`
	ScorecardWeights        map[string]float64 `json:"scorecard_weights,omitempty"`
}

// DiscountedCashFlowResult is the DCF method's full output, including the
// per-month discount factors applied to each month's FCFF.
type DiscountedCashFlowResult struct {
	EnterpriseValue   float64   `json:"enterprise_value"`
	EquityValue       float64   `json:"equity_value"`
	PVOfCashFlows     float64   `json:"pv_of_cash_flows"`
	PVOfTerminalValue float64   `json:"pv_of_terminal_value"`
	TerminalValue     float64   `json:"terminal_value"`
	DiscountFactors   []float64 `json:"discount_factors"`
}

// MultipleValuationResult is one comparable-multiple valuation.
type MultipleValuationResult struct {
	Metric   MultipleMetric `json:"metric"`
	Multiple float64        `json:"multiple"`
	Value    float64        `json:"value"`
}

// VCValuationResult is the venture-capital method's output.
type VCValuationResult struct {
	ExitValue          float64 `json:"exit_value"`
	OwnershipRequired  float64 `json:"ownership_required"`
	PostMoney          float64 `json:"post_money"`
	PreMoney           float64 `json:"pre_money"`
}

// ScorecardValuationResult is the (optional) scorecard method's output.
type ScorecardValuationResult struct {
	TotalScore float64 `json:"total_score"`
	Valuation  float64 `json:"valuation"`
}

// ValuationResult bundles every valuation method the engine ran. Scorecard
// is nil when ValuationSettings.ScorecardWeights is empty.
type ValuationResult struct {
	DCF       DiscountedCashFlowResult   `json:"dcf"`
	Multiples []MultipleValuationResult  `json:"multiples"`
	VCMethod  VCValuationResult          `json:"vc_method"`
	Scorecard *ScorecardValuationResult  `json:"scorecard,omitempty"`
}
