package model

// SubscriptionCost is a recurring per-FTE tool or seat cost.
type SubscriptionCost struct {
	Name            string          `json:"name"`
	MonthlyCost     float64         `json:"monthly_cost"`
	PriceAdjustment PriceAdjustment `json:"price_adjustment"`
}

// HeadcountPosition is one role's cost structure, shared by every FTE
// currently assigned to it.
type HeadcountPosition struct {
	Role             string             `json:"role"`
	Area             string             `json:"area"`
	Level            string             `json:"level"`
	CurrentFTE       float64            `json:"current_fte"`
	BaseSalary       float64            `json:"base_salary"`
	BenefitsPct      float64            `json:"benefits_pct"`
	BenefitsFixed    float64            `json:"benefits_fixed"`
	BonusPct         float64            `json:"bonus_pct"`
	PayrollTaxesPct  float64            `json:"payroll_taxes_pct"`
	Subscriptions    []SubscriptionCost `json:"subscriptions,omitempty"`
	SalaryAdjustment PriceAdjustment    `json:"salary_adjustment"` // schema only, never applied
}

// HiringPlan adds (or overrides the salary of) FTEs for a role at a given
// month index.
type HiringPlan struct {
	Role           string   `json:"role"`
	MonthIndex     int      `json:"month_index"`
	Quantity       float64  `json:"quantity"`
	SalaryOverride *float64 `json:"salary_override,omitempty"`
}

// HeadcountModel is the full org plan: starting positions, scheduled hires,
// and monthly attrition.
type HeadcountModel struct {
	Positions    []HeadcountPosition `json:"positions"`
	Hires        []HiringPlan        `json:"hires,omitempty"`
	AttritionPct MonthlySchedule     `json:"attrition_pct"`
}

// HeadcountCostBreakdown is one area's payroll cost for the month.
type HeadcountCostBreakdown struct {
	Area          string  `json:"area"`
	Salaries      float64 `json:"salaries"`
	Benefits      float64 `json:"benefits"`
	Subscriptions float64 `json:"subscriptions"`
	Total         float64 `json:"total"`
	FTE           float64 `json:"fte"`
}
