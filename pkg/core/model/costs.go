package model

// CostNature distinguishes a fixed amount from one driven by a revenue base.
type CostNature string

const (
	CostFixed    CostNature = "fixed"
	CostVariable CostNature = "variable"
)

// CostAllocation routes a cost into COGS or operating expenses.
type CostAllocation string

const (
	AllocationCOGS CostAllocation = "cogs"
	AllocationOpex CostAllocation = "opex"
)

// CostCenter buckets a cost for reporting.
type CostCenter string

const (
	CenterEngineering CostCenter = "engineering"
	CenterProduct     CostCenter = "product"
	CenterSales       CostCenter = "sales"
	CenterMarketing   CostCenter = "marketing"
	CenterCS          CostCenter = "cs"
	CenterGNA         CostCenter = "gna"
	CenterOther       CostCenter = "other"
)

// CostItem is one recurring cost line, fixed or revenue-variable, subject to
// a monthly schedule multiplier and a price adjustment.
type CostItem struct {
	Name            string          `json:"name"`
	Nature          CostNature      `json:"nature"`
	Allocation      CostAllocation  `json:"allocation"`
	CostCenter      CostCenter      `json:"cost_center"`
	BaseAmount      float64         `json:"base_amount"`
	VariableRate    float64         `json:"variable_rate"`
	Driver          string          `json:"driver"` // "revenue" (net) or anything else (gross)
	PriceAdjustment PriceAdjustment `json:"price_adjustment"`
	Schedule        MonthlySchedule `json:"schedule"`
}

// SupplierContract is a cost that starts at a given month and escalates on a
// fixed cadence thereafter.
type SupplierContract struct {
	Name                     string         `json:"name"`
	StartMonth               int            `json:"start_month"`
	BaseAmount               float64        `json:"base_amount"`
	EscalationPct            float64        `json:"escalation_pct"`
	EscalationFrequencyMonths int           `json:"escalation_frequency_months"`
	Allocation               CostAllocation `json:"allocation"`
	CostCenter               CostCenter     `json:"cost_center"`
}

// CostModel is every non-payroll cost driver in the scenario.
type CostModel struct {
	Items             []CostItem         `json:"items,omitempty"`
	SupplierContracts []SupplierContract `json:"supplier_contracts,omitempty"`
	COGSVariablePct   float64            `json:"cogs_variable_pct"`
	COGSPerCustomer   float64            `json:"cogs_per_customer"`
}

// CostBreakdown is one cost center's total for the month.
type CostBreakdown struct {
	CostCenter CostCenter `json:"cost_center"`
	Amount     float64    `json:"amount"`
}
