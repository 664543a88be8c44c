package model

// TaxBase names the figure a tax component is computed against.
type TaxBase string

const (
	TaxBaseGrossRevenue TaxBase = "gross_revenue"
	TaxBaseNetRevenue   TaxBase = "net_revenue"
	TaxBaseEBIT         TaxBase = "ebit"
	TaxBaseEBT          TaxBase = "ebt"
	TaxBasePayroll      TaxBase = "payroll"
)

// TaxRegime is carried for reporting; it does not change how TaxModel.Taxes
// is evaluated.
type TaxRegime string

const (
	RegimeSimples        TaxRegime = "simples"
	RegimeLucroPresumido TaxRegime = "lucro_presumido"
	RegimeLucroReal      TaxRegime = "lucro_real"
	RegimeCustom         TaxRegime = "custom"
)

// TaxBracket is one step of a progressive schedule. Schema only: see
// ProgressiveTax.
type TaxBracket struct {
	Threshold float64 `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// TaxComponent is a flat-rate tax applied against one TaxBase.
type TaxComponent struct {
	Name       string  `json:"name"`
	Base       TaxBase `json:"base"`
	Rate       float64 `json:"rate"`
	Deductible bool    `json:"deductible"`
}

// ProgressiveTax is schema only: the engine never evaluates bracketed taxes
// (see SPEC_FULL.md §6, decision 3). It is carried so the schema round-trips
// reference scenarios that set it.
type ProgressiveTax struct {
	Name     string       `json:"name"`
	Base     TaxBase      `json:"base"`
	Brackets []TaxBracket `json:"brackets"`
}

// TaxCredit is schema only, never applied, for the same reason as
// ProgressiveTax.
type TaxCredit struct {
	Name string  `json:"name"`
	Base TaxBase `json:"base"`
	Rate float64 `json:"rate"`
}

// TaxModel is the scenario's full tax configuration. Only Taxes and
// EffectiveIncomeTaxRate drive the monthly calculation; Progressive and
// Credits are carried but never evaluated.
type TaxModel struct {
	Regime                 TaxRegime        `json:"regime"`
	Taxes                  []TaxComponent   `json:"taxes,omitempty"`
	Progressive            []ProgressiveTax `json:"progressive,omitempty"`
	Credits                []TaxCredit      `json:"credits,omitempty"`
	EffectiveIncomeTaxRate float64          `json:"effective_income_tax_rate"`
}

// TaxBreakdown is one tax component's computed amount for the month.
type TaxBreakdown struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
