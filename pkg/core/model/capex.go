package model

// CapexItem is a one-time capital purchase depreciated over
// UsefulLifeMonths. Each month's charge is (Amount - SalvageValue) divided
// by the months still remaining, so the charge rises month by month and the
// total charged is not capped at Amount - SalvageValue.
type CapexItem struct {
	Name             string  `json:"name"`
	MonthIndex       int     `json:"month_index"`
	Amount           float64 `json:"amount"`
	UsefulLifeMonths int     `json:"useful_life_months"`
	SalvageValue     float64 `json:"salvage_value"`
}

// CapexModel is the scenario's full capital expenditure schedule.
type CapexModel struct {
	Items []CapexItem `json:"items"`
}

// DepreciationSchedule reports one asset's depreciation and remaining book
// value for the month.
type DepreciationSchedule struct {
	Name           string  `json:"name"`
	Depreciation   float64 `json:"depreciation"`
	NetBookValue   float64 `json:"net_book_value"`
}
