package model

// WorkingCapitalModel drives accounts receivable, accounts payable and
// inventory off days-outstanding targets, and sets the cash floor the
// calculator backstops against.
type WorkingCapitalModel struct {
	DSO            float64 `json:"dso"`
	DPO            float64 `json:"dpo"`
	DIO            float64 `json:"dio"`
	MinCashBalance float64 `json:"min_cash_balance"`
}

// WorkingCapitalDelta is the month's change in each working-capital balance.
type WorkingCapitalDelta struct {
	ChangeAR        float64 `json:"change_ar"`
	ChangeAP        float64 `json:"change_ap"`
	ChangeInventory float64 `json:"change_inventory"`
	TotalChange     float64 `json:"total_change"`
}
