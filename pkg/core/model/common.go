// Package model defines the typed schema for scenario inputs and results:
// the monthly startup projection and valuation engine reads a ScenarioInput
// and produces a ScenarioResult, with every nested type declared here.
package model

import (
	"fmt"
	"math"
	"time"
)

// ScenarioType classifies a scenario along the usual base/bull/bear axis.
type ScenarioType string

const (
	ScenarioBase ScenarioType = "base"
	ScenarioBull ScenarioType = "bull"
	ScenarioBear ScenarioType = "bear"
)

// CurrencySettings carries FX metadata. FXRate is never applied during
// calculation; it exists for presentation layers outside this engine.
type CurrencySettings struct {
	BaseCurrency    string  `json:"base_currency"`
	DisplayCurrency string  `json:"display_currency"`
	FXRate          float64 `json:"fx_rate"`
}

// InflationIndex is a named annual rate that can be compounded into a
// monthly-equivalent factor.
type InflationIndex struct {
	Name       string  `json:"name"`
	AnnualRate float64 `json:"annual_rate"`
}

// MonthlyFactor converts AnnualRate into the equivalent monthly growth rate.
func (i InflationIndex) MonthlyFactor() float64 {
	return math.Pow(1+i.AnnualRate, 1.0/12.0) - 1
}

// TimeframeSettings bounds the simulated horizon.
type TimeframeSettings struct {
	StartDate time.Time `json:"start_date"`
	Months    int       `json:"months"`
}

// ScenarioMeta identifies a scenario for storage and display.
type ScenarioMeta struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ScenarioType ScenarioType `json:"scenario_type"`
	Timezone     string       `json:"timezone"`
	Description  string       `json:"description,omitempty"`
}

// PriceAdjustment combines a custom monthly rate with an optional inflation
// index; both contribute additively to the month's adjustment factor.
type PriceAdjustment struct {
	Indexer           *InflationIndex `json:"indexer,omitempty"`
	CustomMonthlyRate float64         `json:"custom_monthly_rate"`
}

// FactorForMonth returns the combined adjustment factor. monthIndex is
// accepted for symmetry with other schedule types; the rate is flat across
// months in this model.
func (p PriceAdjustment) FactorForMonth(monthIndex int) float64 {
	base := p.CustomMonthlyRate
	if p.Indexer != nil {
		base += p.Indexer.MonthlyFactor()
	}
	return base
}

// MonthlySchedule is a default value with 0-based month-index overrides.
type MonthlySchedule struct {
	Default     float64         `json:"default"`
	Adjustments map[int]float64 `json:"adjustments,omitempty"`
}

// ValueFor returns the override for monthIndex if one exists, else Default.
func (s MonthlySchedule) ValueFor(monthIndex int) float64 {
	if v, ok := s.Adjustments[monthIndex]; ok {
		return v
	}
	return s.Default
}

// SeasonalPattern is a length-12 multiplier cycle.
type SeasonalPattern struct {
	Values []float64 `json:"values"`
}

// FlatSeasonalPattern returns a pattern with no seasonality.
func FlatSeasonalPattern() SeasonalPattern {
	values := make([]float64, 12)
	for i := range values {
		values[i] = 1.0
	}
	return SeasonalPattern{Values: values}
}

// Factor returns the multiplier for monthIndex, wrapping every 12 months.
func (p SeasonalPattern) Factor(monthIndex int) float64 {
	if len(p.Values) == 0 {
		return 1.0
	}
	return p.Values[monthIndex%len(p.Values)]
}

// RampUpSettings is carried on every revenue plan but not applied by the
// monthly loop (see the Open Question decisions in SPEC_FULL.md §6) — it is schema
// only, kept for forward compatibility with the reference implementation.
type RampUpSettings struct {
	Months int     `json:"months"`
	Factor float64 `json:"factor"`
}

// CompanyState is the opening balance sheet the simulation starts from.
type CompanyState struct {
	AsOf                   time.Time `json:"as_of"`
	Cash                   float64   `json:"cash"`
	AccountsReceivable     float64   `json:"accounts_receivable"`
	AccountsPayable        float64   `json:"accounts_payable"`
	Inventory              float64   `json:"inventory"`
	FixedAssets            float64   `json:"fixed_assets"`
	AccumulatedDepreciation float64  `json:"accumulated_depreciation"`
	Debt                   float64   `json:"debt"`
	Equity                 float64   `json:"equity"`
}

// NetFixedAssets returns fixed assets net of accumulated depreciation,
// floored at zero.
func (c CompanyState) NetFixedAssets() float64 {
	return math.Max(0.0, c.FixedAssets-c.AccumulatedDepreciation)
}

// ValidationError reports a single invalid field on a ScenarioInput. The
// HTTP layer maps it to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
