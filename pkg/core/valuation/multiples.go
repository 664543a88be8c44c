package valuation

import "valuationengine/pkg/core/model"

// computeMultiples prices the last annual summary's EBITDA, net revenue and
// ARR proxy against the scenario's terminal and exit multiples, per
// spec.md §4.5: the metric matching terminal_multiple_metric uses
// terminal_multiple; every other metric uses exit_year_multiple if
// non-zero, else falls back to terminal_multiple.
func computeMultiples(annual []model.AnnualSummary, settings model.ValuationSettings) []model.MultipleValuationResult {
	if len(annual) == 0 {
		return nil
	}
	last := annual[len(annual)-1]

	metrics := []model.MultipleMetric{model.MetricEBITDA, model.MetricRevenue, model.MetricARR}
	results := make([]model.MultipleValuationResult, 0, len(metrics))
	for _, metric := range metrics {
		value := terminalMetricValue(last, metric)
		multiple := settings.ExitYearMultiple
		if metric == settings.TerminalMultipleMetric {
			multiple = settings.TerminalMultiple
		} else if multiple == 0 {
			multiple = settings.TerminalMultiple
		}
		results = append(results, model.MultipleValuationResult{
			Metric:   metric,
			Multiple: multiple,
			Value:    value * multiple,
		})
	}
	return results
}
