package calc

import "valuationengine/pkg/core/model"

// computeDepreciation capitalizes any capex scheduled at monthIndex,
// charges every still-active track (amount - salvage) divided by its months
// remaining (recomputed each month against the original amount, so the
// charge rises as the track runs down), and returns the
// month's depreciation expense along with the updated accumulated
// depreciation and fixed-asset balances. tracks is replaced in place with
// the surviving tracks (remaining > 0 after this month is consumed).
func computeDepreciation(
	monthIndex int,
	capexItems []model.CapexItem,
	tracks []depreciationTrack,
	fixedAssets float64,
	accumulatedDepreciation float64,
) (float64, float64, float64, []depreciationTrack) {
	for _, item := range capexItems {
		if item.MonthIndex != monthIndex {
			continue
		}
		fixedAssets += item.Amount
		tracks = append(tracks, depreciationTrack{
			remaining: item.UsefulLifeMonths,
			amount:    item.Amount,
			salvage:   item.SalvageValue,
		})
	}

	var depreciation float64
	updated := make([]depreciationTrack, 0, len(tracks))
	for _, track := range tracks {
		if track.remaining <= 0 {
			continue
		}
		monthlyDep := (track.amount - track.salvage) / float64(track.remaining)
		if monthlyDep < 0 {
			monthlyDep = 0
		}
		depreciation += monthlyDep
		track.remaining--
		if track.remaining > 0 {
			updated = append(updated, track)
		}
	}
	accumulatedDepreciation += depreciation

	return depreciation, accumulatedDepreciation, fixedAssets, updated
}
