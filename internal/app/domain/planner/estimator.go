package planner

import (
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// dayOverheadPerPerson is the flat daily overhead in rupees covering
// transport, food and lodging amortisation on catalog-backed plans.
const dayOverheadPerPerson = 2000

// Estimator prices catalog-backed day plans. Canonical circuits are not
// estimated here: their day costs are authored constants that do not
// scale with the traveller count, a preserved quirk of the original
// package pricing.
type Estimator struct {
	fees map[string]int64
}

// NewEstimator indexes the catalog's entry fees. Sites without a
// published fee contribute zero but still occupy their day slot.
func NewEstimator(catalog []models.HeritageSite) *Estimator {
	fees := make(map[string]int64, len(catalog))
	for _, site := range catalog {
		if site.EntryFee != nil {
			fees[site.ID] = *site.EntryFee
		}
	}
	return &Estimator{fees: fees}
}

// EstimateDay returns the group cost for one day: per-person entry fees
// plus the flat day overhead, multiplied by the traveller count.
func (e *Estimator) EstimateDay(day models.DayPlan, travelers int) int64 {
	if travelers < 1 {
		travelers = 1
	}
	var fees int64
	for _, place := range day.Places {
		if place.SiteID != nil {
			fees += e.fees[*place.SiteID]
		}
	}
	return (fees + dayOverheadPerPerson) * int64(travelers)
}

// TotalCost sums day costs exactly; no rounding is applied anywhere, so
// the plan total always equals the sum of its days.
func TotalCost(days []models.DayPlan) int64 {
	var total int64
	for _, day := range days {
		total += day.EstimatedCost
	}
	return total
}
