package planner

import (
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// dayCapacity caps how many catalog sites are allocated to one day.
// Allocation is by count, not by summed visit durations.
const dayCapacity = 3

// Strategy allocates places to each day of a circuit. Two strategies
// exist: FixedCircuitStrategy replays the circuit's authored stops
// (conversational flow), CatalogAllocationStrategy fills days from the
// live site catalog (form flow). Which one runs depends only on whether
// a catalog was supplied.
type Strategy interface {
	Synthesize(circuit models.Circuit) []models.DayPlan
}

var (
	_ Strategy = (*FixedCircuitStrategy)(nil)
	_ Strategy = (*CatalogAllocationStrategy)(nil)
)

// FixedCircuitStrategy materialises the circuit's pre-written stops.
// No catalog lookup happens, so these plans survive catalog drift.
// Day costs are the authored per-person constants.
type FixedCircuitStrategy struct{}

func (FixedCircuitStrategy) Synthesize(circuit models.Circuit) []models.DayPlan {
	days := make([]models.DayPlan, 0, len(circuit.Stops))
	for i, stop := range circuit.Stops {
		places := make([]models.PlaceVisit, 0, len(stop.Places))
		for _, name := range stop.Places {
			places = append(places, models.PlaceVisit{
				Name:     name,
				Location: stop.Region,
			})
		}
		days = append(days, models.DayPlan{
			Day:           i + 1,
			Region:        stop.Region,
			Note:          stop.Note,
			Places:        places,
			EstimatedCost: stop.CostPerPerson,
		})
	}
	return days
}

// CatalogAllocationStrategy fills each circuit stop with catalog sites
// from the matching region, in catalog order, up to dayCapacity. A
// region with no sites still yields its day, tagged as a travel day.
// Costs are left at zero; the estimator prices the days afterwards.
type CatalogAllocationStrategy struct {
	Catalog []models.HeritageSite
}

func (s CatalogAllocationStrategy) Synthesize(circuit models.Circuit) []models.DayPlan {
	days := make([]models.DayPlan, 0, len(circuit.Stops))
	for i, stop := range circuit.Stops {
		day := models.DayPlan{
			Day:    i + 1,
			Region: stop.Region,
			Note:   stop.Note,
			Places: []models.PlaceVisit{},
		}
		for _, site := range s.Catalog {
			if len(day.Places) == dayCapacity {
				break
			}
			if site.Region != stop.Region {
				continue
			}
			siteID := site.ID
			day.Places = append(day.Places, models.PlaceVisit{
				SiteID:        &siteID,
				Name:          site.Name,
				Location:      site.Region,
				VisitDuration: site.VisitDuration,
			})
		}
		if len(day.Places) == 0 && day.Note == "" {
			day.Note = "Travel and transition day"
		}
		days = append(days, day)
	}
	return days
}
