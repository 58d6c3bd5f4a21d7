package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

func samplePlan() *models.TripPlan {
	travelers := 2
	match := true
	return &models.TripPlan{
		Title:        "3-Day Chennai Weekend Package",
		DurationDays: 3,
		Travelers:    &travelers,
		Days: []models.DayPlan{
			{
				Day:    1,
				Region: "Chennai",
				Places: []models.PlaceVisit{
					{Name: "Fort St. George", VisitDuration: "2 hours"},
					{Name: "Marina Beach"},
				},
				EstimatedCost: 4030,
			},
			{
				Day:           2,
				Region:        "Mahabalipuram",
				Note:          "60km coastal drive from Chennai",
				Places:        []models.PlaceVisit{{Name: "Shore Temple", VisitDuration: "1.5 hours"}},
				EstimatedCost: 4080,
			},
		},
		TotalCost:   8110,
		BudgetMatch: &match,
	}
}

func TestRenderNarrative(t *testing.T) {
	narrative := RenderNarrative(samplePlan())

	assert.Contains(t, narrative, "3-Day Chennai Weekend Package")
	assert.Contains(t, narrative, "Day 1 - Chennai")
	assert.Contains(t, narrative, "Day 2 - Mahabalipuram")
	assert.Contains(t, narrative, "60km coastal drive from Chennai")
	assert.Contains(t, narrative, "• Fort St. George (2 hours)")
	assert.Contains(t, narrative, "• Marina Beach\n")
	assert.Contains(t, narrative, "💰 Estimated: ₹4,030")
	assert.Contains(t, narrative, "Total Cost: ₹8,110")
	assert.Contains(t, narrative, "Travelers: 2")
	assert.Contains(t, narrative, "✓ Within Budget")
}

func TestRenderNarrativePerPersonSuffix(t *testing.T) {
	plan := &models.TripPlan{
		Title:         "5-Day Temple Circuit Package",
		DurationDays:  5,
		Days:          []models.DayPlan{{Day: 1, Region: "Chennai", EstimatedCost: 2500}},
		TotalCost:     14000,
		PerPersonCost: true,
	}

	narrative := RenderNarrative(plan)
	assert.Contains(t, narrative, "₹2,500/person")
	assert.Contains(t, narrative, "Total Cost: ₹14,000/person")
	// No budget was stated, so no verdict renders
	assert.NotContains(t, narrative, "Within Budget")
	assert.NotContains(t, narrative, "Exceeds Budget")
}

func TestRenderNarrativeExceedsBudget(t *testing.T) {
	plan := samplePlan()
	match := false
	plan.BudgetMatch = &match

	assert.Contains(t, RenderNarrative(plan), "⚠ Exceeds Budget")
}

func TestRenderForExportStripsOrnamentation(t *testing.T) {
	exported := RenderForExport(samplePlan())

	assert.NotContains(t, exported, "💰")
	assert.NotContains(t, exported, "₹")
	assert.NotContains(t, exported, "•")
	assert.NotContains(t, exported, "✓")
	assert.NotContains(t, exported, "⚠")

	assert.Contains(t, exported, "- Fort St. George (2 hours)")
	assert.Contains(t, exported, "Estimated: Rs. 4,030")
	assert.Contains(t, exported, "Total Cost: Rs. 8,110")
	assert.Contains(t, exported, "Within Budget")
}

// The export carries the same facts as the live narrative, only the
// characters differ.
func TestExportMatchesNarrativeLineForLine(t *testing.T) {
	plan := samplePlan()
	narrative := strings.Split(RenderNarrative(plan), "\n")
	exported := strings.Split(RenderForExport(plan), "\n")

	assert.Equal(t, len(narrative), len(exported))
}

func TestRenderSavedTolerantOfMissingFields(t *testing.T) {
	record := &models.SavedItinerary{DurationDays: 7}

	out := RenderSaved(record)
	assert.Contains(t, out, "7 Day Tamil Nadu Tour")
	assert.Contains(t, out, "Duration: 7 days")
	assert.NotContains(t, out, "Travelers:")
	assert.NotContains(t, out, "Estimated Cost:")
}

func TestRenderSavedWithDays(t *testing.T) {
	travelers := 4
	cost := int64(32000)
	record := &models.SavedItinerary{
		Title:        "7-Day Grand Heritage Package",
		DurationDays: 7,
		Travelers:    &travelers,
		TotalCost:    &cost,
		Days: []models.DayPlan{
			{Day: 1, Region: "Chennai", Places: []models.PlaceVisit{{Name: "Fort St. George"}}, EstimatedCost: 4000},
		},
	}

	out := RenderSaved(record)
	assert.Contains(t, out, "7-Day Grand Heritage Package")
	assert.Contains(t, out, "Travelers: 4")
	assert.Contains(t, out, "Estimated Cost: Rs. 32,000")
	assert.Contains(t, out, "Day 1 - Chennai")
	assert.Contains(t, out, "- Fort St. George")
	assert.Contains(t, out, "Day Cost: Rs. 4,000")
}

func TestRecommendationReply(t *testing.T) {
	assert.Equal(t, templesAndCraftsReply, recommendationReply(models.InterestSet{Spiritual: true, Crafts: true}))
	assert.Equal(t, templesReply, recommendationReply(models.InterestSet{Spiritual: true}))
	assert.Equal(t, monumentsReply, recommendationReply(models.InterestSet{Historical: true}))
	assert.Equal(t, clarifyReply, recommendationReply(models.InterestSet{}))
	assert.Equal(t, clarifyReply, recommendationReply(models.InterestSet{Food: true}))
}
