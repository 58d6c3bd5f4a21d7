package planner

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// rupees renders amounts with Indian digit grouping (₹1,00,000).
var rupees = message.NewPrinter(language.MustParse("en-IN"))

func formatRupees(amount int64) string {
	return rupees.Sprintf("%d", amount)
}

// RenderNarrative produces the human-readable description of a plan.
// Every fact in the narrative also exists on the structured plan, so
// export and persistence never parse prose to recover data.
func RenderNarrative(plan *models.TripPlan) string {
	perPerson := ""
	if plan.PerPersonCost {
		perPerson = "/person"
	}

	var b strings.Builder
	b.WriteString(plan.Title)
	b.WriteString("\n")

	for _, day := range plan.Days {
		fmt.Fprintf(&b, "\nDay %d - %s\n", day.Day, day.Region)
		if day.Note != "" {
			fmt.Fprintf(&b, "%s\n", day.Note)
		}
		for _, place := range day.Places {
			if place.VisitDuration != "" {
				fmt.Fprintf(&b, "• %s (%s)\n", place.Name, place.VisitDuration)
			} else {
				fmt.Fprintf(&b, "• %s\n", place.Name)
			}
		}
		fmt.Fprintf(&b, "💰 Estimated: ₹%s%s\n", formatRupees(day.EstimatedCost), perPerson)
	}

	fmt.Fprintf(&b, "\nTotal Cost: ₹%s%s\n", formatRupees(plan.TotalCost), perPerson)
	if plan.Travelers != nil {
		fmt.Fprintf(&b, "Travelers: %d\n", *plan.Travelers)
	}
	if plan.BudgetMatch != nil {
		if *plan.BudgetMatch {
			b.WriteString("✓ Within Budget\n")
		} else {
			b.WriteString("⚠ Exceeds Budget\n")
		}
	}
	return b.String()
}

// exportReplacer strips chat ornamentation for the document generator.
var exportReplacer = strings.NewReplacer(
	"💰 ", "",
	"💰", "",
	"✓ ", "",
	"⚠ ", "",
	"• ", "- ",
	"•", "-",
	"₹", "Rs. ",
	"**", "",
)

// RenderForExport returns the narrative-only form handed to the export
// collaborator: same content as the live display, plain characters only.
func RenderForExport(plan *models.TripPlan) string {
	return exportReplacer.Replace(RenderNarrative(plan))
}

// RenderSaved reformats a persisted record. Older records may miss
// travellers, cost or the day list entirely; whatever is absent is
// simply omitted and the summary fields still render.
func RenderSaved(record *models.SavedItinerary) string {
	var b strings.Builder
	title := record.Title
	if title == "" {
		title = fmt.Sprintf("%d Day Tamil Nadu Tour", record.DurationDays)
	}
	b.WriteString(title)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Duration: %d days\n", record.DurationDays)
	if record.Travelers != nil {
		fmt.Fprintf(&b, "Travelers: %d\n", *record.Travelers)
	}
	if record.TotalCost != nil {
		fmt.Fprintf(&b, "Estimated Cost: Rs. %s\n", formatRupees(*record.TotalCost))
	}

	if len(record.Days) > 0 {
		for _, day := range record.Days {
			fmt.Fprintf(&b, "\nDay %d - %s\n", day.Day, day.Region)
			if day.Note != "" {
				fmt.Fprintf(&b, "%s\n", day.Note)
			}
			for _, place := range day.Places {
				if place.VisitDuration != "" {
					fmt.Fprintf(&b, "- %s (%s)\n", place.Name, place.VisitDuration)
				} else {
					fmt.Fprintf(&b, "- %s\n", place.Name)
				}
			}
			fmt.Fprintf(&b, "Day Cost: Rs. %s\n", formatRupees(day.EstimatedCost))
		}
	} else if record.Description != "" {
		b.WriteString("\n")
		b.WriteString(exportReplacer.Replace(record.Description))
	}
	return b.String()
}

// Conversational reply templates. These carry no plan facts of their
// own; plan-bearing replies embed the narrative rendered above.

const redirectReply = "I'm a specialized travel planning assistant for Tamil Nadu heritage sites. " +
	"I can only help you plan your itinerary and suggest places to visit. " +
	"Would you like me to help plan your Tamil Nadu trip?"

const clarifyReply = "I'd love to help plan your Tamil Nadu heritage trip!\n\n" +
	"To create the perfect itinerary, please tell me:\n" +
	"1. How many days do you have? (3, 5, 7, or 10 days)\n" +
	"2. What interests you? Temples, monuments, crafts, cuisine or beaches\n" +
	"3. Budget preference? (Budget/Standard/Luxury)"

const unsupportedDurationReply = "I have ready-made circuits for 3, 5, 7 and 10 day trips " +
	"(anything longer gets the full 10-day experience). " +
	"Could you pick one of those durations so I can build your itinerary?"

const templesAndCraftsReply = "Based on your interest in temples and traditional crafts, I recommend:\n\n" +
	"• Thanjavur - Brihadeeswara Temple, paintings and bronze works\n" +
	"• Swamimalai - bronze sculpture workshops\n" +
	"• Kumbakonam - temple circuit and crafts\n" +
	"• Kanchipuram - temples and silk sarees\n\n" +
	"Ideal duration: 5-7 days. How many days do you have for your trip?"

const templesReply = "For a spiritual temple tour, I suggest:\n\n" +
	"• Meenakshi Amman Temple, Madurai\n" +
	"• Brihadeeswara Temple, Thanjavur\n" +
	"• Shore Temple, Mahabalipuram\n" +
	"• Ramanathaswamy Temple, Rameshwaram\n\n" +
	"5-7 days would be ideal to cover these properly. What's your preferred trip duration?"

const monumentsReply = "For historical monuments and architecture:\n\n" +
	"• Mahabalipuram Group of Monuments (UNESCO)\n" +
	"• Thanjavur Maratha Palace\n" +
	"• Gangaikonda Cholapuram\n" +
	"• Fort St. George, Chennai\n" +
	"• Chettinad Mansions\n\n" +
	"3-5 days covers the major sites. Tell me your trip duration and I'll create a detailed itinerary!"

// recommendationReply picks the interest-driven suggestion shown when a
// message is in domain but names no usable duration.
func recommendationReply(interests models.InterestSet) string {
	switch {
	case interests.Spiritual && interests.Crafts:
		return templesAndCraftsReply
	case interests.Spiritual:
		return templesReply
	case interests.Historical:
		return monumentsReply
	default:
		return clarifyReply
	}
}

// presentationIntro is the framing line ahead of a freshly synthesized
// plan in chat.
func presentationIntro(circuit models.Circuit) string {
	return fmt.Sprintf("Here's your %s:", circuit.Title)
}
