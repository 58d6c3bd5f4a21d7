package planner

import (
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// The circuit catalog is static and finite. Selection never fabricates
// a circuit for an unsupported duration; callers fall back to a
// clarifying response instead. Stops are authored in geographic travel
// order, per-day costs are rupees per person.

const maxCircuitDays = 10

var circuits = map[int]models.Circuit{
	3: {
		Title:             "3-Day Chennai Weekend Package",
		DurationDays:      3,
		BaseCostPerPerson: 8000,
		Stops: []models.CircuitStop{
			{
				Region:        "Chennai",
				Places:        []string{"Fort St. George", "San Thome Basilica", "Marina Beach evening walk"},
				CostPerPerson: 2500,
			},
			{
				Region:        "Mahabalipuram",
				Note:          "60km coastal drive from Chennai",
				Places:        []string{"Shore Temple at sunrise", "Pancha Rathas", "Arjuna's Penance"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Kanchipuram",
				Note:          "Return to Chennai in the evening",
				Places:        []string{"Kanchi Kamakshi Temple", "Silk saree shopping"},
				CostPerPerson: 2500,
			},
		},
	},
	5: {
		Title:             "5-Day Temple Circuit Package",
		DurationDays:      5,
		BaseCostPerPerson: 14000,
		Stops: []models.CircuitStop{
			{
				Region:        "Chennai",
				Places:        []string{"Fort St. George", "San Thome Basilica"},
				CostPerPerson: 2500,
			},
			{
				Region:        "Mahabalipuram",
				Places:        []string{"Shore Temple", "Pancha Rathas", "Arjuna's Penance"},
				CostPerPerson: 2500,
			},
			{
				Region:        "Gangaikonda Cholapuram",
				Note:          "Travel day to Thanjavur via the Chola capital",
				Places:        []string{"Gangaikondacholapuram Temple"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Thanjavur",
				Places:        []string{"Brihadeeswara Temple", "Thanjavur Maratha Palace", "Bronze and painting workshops"},
				CostPerPerson: 3500,
			},
			{
				Region:        "Chidambaram",
				Note:          "Return leg via Chidambaram",
				Places:        []string{"Thillai Nataraja Temple"},
				CostPerPerson: 2500,
			},
		},
	},
	7: {
		Title:             "7-Day Grand Heritage Package",
		DurationDays:      7,
		BaseCostPerPerson: 22000,
		Stops: []models.CircuitStop{
			{
				Region:        "Chennai",
				Places:        []string{"Fort St. George", "San Thome Basilica", "Kapaleeshwarar Temple"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Mahabalipuram",
				Places:        []string{"Shore Temple", "Pancha Rathas", "Arjuna's Penance"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Thanjavur",
				Note:          "Drive to Thanjavur (340km)",
				CostPerPerson: 3000,
			},
			{
				Region:        "Thanjavur",
				Places:        []string{"Brihadeeswara Temple", "Thanjavur Maratha Palace"},
				CostPerPerson: 3500,
			},
			{
				Region:        "Kumbakonam",
				Places:        []string{"Airavatesvara Temple, Darasuram", "Adi Kumbeswarar Temple"},
				CostPerPerson: 3500,
			},
			{
				Region:        "Chettinad",
				Note:          "Chettinad heritage en route to Madurai",
				Places:        []string{"Chettinad Mansions", "Athangudi tile workshops"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Madurai",
				Note:          "Return after the morning darshan",
				Places:        []string{"Meenakshi Amman Temple"},
				CostPerPerson: 3000,
			},
		},
	},
	10: {
		Title:             "10-Day Ultimate Tamil Nadu Experience",
		DurationDays:      10,
		BaseCostPerPerson: 31500,
		Stops: []models.CircuitStop{
			{
				Region:        "Chennai",
				Places:        []string{"Fort St. George", "San Thome Basilica", "Marina Beach"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Mahabalipuram",
				Places:        []string{"Shore Temple", "Pancha Rathas", "Arjuna's Penance"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Pondicherry",
				Places:        []string{"Promenade Beach", "Sri Aurobindo Ashram", "French Quarter"},
				CostPerPerson: 3000,
			},
			{
				Region:        "Thanjavur",
				Places:        []string{"Brihadeeswara Temple", "Thanjavur Maratha Palace"},
				CostPerPerson: 3200,
			},
			{
				Region:        "Trichy",
				Places:        []string{"Rockfort Temple", "Sri Ranganathaswamy Temple, Srirangam"},
				CostPerPerson: 3200,
			},
			{
				Region:        "Madurai",
				Places:        []string{"Meenakshi Amman Temple", "Thirumalai Nayakkar Palace"},
				CostPerPerson: 3200,
			},
			{
				Region:        "Rameshwaram",
				Places:        []string{"Ramanathaswamy Temple", "Pamban Bridge"},
				CostPerPerson: 3300,
			},
			{
				Region:        "Kanyakumari",
				Places:        []string{"Vivekananda Rock Memorial", "Sunrise point"},
				CostPerPerson: 3300,
			},
			{
				Region:        "Tirunelveli",
				Places:        []string{"Nellaiappar Temple", "Tirunelveli halwa trail"},
				CostPerPerson: 3300,
			},
			{
				Region:        "Chennai",
				Note:          "Return via crafts villages",
				CostPerPerson: 3000,
			},
		},
	},
}

// SupportedDurations lists the exact circuit durations, ascending.
func SupportedDurations() []int {
	return []int{3, 5, 7, 10}
}

// SelectCircuit maps a requested duration onto a canonical circuit.
// Durations of ten days or more fall onto the longest circuit; any
// other value, or an absent duration, reports no exact match. A miss
// is a signal to ask a clarifying question, not an error.
func SelectCircuit(durationDays *int) (models.Circuit, bool) {
	if durationDays == nil {
		return models.Circuit{}, false
	}
	days := *durationDays
	if days >= maxCircuitDays {
		return circuits[maxCircuitDays], true
	}
	circuit, ok := circuits[days]
	return circuit, ok
}
