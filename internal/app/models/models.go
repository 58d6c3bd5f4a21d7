package models

import (
	"time"
)

// SiteCategory classifies a heritage site in the catalog.
type SiteCategory string

const (
	CategoryHistorical SiteCategory = "historical"
	CategorySpiritual  SiteCategory = "spiritual"
	CategoryCraft      SiteCategory = "craft"
	CategoryFood       SiteCategory = "food"
	CategoryBeach      SiteCategory = "beach"
)

// BudgetLevel is the traveller's stated spending tier.
type BudgetLevel string

const (
	BudgetLevelBudget   BudgetLevel = "budget"
	BudgetLevelStandard BudgetLevel = "standard"
	BudgetLevelLuxury   BudgetLevel = "luxury"
)

// HeritageSite is immutable reference data maintained by the catalog.
// Fees are rupees per person; sites without a published fee carry nil.
type HeritageSite struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Region        string       `json:"region"`
	Category      SiteCategory `json:"category"`
	EntryFee      *int64       `json:"entry_fee,omitempty"`
	Timing        *string      `json:"timing,omitempty"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	VisitDuration string       `json:"visit_duration"`
}

// InterestSet holds the independent per-category interest flags detected
// in a free-text request. Flags are not mutually exclusive.
type InterestSet struct {
	Spiritual  bool `json:"spiritual"`
	Historical bool `json:"historical"`
	Crafts     bool `json:"crafts"`
	Food       bool `json:"food"`
	Beaches    bool `json:"beaches"`
}

// Any reports whether at least one interest flag is set.
func (s InterestSet) Any() bool {
	return s.Spiritual || s.Historical || s.Crafts || s.Food || s.Beaches
}

// TripQuery is the structured result of extracting parameters from one
// free-text message. It is created fresh per extraction and never mutated.
type TripQuery struct {
	DurationDays *int        `json:"duration_days,omitempty"`
	Interests    InterestSet `json:"interests"`
	BudgetLevel  BudgetLevel `json:"budget_level"`
	InDomain     bool        `json:"in_domain"`
	RawText      string      `json:"raw_text"`
}

// CircuitStop is one day's slot inside a canonical circuit: the region to
// visit, an optional authoring note (travel legs etc.), the pre-written
// named places used when no catalog is consulted, and the authored cost
// in rupees per person for that day.
type CircuitStop struct {
	Region        string   `json:"region"`
	Note          string   `json:"note,omitempty"`
	Places        []string `json:"places,omitempty"`
	CostPerPerson int64    `json:"cost_per_person"`
}

// Circuit is a predefined multi-day route template. The set of circuits
// is finite and static; selection never fabricates one.
type Circuit struct {
	Title             string        `json:"title"`
	DurationDays      int           `json:"duration_days"`
	Stops             []CircuitStop `json:"stops"`
	BaseCostPerPerson int64         `json:"base_cost_per_person"`
}

// PlaceVisit is a single stop inside a day plan. SiteID is set only for
// catalog-backed visits; canonical circuits carry named stops without one.
type PlaceVisit struct {
	SiteID        *string `json:"site_id,omitempty"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	VisitDuration string  `json:"duration"`
}

// DayPlan is one day of a synthesized plan. Days are numbered from 1
// with no gaps. A day with no places is a travel/transition day, not an
// error.
type DayPlan struct {
	Day           int          `json:"day"`
	Region        string       `json:"region"`
	Note          string       `json:"note,omitempty"`
	Places        []PlaceVisit `json:"places"`
	EstimatedCost int64        `json:"estimatedCost"`
}

// TripPlan is the synthesized itinerary shared by the conversational and
// the form surface. It is immutable once formatted; saving one produces
// a separate record rather than editing the day list in place.
//
/// PerPersonCost records the pricing basis: canonical circuits are priced
// per person independent of party size, catalog-backed plans per group
// (day costs already multiplied by travellers). TotalCost is the exact
// sum of day costs on both paths.
type TripPlan struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DurationDays  int       `json:"duration_days"`
	Travelers     *int      `json:"travelers,omitempty"`
	Days          []DayPlan `json:"days"`
	TotalCost     int64     `json:"total_cost"`
	PerPersonCost bool      `json:"per_person_cost"`
	BudgetMatch   *bool     `json:"budget_match,omitempty"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// TotalPlaces counts the catalog or named stops across all days.
func (p *TripPlan) TotalPlaces() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Places)
	}
	return n
}

// SavedItinerary is a persisted plan record as redisplay and export see
// it. Older records may lack travellers, cost or day-level detail; those
// fields are optional and rendering degrades to what is present.
type SavedItinerary struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	DurationDays int       `json:"duration_days"`
	Travelers    *int      `json:"travelers,omitempty"`
	TotalCost    *int64    `json:"total_cost,omitempty"`
	BudgetMatch  *bool     `json:"budget_match,omitempty"`
	Description  string    `json:"description,omitempty"`
	Days         []DayPlan `json:"days,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is an account able to save itineraries and bookmarks.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Bookmark links a user to a catalog site.
type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SiteID    string    `json:"site_id"`
	CreatedAt time.Time `json:"created_at"`
}
