package planner

import (
	"regexp"
	"strconv"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// domainKeywords decides whether a message is a travel planning request
// at all. Matching is case-insensitive substring over the whole text.
// Generic question words are deliberately absent so that unrelated
// questions ("what is the capital of France") stay out of domain.
var domainKeywords = []string{
	"trip", "travel", "visit", "tour", "itinerary", "plan", "day",
	"place", "temple", "monument", "heritage", "craft", "food", "beach",
	"chennai", "madurai", "thanjavur", "mahabalipuram", "kanchipuram",
	"pondicherry", "rameshwaram", "kanyakumari", "recommend", "suggest",
	"budget", "cost", "package", "sightsee",
}

// interestPatterns is the declarative rule table for interest detection.
// Every row is evaluated against the lowercased text; the flags are
// independent, so several can fire on one message.
var interestPatterns = []struct {
	pattern *regexp.Regexp
	apply   func(*models.InterestSet)
}{
	{regexp.MustCompile(`temple|spiritual|religious|worship|god|deity`), func(s *models.InterestSet) { s.Spiritual = true }},
	{regexp.MustCompile(`monument|historical|fort|palace|architecture|heritage`), func(s *models.InterestSet) { s.Historical = true }},
	{regexp.MustCompile(`craft|art|silk|bronze|painting|artisan|handicraft`), func(s *models.InterestSet) { s.Crafts = true }},
	{regexp.MustCompile(`food|cuisine|dish|eat|restaurant|halwa`), func(s *models.InterestSet) { s.Food = true }},
	{regexp.MustCompile(`beach|sea|shore|coast`), func(s *models.InterestSet) { s.Beaches = true }},
}

var (
	durationPattern   = regexp.MustCompile(`(\d+)\s*days?`)
	budgetLowPattern  = regexp.MustCompile(`budget|cheap|affordable|economical`)
	budgetHighPattern = regexp.MustCompile(`luxury|premium|deluxe|high.end`)
)

// Extractor turns free text into a structured TripQuery. It performs no
// I/O and keeps no state between calls, so the same text always yields
// the same query.
type Extractor struct {
	matcher ahocorasick.AhoCorasick
}

// NewExtractor builds the keyword automaton once; Extract calls reuse it.
func NewExtractor() *Extractor {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	return &Extractor{matcher: builder.Build(domainKeywords)}
}

// Extract parses duration, interest flags and budget level out of text.
// Out-of-domain text short-circuits: the verdict is recorded and no
// further extraction is attempted.
func (e *Extractor) Extract(text string) models.TripQuery {
	query := models.TripQuery{
		RawText:     text,
		BudgetLevel: models.BudgetLevelStandard,
	}

	lower := strings.ToLower(text)
	if len(e.matcher.FindAll(lower)) == 0 {
		return query
	}
	query.InDomain = true

	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			query.DurationDays = &days
		}
	}

	for _, rule := range interestPatterns {
		if rule.pattern.MatchString(lower) {
			rule.apply(&query.Interests)
		}
	}

	switch {
	case budgetLowPattern.MatchString(lower):
		query.BudgetLevel = models.BudgetLevelBudget
	case budgetHighPattern.MatchString(lower):
		query.BudgetLevel = models.BudgetLevelLuxury
	}

	return query
}
