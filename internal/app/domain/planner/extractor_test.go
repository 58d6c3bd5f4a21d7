package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomainClassification(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name     string
		text     string
		inDomain bool
	}{
		{
			name:     "Travel request",
			text:     "I want to plan a trip to Tamil Nadu",
			inDomain: true,
		},
		{
			name:     "Temple mention",
			text:     "show me some temples",
			inDomain: true,
		},
		{
			name:     "General knowledge question",
			text:     "what is the capital of France",
			inDomain: false,
		},
		{
			name:     "Unrelated request",
			text:     "write me a poem about the moon",
			inDomain: false,
		},
		{
			name:     "City name alone",
			text:     "Madurai",
			inDomain: true,
		},
		{
			name:     "Empty message",
			text:     "",
			inDomain: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query := extractor.Extract(tc.text)
			assert.Equal(t, tc.inDomain, query.InDomain)
			if !tc.inDomain {
				// Out-of-domain messages short-circuit extraction
				assert.Nil(t, query.DurationDays)
				assert.False(t, query.Interests.Any())
			}
		})
	}
}

func TestExtractDuration(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name string
		text string
		days *int
	}{
		{name: "Plural days", text: "plan a 5 days trip", days: intPtr(5)},
		{name: "Singular day", text: "a 1 day visit to Chennai", days: intPtr(1)},
		{name: "No whitespace", text: "7days temple tour", days: intPtr(7)},
		{name: "No duration", text: "I want to visit temples", days: nil},
		{name: "Large duration", text: "a 15 day tour of the heritage circuit", days: intPtr(15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query := extractor.Extract(tc.text)
			assert.True(t, query.InDomain)
			if tc.days == nil {
				assert.Nil(t, query.DurationDays)
			} else {
				if assert.NotNil(t, query.DurationDays) {
					assert.Equal(t, *tc.days, *query.DurationDays)
				}
			}
		})
	}
}

func TestExtractInterests(t *testing.T) {
	extractor := NewExtractor()

	query := extractor.Extract("5 day trip with temples and silk crafts")
	assert.True(t, query.InDomain)
	assert.True(t, query.Interests.Spiritual)
	assert.True(t, query.Interests.Crafts)
	assert.False(t, query.Interests.Beaches)

	query = extractor.Extract("I want beaches and good food on my trip")
	assert.True(t, query.Interests.Beaches)
	assert.True(t, query.Interests.Food)
	assert.False(t, query.Interests.Spiritual)

	query = extractor.Extract("show me forts and palaces on a heritage tour")
	assert.True(t, query.Interests.Historical)
}

func TestExtractBudgetLevel(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name  string
		text  string
		level string
	}{
		{name: "Cheap keyword", text: "a cheap trip to Madurai", level: "budget"},
		{name: "Luxury keyword", text: "a luxury temple tour", level: "luxury"},
		{name: "High-end keyword", text: "high-end 5 day trip", level: "luxury"},
		{name: "Default standard", text: "a 5 day trip to Madurai", level: "standard"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query := extractor.Extract(tc.text)
			assert.Equal(t, tc.level, string(query.BudgetLevel))
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := NewExtractor()
	text := "plan a 7 day temple and craft trip on a budget"

	first := extractor.Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extractor.Extract(text))
	}
}

func intPtr(v int) *int { return &v }
