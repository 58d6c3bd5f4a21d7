package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// MockCatalog is a mock implementation of Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListSites(ctx context.Context) ([]models.HeritageSite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HeritageSite), args.Error(1)
}

func newTestService(catalog Catalog) *ServiceImpl {
	return NewServiceImpl(catalog, zap.NewNop())
}

func TestGenerateFromTextOutOfDomain(t *testing.T) {
	service := newTestService(new(MockCatalog))
	state := NewConversationState()

	next, reply := service.GenerateFromText(context.Background(), state, "what is the capital of France")

	assert.Equal(t, redirectReply, reply.Narrative)
	assert.Nil(t, reply.Plan)
	// State is untouched, including the stage
	assert.Equal(t, state, next)
}

func TestGenerateFromTextUnsupportedDuration(t *testing.T) {
	service := newTestService(new(MockCatalog))

	next, reply := service.GenerateFromText(context.Background(), NewConversationState(), "plan my 4 day trip")

	assert.Equal(t, unsupportedDurationReply, reply.Narrative)
	assert.Nil(t, reply.Plan)
	assert.Equal(t, StageAwaitingParameters, next.Stage)
	assert.Nil(t, next.PendingPlan)
}

func TestGenerateFromTextNoDurationAsksByInterest(t *testing.T) {
	service := newTestService(new(MockCatalog))

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "Temples and crafts", text: "I love temples and silk crafts", want: templesAndCraftsReply},
		{name: "Temples only", text: "show me temples", want: templesReply},
		{name: "Monuments only", text: "I want to see forts and monuments", want: monumentsReply},
		{name: "No interests", text: "help me plan a trip", want: clarifyReply},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, reply := service.GenerateFromText(context.Background(), NewConversationState(), tc.text)
			assert.Equal(t, tc.want, reply.Narrative)
			assert.Nil(t, reply.Plan)
			assert.Equal(t, StageAwaitingParameters, next.Stage)
		})
	}
}

func TestGenerateFromTextPresentsCanonicalPlan(t *testing.T) {
	service := newTestService(new(MockCatalog))

	next, reply := service.GenerateFromText(context.Background(), NewConversationState(), "plan a 5 day trip with temples and crafts")

	require.NotNil(t, reply.Plan)
	assert.Equal(t, StagePlanPresented, next.Stage)
	assert.Same(t, reply.Plan, next.PendingPlan)

	plan := reply.Plan
	assert.Equal(t, "5-Day Temple Circuit Package", plan.Title)
	assert.Equal(t, 5, plan.DurationDays)
	assert.Len(t, plan.Days, 5)
	assert.True(t, plan.PerPersonCost)
	assert.Equal(t, int64(14000), plan.TotalCost)
	// No budget amount exists on the chat path
	assert.Nil(t, plan.BudgetMatch)
	assert.Nil(t, plan.Travelers)

	assert.Contains(t, reply.Narrative, "Here's your 5-Day Temple Circuit Package:")
	assert.Contains(t, reply.Narrative, "Total Cost: ₹14,000/person")
}

func TestGenerateFromTextPendingPlanLastWriteWins(t *testing.T) {
	service := newTestService(new(MockCatalog))
	ctx := context.Background()

	state, first := service.GenerateFromText(ctx, NewConversationState(), "a 3 day trip please")
	require.NotNil(t, first.Plan)

	// A clarifying turn keeps the pending plan
	state, reply := service.GenerateFromText(ctx, state, "what about a 4 day trip")
	assert.Equal(t, unsupportedDurationReply, reply.Narrative)
	assert.Same(t, first.Plan, state.PendingPlan)

	// Presenting a new plan overwrites the slot
	state, second := service.GenerateFromText(ctx, state, "make it a 7 day trip")
	require.NotNil(t, second.Plan)
	assert.Same(t, second.Plan, state.PendingPlan)
	assert.NotSame(t, first.Plan, state.PendingPlan)
	assert.Equal(t, 7, state.PendingPlan.DurationDays)
}

func TestGenerateFromTextLongDurationGetsLongestCircuit(t *testing.T) {
	service := newTestService(new(MockCatalog))

	_, reply := service.GenerateFromText(context.Background(), NewConversationState(), "we have 14 days for the trip")

	require.NotNil(t, reply.Plan)
	assert.Equal(t, 10, reply.Plan.DurationDays)
	assert.Equal(t, int64(31500), reply.Plan.TotalCost)
}

func TestGenerateFromForm(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("ListSites", mock.Anything).Return(testCatalog(), nil)
	service := newTestService(catalog)

	plan, err := service.GenerateFromForm(context.Background(), 2, 3, 20000)
	require.NoError(t, err)

	assert.Equal(t, 3, plan.DurationDays)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{plan.Days[0].Day, plan.Days[1].Day, plan.Days[2].Day})
	require.NotNil(t, plan.Travelers)
	assert.Equal(t, 2, *plan.Travelers)
	assert.False(t, plan.PerPersonCost)

	// Day 1: Chennai, three sites (15 + 0 + 0 fees + 2000) * 2
	assert.Equal(t, int64(4030), plan.Days[0].EstimatedCost)
	// Day 2: Mahabalipuram, two sites (40 + 40 + 2000) * 2
	assert.Equal(t, int64(4160), plan.Days[1].EstimatedCost)
	// Day 3: Kanchipuram, one free site (0 + 2000) * 2
	assert.Equal(t, int64(4000), plan.Days[2].EstimatedCost)

	assert.Equal(t, plan.Days[0].EstimatedCost+plan.Days[1].EstimatedCost+plan.Days[2].EstimatedCost, plan.TotalCost)
	require.NotNil(t, plan.BudgetMatch)
	assert.True(t, *plan.BudgetMatch)
	assert.NotEmpty(t, plan.Description)
}

func TestGenerateFromFormBudgetExceeded(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("ListSites", mock.Anything).Return(testCatalog(), nil)
	service := newTestService(catalog)

	plan, err := service.GenerateFromForm(context.Background(), 2, 3, 10000)
	require.NoError(t, err)

	require.NotNil(t, plan.BudgetMatch)
	assert.False(t, *plan.BudgetMatch)
	assert.Contains(t, plan.Description, "⚠ Exceeds Budget")
}

func TestGenerateFromFormAllDurations(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("ListSites", mock.Anything).Return(testCatalog(), nil)
	service := newTestService(catalog)

	for _, duration := range SupportedDurations() {
		plan, err := service.GenerateFromForm(context.Background(), 1, duration, 1_000_000)
		require.NoError(t, err, "duration %d", duration)
		assert.Equal(t, duration, plan.DurationDays)
		assert.Len(t, plan.Days, duration)
		assert.Equal(t, TotalCost(plan.Days), plan.TotalCost)
	}
}

func TestGenerateFromFormValidation(t *testing.T) {
	service := newTestService(new(MockCatalog))

	_, err := service.GenerateFromForm(context.Background(), 0, 3, 20000)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = service.GenerateFromForm(context.Background(), 2, 4, 20000)
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestGenerateFromFormCatalogError(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("ListSites", mock.Anything).Return(nil, errors.New("connection refused"))
	service := newTestService(catalog)

	_, err := service.GenerateFromForm(context.Background(), 2, 5, 20000)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrBadRequest)
}

func TestFormatForExport(t *testing.T) {
	service := newTestService(new(MockCatalog))

	_, reply := service.GenerateFromText(context.Background(), NewConversationState(), "book a 3 day trip")
	require.NotNil(t, reply.Plan)

	exported := service.FormatForExport(reply.Plan)
	assert.NotContains(t, exported, "₹")
	assert.Contains(t, exported, "Total Cost: Rs. 8,000/person")
}
