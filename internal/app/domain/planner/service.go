package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

// Catalog is the read-only site source the form flow synthesizes from.
// The heritage domain provides the production implementation.
type Catalog interface {
	ListSites(ctx context.Context) ([]models.HeritageSite, error)
}

// ChatReply is one conversational turn's output: a narrative always,
// and a plan only when one was synthesized.
type ChatReply struct {
	Narrative string           `json:"reply"`
	Plan      *models.TripPlan `json:"plan,omitempty"`
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service is the itinerary recommendation and synthesis engine exposed
// to the chat surface, the form planner and the export collaborator.
type Service interface {
	// GenerateFromText runs one conversational turn: extraction,
	// circuit selection, synthesis and formatting. The returned state
	// replaces the caller's session state.
	GenerateFromText(ctx context.Context, state ConversationState, text string) (ConversationState, ChatReply)
	// GenerateFromForm builds a catalog-backed plan. Duration is
	// constrained to the supported set by the caller's input widget, so
	// a miss here is a contract violation, not a user mistake.
	GenerateFromForm(ctx context.Context, travelers, durationDays int, budget int64) (*models.TripPlan, error)
	// FormatForExport renders the narrative-only form of a plan for the
	// document generator, with the exact content of the live display.
	FormatForExport(plan *models.TripPlan) string
}

// ServiceImpl wires the engine components together. All operations are
// synchronous and, catalog reads aside, pure functions of their inputs.
type ServiceImpl struct {
	logger    *zap.Logger
	catalog   Catalog
	extractor *Extractor
}

func NewServiceImpl(catalog Catalog, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		catalog:   catalog,
		extractor: NewExtractor(),
	}
}

// GenerateFromText classifies the message, and when it carries a
// supported duration synthesizes a canonical plan and re-enters
// PlanPresented, overwriting the pending slot. Out-of-domain text and
// unrecognized durations produce guidance replies and no plan.
func (s *ServiceImpl) GenerateFromText(ctx context.Context, state ConversationState, text string) (ConversationState, ChatReply) {
	_, span := otel.Tracer("plannerService").Start(ctx, "GenerateFromText", trace.WithAttributes(
		attribute.Int("text.length", len(text)),
		attribute.String("conversation.stage", string(state.Stage)),
	))
	defer span.End()

	query := s.extractor.Extract(text)

	l := s.logger.With(zap.String("method", "GenerateFromText"),
		zap.Bool("in_domain", query.InDomain))

	if !query.InDomain {
		l.Debug("Message out of domain, redirecting")
		span.SetStatus(codes.Ok, "out of domain")
		return state, ChatReply{Narrative: redirectReply}
	}

	circuit, ok := SelectCircuit(query.DurationDays)
	if !ok {
		if query.DurationDays != nil {
			l.Debug("No circuit for requested duration", zap.Int("duration_days", *query.DurationDays))
			span.SetStatus(codes.Ok, "unsupported duration")
			return state.awaiting(), ChatReply{Narrative: unsupportedDurationReply}
		}
		l.Debug("No duration recognized, asking for parameters")
		span.SetStatus(codes.Ok, "awaiting parameters")
		return state.awaiting(), ChatReply{Narrative: recommendationReply(query.Interests)}
	}

	plan := s.synthesizeCanonical(circuit)
	l.Info("Canonical plan presented",
		zap.String("circuit", circuit.Title),
		zap.Int("duration_days", plan.DurationDays),
		zap.Int64("total_cost", plan.TotalCost))
	span.SetAttributes(attribute.String("circuit.title", circuit.Title))
	span.SetStatus(codes.Ok, "plan presented")

	narrative := presentationIntro(circuit) + "\n\n" + plan.Description
	return state.withPlan(plan), ChatReply{Narrative: narrative, Plan: plan}
}

// synthesizeCanonical builds a plan from the circuit's authored stops.
// Pricing is per person and traveller independent; no budget amount is
// known on this path, so BudgetMatch stays absent.
func (s *ServiceImpl) synthesizeCanonical(circuit models.Circuit) *models.TripPlan {
	days := FixedCircuitStrategy{}.Synthesize(circuit)
	plan := &models.TripPlan{
		ID:            uuid.New().String(),
		Title:         circuit.Title,
		DurationDays:  circuit.DurationDays,
		Days:          days,
		TotalCost:     TotalCost(days),
		PerPersonCost: true,
		CreatedAt:     time.Now().UTC(),
	}
	plan.Description = RenderNarrative(plan)
	return plan
}

// GenerateFromForm allocates catalog sites onto the selected circuit,
// prices each day for the whole group and verifies the stated budget.
func (s *ServiceImpl) GenerateFromForm(ctx context.Context, travelers, durationDays int, budget int64) (*models.TripPlan, error) {
	ctx, span := otel.Tracer("plannerService").Start(ctx, "GenerateFromForm", trace.WithAttributes(
		attribute.Int("travelers", travelers),
		attribute.Int("duration_days", durationDays),
		attribute.Int64("budget", budget),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "GenerateFromForm"),
		zap.Int("travelers", travelers),
		zap.Int("duration_days", durationDays))

	if travelers < 1 {
		span.SetStatus(codes.Error, "invalid traveler count")
		return nil, fmt.Errorf("travelers must be at least 1: %w", models.ErrValidation)
	}

	circuit, ok := SelectCircuit(&durationDays)
	if !ok {
		span.SetStatus(codes.Error, "unsupported duration")
		return nil, fmt.Errorf("no circuit for %d days: %w", durationDays, models.ErrBadRequest)
	}

	catalog, err := s.catalog.ListSites(ctx)
	if err != nil {
		l.Error("Failed to load site catalog", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog unavailable")
		return nil, fmt.Errorf("error loading site catalog: %w", err)
	}

	days := CatalogAllocationStrategy{Catalog: catalog}.Synthesize(circuit)
	estimator := NewEstimator(catalog)
	for i := range days {
		days[i].EstimatedCost = estimator.EstimateDay(days[i], travelers)
	}

	total := TotalCost(days)
	budgetMatch := total <= budget
	plan := &models.TripPlan{
		ID:           uuid.New().String(),
		Title:        circuit.Title,
		DurationDays: circuit.DurationDays,
		Travelers:    &travelers,
		Days:         days,
		TotalCost:    total,
		BudgetMatch:  &budgetMatch,
		CreatedAt:    time.Now().UTC(),
	}
	plan.Description = RenderNarrative(plan)

	l.Info("Form plan synthesized",
		zap.String("circuit", circuit.Title),
		zap.Int("places", plan.TotalPlaces()),
		zap.Int64("total_cost", total),
		zap.Bool("budget_match", budgetMatch))
	span.SetStatus(codes.Ok, "plan synthesized")
	return plan, nil
}

// FormatForExport hands the export collaborator the same narrative
// contract as the live display, stripped to plain characters.
func (s *ServiceImpl) FormatForExport(plan *models.TripPlan) string {
	return RenderForExport(plan)
}
