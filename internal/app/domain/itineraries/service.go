package itineraries

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

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/domain/planner"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service stores presented plans and reformats saved records for
// redisplay and export. Saving copies the plan into a new record; the
// plan itself is never mutated.
type Service interface {
	SavePlan(ctx context.Context, userID string, plan *models.TripPlan) (*models.SavedItinerary, error)
	ListSaved(ctx context.Context, userID string) ([]*models.SavedItinerary, error)
	ExportSaved(ctx context.Context, userID, itineraryID string) (string, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
}

func NewServiceImpl(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// SavePlan snapshots a presented plan into a saved record for the user.
func (s *ServiceImpl) SavePlan(ctx context.Context, userID string, plan *models.TripPlan) (*models.SavedItinerary, error) {
	ctx, span := otel.Tracer("itineraryService").Start(ctx, "SavePlan", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.Int("plan.duration_days", plan.DurationDays),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "SavePlan"), zap.String("userID", userID))

	if plan.DurationDays < 1 || len(plan.Days) != plan.DurationDays {
		span.SetStatus(codes.Error, "malformed plan")
		return nil, fmt.Errorf("plan day list does not match its duration: %w", models.ErrValidation)
	}

	totalCost := plan.TotalCost
	record := &models.SavedItinerary{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        plan.Title,
		DurationDays: plan.DurationDays,
		Travelers:    plan.Travelers,
		TotalCost:    &totalCost,
		BudgetMatch:  plan.BudgetMatch,
		Description:  plan.Description,
		Days:         plan.Days,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.SaveItinerary(ctx, record); err != nil {
		l.Error("Failed to save itinerary", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return nil, fmt.Errorf("error saving itinerary: %w", err)
	}

	l.Info("Itinerary saved", zap.String("itineraryID", record.ID))
	span.SetStatus(codes.Ok, "itinerary saved")
	return record, nil
}

func (s *ServiceImpl) ListSaved(ctx context.Context, userID string) ([]*models.SavedItinerary, error) {
	ctx, span := otel.Tracer("itineraryService").Start(ctx, "ListSaved", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	records, err := s.repo.ListItineraries(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list saved itineraries", zap.String("userID", userID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, fmt.Errorf("error listing itineraries: %w", err)
	}

	span.SetAttributes(attribute.Int("itineraries.count", len(records)))
	span.SetStatus(codes.Ok, "itineraries listed")
	return records, nil
}

// ExportSaved renders a saved record for the document generator. Sparse
// legacy records render whatever fields they still carry.
func (s *ServiceImpl) ExportSaved(ctx context.Context, userID, itineraryID string) (string, error) {
	ctx, span := otel.Tracer("itineraryService").Start(ctx, "ExportSaved", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("itinerary.id", itineraryID),
	))
	defer span.End()

	record, err := s.repo.GetItinerary(ctx, userID, itineraryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", err
	}

	span.SetStatus(codes.Ok, "itinerary exported")
	return planner.RenderSaved(record), nil
}
