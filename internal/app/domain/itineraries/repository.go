package itineraries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository persists saved itineraries. Records are append-only: a
// plan is saved as a new row, never edited in place.
type Repository interface {
	SaveItinerary(ctx context.Context, record *models.SavedItinerary) error
	ListItineraries(ctx context.Context, userID string) ([]*models.SavedItinerary, error)
	GetItinerary(ctx context.Context, userID, itineraryID string) (*models.SavedItinerary, error)
}

type RepositoryImpl struct {
	logger *zap.Logger
	pgpool *pgxpool.Pool
}

func NewRepositoryImpl(pgpool *pgxpool.Pool, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *RepositoryImpl) SaveItinerary(ctx context.Context, record *models.SavedItinerary) error {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "SaveItinerary", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "itineraries"),
	))
	defer span.End()

	var days []byte
	if len(record.Days) > 0 {
		encoded, err := json.Marshal(record.Days)
		if err != nil {
			span.SetStatus(codes.Error, "failed to encode days")
			return fmt.Errorf("error encoding day plans: %w", err)
		}
		days = encoded
	}

	query := `
        INSERT INTO itineraries (id, user_id, title, duration_days, travelers, total_cost, budget_match, description, days, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pgpool.Exec(ctx, query, record.ID, record.UserID, record.Title,
		record.DurationDays, record.Travelers, record.TotalCost, record.BudgetMatch,
		record.Description, days, record.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to save itinerary", zap.String("userID", record.UserID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return fmt.Errorf("error saving itinerary: %w", err)
	}

	span.SetStatus(codes.Ok, "itinerary saved")
	return nil
}

func (r *RepositoryImpl) ListItineraries(ctx context.Context, userID string) ([]*models.SavedItinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "ListItineraries", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "itineraries"),
	))
	defer span.End()

	query := `
        SELECT id, user_id, title, duration_days, travelers, total_cost, budget_match, description, days, created_at
        FROM itineraries
        WHERE user_id = $1
        ORDER BY created_at DESC`

	rows, err := r.pgpool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list itineraries", zap.String("userID", userID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error listing itineraries: %w", err)
	}
	defer rows.Close()

	var records []*models.SavedItinerary
	for rows.Next() {
		record, err := scanItinerary(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan failed")
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rows iteration failed")
		return nil, fmt.Errorf("error reading itineraries: %w", err)
	}

	span.SetAttributes(attribute.Int("itineraries.count", len(records)))
	span.SetStatus(codes.Ok, "itineraries listed")
	return records, nil
}

func (r *RepositoryImpl) GetItinerary(ctx context.Context, userID, itineraryID string) (*models.SavedItinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "GetItinerary", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("itinerary.id", itineraryID),
	))
	defer span.End()

	query := `
        SELECT id, user_id, title, duration_days, travelers, total_cost, budget_match, description, days, created_at
        FROM itineraries
        WHERE id = $1 AND user_id = $2`

	row := r.pgpool.QueryRow(ctx, query, itineraryID, userID)
	record, err := scanItineraryRow(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			span.SetStatus(codes.Error, "itinerary not found")
			return nil, fmt.Errorf("itinerary %s: %w", itineraryID, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch itinerary", zap.String("id", itineraryID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error fetching itinerary: %w", err)
	}

	span.SetStatus(codes.Ok, "itinerary fetched")
	return record, nil
}

func scanItinerary(rows pgx.Rows) (*models.SavedItinerary, error) {
	return scanItineraryRow(rows)
}

// scanItineraryRow tolerates sparse rows: travelers, cost, budget match
// and the day list are all nullable and stay nil/empty when absent.
func scanItineraryRow(row pgx.Row) (*models.SavedItinerary, error) {
	var record models.SavedItinerary
	var days []byte
	err := row.Scan(&record.ID, &record.UserID, &record.Title, &record.DurationDays,
		&record.Travelers, &record.TotalCost, &record.BudgetMatch, &record.Description,
		&days, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(days) > 0 {
		if err := json.Unmarshal(days, &record.Days); err != nil {
			return nil, fmt.Errorf("error decoding day plans: %w", err)
		}
	}
	return &record, nil
}
