package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

// Repository persists per-user site bookmarks.
type Repository interface {
	AddBookmark(ctx context.Context, userID, siteID string) (*models.Bookmark, error)
	RemoveBookmark(ctx context.Context, userID, siteID string) error
	ListBookmarks(ctx context.Context, userID string) ([]models.HeritageSite, error)
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

func (r *RepositoryImpl) AddBookmark(ctx context.Context, userID, siteID string) (*models.Bookmark, error) {
	ctx, span := otel.Tracer("BookmarksRepo").Start(ctx, "AddBookmark", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("site.id", siteID),
	))
	defer span.End()

	bookmark := &models.Bookmark{
		ID:        uuid.New().String(),
		UserID:    userID,
		SiteID:    siteID,
		CreatedAt: time.Now().UTC(),
	}

	query := `
        INSERT INTO bookmarks (id, user_id, site_id, created_at)
        VALUES ($1, $2, $3, $4)`

	_, err := r.pgpool.Exec(ctx, query, bookmark.ID, bookmark.UserID, bookmark.SiteID, bookmark.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				span.SetStatus(codes.Error, "bookmark exists")
				return nil, fmt.Errorf("site %s already bookmarked: %w", siteID, models.ErrConflict)
			case "23503":
				span.SetStatus(codes.Error, "unknown site")
				return nil, fmt.Errorf("site %s: %w", siteID, models.ErrNotFound)
			}
		}
		r.logger.Error("Failed to add bookmark", zap.String("siteID", siteID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("error adding bookmark: %w", err)
	}

	span.SetStatus(codes.Ok, "bookmark added")
	return bookmark, nil
}

func (r *RepositoryImpl) RemoveBookmark(ctx context.Context, userID, siteID string) error {
	ctx, span := otel.Tracer("BookmarksRepo").Start(ctx, "RemoveBookmark", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "DELETE"),
		attribute.String("site.id", siteID),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND site_id = $2`, userID, siteID)
	if err != nil {
		r.logger.Error("Failed to remove bookmark", zap.String("siteID", siteID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("error removing bookmark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "bookmark not found")
		return fmt.Errorf("bookmark for site %s: %w", siteID, models.ErrNotFound)
	}

	span.SetStatus(codes.Ok, "bookmark removed")
	return nil
}

func (r *RepositoryImpl) ListBookmarks(ctx context.Context, userID string) ([]models.HeritageSite, error) {
	ctx, span := otel.Tracer("BookmarksRepo").Start(ctx, "ListBookmarks", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
	))
	defer span.End()

	query := `
        SELECT s.id, s.name, s.region, s.category, s.entry_fee, s.timing, s.latitude, s.longitude, s.visit_duration
        FROM bookmarks b
        JOIN heritage_sites s ON s.id = b.site_id
        WHERE b.user_id = $1
        ORDER BY b.created_at DESC`

	rows, err := r.pgpool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list bookmarks", zap.String("userID", userID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}
	defer rows.Close()

	var sites []models.HeritageSite
	for rows.Next() {
		var site models.HeritageSite
		if err := rows.Scan(&site.ID, &site.Name, &site.Region, &site.Category,
			&site.EntryFee, &site.Timing, &site.Latitude, &site.Longitude,
			&site.VisitDuration); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan failed")
			return nil, fmt.Errorf("error scanning bookmarked site: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rows iteration failed")
		return nil, fmt.Errorf("error reading bookmarks: %w", err)
	}

	span.SetAttributes(attribute.Int("bookmarks.count", len(sites)))
	span.SetStatus(codes.Ok, "bookmarks listed")
	return sites, nil
}
