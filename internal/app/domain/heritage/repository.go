package heritage

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PGXQuerier is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PGXQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ Repository = (*RepositoryImpl)(nil)

// SiteFilter narrows a catalog listing. Zero values mean no filter.
type SiteFilter struct {
	Region   string
	Category models.SiteCategory
}

// Repository defines the contract for catalog data access. The catalog
// is reference data: reads only, maintenance happens out of band.
type Repository interface {
	ListSites(ctx context.Context, filter SiteFilter) ([]models.HeritageSite, error)
	GetSite(ctx context.Context, id string) (*models.HeritageSite, error)
}

type RepositoryImpl struct {
	logger *zap.Logger
	db     PGXQuerier
}

func NewRepositoryImpl(db PGXQuerier, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		db:     db,
	}
}

// ListSites returns catalog sites in authoring order, optionally
// narrowed by region or category. Authoring order is what the plan
// synthesizer relies on, so the ORDER BY is part of the contract.
func (r *RepositoryImpl) ListSites(ctx context.Context, filter SiteFilter) ([]models.HeritageSite, error) {
	ctx, span := otel.Tracer("HeritageRepo").Start(ctx, "ListSites", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "heritage_sites"),
	))
	defer span.End()

	qb := psql.Select("id", "name", "region", "category", "entry_fee", "timing",
		"latitude", "longitude", "visit_duration").
		From("heritage_sites").
		OrderBy("position")
	if filter.Region != "" {
		qb = qb.Where(squirrel.Eq{"region": filter.Region})
	}
	if filter.Category != "" {
		qb = qb.Where(squirrel.Eq{"category": string(filter.Category)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		span.SetStatus(codes.Error, "failed to build query")
		return nil, fmt.Errorf("error building catalog query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query heritage sites", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error listing heritage sites: %w", err)
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
			return nil, fmt.Errorf("error scanning heritage site: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rows iteration failed")
		return nil, fmt.Errorf("error reading heritage sites: %w", err)
	}

	span.SetAttributes(attribute.Int("sites.count", len(sites)))
	span.SetStatus(codes.Ok, "sites listed")
	return sites, nil
}

// GetSite fetches one catalog entry by id.
func (r *RepositoryImpl) GetSite(ctx context.Context, id string) (*models.HeritageSite, error) {
	ctx, span := otel.Tracer("HeritageRepo").Start(ctx, "GetSite", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("site.id", id),
	))
	defer span.End()

	query, args, err := psql.Select("id", "name", "region", "category", "entry_fee",
		"timing", "latitude", "longitude", "visit_duration").
		From("heritage_sites").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		span.SetStatus(codes.Error, "failed to build query")
		return nil, fmt.Errorf("error building site query: %w", err)
	}

	var site models.HeritageSite
	err = r.db.QueryRow(ctx, query, args...).Scan(&site.ID, &site.Name, &site.Region,
		&site.Category, &site.EntryFee, &site.Timing, &site.Latitude, &site.Longitude,
		&site.VisitDuration)
	if err != nil {
		if err == pgx.ErrNoRows {
			span.SetStatus(codes.Error, "site not found")
			return nil, fmt.Errorf("site %s: %w", id, models.ErrNotFound)
		}
		r.logger.Error("Failed to fetch heritage site", zap.String("id", id), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("error fetching heritage site: %w", err)
	}

	span.SetStatus(codes.Ok, "site fetched")
	return &site, nil
}
