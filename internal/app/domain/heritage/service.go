package heritage

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

const (
	catalogCacheKey = "catalog:all"
	craftsCacheKey  = "catalog:crafts"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the read-only site catalog. The full listing doubles
// as the planner's Catalog dependency.
type Service interface {
	ListSites(ctx context.Context) ([]models.HeritageSite, error)
	ListCrafts(ctx context.Context) ([]models.HeritageSite, error)
	GetSite(ctx context.Context, id string) (*models.HeritageSite, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
	cache  *cache.Cache
	group  singleflight.Group
}

func NewServiceImpl(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

// ListSites returns the whole catalog in authoring order. The catalog
// changes only through maintenance migrations, so a short TTL cache in
// front of the repository is safe.
func (s *ServiceImpl) ListSites(ctx context.Context) ([]models.HeritageSite, error) {
	ctx, span := otel.Tracer("heritageService").Start(ctx, "ListSites")
	defer span.End()

	if cached, found := s.cache.Get(catalogCacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		span.SetStatus(codes.Ok, "catalog served from cache")
		return cached.([]models.HeritageSite), nil
	}

	// Collapse concurrent cache misses into a single repository read.
	result, err, _ := s.group.Do(catalogCacheKey, func() (any, error) {
		return s.repo.ListSites(ctx, SiteFilter{})
	})
	if err != nil {
		s.logger.Error("Failed to list heritage sites", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list sites")
		return nil, fmt.Errorf("error listing heritage sites: %w", err)
	}

	sites := result.([]models.HeritageSite)
	s.cache.SetDefault(catalogCacheKey, sites)
	span.SetAttributes(attribute.Int("sites.count", len(sites)))
	span.SetStatus(codes.Ok, "catalog listed")
	return sites, nil
}

// ListCrafts returns the craft subset served on its own endpoint.
func (s *ServiceImpl) ListCrafts(ctx context.Context) ([]models.HeritageSite, error) {
	ctx, span := otel.Tracer("heritageService").Start(ctx, "ListCrafts")
	defer span.End()

	if cached, found := s.cache.Get(craftsCacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		span.SetStatus(codes.Ok, "crafts served from cache")
		return cached.([]models.HeritageSite), nil
	}

	result, err, _ := s.group.Do(craftsCacheKey, func() (any, error) {
		return s.repo.ListSites(ctx, SiteFilter{Category: models.CategoryCraft})
	})
	if err != nil {
		s.logger.Error("Failed to list crafts", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list crafts")
		return nil, fmt.Errorf("error listing crafts: %w", err)
	}

	crafts := result.([]models.HeritageSite)
	s.cache.SetDefault(craftsCacheKey, crafts)
	span.SetStatus(codes.Ok, "crafts listed")
	return crafts, nil
}

func (s *ServiceImpl) GetSite(ctx context.Context, id string) (*models.HeritageSite, error) {
	ctx, span := otel.Tracer("heritageService").Start(ctx, "GetSite")
	defer span.End()

	site, err := s.repo.GetSite(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch site")
		return nil, err
	}

	span.SetStatus(codes.Ok, "site fetched")
	return site, nil
}
