package heritage

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

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListSites(ctx context.Context, filter SiteFilter) ([]models.HeritageSite, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HeritageSite), args.Error(1)
}

func (m *MockRepository) GetSite(ctx context.Context, id string) (*models.HeritageSite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HeritageSite), args.Error(1)
}

func sampleSites() []models.HeritageSite {
	return []models.HeritageSite{
		{ID: "fort-st-george", Name: "Fort St. George", Region: "Chennai", Category: models.CategoryHistorical},
		{ID: "shore-temple", Name: "Shore Temple", Region: "Mahabalipuram", Category: models.CategoryHistorical},
	}
}

func TestListSitesCachesRepositoryReads(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListSites", mock.Anything, SiteFilter{}).Return(sampleSites(), nil).Once()

	service := NewServiceImpl(mockRepo, zap.NewNop())
	ctx := context.Background()

	first, err := service.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Second call must come from cache; the mock allows one call only
	second, err := service.ListSites(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	mockRepo.AssertExpectations(t)
}

func TestListSitesRepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListSites", mock.Anything, SiteFilter{}).Return(nil, errors.New("connection refused"))

	service := NewServiceImpl(mockRepo, zap.NewNop())

	_, err := service.ListSites(context.Background())
	assert.Error(t, err)
}

func TestListCrafts(t *testing.T) {
	crafts := []models.HeritageSite{
		{ID: "athangudi-tile-workshops", Name: "Athangudi tile workshops", Region: "Chettinad", Category: models.CategoryCraft},
	}
	mockRepo := new(MockRepository)
	mockRepo.On("ListSites", mock.Anything, SiteFilter{Category: models.CategoryCraft}).Return(crafts, nil).Once()

	service := NewServiceImpl(mockRepo, zap.NewNop())

	got, err := service.ListCrafts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.CategoryCraft, got[0].Category)

	// Cached on the second read
	_, err = service.ListCrafts(context.Background())
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestServiceGetSite(t *testing.T) {
	site := &models.HeritageSite{ID: "shore-temple", Name: "Shore Temple", Region: "Mahabalipuram"}
	mockRepo := new(MockRepository)
	mockRepo.On("GetSite", mock.Anything, "shore-temple").Return(site, nil)

	service := NewServiceImpl(mockRepo, zap.NewNop())

	got, err := service.GetSite(context.Background(), "shore-temple")
	require.NoError(t, err)
	assert.Equal(t, "Shore Temple", got.Name)
}

func TestServiceGetSiteNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetSite", mock.Anything, "missing").
		Return(nil, models.ErrNotFound)

	service := NewServiceImpl(mockRepo, zap.NewNop())

	_, err := service.GetSite(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
