package heritage

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
)

var siteColumns = []string{"id", "name", "region", "category", "entry_fee",
	"timing", "latitude", "longitude", "visit_duration"}

func TestListSites(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	fee := int64(40)
	timing := "06:00-18:00"
	mockPool.ExpectQuery(`SELECT id, name, region, category, entry_fee, timing, latitude, longitude, visit_duration FROM heritage_sites ORDER BY position`).
		WillReturnRows(pgxmock.NewRows(siteColumns).
			AddRow("fort-st-george", "Fort St. George", "Chennai", models.CategoryHistorical, (*int64)(nil), (*string)(nil), (*float64)(nil), (*float64)(nil), "2 hours").
			AddRow("shore-temple", "Shore Temple", "Mahabalipuram", models.CategoryHistorical, &fee, &timing, (*float64)(nil), (*float64)(nil), "1.5 hours"))

	repo := NewRepositoryImpl(mockPool, zap.NewNop())
	sites, err := repo.ListSites(context.Background(), SiteFilter{})
	require.NoError(t, err)

	require.Len(t, sites, 2)
	assert.Equal(t, "fort-st-george", sites[0].ID)
	assert.Nil(t, sites[0].EntryFee)
	require.NotNil(t, sites[1].EntryFee)
	assert.Equal(t, int64(40), *sites[1].EntryFee)
	assert.Equal(t, models.CategoryHistorical, sites[1].Category)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestListSitesWithFilter(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`SELECT .+ FROM heritage_sites WHERE category = \$1 ORDER BY position`).
		WithArgs("craft").
		WillReturnRows(pgxmock.NewRows(siteColumns).
			AddRow("athangudi-tile-workshops", "Athangudi tile workshops", "Chettinad", models.CategoryCraft, (*int64)(nil), (*string)(nil), (*float64)(nil), (*float64)(nil), "1.5 hours"))

	repo := NewRepositoryImpl(mockPool, zap.NewNop())
	sites, err := repo.ListSites(context.Background(), SiteFilter{Category: models.CategoryCraft})
	require.NoError(t, err)

	require.Len(t, sites, 1)
	assert.Equal(t, models.CategoryCraft, sites[0].Category)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestListSitesQueryError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`SELECT .+ FROM heritage_sites`).
		WillReturnError(errors.New("connection refused"))

	repo := NewRepositoryImpl(mockPool, zap.NewNop())
	_, err = repo.ListSites(context.Background(), SiteFilter{})
	assert.Error(t, err)
}

func TestGetSite(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`SELECT .+ FROM heritage_sites WHERE id = \$1`).
		WithArgs("shore-temple").
		WillReturnRows(pgxmock.NewRows(siteColumns).
			AddRow("shore-temple", "Shore Temple", "Mahabalipuram", models.CategoryHistorical, (*int64)(nil), (*string)(nil), (*float64)(nil), (*float64)(nil), "1.5 hours"))

	repo := NewRepositoryImpl(mockPool, zap.NewNop())
	site, err := repo.GetSite(context.Background(), "shore-temple")
	require.NoError(t, err)
	assert.Equal(t, "Shore Temple", site.Name)
}

func TestGetSiteNotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`SELECT .+ FROM heritage_sites WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(siteColumns))

	repo := NewRepositoryImpl(mockPool, zap.NewNop())
	_, err = repo.GetSite(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
