package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	"github.com/gasplexhq/gasplex/internal/dailyvolume/repository"
	"github.com/gasplexhq/gasplex/internal/refdata"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&refdata.Customer{},
		&refdata.CustomerSite{},
		&domain.DailyVolume{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func TestCreate_PersistsAndClassifies(t *testing.T) {
	svc, db := newTestService(t)

	view, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":      1,
		"customer_site_id": 2,
		"volume":           100,
	}})
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, float64(100), view.Volume)
	// the only row in the window is the record itself
	assert.Equal(t, domain.StatusNormal, view.Status)

	var count int64
	require.NoError(t, db.Model(&domain.DailyVolume{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreate_NegativeVolumeFailsValidation(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":      1,
		"customer_site_id": 2,
		"volume":           -10,
	}})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.DailyVolume{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_MalformedAnswersPersistsNothing(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":        1,
		"customer_site_id":   2,
		"volume":             100,
		"form_field_answers": "not json",
	}})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.DailyVolume{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_AnswersOverrideDirectFields(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":        1,
		"customer_site_id":   2,
		"volume":             100,
		"form_field_answers": `[{"key":"volume","value":250}]`,
	}})
	require.NoError(t, err)
	assert.Equal(t, float64(250), view.Volume)
}

func TestUpdate_PartialLeavesOtherFieldsUntouched(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":      7,
		"customer_site_id": 8,
		"volume":           100,
	}})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), domain.UpdateRequest{
		ID:   created.ID,
		Data: map[string]any{"volume": 150},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(150), updated.Volume)
	assert.Equal(t, int64(7), updated.CustomerID)
	assert.Equal(t, int64(8), updated.CustomerSiteID)
}

func TestUpdate_MissingIDFailsBeforeLookup(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), domain.UpdateRequest{
		Data: map[string]any{"volume": 1},
	})
	assert.ErrorIs(t, err, domain.ErrMissingID)
}

func TestUpdate_UnknownRecordIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), domain.UpdateRequest{
		ID:   99,
		Data: map[string]any{"volume": 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_ClassifiesAgainstTrailingAverage(t *testing.T) {
	svc, db := newTestService(t)

	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	rows := []domain.DailyVolume{
		{ID: 1, CustomerID: 1, CustomerSiteID: 5, Volume: 100, CreatedAt: base.Add(-48 * time.Hour), UpdatedAt: base},
		{ID: 2, CustomerID: 1, CustomerSiteID: 5, Volume: 130, CreatedAt: base.Add(-24 * time.Hour), UpdatedAt: base},
		// window average over rows 1-3: (100 + 130 + 70) / 3 = 100
		{ID: 3, CustomerID: 1, CustomerSiteID: 5, Volume: 70, CreatedAt: base, UpdatedAt: base},
	}
	require.NoError(t, db.Create(&rows).Error)

	view, err := svc.Get(context.Background(), domain.GetRequest{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLow, view.Status)

	// outside the 7 day window the old readings stop counting
	late := domain.DailyVolume{ID: 4, CustomerID: 1, CustomerSiteID: 5, Volume: 70, CreatedAt: base.Add(8 * 24 * time.Hour), UpdatedAt: base}
	require.NoError(t, db.Create(&late).Error)

	view, err = svc.Get(context.Background(), domain.GetRequest{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNormal, view.Status)
}

func TestGet_IncludesLoadRelations(t *testing.T) {
	svc, db := newTestService(t)

	require.NoError(t, db.Create(&refdata.Customer{ID: 1, Name: "PARAS CAPTIVE"}).Error)
	require.NoError(t, db.Create(&refdata.CustomerSite{ID: 2, CustomerID: 1, Name: "PARAS CAPTIVE MAIN"}).Error)

	created, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":      1,
		"customer_site_id": 2,
		"volume":           100,
	}})
	require.NoError(t, err)

	plain, err := svc.Get(context.Background(), domain.GetRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Nil(t, plain.Customer)

	loaded, err := svc.Get(context.Background(), domain.GetRequest{
		ID:       created.ID,
		Includes: []string{"customer", "customer_site"},
	})
	require.NoError(t, err)
	require.NotNil(t, loaded.Customer)
	assert.Equal(t, "PARAS CAPTIVE", loaded.Customer.Name)
	require.NotNil(t, loaded.CustomerSite)
	assert.Equal(t, "PARAS CAPTIVE MAIN", loaded.CustomerSite.Name)
}

func TestDelete_SecondCallIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
		"customer_id":      1,
		"customer_site_id": 2,
		"volume":           100,
	}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}

func TestList_UnknownFilterHasNoEffect(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
			"customer_id":      1,
			"customer_site_id": 2,
			"volume":           100,
		}})
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), domain.ListRequest{Paginate: true, BasePath: "/api/daily-volumes"})
	require.NoError(t, err)

	filtered, err := svc.List(context.Background(), domain.ListRequest{
		Filters:  map[string]string{"bogus": "1"},
		Paginate: true,
		BasePath: "/api/daily-volumes",
	})
	require.NoError(t, err)
	assert.Equal(t, len(all.Items), len(filtered.Items))
}

func TestList_NonPaginatedReturnsFullSet(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), domain.CreateRequest{Data: map[string]any{
			"customer_id":      1,
			"customer_site_id": 2,
			"volume":           100,
		}})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), domain.ListRequest{Paginate: false})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Nil(t, resp.Page)
}
