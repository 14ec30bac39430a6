package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gasplexhq/gasplex/internal/config"
	"github.com/gasplexhq/gasplex/internal/events"
	"github.com/gasplexhq/gasplex/internal/gascost/domain"
	"github.com/gasplexhq/gasplex/internal/gascost/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type capturingPublisher struct {
	mu     sync.Mutex
	queues []string
}

func (p *capturingPublisher) Publish(ctx context.Context, queue string, payload any) error {
	_ = ctx
	_ = payload
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queues = append(p.queues, queue)
	return nil
}

func (p *capturingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.queues...)
}

func newTestService(t *testing.T, queues []string) (domain.Service, *capturingPublisher, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.GasCost{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	pub := &capturingPublisher{}
	svc := New(Params{
		Cfg: config.Config{
			Events: config.EventsConfig{GasCostCreated: queues},
		},
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Repo:       repository.Provide(),
		Dispatcher: events.NewDispatcher(pub, zap.NewNop()),
	})
	return svc, pub, db
}

func validCreate() map[string]any {
	return map[string]any{
		"date_of_entry":       "2026-08-01",
		"dollar_cost_per_scf": 0.45,
		"dollar_rate":         1520.5,
		"status":              true,
	}
}

func TestCreate_DispatchesToConfiguredQueues(t *testing.T) {
	svc, pub, _ := newTestService(t, []string{"billing", "", "  ", "reporting"})

	view, err := svc.Create(context.Background(), domain.CreateRequest{Data: validCreate()})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", view.DateOfEntry)
	// blank entries are skipped
	assert.Equal(t, []string{"billing", "reporting"}, pub.published())
}

func TestCreate_NoQueuesNoDispatch(t *testing.T) {
	svc, pub, _ := newTestService(t, nil)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Data: validCreate()})
	require.NoError(t, err)
	assert.Empty(t, pub.published())
}

func TestCreate_NegativeCostFailsValidation(t *testing.T) {
	svc, pub, db := newTestService(t, []string{"billing"})

	data := validCreate()
	data["dollar_cost_per_scf"] = -0.1
	_, err := svc.Create(context.Background(), domain.CreateRequest{Data: data})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.GasCost{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, pub.published())
}

func TestUpdate_DoesNotDispatch(t *testing.T) {
	svc, pub, _ := newTestService(t, []string{"billing"})

	created, err := svc.Create(context.Background(), domain.CreateRequest{Data: validCreate()})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), domain.UpdateRequest{
		ID:   created.ID,
		Data: map[string]any{"status": false},
	})
	require.NoError(t, err)
	assert.False(t, updated.Status)
	assert.Equal(t, []string{"billing"}, pub.published())
}

func TestGet_UnknownRecordIsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltersByDateOfEntryRange(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	for _, date := range []string{"2026-08-01", "2026-08-10", "2026-08-20"} {
		data := validCreate()
		data["date_of_entry"] = date
		_, err := svc.Create(context.Background(), domain.CreateRequest{Data: data})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), domain.ListRequest{
		Filters: map[string]string{
			"date_of_entry_from": "2026-08-05",
			"date_of_entry_to":   "2026-08-15",
		},
		BasePath: "/api/gas-costs",
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2026-08-10", resp.Items[0].DateOfEntry)
	require.NotNil(t, resp.Page)
	assert.Equal(t, int64(1), resp.Page.Total)
}
