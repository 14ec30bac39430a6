package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reading struct {
	ID         int64 `gorm:"primaryKey"`
	CustomerID int64
	Volume     float64
	CreatedAt  time.Time
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&reading{}))
	return db
}

func seedReadings(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []reading{
		{ID: 1, CustomerID: 1, Volume: 10, CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)},
		{ID: 2, CustomerID: 1, Volume: 20, CreatedAt: time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)},
		{ID: 3, CustomerID: 2, Volume: 20, CreatedAt: time.Date(2026, 8, 9, 9, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestApply_Equality(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)

	def := NewDefinition([]string{"customer_id", "volume"}, nil)

	var rows []reading
	stmt := def.Apply(db.Model(&reading{}), map[string]string{"customer_id": "1"})
	require.NoError(t, stmt.Find(&rows).Error)
	assert.Len(t, rows, 2)
}

func TestApply_DateRange(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)

	def := NewDefinition(nil, []string{"created_at"})

	var rows []reading
	stmt := def.Apply(db.Model(&reading{}), map[string]string{
		"created_at_from": "2026-08-02",
		"created_at_to":   "2026-08-09",
	})
	require.NoError(t, stmt.Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.ElementsMatch(t, []int64{2, 3}, []int64{rows[0].ID, rows[1].ID})
}

func TestApply_RangeIncludesWholeDay(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)

	def := NewDefinition(nil, []string{"created_at"})

	var rows []reading
	stmt := def.Apply(db.Model(&reading{}), map[string]string{"created_at_to": "2026-08-01"})
	require.NoError(t, stmt.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].ID)
}

func TestApply_UnknownKeyIsDropped(t *testing.T) {
	db := newTestDB(t)
	seedReadings(t, db)

	def := NewDefinition([]string{"customer_id"}, nil)

	var rows []reading
	stmt := def.Apply(db.Model(&reading{}), map[string]string{
		"nonexistent": "boom",
		"volume_from": "1",
	})
	require.NoError(t, stmt.Find(&rows).Error)
	assert.Len(t, rows, 3)
}
