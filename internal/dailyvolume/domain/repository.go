package domain

import (
	"context"
	"time"

	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListQuery struct {
	Filters  map[string]string
	Page     pagination.Pagination
	Paginate bool
	BasePath string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *DailyVolume) error
	FindByID(ctx context.Context, db *gorm.DB, id int64, includes []string) (*DailyVolume, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	List(ctx context.Context, db *gorm.DB, q ListQuery) ([]*DailyVolume, *pagination.PageInfo, error)
	TrailingAverage(ctx context.Context, db *gorm.DB, siteID int64, until time.Time) (*float64, error)
}
