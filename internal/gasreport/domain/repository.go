package domain

import (
	"context"

	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListQuery struct {
	Filters  map[string]string
	Page     pagination.Pagination
	BasePath string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *GasSituationReport) error
	FindByID(ctx context.Context, db *gorm.DB, id int64, withRelations bool) (*GasSituationReport, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error)
	List(ctx context.Context, db *gorm.DB, q ListQuery) ([]*GasSituationReport, *pagination.PageInfo, error)
}
