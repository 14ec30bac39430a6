package repository

import (
	"context"
	"errors"

	"github.com/gasplexhq/gasplex/internal/gascost/domain"
	"github.com/gasplexhq/gasplex/pkg/db/filter"
	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"gorm.io/gorm"
)

var filterable = filter.NewDefinition(
	[]string{"date_of_entry", "dollar_cost_per_scf", "dollar_rate", "status"},
	[]string{"date_of_entry"},
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.GasCost) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.GasCost, error) {
	var record domain.GasCost
	err := db.WithContext(ctx).Take(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]any) error {
	return db.WithContext(ctx).
		Model(&domain.GasCost{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	result := db.WithContext(ctx).Delete(&domain.GasCost{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, q domain.ListQuery) ([]*domain.GasCost, *pagination.PageInfo, error) {
	stmt := db.WithContext(ctx).Model(&domain.GasCost{})
	stmt = filterable.Apply(stmt, q.Filters)
	stmt = stmt.Order("date_of_entry desc, id desc")

	var records []*domain.GasCost
	info, err := pagination.Paginate(stmt, q.Page, q.BasePath, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, info, nil
}
