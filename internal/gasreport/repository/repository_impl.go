package repository

import (
	"context"
	"errors"

	"github.com/gasplexhq/gasplex/internal/gasreport/domain"
	"github.com/gasplexhq/gasplex/pkg/db/filter"
	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"gorm.io/gorm"
)

var filterable = filter.NewDefinition(
	[]string{"customer_id", "customer_site_id"},
	[]string{"created_at", "updated_at"},
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.GasSituationReport) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64, withRelations bool) (*domain.GasSituationReport, error) {
	stmt := db.WithContext(ctx)
	if withRelations {
		stmt = stmt.Preload("Customer").Preload("CustomerSite")
	}

	var record domain.GasSituationReport
	err := stmt.Take(&record, "id = ?", id).Error
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
		Model(&domain.GasSituationReport{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	result := db.WithContext(ctx).Delete(&domain.GasSituationReport{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, q domain.ListQuery) ([]*domain.GasSituationReport, *pagination.PageInfo, error) {
	stmt := db.WithContext(ctx).Model(&domain.GasSituationReport{})
	stmt = filterable.Apply(stmt, q.Filters)
	stmt = stmt.Order("created_at desc, id desc")

	var records []*domain.GasSituationReport
	info, err := pagination.Paginate(stmt, q.Page, q.BasePath, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, info, nil
}
