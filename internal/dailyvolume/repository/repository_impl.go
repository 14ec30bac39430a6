package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	"github.com/gasplexhq/gasplex/pkg/db/filter"
	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"gorm.io/gorm"
)

var filterable = filter.NewDefinition(
	[]string{"customer_id", "customer_site_id", "volume"},
	[]string{"created_at", "updated_at"},
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.DailyVolume) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64, includes []string) (*domain.DailyVolume, error) {
	stmt := db.WithContext(ctx)
	for _, include := range includes {
		switch include {
		case "customer":
			stmt = stmt.Preload("Customer")
		case "customer_site":
			stmt = stmt.Preload("CustomerSite")
		}
	}

	var record domain.DailyVolume
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
		Model(&domain.DailyVolume{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	result := db.WithContext(ctx).Delete(&domain.DailyVolume{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, q domain.ListQuery) ([]*domain.DailyVolume, *pagination.PageInfo, error) {
	stmt := db.WithContext(ctx).Model(&domain.DailyVolume{})
	stmt = filterable.Apply(stmt, q.Filters)
	stmt = stmt.Order("created_at desc, id desc")

	var records []*domain.DailyVolume
	if !q.Paginate {
		if err := stmt.Find(&records).Error; err != nil {
			return nil, nil, err
		}
		return records, nil, nil
	}

	info, err := pagination.Paginate(stmt, q.Page, q.BasePath, &records)
	if err != nil {
		return nil, nil, err
	}
	return records, info, nil
}

func (r *repo) TrailingAverage(ctx context.Context, db *gorm.DB, siteID int64, until time.Time) (*float64, error) {
	var row struct {
		Avg *float64
	}
	err := db.WithContext(ctx).
		Model(&domain.DailyVolume{}).
		Select("AVG(volume) AS avg").
		Where("customer_site_id = ?", siteID).
		Where("created_at BETWEEN ? AND ?", until.Add(-domain.TrailingWindow), until).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return row.Avg, nil
}
