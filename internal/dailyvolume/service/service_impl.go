package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	"github.com/gasplexhq/gasplex/internal/formfield"
	"github.com/gasplexhq/gasplex/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("dailyvolume.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	records, pageInfo, err := s.repo.List(ctx, s.db, domain.ListQuery{
		Filters:  req.Filters,
		Page:     req.Page,
		Paginate: req.Paginate,
		BasePath: req.BasePath,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	views := make([]domain.View, 0, len(records))
	for _, record := range records {
		view, err := s.view(ctx, record)
		if err != nil {
			return domain.ListResponse{}, err
		}
		views = append(views, view)
	}

	return domain.ListResponse{Items: views, Page: pageInfo}, nil
}

func (s *Service) Get(ctx context.Context, req domain.GetRequest) (domain.View, error) {
	record, err := s.repo.FindByID(ctx, s.db, req.ID, req.Includes)
	if err != nil {
		return domain.View{}, err
	}
	if record == nil {
		return domain.View{}, domain.ErrNotFound
	}
	return s.view(ctx, record)
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.View, error) {
	s.log.Info("starting daily volume creation")

	data, err := formfield.Merge(req.Data)
	if err != nil {
		return domain.View{}, err
	}

	validated, report := validation.Validate(data, domain.Rules(), false)
	if report != nil {
		return domain.View{}, report
	}

	now := time.Now().UTC()
	record := domain.DailyVolume{
		ID:        s.genID.Generate().Int64(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(&record, validated)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, &record)
	})
	if err != nil {
		s.log.Error("daily volume creation failed", zap.Error(err))
		return domain.View{}, err
	}

	s.log.Info("daily volume created", zap.Int64("id", record.ID))
	return s.view(ctx, &record)
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.View, error) {
	if req.ID == 0 {
		return domain.View{}, domain.ErrMissingID
	}

	s.log.Info("starting daily volume update", zap.Int64("id", req.ID))

	data, err := formfield.Merge(req.Data)
	if err != nil {
		return domain.View{}, err
	}

	validated, report := validation.Validate(data, domain.Rules(), true)
	if report != nil {
		return domain.View{}, report
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID, nil)
	if err != nil {
		return domain.View{}, err
	}
	if existing == nil {
		return domain.View{}, domain.ErrNotFound
	}

	if len(validated) > 0 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.repo.UpdateFields(ctx, tx, req.ID, validated)
		})
		if err != nil {
			s.log.Error("daily volume update failed", zap.Int64("id", req.ID), zap.Error(err))
			return domain.View{}, err
		}
	}

	updated, err := s.repo.FindByID(ctx, s.db, req.ID, nil)
	if err != nil {
		return domain.View{}, err
	}
	if updated == nil {
		return domain.View{}, domain.ErrNotFound
	}

	s.log.Info("daily volume updated", zap.Int64("id", req.ID))
	return s.view(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// view serializes one record with its trailing-average classification. The
// average lookup is the only query allowed during serialization.
func (s *Service) view(ctx context.Context, record *domain.DailyVolume) (domain.View, error) {
	avg, err := s.repo.TrailingAverage(ctx, s.db, record.CustomerSiteID, record.CreatedAt)
	if err != nil {
		return domain.View{}, err
	}
	return domain.NewView(record, avg), nil
}

func applyFields(record *domain.DailyVolume, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "customer_id":
			record.CustomerID = value.(int64)
		case "customer_site_id":
			record.CustomerSiteID = value.(int64)
		case "volume":
			record.Volume = value.(float64)
		case "rate":
			v := value.(float64)
			record.Rate = &v
		case "amount":
			v := value.(float64)
			record.Amount = &v
		case "remark":
			v := value.(string)
			record.Remark = &v
		}
	}
}
