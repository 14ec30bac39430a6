package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gasplexhq/gasplex/internal/config"
	"github.com/gasplexhq/gasplex/internal/events"
	"github.com/gasplexhq/gasplex/internal/formfield"
	"github.com/gasplexhq/gasplex/internal/gascost/domain"
	"github.com/gasplexhq/gasplex/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const eventCreated = "gas_cost.created"

type Params struct {
	fx.In

	Cfg        config.Config
	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Dispatcher *events.Dispatcher
}

type Service struct {
	cfg        config.Config
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	dispatcher *events.Dispatcher
}

func New(p Params) domain.Service {
	return &Service{
		cfg:        p.Cfg,
		db:         p.DB,
		log:        p.Log.Named("gascost.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		dispatcher: p.Dispatcher,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	records, pageInfo, err := s.repo.List(ctx, s.db, domain.ListQuery{
		Filters:  req.Filters,
		Page:     req.Page,
		BasePath: req.BasePath,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	views := make([]domain.View, 0, len(records))
	for _, record := range records {
		views = append(views, domain.NewView(record))
	}

	return domain.ListResponse{Items: views, Page: pageInfo}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.View, error) {
	record, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.View{}, err
	}
	if record == nil {
		return domain.View{}, domain.ErrNotFound
	}
	return domain.NewView(record), nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.View, error) {
	s.log.Info("starting gas cost creation")

	data, err := formfield.Merge(req.Data)
	if err != nil {
		return domain.View{}, err
	}

	validated, report := validation.Validate(data, domain.Rules(), false)
	if report != nil {
		return domain.View{}, report
	}

	now := time.Now().UTC()
	record := domain.GasCost{
		ID:        s.genID.Generate().Int64(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(&record, validated)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, &record)
	})
	if err != nil {
		s.log.Error("gas cost creation failed", zap.Error(err))
		return domain.View{}, err
	}

	s.log.Info("gas cost created", zap.Int64("id", record.ID))
	view := domain.NewView(&record)
	s.dispatcher.Dispatch(ctx, eventCreated, s.cfg.Events.GasCostCreated, view)
	return view, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.View, error) {
	if req.ID == 0 {
		return domain.View{}, domain.ErrMissingID
	}

	s.log.Info("starting gas cost update", zap.Int64("id", req.ID))

	data, err := formfield.Merge(req.Data)
	if err != nil {
		return domain.View{}, err
	}

	validated, report := validation.Validate(data, domain.Rules(), true)
	if report != nil {
		return domain.View{}, report
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
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
			s.log.Error("gas cost update failed", zap.Int64("id", req.ID), zap.Error(err))
			return domain.View{}, err
		}
	}

	updated, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.View{}, err
	}
	if updated == nil {
		return domain.View{}, domain.ErrNotFound
	}

	s.log.Info("gas cost updated", zap.Int64("id", req.ID))
	return domain.NewView(updated), nil
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

func applyFields(record *domain.GasCost, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "date_of_entry":
			record.DateOfEntry = value.(time.Time)
		case "dollar_cost_per_scf":
			record.DollarCostPerSCF = value.(float64)
		case "dollar_rate":
			record.DollarRate = value.(float64)
		case "status":
			record.Status = value.(bool)
		}
	}
}
