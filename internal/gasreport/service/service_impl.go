package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gasplexhq/gasplex/internal/config"
	"github.com/gasplexhq/gasplex/internal/events"
	"github.com/gasplexhq/gasplex/internal/formfield"
	"github.com/gasplexhq/gasplex/internal/gasreport/domain"
	"github.com/gasplexhq/gasplex/internal/validation"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	eventCreated = "gas_situation_report.created"
	eventUpdated = "gas_situation_report.updated"
)

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
		log:        p.Log.Named("gasreport.service"),
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
	record, err := s.repo.FindByID(ctx, s.db, id, true)
	if err != nil {
		return domain.View{}, err
	}
	if record == nil {
		return domain.View{}, domain.ErrNotFound
	}
	return domain.NewView(record), nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.View, error) {
	s.log.Info("starting gas situation report creation")

	data, err := formfield.Merge(req.Data)
	if err != nil {
		return domain.View{}, err
	}

	validated, report := validation.Validate(data, domain.Rules(), false)
	if report != nil {
		return domain.View{}, report
	}

	now := time.Now().UTC()
	record := domain.GasSituationReport{
		ID:        s.genID.Generate().Int64(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(&record, validated)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, &record)
	})
	if err != nil {
		s.log.Error("gas situation report creation failed", zap.Error(err))
		return domain.View{}, err
	}

	s.log.Info("gas situation report created", zap.Int64("id", record.ID))

	view, err := s.loadedView(ctx, record.ID)
	if err != nil {
		return domain.View{}, err
	}
	s.dispatcher.Dispatch(ctx, eventCreated, s.cfg.Events.GasSituationReportCreated, view)
	return view, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.View, error) {
	if req.ID == 0 {
		return domain.View{}, domain.ErrMissingID
	}

	s.log.Info("starting gas situation report update", zap.Int64("id", req.ID))

	data, err := formfield.Merge(req.Data)
	if err != nil {
		return domain.View{}, err
	}

	validated, report := validation.Validate(data, domain.Rules(), true)
	if report != nil {
		return domain.View{}, report
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID, false)
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
			s.log.Error("gas situation report update failed", zap.Int64("id", req.ID), zap.Error(err))
			return domain.View{}, err
		}
	}

	s.log.Info("gas situation report updated", zap.Int64("id", req.ID))

	view, err := s.loadedView(ctx, req.ID)
	if err != nil {
		return domain.View{}, err
	}
	s.dispatcher.Dispatch(ctx, eventUpdated, s.cfg.Events.GasSituationReportUpdated, view)
	return view, nil
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

// loadedView re-reads the record with both relations so the notification
// payload and the API response carry the customer and site data.
func (s *Service) loadedView(ctx context.Context, id int64) (domain.View, error) {
	record, err := s.repo.FindByID(ctx, s.db, id, true)
	if err != nil {
		return domain.View{}, err
	}
	if record == nil {
		return domain.View{}, domain.ErrNotFound
	}
	return domain.NewView(record), nil
}

func applyFields(record *domain.GasSituationReport, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "customer_id":
			record.CustomerID = value.(int64)
		case "customer_site_id":
			record.CustomerSiteID = value.(int64)
		case "inlet_pressure":
			record.InletPressure = value.(float64)
		case "outlet_pressure":
			record.OutletPressure = value.(float64)
		case "allocation":
			record.Allocation = value.(float64)
		case "nomination":
			record.Nomination = value.(float64)
		}
	}
}
