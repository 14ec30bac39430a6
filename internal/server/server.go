package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gasplexhq/gasplex/internal/config"
	"github.com/gasplexhq/gasplex/internal/dailyvolume"
	dailyvolumedomain "github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	"github.com/gasplexhq/gasplex/internal/gascost"
	gascostdomain "github.com/gasplexhq/gasplex/internal/gascost/domain"
	"github.com/gasplexhq/gasplex/internal/gasreport"
	gasreportdomain "github.com/gasplexhq/gasplex/internal/gasreport/domain"
	obsmiddleware "github.com/gasplexhq/gasplex/internal/observability/logger"
	obsmetrics "github.com/gasplexhq/gasplex/internal/observability/metrics"
	"github.com/gasplexhq/gasplex/internal/reportimport"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	dailyvolume.Module,
	gascost.Module,
	gasreport.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	dailyVolumeSvc dailyvolumedomain.Service
	gasCostSvc     gascostdomain.Service
	gasReportSvc   gasreportdomain.Service
	reportParser   *reportimport.Parser
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	DailyVolumeSvc dailyvolumedomain.Service
	GasCostSvc     gascostdomain.Service
	GasReportSvc   gasreportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		dailyVolumeSvc: p.DailyVolumeSvc,
		gasCostSvc:     p.GasCostSvc,
		gasReportSvc:   p.GasReportSvc,
		reportParser:   reportimport.NewParser(p.Cfg.Import.Offtakers),
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(BearerScopeRequired(s.cfg, "user"))

	api.GET("/daily-volumes", s.ListDailyVolumes)
	api.POST("/daily-volumes", s.CreateDailyVolume)
	api.GET("/daily-volumes/:id", s.GetDailyVolume)
	api.PATCH("/daily-volumes/:id", s.UpdateDailyVolume)
	api.DELETE("/daily-volumes/:id", s.DeleteDailyVolume)

	api.GET("/gas-costs", s.ListGasCosts)
	api.POST("/gas-costs", s.CreateGasCost)
	api.GET("/gas-costs/:id", s.GetGasCost)
	api.PATCH("/gas-costs/:id", s.UpdateGasCost)
	api.DELETE("/gas-costs/:id", s.DeleteGasCost)

	api.GET("/gas-situation-reports", s.ListGasSituationReports)
	api.POST("/gas-situation-reports", s.CreateGasSituationReport)
	api.GET("/gas-situation-reports/:id", s.GetGasSituationReport)
	api.PATCH("/gas-situation-reports/:id", s.UpdateGasSituationReport)
	api.DELETE("/gas-situation-reports/:id", s.DeleteGasSituationReport)

	api.POST("/daily-gas-reports/preview", s.PreviewDailyGasReport)
}
