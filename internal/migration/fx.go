package migration

import (
	"github.com/gasplexhq/gasplex/internal/config"
	dailyvolume "github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	gascost "github.com/gasplexhq/gasplex/internal/gascost/domain"
	gasreport "github.com/gasplexhq/gasplex/internal/gasreport/domain"
	"github.com/gasplexhq/gasplex/internal/refdata"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql run in local mode without versioned migrations.
			err := conn.AutoMigrate(
				&refdata.Customer{},
				&refdata.CustomerSite{},
				&dailyvolume.DailyVolume{},
				&gascost.GasCost{},
				&gasreport.GasSituationReport{},
			)
			if err != nil {
				return err
			}
		}

		return refdata.Seed(conn, cfg.Import.Offtakers)
	}),
)
