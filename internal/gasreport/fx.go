package gasreport

import (
	"github.com/gasplexhq/gasplex/internal/gasreport/repository"
	"github.com/gasplexhq/gasplex/internal/gasreport/service"
	"go.uber.org/fx"
)

var Module = fx.Module("gasreport.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
