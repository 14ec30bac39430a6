package gascost

import (
	"github.com/gasplexhq/gasplex/internal/gascost/repository"
	"github.com/gasplexhq/gasplex/internal/gascost/service"
	"go.uber.org/fx"
)

var Module = fx.Module("gascost.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
