package dailyvolume

import (
	"github.com/gasplexhq/gasplex/internal/dailyvolume/repository"
	"github.com/gasplexhq/gasplex/internal/dailyvolume/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dailyvolume.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
