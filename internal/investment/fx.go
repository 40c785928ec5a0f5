package investment

import (
	"github.com/smallbiznis/tycoon/internal/investment/repository"
	"github.com/smallbiznis/tycoon/internal/investment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("investment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
