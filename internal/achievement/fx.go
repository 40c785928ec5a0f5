package achievement

import (
	"github.com/smallbiznis/tycoon/internal/achievement/repository"
	"github.com/smallbiznis/tycoon/internal/achievement/service"
	"go.uber.org/fx"
)

var Module = fx.Module("achievement.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
