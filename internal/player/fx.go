package player

import (
	"github.com/smallbiznis/tycoon/internal/player/repository"
	"github.com/smallbiznis/tycoon/internal/player/service"
	"go.uber.org/fx"
)

var Module = fx.Module("player.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
