package leaderboard

import (
	"github.com/smallbiznis/tycoon/internal/leaderboard/cache"
	"github.com/smallbiznis/tycoon/internal/leaderboard/repository"
	"github.com/smallbiznis/tycoon/internal/leaderboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("leaderboard.service",
	fx.Provide(cache.New),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
