package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/achievement"
	"github.com/smallbiznis/tycoon/internal/business"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/config"
	"github.com/smallbiznis/tycoon/internal/dashboard"
	"github.com/smallbiznis/tycoon/internal/employee"
	"github.com/smallbiznis/tycoon/internal/history"
	"github.com/smallbiznis/tycoon/internal/investment"
	"github.com/smallbiznis/tycoon/internal/leaderboard"
	"github.com/smallbiznis/tycoon/internal/lifechoice"
	"github.com/smallbiznis/tycoon/internal/marketevent"
	"github.com/smallbiznis/tycoon/internal/migration"
	"github.com/smallbiznis/tycoon/internal/observability"
	"github.com/smallbiznis/tycoon/internal/player"
	"github.com/smallbiznis/tycoon/internal/ratelimit"
	"github.com/smallbiznis/tycoon/internal/rng"
	"github.com/smallbiznis/tycoon/internal/server"
	"github.com/smallbiznis/tycoon/pkg/db"
	"github.com/smallbiznis/tycoon/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		rng.Module,
		migration.Module,
		ratelimit.Module,

		player.Module,
		business.Module,
		employee.Module,
		marketevent.Module,
		lifechoice.Module,
		investment.Module,
		achievement.Module,
		history.Module,
		dashboard.Module,
		leaderboard.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
