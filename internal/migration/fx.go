package migration

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/config"
	"github.com/smallbiznis/tycoon/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
		// Versioned migrations are postgres-only; the sqlite mode used in
		// local smoke runs relies on AutoMigrate-equivalent schemas.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		}

		if cfg.SeedDemo {
			return seed.EnsureDemoPlayer(conn, genID)
		}
		return nil
	}),
)
