package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, player *Player) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Player, error)
	Exists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	// IncrementStats atomically applies wealth and experience deltas,
	// optionally touching last_active. Used by life choices, investment
	// completion and achievement grants.
	IncrementStats(ctx context.Context, db *gorm.DB, id snowflake.ID, wealthDelta float64, xpDelta int, lastActive *time.Time) error
}
