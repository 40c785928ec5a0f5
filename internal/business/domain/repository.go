package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, business *Business) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Business, error)
	// ListByPlayer returns all of a player's businesses, newest first.
	// When activeOnly is set, inactive businesses are excluded.
	ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, activeOnly bool) ([]Business, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
}
