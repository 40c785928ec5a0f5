package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertBusinessPerformance(ctx context.Context, db *gorm.DB, snapshot *BusinessPerformance) error
	ListBusinessPerformance(ctx context.Context, db *gorm.DB, businessID snowflake.ID, offset, limit int) ([]BusinessPerformance, error)
	InsertPlayerWealth(ctx context.Context, db *gorm.DB, snapshot *PlayerWealthHistory) error
	ListPlayerWealth(ctx context.Context, db *gorm.DB, playerID snowflake.ID, offset, limit int) ([]PlayerWealthHistory, error)
}
