package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, achievement *Achievement) error
	ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, limit int) ([]Achievement, error)
}
