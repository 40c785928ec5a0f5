package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, investment *Investment) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Investment, error)
	ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, incompleteOnly bool) ([]Investment, error)
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
}
