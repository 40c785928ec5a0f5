package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, choice *LifeChoice) error
	ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, offset, limit int) ([]LifeChoice, error)
}
