package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *MarketEvent) error
	ListActive(ctx context.Context, db *gorm.DB, now time.Time) ([]MarketEvent, error)
	ListRecentActive(ctx context.Context, db *gorm.DB, since time.Time, limit int) ([]MarketEvent, error)
}
