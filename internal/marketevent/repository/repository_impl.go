package repository

import (
	"context"
	"time"

	"github.com/smallbiznis/tycoon/internal/marketevent/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *domain.MarketEvent) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB, now time.Time) ([]domain.MarketEvent, error) {
	var events []domain.MarketEvent
	err := db.WithContext(ctx).
		Model(&domain.MarketEvent{}).
		Where("is_active = ? AND expires_at > ?", true, now).
		Order("created_at desc, id desc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repo) ListRecentActive(ctx context.Context, db *gorm.DB, since time.Time, limit int) ([]domain.MarketEvent, error) {
	var events []domain.MarketEvent
	err := db.WithContext(ctx).
		Model(&domain.MarketEvent{}).
		Where("is_active = ? AND created_at >= ?", true, since).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
