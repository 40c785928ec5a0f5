package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/history/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertBusinessPerformance(ctx context.Context, db *gorm.DB, snapshot *domain.BusinessPerformance) error {
	return db.WithContext(ctx).Create(snapshot).Error
}

func (r *repo) ListBusinessPerformance(ctx context.Context, db *gorm.DB, businessID snowflake.ID, offset, limit int) ([]domain.BusinessPerformance, error) {
	var snapshots []domain.BusinessPerformance
	err := db.WithContext(ctx).
		Model(&domain.BusinessPerformance{}).
		Where("business_id = ?", businessID).
		Order("recorded_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *repo) InsertPlayerWealth(ctx context.Context, db *gorm.DB, snapshot *domain.PlayerWealthHistory) error {
	return db.WithContext(ctx).Create(snapshot).Error
}

func (r *repo) ListPlayerWealth(ctx context.Context, db *gorm.DB, playerID snowflake.ID, offset, limit int) ([]domain.PlayerWealthHistory, error) {
	var snapshots []domain.PlayerWealthHistory
	err := db.WithContext(ctx).
		Model(&domain.PlayerWealthHistory{}).
		Where("player_id = ?", playerID).
		Order("recorded_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
