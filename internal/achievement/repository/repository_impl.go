package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/achievement/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, achievement *domain.Achievement) error {
	return db.WithContext(ctx).Create(achievement).Error
}

// ListByPlayer returns achievements newest first. A limit of zero means
// no cap.
func (r *repo) ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, limit int) ([]domain.Achievement, error) {
	q := db.WithContext(ctx).
		Model(&domain.Achievement{}).
		Where("player_id = ?", playerID).
		Order("unlocked_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var achievements []domain.Achievement
	if err := q.Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
