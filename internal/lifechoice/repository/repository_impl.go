package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/lifechoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, choice *domain.LifeChoice) error {
	return db.WithContext(ctx).Create(choice).Error
}

func (r *repo) ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, offset, limit int) ([]domain.LifeChoice, error) {
	var choices []domain.LifeChoice
	err := db.WithContext(ctx).
		Model(&domain.LifeChoice{}).
		Where("player_id = ?", playerID).
		Order("made_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&choices).Error
	if err != nil {
		return nil, err
	}
	return choices, nil
}
