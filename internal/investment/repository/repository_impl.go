package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/investment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, investment *domain.Investment) error {
	return db.WithContext(ctx).Create(investment).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Investment, error) {
	var investment domain.Investment
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&investment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &investment, nil
}

func (r *repo) ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, incompleteOnly bool) ([]domain.Investment, error) {
	q := db.WithContext(ctx).
		Model(&domain.Investment{}).
		Where("player_id = ?", playerID)
	if incompleteOnly {
		q = q.Where("is_completed = ?", false)
	}

	var investments []domain.Investment
	err := q.Order("created_at desc, id desc").Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.Investment{}).
		Where("id = ?", id).
		Updates(fields).Error
}
