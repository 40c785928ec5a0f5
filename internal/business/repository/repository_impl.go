package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/business/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, business *domain.Business) error {
	return db.WithContext(ctx).Create(business).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Business, error) {
	var business domain.Business
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&business).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *repo) ListByPlayer(ctx context.Context, db *gorm.DB, playerID snowflake.ID, activeOnly bool) ([]domain.Business, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Business{}).
		Where("player_id = ?", playerID)
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}

	var businesses []domain.Business
	err := stmt.
		Order("created_at desc, id desc").
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.Business{}).
		Where("id = ?", id).
		Updates(fields).Error
}
