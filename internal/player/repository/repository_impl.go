package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/player/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, player *domain.Player) error {
	return db.WithContext(ctx).Create(player).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Player, error) {
	var player domain.Player
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&player).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) IncrementStats(ctx context.Context, db *gorm.DB, id snowflake.ID, wealthDelta float64, xpDelta int, lastActive *time.Time) error {
	fields := map[string]any{}
	if wealthDelta != 0 {
		fields["total_wealth"] = gorm.Expr("total_wealth + ?", wealthDelta)
	}
	if xpDelta != 0 {
		fields["experience_points"] = gorm.Expr("experience_points + ?", xpDelta)
	}
	if lastActive != nil {
		fields["last_active"] = *lastActive
	}
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("id = ?", id).
		Updates(fields).Error
}
