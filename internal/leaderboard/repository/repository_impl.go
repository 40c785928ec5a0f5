package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Row is a scanned leaderboard record before ranks are assigned.
type Row struct {
	ID               snowflake.ID
	Username         string
	Email            string
	TotalWealth      float64
	ExperiencePoints int
	Level            int
	CreatedAt        time.Time
	LastActive       time.Time
	BusinessCount    int
}

type Repository interface {
	ListTopByWealth(ctx context.Context, db *gorm.DB, offset, limit int) ([]Row, error)
}

type repo struct{}

func Provide() Repository {
	return &repo{}
}

func (r *repo) ListTopByWealth(ctx context.Context, db *gorm.DB, offset, limit int) ([]Row, error) {
	var rows []Row
	err := db.WithContext(ctx).Raw(`
		SELECT p.id,
		       p.username,
		       p.email,
		       p.total_wealth,
		       p.experience_points,
		       p.level,
		       p.created_at,
		       p.last_active,
		       COUNT(b.id) AS business_count
		FROM players p
		LEFT JOIN businesses b ON b.player_id = p.id
		GROUP BY p.id, p.username, p.email, p.total_wealth, p.experience_points, p.level, p.created_at, p.last_active
		ORDER BY p.total_wealth DESC, p.id ASC
		LIMIT ? OFFSET ?`, limit, offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
