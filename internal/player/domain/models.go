package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// DefaultStartingWealth is the bankroll every new player begins with.
const (
	DefaultStartingWealth = 10000.00
	DefaultLevel          = 1
)

type Player struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	Username         string       `gorm:"uniqueIndex;not null" json:"username"`
	Email            string       `gorm:"uniqueIndex;not null" json:"email"`
	TotalWealth      float64      `gorm:"type:decimal(15,2);not null" json:"total_wealth"`
	ExperiencePoints int          `gorm:"not null" json:"experience_points"`
	Level            int          `gorm:"not null" json:"level"`
	CreatedAt        time.Time    `gorm:"not null" json:"created_at"`
	LastActive       time.Time    `gorm:"not null" json:"last_active"`
}

func (Player) TableName() string { return "players" }
