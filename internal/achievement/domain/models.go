package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AchievementType is the closed set of achievement categories.
type AchievementType string

const (
	AchievementMilestone    AchievementType = "milestone"
	AchievementStreak       AchievementType = "streak"
	AchievementBadge        AchievementType = "badge"
	AchievementSpecialEvent AchievementType = "special_event"
)

var achievementTypes = map[AchievementType]struct{}{
	AchievementMilestone:    {},
	AchievementStreak:       {},
	AchievementBadge:        {},
	AchievementSpecialEvent: {},
}

func (t AchievementType) Valid() bool {
	_, ok := achievementTypes[t]
	return ok
}

type Achievement struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	PlayerID         snowflake.ID    `gorm:"not null;index" json:"player_id"`
	AchievementType  AchievementType `gorm:"not null" json:"achievement_type"`
	Title            string          `gorm:"not null" json:"title"`
	Description      string          `gorm:"not null" json:"description"`
	Icon             string          `gorm:"not null" json:"icon"`
	ExperienceReward int             `gorm:"not null" json:"experience_reward"`
	UnlockedAt       time.Time       `gorm:"not null" json:"unlocked_at"`
}

func (Achievement) TableName() string { return "achievements" }
