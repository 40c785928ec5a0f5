package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// BusinessPerformance is an append-only snapshot of a business's key
// metrics at a point in time.
type BusinessPerformance struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	BusinessID    snowflake.ID `gorm:"not null;index" json:"business_id"`
	Income        float64      `gorm:"column:income_snapshot;type:decimal(12,2);not null" json:"income_snapshot"`
	Expenses      float64      `gorm:"column:expenses_snapshot;type:decimal(12,2);not null" json:"expenses_snapshot"`
	EmployeeCount int          `gorm:"column:employee_count_snapshot;not null" json:"employee_count_snapshot"`
	GrowthRate    float64      `gorm:"column:growth_rate_snapshot;type:decimal(5,4);not null" json:"growth_rate_snapshot"`
	MarketShare   float64      `gorm:"column:market_share_snapshot;type:decimal(5,4);not null" json:"market_share_snapshot"`
	RecordedAt    time.Time    `gorm:"not null;index" json:"recorded_at"`
}

func (BusinessPerformance) TableName() string { return "business_performance_history" }

// PlayerWealthHistory is an append-only snapshot of a player's wealth
// and progression.
type PlayerWealthHistory struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	PlayerID         snowflake.ID `gorm:"not null;index" json:"player_id"`
	TotalWealth      float64      `gorm:"column:total_wealth_snapshot;type:decimal(15,2);not null" json:"total_wealth_snapshot"`
	Level            int          `gorm:"column:level_snapshot;not null" json:"level_snapshot"`
	ExperiencePoints int          `gorm:"column:experience_points_snapshot;not null" json:"experience_points_snapshot"`
	RecordedAt       time.Time    `gorm:"not null;index" json:"recorded_at"`
}

func (PlayerWealthHistory) TableName() string { return "player_wealth_history" }
