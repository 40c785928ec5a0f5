package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Industry is the closed set of sectors a business can operate in.
type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryFinance       Industry = "finance"
	IndustryHealthcare    Industry = "healthcare"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryRealEstate    Industry = "real_estate"
	IndustryEntertainment Industry = "entertainment"
	IndustryFoodService   Industry = "food_service"
)

var industries = map[Industry]struct{}{
	IndustryTechnology:    {},
	IndustryFinance:       {},
	IndustryHealthcare:    {},
	IndustryRetail:        {},
	IndustryManufacturing: {},
	IndustryRealEstate:    {},
	IndustryEntertainment: {},
	IndustryFoodService:   {},
}

func (i Industry) Valid() bool {
	_, ok := industries[i]
	return ok
}

// DefaultGrowthRate and DefaultMarketShare are the near-zero starting
// values every new business receives.
const (
	DefaultGrowthRate  = 0.0001
	DefaultMarketShare = 0.0001
)

type Business struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	PlayerID        snowflake.ID `gorm:"not null;index" json:"player_id"`
	Name            string       `gorm:"not null" json:"name"`
	Industry        Industry     `gorm:"not null" json:"industry"`
	MonthlyIncome   float64      `gorm:"type:decimal(12,2);not null" json:"monthly_income"`
	MonthlyExpenses float64      `gorm:"type:decimal(12,2);not null" json:"monthly_expenses"`
	EmployeeCount   int          `gorm:"not null" json:"employee_count"`
	GrowthRate      float64      `gorm:"type:decimal(5,4);not null" json:"growth_rate"`
	MarketShare     float64      `gorm:"type:decimal(5,4);not null" json:"market_share"`
	IsActive        bool         `gorm:"not null" json:"is_active"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
}

func (Business) TableName() string { return "businesses" }
