package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Trait bounds applied after position adjustment.
const (
	MinScore        = 0.5
	MaxScore        = 2.0
	MinExperience   = 1
	MaxExperience   = 10
)

type Employee struct {
	ID                snowflake.ID `gorm:"primaryKey" json:"id"`
	BusinessID        snowflake.ID `gorm:"not null;index" json:"business_id"`
	Name              string       `gorm:"not null" json:"name"`
	Position          string       `gorm:"not null" json:"position"`
	Salary            float64      `gorm:"type:decimal(10,2);not null" json:"salary"`
	ProductivityScore float64      `gorm:"type:decimal(3,2);not null" json:"productivity_score"`
	MoraleScore       float64      `gorm:"type:decimal(3,2);not null" json:"morale_score"`
	ExperienceLevel   int          `gorm:"not null" json:"experience_level"`
	HiredAt           time.Time    `gorm:"not null" json:"hired_at"`
	IsActive          bool         `gorm:"not null" json:"is_active"`
}

func (Employee) TableName() string { return "employees" }
