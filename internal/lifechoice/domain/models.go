package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ChoiceType is the closed set of life choice categories.
type ChoiceType string

const (
	ChoiceLuxuryPurchase    ChoiceType = "luxury_purchase"
	ChoiceNetworkingEvent   ChoiceType = "networking_event"
	ChoiceEducation         ChoiceType = "education"
	ChoiceHealthWellness    ChoiceType = "health_wellness"
	ChoiceFamilyTime        ChoiceType = "family_time"
	ChoiceSavingsInvestment ChoiceType = "savings_investment"
)

var choiceTypes = map[ChoiceType]struct{}{
	ChoiceLuxuryPurchase:    {},
	ChoiceNetworkingEvent:   {},
	ChoiceEducation:         {},
	ChoiceHealthWellness:    {},
	ChoiceFamilyTime:        {},
	ChoiceSavingsInvestment: {},
}

func (t ChoiceType) Valid() bool {
	_, ok := choiceTypes[t]
	return ok
}

type LifeChoice struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	PlayerID       snowflake.ID `gorm:"not null;index" json:"player_id"`
	ChoiceType     ChoiceType   `gorm:"not null" json:"choice_type"`
	Title          string       `gorm:"not null" json:"title"`
	Description    string       `gorm:"not null" json:"description"`
	Cost           float64      `gorm:"type:decimal(10,2);not null" json:"cost"`
	WealthImpact   float64      `gorm:"type:decimal(10,2);not null" json:"wealth_impact"`
	BusinessImpact float64      `gorm:"type:decimal(3,2);not null" json:"business_impact"`
	ExperienceGain int          `gorm:"not null" json:"experience_gain"`
	MadeAt         time.Time    `gorm:"not null" json:"made_at"`
}

func (LifeChoice) TableName() string { return "life_choices" }
