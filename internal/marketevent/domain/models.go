package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
)

// EventType is the closed set of market event categories.
type EventType string

const (
	EventBoom                   EventType = "boom"
	EventCrash                  EventType = "crash"
	EventCompetitorAction       EventType = "competitor_action"
	EventEconomicCrisis         EventType = "economic_crisis"
	EventRegulationChange       EventType = "regulation_change"
	EventInnovationBreakthrough EventType = "innovation_breakthrough"
)

var eventTypes = map[EventType]struct{}{
	EventBoom:                   {},
	EventCrash:                  {},
	EventCompetitorAction:       {},
	EventEconomicCrisis:         {},
	EventRegulationChange:       {},
	EventInnovationBreakthrough: {},
}

func (t EventType) Valid() bool {
	_, ok := eventTypes[t]
	return ok
}

// DefaultDurationHours applies when a create request omits the duration.
const DefaultDurationHours = 24

type MarketEvent struct {
	ID               snowflake.ID             `gorm:"primaryKey" json:"id"`
	Title            string                   `gorm:"not null" json:"title"`
	Description      string                   `gorm:"not null" json:"description"`
	EventType        EventType                `gorm:"not null" json:"event_type"`
	ImpactMagnitude  float64                  `gorm:"type:decimal(3,2);not null" json:"impact_magnitude"`
	AffectedIndustry *businessdomain.Industry `json:"affected_industry"`
	DurationHours    int                      `gorm:"not null" json:"duration_hours"`
	IsActive         bool                     `gorm:"not null" json:"is_active"`
	CreatedAt        time.Time                `gorm:"not null" json:"created_at"`
	ExpiresAt        time.Time                `gorm:"not null;index" json:"expires_at"`
}

func (MarketEvent) TableName() string { return "market_events" }
