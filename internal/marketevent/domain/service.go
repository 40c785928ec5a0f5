package domain

import (
	"context"
	"errors"

	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
)

type CreateEventRequest struct {
	Title            string
	Description      string
	EventType        EventType
	ImpactMagnitude  float64
	AffectedIndustry *businessdomain.Industry
	DurationHours    *int
}

type Service interface {
	Create(context.Context, CreateEventRequest) (MarketEvent, error)
	ListActive(context.Context) ([]MarketEvent, error)
}

var (
	ErrInvalidTitle       = errors.New("invalid_title")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidEventType   = errors.New("invalid_event_type")
	ErrInvalidImpact      = errors.New("invalid_impact_magnitude")
	ErrInvalidDuration    = errors.New("invalid_duration")
	ErrInvalidIndustry    = errors.New("invalid_industry")
)
