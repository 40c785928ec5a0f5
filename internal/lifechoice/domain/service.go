package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
)

type CreateChoiceRequest struct {
	PlayerID       snowflake.ID
	ChoiceType     ChoiceType
	Title          string
	Description    string
	Cost           float64
	WealthImpact   float64
	BusinessImpact float64
	ExperienceGain int
}

type ListChoicesRequest struct {
	PlayerID   string
	Pagination pagination.Params
}

type Service interface {
	Create(context.Context, CreateChoiceRequest) (LifeChoice, error)
	ListByPlayer(context.Context, ListChoicesRequest) ([]LifeChoice, error)
}

var (
	ErrInvalidTitle       = errors.New("invalid_title")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidChoiceType  = errors.New("invalid_choice_type")
	ErrInvalidCost        = errors.New("invalid_cost")
	ErrInvalidImpact      = errors.New("invalid_business_impact")
	ErrInvalidExperience  = errors.New("invalid_experience_gain")
	ErrInvalidID          = errors.New("invalid_id")
	ErrPlayerNotFound     = errors.New("player_not_found")
)
