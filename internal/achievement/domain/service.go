package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateAchievementRequest struct {
	PlayerID         snowflake.ID
	AchievementType  AchievementType
	Title            string
	Description      string
	Icon             string
	ExperienceReward int
}

type ListAchievementsRequest struct {
	PlayerID string
}

type Service interface {
	Create(context.Context, CreateAchievementRequest) (Achievement, error)
	ListByPlayer(context.Context, ListAchievementsRequest) ([]Achievement, error)
}

var (
	ErrInvalidTitle       = errors.New("invalid_title")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidType        = errors.New("invalid_achievement_type")
	ErrInvalidIcon        = errors.New("invalid_icon")
	ErrInvalidReward      = errors.New("invalid_experience_reward")
	ErrInvalidID          = errors.New("invalid_id")
	ErrPlayerNotFound     = errors.New("player_not_found")
)
