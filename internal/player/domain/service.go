package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type CreatePlayerRequest struct {
	Username string
	Email    string
}

type GetPlayerRequest struct {
	ID string
}

// UpdatePlayerRequest carries partial updates; nil fields are left untouched.
type UpdatePlayerRequest struct {
	ID               snowflake.ID
	TotalWealth      *float64
	ExperiencePoints *int
	Level            *int
	LastActive       *time.Time
}

type Service interface {
	Create(context.Context, CreatePlayerRequest) (Player, error)
	GetByID(context.Context, GetPlayerRequest) (Player, error)
	Update(context.Context, UpdatePlayerRequest) (Player, error)
}

var (
	ErrInvalidUsername = errors.New("invalid_username")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidID       = errors.New("invalid_id")
	ErrPlayerExists    = errors.New("player_exists")
	ErrNotFound        = errors.New("not_found")
)
