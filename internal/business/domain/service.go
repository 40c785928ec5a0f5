package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateBusinessRequest struct {
	PlayerID        snowflake.ID
	Name            string
	Industry        Industry
	MonthlyIncome   float64
	MonthlyExpenses float64
}

type ListBusinessesRequest struct {
	PlayerID string
}

type UpdateBusinessRequest struct {
	ID              snowflake.ID
	Name            *string
	MonthlyIncome   *float64
	MonthlyExpenses *float64
	EmployeeCount   *int
	GrowthRate      *float64
	MarketShare     *float64
	IsActive        *bool
}

type Service interface {
	Create(context.Context, CreateBusinessRequest) (Business, error)
	ListByPlayer(context.Context, ListBusinessesRequest) ([]Business, error)
	Update(context.Context, UpdateBusinessRequest) (Business, error)
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidIndustry = errors.New("invalid_industry")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidID       = errors.New("invalid_id")
	ErrPlayerNotFound  = errors.New("player_not_found")
	ErrNotFound        = errors.New("not_found")
)
