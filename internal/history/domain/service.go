package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
)

type RecordBusinessPerformanceRequest struct {
	BusinessID    snowflake.ID
	Income        float64
	Expenses      float64
	EmployeeCount int
	GrowthRate    float64
	MarketShare   float64
}

type ListBusinessPerformanceRequest struct {
	BusinessID string
	Pagination pagination.Params
}

type RecordPlayerWealthRequest struct {
	PlayerID         snowflake.ID
	TotalWealth      float64
	Level            int
	ExperiencePoints int
}

type ListPlayerWealthRequest struct {
	PlayerID   string
	Pagination pagination.Params
}

type Service interface {
	RecordBusinessPerformance(context.Context, RecordBusinessPerformanceRequest) (BusinessPerformance, error)
	ListBusinessPerformance(context.Context, ListBusinessPerformanceRequest) ([]BusinessPerformance, error)
	RecordPlayerWealth(context.Context, RecordPlayerWealthRequest) (PlayerWealthHistory, error)
	ListPlayerWealth(context.Context, ListPlayerWealthRequest) ([]PlayerWealthHistory, error)
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidSnapshot  = errors.New("invalid_snapshot")
	ErrPlayerNotFound   = errors.New("player_not_found")
	ErrBusinessNotFound = errors.New("business_not_found")
)
