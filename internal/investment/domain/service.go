package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateInvestmentRequest struct {
	PlayerID       snowflake.ID
	BusinessID     *snowflake.ID
	InvestmentType InvestmentType
	Title          string
	Description    string
	AmountInvested float64
	ExpectedReturn float64
	RiskLevel      int
	DurationMonths int
}

type ListInvestmentsRequest struct {
	PlayerID string
}

type CompleteInvestmentRequest struct {
	ID           snowflake.ID
	ActualReturn float64
}

type Service interface {
	Create(context.Context, CreateInvestmentRequest) (Investment, error)
	ListByPlayer(context.Context, ListInvestmentsRequest) ([]Investment, error)
	// Complete settles the investment: records the actual return, marks
	// it completed and credits the owner's wealth. One way only.
	Complete(context.Context, CompleteInvestmentRequest) (Investment, error)
}

var (
	ErrInvalidTitle       = errors.New("invalid_title")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidType        = errors.New("invalid_investment_type")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidRisk        = errors.New("invalid_risk_level")
	ErrInvalidDuration    = errors.New("invalid_duration")
	ErrInvalidID          = errors.New("invalid_id")
	ErrPlayerNotFound     = errors.New("player_not_found")
	ErrBusinessNotFound   = errors.New("business_not_found")
	ErrBusinessNotOwned   = errors.New("business_not_owned")
	ErrNotFound           = errors.New("not_found")
	ErrAlreadyCompleted   = errors.New("already_completed")
)
