package domain

import (
	"context"
	"errors"

	achievementdomain "github.com/smallbiznis/tycoon/internal/achievement/domain"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	investmentdomain "github.com/smallbiznis/tycoon/internal/investment/domain"
	marketeventdomain "github.com/smallbiznis/tycoon/internal/marketevent/domain"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
)

// Dashboard is the read-only projection backing the player's home
// screen.
type Dashboard struct {
	Player             playerdomain.Player             `json:"player"`
	Businesses         []businessdomain.Business       `json:"businesses"`
	RecentMarketEvents []marketeventdomain.MarketEvent `json:"recent_market_events"`
	RecentAchievements []achievementdomain.Achievement `json:"recent_achievements"`
	ActiveInvestments  []investmentdomain.Investment   `json:"active_investments"`
}

type GetDashboardRequest struct {
	PlayerID string
}

type Service interface {
	Get(context.Context, GetDashboardRequest) (Dashboard, error)
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrPlayerNotFound = errors.New("player_not_found")
)
