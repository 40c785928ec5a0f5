package domain

import (
	"context"

	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
)

// Entry is one leaderboard row: the player, their wealth and how many
// businesses they own, with a 1-based global rank.
type Entry struct {
	Rank          int                 `json:"rank"`
	Player        playerdomain.Player `json:"player"`
	TotalWealth   float64             `json:"total_wealth"`
	BusinessCount int                 `json:"business_count"`
}

type ListRequest struct {
	Pagination pagination.Params
}

type Service interface {
	List(context.Context, ListRequest) ([]Entry, error)
}
