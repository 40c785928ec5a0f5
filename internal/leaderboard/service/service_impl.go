package service

import (
	"context"

	"github.com/smallbiznis/tycoon/internal/leaderboard/cache"
	"github.com/smallbiznis/tycoon/internal/leaderboard/domain"
	"github.com/smallbiznis/tycoon/internal/leaderboard/repository"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  repository.Repository
	Cache *cache.PageCache `optional:"true"`
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  repository.Repository
	cache *cache.PageCache
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("leaderboard.service"),
		repo:  p.Repo,
		cache: p.Cache,
	}
}

// List returns the requested leaderboard page ordered by total wealth.
// Rank is global: (page-1)*limit + position on the page + 1.
func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Entry, error) {
	page, err := req.Pagination.Normalize()
	if err != nil {
		return nil, err
	}

	if entries, ok := s.cache.Get(ctx, page.Page, page.Limit); ok {
		return entries, nil
	}

	rows, err := s.repo.ListTopByWealth(ctx, s.db, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.Entry{
			Rank: page.Offset() + i + 1,
			Player: playerdomain.Player{
				ID:               row.ID,
				Username:         row.Username,
				Email:            row.Email,
				TotalWealth:      row.TotalWealth,
				ExperiencePoints: row.ExperiencePoints,
				Level:            row.Level,
				CreatedAt:        row.CreatedAt,
				LastActive:       row.LastActive,
			},
			TotalWealth:   row.TotalWealth,
			BusinessCount: row.BusinessCount,
		})
	}

	s.cache.Set(ctx, page.Page, page.Limit, entries)
	return entries, nil
}
