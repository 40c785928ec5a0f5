package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/history/domain"
	"github.com/smallbiznis/tycoon/internal/playerctx"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	PlayerRepo   playerdomain.Repository
	BusinessRepo businessdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	playerRepo   playerdomain.Repository
	businessRepo businessdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("history.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		playerRepo:   p.PlayerRepo,
		businessRepo: p.BusinessRepo,
	}
}

func (s *Service) RecordBusinessPerformance(ctx context.Context, req domain.RecordBusinessPerformanceRequest) (domain.BusinessPerformance, error) {
	if req.Income < 0 || req.Expenses < 0 || req.EmployeeCount < 0 {
		return domain.BusinessPerformance{}, domain.ErrInvalidSnapshot
	}

	business, err := s.businessRepo.FindByID(ctx, s.db, req.BusinessID)
	if err != nil {
		return domain.BusinessPerformance{}, err
	}
	if business == nil {
		return domain.BusinessPerformance{}, domain.ErrBusinessNotFound
	}

	snapshot := domain.BusinessPerformance{
		ID:            s.genID.Generate(),
		BusinessID:    req.BusinessID,
		Income:        req.Income,
		Expenses:      req.Expenses,
		EmployeeCount: req.EmployeeCount,
		GrowthRate:    req.GrowthRate,
		MarketShare:   req.MarketShare,
		RecordedAt:    s.clock.Now(),
	}
	if err := s.repo.InsertBusinessPerformance(ctx, s.db, &snapshot); err != nil {
		return domain.BusinessPerformance{}, err
	}
	return snapshot, nil
}

func (s *Service) ListBusinessPerformance(ctx context.Context, req domain.ListBusinessPerformanceRequest) ([]domain.BusinessPerformance, error) {
	businessID, err := s.parseID(req.BusinessID)
	if err != nil {
		return nil, err
	}

	page, err := req.Pagination.Normalize()
	if err != nil {
		return nil, err
	}
	snapshots, err := s.repo.ListBusinessPerformance(ctx, s.db, businessID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []domain.BusinessPerformance{}
	}
	return snapshots, nil
}

func (s *Service) RecordPlayerWealth(ctx context.Context, req domain.RecordPlayerWealthRequest) (domain.PlayerWealthHistory, error) {
	if req.Level < 1 || req.ExperiencePoints < 0 {
		return domain.PlayerWealthHistory{}, domain.ErrInvalidSnapshot
	}

	if err := playerctx.Authorize(ctx, req.PlayerID); err != nil {
		return domain.PlayerWealthHistory{}, err
	}

	exists, err := s.playerRepo.Exists(ctx, s.db, req.PlayerID)
	if err != nil {
		return domain.PlayerWealthHistory{}, err
	}
	if !exists {
		return domain.PlayerWealthHistory{}, domain.ErrPlayerNotFound
	}

	snapshot := domain.PlayerWealthHistory{
		ID:               s.genID.Generate(),
		PlayerID:         req.PlayerID,
		TotalWealth:      req.TotalWealth,
		Level:            req.Level,
		ExperiencePoints: req.ExperiencePoints,
		RecordedAt:       s.clock.Now(),
	}
	if err := s.repo.InsertPlayerWealth(ctx, s.db, &snapshot); err != nil {
		return domain.PlayerWealthHistory{}, err
	}
	return snapshot, nil
}

func (s *Service) ListPlayerWealth(ctx context.Context, req domain.ListPlayerWealthRequest) ([]domain.PlayerWealthHistory, error) {
	playerID, err := s.parseID(req.PlayerID)
	if err != nil {
		return nil, err
	}

	page, err := req.Pagination.Normalize()
	if err != nil {
		return nil, err
	}
	snapshots, err := s.repo.ListPlayerWealth(ctx, s.db, playerID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []domain.PlayerWealthHistory{}
	}
	return snapshots, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
