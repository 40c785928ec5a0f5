package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/clock"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       domain.Repository
	PlayerRepo playerdomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	playerRepo playerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("business.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		playerRepo: p.PlayerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBusinessRequest) (domain.Business, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 100 {
		return domain.Business{}, domain.ErrInvalidName
	}
	if !req.Industry.Valid() {
		return domain.Business{}, domain.ErrInvalidIndustry
	}
	if req.MonthlyIncome < 0 || req.MonthlyExpenses < 0 {
		return domain.Business{}, domain.ErrInvalidAmount
	}

	exists, err := s.playerRepo.Exists(ctx, s.db, req.PlayerID)
	if err != nil {
		return domain.Business{}, err
	}
	if !exists {
		return domain.Business{}, domain.ErrPlayerNotFound
	}

	business := domain.Business{
		ID:              s.genID.Generate(),
		PlayerID:        req.PlayerID,
		Name:            name,
		Industry:        req.Industry,
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		EmployeeCount:   0,
		GrowthRate:      domain.DefaultGrowthRate,
		MarketShare:     domain.DefaultMarketShare,
		IsActive:        true,
		CreatedAt:       s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &business); err != nil {
		return domain.Business{}, err
	}

	s.log.Info("business created",
		zap.String("business_id", business.ID.String()),
		zap.String("player_id", business.PlayerID.String()),
		zap.String("industry", string(business.Industry)),
	)
	return business, nil
}

// ListByPlayer returns an empty slice for unknown players rather than an
// error; only single-entity lookups treat a missing row as not found.
func (s *Service) ListByPlayer(ctx context.Context, req domain.ListBusinessesRequest) ([]domain.Business, error) {
	playerID, err := s.parseID(req.PlayerID)
	if err != nil {
		return nil, err
	}

	businesses, err := s.repo.ListByPlayer(ctx, s.db, playerID, false)
	if err != nil {
		return nil, err
	}
	if businesses == nil {
		businesses = []domain.Business{}
	}
	return businesses, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateBusinessRequest) (domain.Business, error) {
	if req.ID == 0 {
		return domain.Business{}, domain.ErrInvalidID
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > 100 {
			return domain.Business{}, domain.ErrInvalidName
		}
		fields["name"] = name
	}
	if req.MonthlyIncome != nil {
		if *req.MonthlyIncome < 0 {
			return domain.Business{}, domain.ErrInvalidAmount
		}
		fields["monthly_income"] = *req.MonthlyIncome
	}
	if req.MonthlyExpenses != nil {
		if *req.MonthlyExpenses < 0 {
			return domain.Business{}, domain.ErrInvalidAmount
		}
		fields["monthly_expenses"] = *req.MonthlyExpenses
	}
	if req.EmployeeCount != nil {
		if *req.EmployeeCount < 0 {
			return domain.Business{}, domain.ErrInvalidAmount
		}
		fields["employee_count"] = *req.EmployeeCount
	}
	if req.GrowthRate != nil {
		fields["growth_rate"] = *req.GrowthRate
	}
	if req.MarketShare != nil {
		fields["market_share"] = *req.MarketShare
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	var updated domain.Business
	err := s.db.Transaction(func(tx *gorm.DB) error {
		business, err := s.repo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		if business == nil {
			return domain.ErrNotFound
		}

		if err := s.repo.UpdateFields(ctx, tx, req.ID, fields); err != nil {
			return err
		}

		reloaded, err := s.repo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		updated = *reloaded
		return nil
	})
	if err != nil {
		return domain.Business{}, err
	}
	return updated, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
