package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/investment/domain"
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
		log:          p.Log.Named("investment.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		playerRepo:   p.PlayerRepo,
		businessRepo: p.BusinessRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvestmentRequest) (domain.Investment, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 200 {
		return domain.Investment{}, domain.ErrInvalidTitle
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.Investment{}, domain.ErrInvalidDescription
	}
	if !req.InvestmentType.Valid() {
		return domain.Investment{}, domain.ErrInvalidType
	}
	if req.AmountInvested <= 0 {
		return domain.Investment{}, domain.ErrInvalidAmount
	}
	if req.RiskLevel < domain.MinRiskLevel || req.RiskLevel > domain.MaxRiskLevel {
		return domain.Investment{}, domain.ErrInvalidRisk
	}
	if req.DurationMonths <= 0 {
		return domain.Investment{}, domain.ErrInvalidDuration
	}

	if err := playerctx.Authorize(ctx, req.PlayerID); err != nil {
		return domain.Investment{}, err
	}

	exists, err := s.playerRepo.Exists(ctx, s.db, req.PlayerID)
	if err != nil {
		return domain.Investment{}, err
	}
	if !exists {
		return domain.Investment{}, domain.ErrPlayerNotFound
	}

	if req.BusinessID != nil {
		business, err := s.businessRepo.FindByID(ctx, s.db, *req.BusinessID)
		if err != nil {
			return domain.Investment{}, err
		}
		if business == nil {
			return domain.Investment{}, domain.ErrBusinessNotFound
		}
		if business.PlayerID != req.PlayerID {
			return domain.Investment{}, domain.ErrBusinessNotOwned
		}
	}

	expectedReturn := req.ExpectedReturn
	if expectedReturn == 0 {
		expectedReturn = domain.ExpectedReturn(req.AmountInvested, req.RiskLevel, req.DurationMonths)
	}

	investment := domain.Investment{
		ID:             s.genID.Generate(),
		PlayerID:       req.PlayerID,
		BusinessID:     req.BusinessID,
		InvestmentType: req.InvestmentType,
		Title:          title,
		Description:    req.Description,
		AmountInvested: req.AmountInvested,
		ExpectedReturn: expectedReturn,
		ActualReturn:   0,
		RiskLevel:      req.RiskLevel,
		DurationMonths: req.DurationMonths,
		IsCompleted:    false,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &investment); err != nil {
		return domain.Investment{}, err
	}

	s.log.Info("investment created",
		zap.String("investment_id", investment.ID.String()),
		zap.String("player_id", investment.PlayerID.String()),
		zap.String("investment_type", string(investment.InvestmentType)),
		zap.Float64("expected_return", investment.ExpectedReturn),
	)
	return investment, nil
}

func (s *Service) ListByPlayer(ctx context.Context, req domain.ListInvestmentsRequest) ([]domain.Investment, error) {
	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		return nil, domain.ErrInvalidID
	}

	investments, err := s.repo.ListByPlayer(ctx, s.db, playerID, false)
	if err != nil {
		return nil, err
	}
	if investments == nil {
		investments = []domain.Investment{}
	}
	return investments, nil
}

func (s *Service) Complete(ctx context.Context, req domain.CompleteInvestmentRequest) (domain.Investment, error) {
	if req.ID == 0 {
		return domain.Investment{}, domain.ErrInvalidID
	}

	var completed domain.Investment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		investment, err := s.repo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		if investment == nil {
			return domain.ErrNotFound
		}
		if investment.IsCompleted {
			return domain.ErrAlreadyCompleted
		}

		if err := playerctx.Authorize(ctx, investment.PlayerID); err != nil {
			return err
		}

		now := s.clock.Now()
		fields := map[string]any{
			"actual_return": req.ActualReturn,
			"is_completed":  true,
			"completed_at":  now,
		}
		if err := s.repo.UpdateFields(ctx, tx, req.ID, fields); err != nil {
			return err
		}

		if err := s.playerRepo.IncrementStats(ctx, tx, investment.PlayerID, req.ActualReturn, 0, nil); err != nil {
			return err
		}

		completed = *investment
		completed.ActualReturn = req.ActualReturn
		completed.IsCompleted = true
		completed.CompletedAt = &now
		return nil
	})
	if err != nil {
		return domain.Investment{}, err
	}

	s.log.Info("investment completed",
		zap.String("investment_id", completed.ID.String()),
		zap.String("player_id", completed.PlayerID.String()),
		zap.Float64("actual_return", completed.ActualReturn),
	)
	return completed, nil
}
