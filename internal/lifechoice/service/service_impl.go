package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/lifechoice/domain"
	"github.com/smallbiznis/tycoon/internal/playerctx"
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
		log:        p.Log.Named("lifechoice.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		playerRepo: p.PlayerRepo,
	}
}

// Create inserts the choice and applies its effects to the owning player
// in a single transaction. Wealth moves by wealth_impact - cost, so a
// zero-impact choice still deducts its cost. Balances may go negative.
func (s *Service) Create(ctx context.Context, req domain.CreateChoiceRequest) (domain.LifeChoice, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 200 {
		return domain.LifeChoice{}, domain.ErrInvalidTitle
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.LifeChoice{}, domain.ErrInvalidDescription
	}
	if !req.ChoiceType.Valid() {
		return domain.LifeChoice{}, domain.ErrInvalidChoiceType
	}
	if req.Cost < 0 {
		return domain.LifeChoice{}, domain.ErrInvalidCost
	}
	if req.BusinessImpact < -1 || req.BusinessImpact > 1 {
		return domain.LifeChoice{}, domain.ErrInvalidImpact
	}
	if req.ExperienceGain < 0 {
		return domain.LifeChoice{}, domain.ErrInvalidExperience
	}

	if err := playerctx.Authorize(ctx, req.PlayerID); err != nil {
		return domain.LifeChoice{}, err
	}

	now := s.clock.Now()
	choice := domain.LifeChoice{
		ID:             s.genID.Generate(),
		PlayerID:       req.PlayerID,
		ChoiceType:     req.ChoiceType,
		Title:          title,
		Description:    req.Description,
		Cost:           req.Cost,
		WealthImpact:   req.WealthImpact,
		BusinessImpact: req.BusinessImpact,
		ExperienceGain: req.ExperienceGain,
		MadeAt:         now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.playerRepo.Exists(ctx, tx, req.PlayerID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrPlayerNotFound
		}

		if err := s.repo.Insert(ctx, tx, &choice); err != nil {
			return err
		}

		wealthDelta := req.WealthImpact - req.Cost
		return s.playerRepo.IncrementStats(ctx, tx, req.PlayerID, wealthDelta, req.ExperienceGain, &now)
	})
	if err != nil {
		return domain.LifeChoice{}, err
	}

	s.log.Info("life choice applied",
		zap.String("choice_id", choice.ID.String()),
		zap.String("player_id", choice.PlayerID.String()),
		zap.Float64("wealth_delta", req.WealthImpact-req.Cost),
		zap.Int("experience_gain", req.ExperienceGain),
	)
	return choice, nil
}

func (s *Service) ListByPlayer(ctx context.Context, req domain.ListChoicesRequest) ([]domain.LifeChoice, error) {
	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		return nil, domain.ErrInvalidID
	}

	page, err := req.Pagination.Normalize()
	if err != nil {
		return nil, err
	}
	choices, err := s.repo.ListByPlayer(ctx, s.db, playerID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if choices == nil {
		choices = []domain.LifeChoice{}
	}
	return choices, nil
}
