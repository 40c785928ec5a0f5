package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/achievement/domain"
	"github.com/smallbiznis/tycoon/internal/clock"
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
		log:        p.Log.Named("achievement.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		playerRepo: p.PlayerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateAchievementRequest) (domain.Achievement, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 200 {
		return domain.Achievement{}, domain.ErrInvalidTitle
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.Achievement{}, domain.ErrInvalidDescription
	}
	if !req.AchievementType.Valid() {
		return domain.Achievement{}, domain.ErrInvalidType
	}
	icon := strings.TrimSpace(req.Icon)
	if icon == "" || len(icon) > 50 {
		return domain.Achievement{}, domain.ErrInvalidIcon
	}
	if req.ExperienceReward < 0 {
		return domain.Achievement{}, domain.ErrInvalidReward
	}

	if err := playerctx.Authorize(ctx, req.PlayerID); err != nil {
		return domain.Achievement{}, err
	}

	achievement := domain.Achievement{
		ID:               s.genID.Generate(),
		PlayerID:         req.PlayerID,
		AchievementType:  req.AchievementType,
		Title:            title,
		Description:      req.Description,
		Icon:             icon,
		ExperienceReward: req.ExperienceReward,
		UnlockedAt:       s.clock.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.playerRepo.Exists(ctx, tx, req.PlayerID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrPlayerNotFound
		}

		if err := s.repo.Insert(ctx, tx, &achievement); err != nil {
			return err
		}

		// Zero-reward achievements do not touch the player row.
		if req.ExperienceReward > 0 {
			return s.playerRepo.IncrementStats(ctx, tx, req.PlayerID, 0, req.ExperienceReward, nil)
		}
		return nil
	})
	if err != nil {
		return domain.Achievement{}, err
	}

	s.log.Info("achievement unlocked",
		zap.String("achievement_id", achievement.ID.String()),
		zap.String("player_id", achievement.PlayerID.String()),
		zap.Int("experience_reward", achievement.ExperienceReward),
	)
	return achievement, nil
}

func (s *Service) ListByPlayer(ctx context.Context, req domain.ListAchievementsRequest) ([]domain.Achievement, error) {
	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		return nil, domain.ErrInvalidID
	}

	achievements, err := s.repo.ListByPlayer(ctx, s.db, playerID, 0)
	if err != nil {
		return nil, err
	}
	if achievements == nil {
		achievements = []domain.Achievement{}
	}
	return achievements, nil
}
