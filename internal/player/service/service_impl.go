package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/player/domain"
	"github.com/smallbiznis/tycoon/internal/playerctx"
	"github.com/smallbiznis/tycoon/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("player.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePlayerRequest) (domain.Player, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < 3 || len(username) > 50 {
		return domain.Player{}, domain.ErrInvalidUsername
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Player{}, domain.ErrInvalidEmail
	}

	now := s.clock.Now()
	player := domain.Player{
		ID:               s.genID.Generate(),
		Username:         username,
		Email:            email,
		TotalWealth:      domain.DefaultStartingWealth,
		ExperiencePoints: 0,
		Level:            domain.DefaultLevel,
		CreatedAt:        now,
		LastActive:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &player); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Player{}, domain.ErrPlayerExists
		}
		return domain.Player{}, err
	}

	s.log.Info("player created",
		zap.String("player_id", player.ID.String()),
		zap.String("username", player.Username),
	)
	return player, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetPlayerRequest) (domain.Player, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Player{}, err
	}

	player, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Player{}, err
	}
	if player == nil {
		return domain.Player{}, domain.ErrNotFound
	}
	return *player, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePlayerRequest) (domain.Player, error) {
	if req.ID == 0 {
		return domain.Player{}, domain.ErrInvalidID
	}
	if err := playerctx.Authorize(ctx, req.ID); err != nil {
		return domain.Player{}, err
	}

	fields := map[string]any{}
	if req.TotalWealth != nil {
		fields["total_wealth"] = *req.TotalWealth
	}
	if req.ExperiencePoints != nil {
		fields["experience_points"] = *req.ExperiencePoints
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}
	if req.LastActive != nil {
		fields["last_active"] = req.LastActive.UTC()
	}

	var updated domain.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		player, err := s.repo.FindByID(ctx, tx, req.ID)
		if err != nil {
			return err
		}
		if player == nil {
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
		return domain.Player{}, err
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
