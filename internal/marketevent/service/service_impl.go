package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/marketevent/domain"
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
		log:   p.Log.Named("marketevent.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateEventRequest) (domain.MarketEvent, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 200 {
		return domain.MarketEvent{}, domain.ErrInvalidTitle
	}
	if strings.TrimSpace(req.Description) == "" {
		return domain.MarketEvent{}, domain.ErrInvalidDescription
	}
	if !req.EventType.Valid() {
		return domain.MarketEvent{}, domain.ErrInvalidEventType
	}
	if req.ImpactMagnitude < -1 || req.ImpactMagnitude > 1 {
		return domain.MarketEvent{}, domain.ErrInvalidImpact
	}
	if req.AffectedIndustry != nil && !req.AffectedIndustry.Valid() {
		return domain.MarketEvent{}, domain.ErrInvalidIndustry
	}

	duration := domain.DefaultDurationHours
	if req.DurationHours != nil {
		if *req.DurationHours <= 0 {
			return domain.MarketEvent{}, domain.ErrInvalidDuration
		}
		duration = *req.DurationHours
	}

	now := s.clock.Now()
	event := domain.MarketEvent{
		ID:               s.genID.Generate(),
		Title:            title,
		Description:      req.Description,
		EventType:        req.EventType,
		ImpactMagnitude:  req.ImpactMagnitude,
		AffectedIndustry: req.AffectedIndustry,
		DurationHours:    duration,
		IsActive:         true,
		CreatedAt:        now,
		ExpiresAt:        now.Add(time.Duration(duration) * time.Hour),
	}

	if err := s.repo.Insert(ctx, s.db, &event); err != nil {
		return domain.MarketEvent{}, err
	}

	s.log.Info("market event created",
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", string(event.EventType)),
		zap.Float64("impact_magnitude", event.ImpactMagnitude),
	)
	return event, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.MarketEvent, error) {
	events, err := s.repo.ListActive(ctx, s.db, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.MarketEvent{}
	}
	return events, nil
}
