package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	achievementdomain "github.com/smallbiznis/tycoon/internal/achievement/domain"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/dashboard/domain"
	investmentdomain "github.com/smallbiznis/tycoon/internal/investment/domain"
	marketeventdomain "github.com/smallbiznis/tycoon/internal/marketevent/domain"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxRecentEvents       = 5
	maxRecentAchievements = 10
	recentEventWindow     = 7 * 24 * time.Hour
)

type Params struct {
	fx.In

	DB              *gorm.DB
	Log             *zap.Logger
	Clock           clock.Clock
	PlayerRepo      playerdomain.Repository
	BusinessRepo    businessdomain.Repository
	MarketEventRepo marketeventdomain.Repository
	AchievementRepo achievementdomain.Repository
	InvestmentRepo  investmentdomain.Repository
}

type Service struct {
	db              *gorm.DB
	log             *zap.Logger
	clock           clock.Clock
	playerRepo      playerdomain.Repository
	businessRepo    businessdomain.Repository
	marketEventRepo marketeventdomain.Repository
	achievementRepo achievementdomain.Repository
	investmentRepo  investmentdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("dashboard.service"),
		clock:           p.Clock,
		playerRepo:      p.PlayerRepo,
		businessRepo:    p.BusinessRepo,
		marketEventRepo: p.MarketEventRepo,
		achievementRepo: p.AchievementRepo,
		investmentRepo:  p.InvestmentRepo,
	}
}

func (s *Service) Get(ctx context.Context, req domain.GetDashboardRequest) (domain.Dashboard, error) {
	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		return domain.Dashboard{}, domain.ErrInvalidID
	}

	player, err := s.playerRepo.FindByID(ctx, s.db, playerID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	if player == nil {
		return domain.Dashboard{}, domain.ErrPlayerNotFound
	}

	businesses, err := s.businessRepo.ListByPlayer(ctx, s.db, playerID, true)
	if err != nil {
		return domain.Dashboard{}, err
	}

	since := s.clock.Now().Add(-recentEventWindow)
	events, err := s.marketEventRepo.ListRecentActive(ctx, s.db, since, maxRecentEvents)
	if err != nil {
		return domain.Dashboard{}, err
	}

	achievements, err := s.achievementRepo.ListByPlayer(ctx, s.db, playerID, maxRecentAchievements)
	if err != nil {
		return domain.Dashboard{}, err
	}

	investments, err := s.investmentRepo.ListByPlayer(ctx, s.db, playerID, true)
	if err != nil {
		return domain.Dashboard{}, err
	}

	dashboard := domain.Dashboard{
		Player:             *player,
		Businesses:         businesses,
		RecentMarketEvents: events,
		RecentAchievements: achievements,
		ActiveInvestments:  investments,
	}
	if dashboard.Businesses == nil {
		dashboard.Businesses = []businessdomain.Business{}
	}
	if dashboard.RecentMarketEvents == nil {
		dashboard.RecentMarketEvents = []marketeventdomain.MarketEvent{}
	}
	if dashboard.RecentAchievements == nil {
		dashboard.RecentAchievements = []achievementdomain.Achievement{}
	}
	if dashboard.ActiveInvestments == nil {
		dashboard.ActiveInvestments = []investmentdomain.Investment{}
	}
	return dashboard, nil
}
