package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	achievementdomain "github.com/smallbiznis/tycoon/internal/achievement/domain"
	achievementrepository "github.com/smallbiznis/tycoon/internal/achievement/repository"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	businessrepository "github.com/smallbiznis/tycoon/internal/business/repository"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/dashboard/domain"
	investmentdomain "github.com/smallbiznis/tycoon/internal/investment/domain"
	investmentrepository "github.com/smallbiznis/tycoon/internal/investment/repository"
	marketeventdomain "github.com/smallbiznis/tycoon/internal/marketevent/domain"
	marketeventrepository "github.com/smallbiznis/tycoon/internal/marketevent/repository"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	playerrepository "github.com/smallbiznis/tycoon/internal/player/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	err = db.AutoMigrate(
		&playerdomain.Player{},
		&businessdomain.Business{},
		&marketeventdomain.MarketEvent{},
		&achievementdomain.Achievement{},
		&investmentdomain.Investment{},
	)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

type fixture struct {
	db     *gorm.DB
	svc    domain.Service
	clk    *clock.FakeClock
	genID  *snowflake.Node
	player playerdomain.Player
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	player := playerdomain.Player{
		ID:          node.Generate(),
		Username:    "alice",
		Email:       "alice@example.com",
		TotalWealth: 10000,
		Level:       1,
		CreatedAt:   clk.Now(),
		LastActive:  clk.Now(),
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatal(err)
	}

	svc := New(Params{
		DB:              db,
		Log:             zap.NewNop(),
		Clock:           clk,
		PlayerRepo:      playerrepository.Provide(),
		BusinessRepo:    businessrepository.Provide(),
		MarketEventRepo: marketeventrepository.Provide(),
		AchievementRepo: achievementrepository.Provide(),
		InvestmentRepo:  investmentrepository.Provide(),
	})
	return &fixture{db: db, svc: svc, clk: clk, genID: node, player: player}
}

func (f *fixture) addBusiness(t *testing.T, active bool) {
	t.Helper()
	business := businessdomain.Business{
		ID:        f.genID.Generate(),
		PlayerID:  f.player.ID,
		Name:      "Biz",
		Industry:  businessdomain.IndustryRetail,
		IsActive:  active,
		CreatedAt: f.clk.Now(),
	}
	if err := f.db.Create(&business).Error; err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) addEvent(t *testing.T, createdAt time.Time, active bool) {
	t.Helper()
	event := marketeventdomain.MarketEvent{
		ID:              f.genID.Generate(),
		Title:           "Event",
		Description:     "x",
		EventType:       marketeventdomain.EventBoom,
		ImpactMagnitude: 0.1,
		DurationHours:   24,
		IsActive:        active,
		CreatedAt:       createdAt,
		ExpiresAt:       createdAt.Add(24 * time.Hour),
	}
	if err := f.db.Create(&event).Error; err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) addAchievement(t *testing.T, unlockedAt time.Time) {
	t.Helper()
	achievement := achievementdomain.Achievement{
		ID:              f.genID.Generate(),
		PlayerID:        f.player.ID,
		AchievementType: achievementdomain.AchievementMilestone,
		Title:           "Unlock",
		Description:     "x",
		Icon:            "medal",
		UnlockedAt:      unlockedAt,
	}
	if err := f.db.Create(&achievement).Error; err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) addInvestment(t *testing.T, completed bool) {
	t.Helper()
	investment := investmentdomain.Investment{
		ID:             f.genID.Generate(),
		PlayerID:       f.player.ID,
		InvestmentType: investmentdomain.InvestmentStocks,
		Title:          "Inv",
		Description:    "x",
		AmountInvested: 100,
		RiskLevel:      5,
		DurationMonths: 12,
		IsCompleted:    completed,
		CreatedAt:      f.clk.Now(),
	}
	if err := f.db.Create(&investment).Error; err != nil {
		t.Fatal(err)
	}
}

func TestDashboardCapsAndExclusions(t *testing.T) {
	f := newFixture(t)

	f.addBusiness(t, true)
	f.addBusiness(t, true)
	f.addBusiness(t, false)

	// Eight events in the window, one stale, one inactive.
	for i := 0; i < 8; i++ {
		f.addEvent(t, f.clk.Now().Add(-time.Duration(i)*time.Hour), true)
	}
	f.addEvent(t, f.clk.Now().Add(-8*24*time.Hour), true)
	f.addEvent(t, f.clk.Now(), false)

	for i := 0; i < 12; i++ {
		f.addAchievement(t, f.clk.Now().Add(-time.Duration(i)*time.Minute))
	}

	f.addInvestment(t, false)
	f.addInvestment(t, false)
	f.addInvestment(t, true)

	dashboard, err := f.svc.Get(context.Background(), domain.GetDashboardRequest{
		PlayerID: f.player.ID.String(),
	})
	assert.NoError(t, err)

	assert.Equal(t, f.player.ID, dashboard.Player.ID)
	assert.Len(t, dashboard.Businesses, 2)
	for _, b := range dashboard.Businesses {
		assert.True(t, b.IsActive)
	}

	assert.Len(t, dashboard.RecentMarketEvents, 5)
	for _, e := range dashboard.RecentMarketEvents {
		assert.True(t, e.IsActive)
		assert.True(t, e.CreatedAt.After(f.clk.Now().Add(-7*24*time.Hour).Add(-time.Second)))
	}

	assert.Len(t, dashboard.RecentAchievements, 10)

	assert.Len(t, dashboard.ActiveInvestments, 2)
	for _, inv := range dashboard.ActiveInvestments {
		assert.False(t, inv.IsCompleted)
	}
}

func TestDashboardEmptySections(t *testing.T) {
	f := newFixture(t)

	dashboard, err := f.svc.Get(context.Background(), domain.GetDashboardRequest{
		PlayerID: f.player.ID.String(),
	})
	assert.NoError(t, err)
	assert.NotNil(t, dashboard.Businesses)
	assert.Empty(t, dashboard.Businesses)
	assert.NotNil(t, dashboard.RecentMarketEvents)
	assert.NotNil(t, dashboard.RecentAchievements)
	assert.NotNil(t, dashboard.ActiveInvestments)
}

func TestDashboardPlayerNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), domain.GetDashboardRequest{
		PlayerID: "123456789",
	})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = f.svc.Get(context.Background(), domain.GetDashboardRequest{
		PlayerID: "abc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
