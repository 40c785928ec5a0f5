package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/business/repository"
	"github.com/smallbiznis/tycoon/internal/clock"
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
	if err := db.AutoMigrate(&playerdomain.Player{}, &domain.Business{}); err != nil {
		t.Fatal(err)
	}
	return db
}

type fixture struct {
	db     *gorm.DB
	svc    domain.Service
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

	player := playerdomain.Player{
		ID:               node.Generate(),
		Username:         "alice",
		Email:            "alice@example.com",
		TotalWealth:      playerdomain.DefaultStartingWealth,
		Level:            playerdomain.DefaultLevel,
		CreatedAt:        time.Now().UTC(),
		LastActive:       time.Now().UTC(),
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatal(err)
	}

	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Clock:      clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
		Repo:       repository.Provide(),
		PlayerRepo: playerrepository.Provide(),
	})
	return &fixture{db: db, svc: svc, genID: node, player: player}
}

func TestCreateBusinessDefaults(t *testing.T) {
	f := newFixture(t)

	business, err := f.svc.Create(context.Background(), domain.CreateBusinessRequest{
		PlayerID:        f.player.ID,
		Name:            "Acme Widgets",
		Industry:        domain.IndustryManufacturing,
		MonthlyIncome:   5000,
		MonthlyExpenses: 3000,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, business.EmployeeCount)
	assert.Equal(t, domain.DefaultGrowthRate, business.GrowthRate)
	assert.Equal(t, domain.DefaultMarketShare, business.MarketShare)
	assert.True(t, business.IsActive)
}

func TestCreateBusinessValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateBusinessRequest{
		PlayerID: f.player.ID,
		Name:     "",
		Industry: domain.IndustryRetail,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = f.svc.Create(context.Background(), domain.CreateBusinessRequest{
		PlayerID: f.player.ID,
		Name:     "Shop",
		Industry: domain.Industry("space_mining"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidIndustry)

	_, err = f.svc.Create(context.Background(), domain.CreateBusinessRequest{
		PlayerID:      f.player.ID,
		Name:          "Shop",
		Industry:      domain.IndustryRetail,
		MonthlyIncome: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreateBusinessPlayerNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateBusinessRequest{
		PlayerID: snowflake.ID(987654),
		Name:     "Ghost Corp",
		Industry: domain.IndustryFinance,
	})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestListBusinessesEmptyForUnknownPlayer(t *testing.T) {
	f := newFixture(t)

	businesses, err := f.svc.ListByPlayer(context.Background(), domain.ListBusinessesRequest{
		PlayerID: "123456789",
	})
	assert.NoError(t, err)
	assert.Empty(t, businesses)
	assert.NotNil(t, businesses)
}

func TestListBusinessesNewestFirst(t *testing.T) {
	f := newFixture(t)

	for i, name := range []string{"First", "Second", "Third"} {
		business := domain.Business{
			ID:        f.genID.Generate(),
			PlayerID:  f.player.ID,
			Name:      name,
			Industry:  domain.IndustryTechnology,
			IsActive:  true,
			CreatedAt: time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}
		if err := f.db.Create(&business).Error; err != nil {
			t.Fatal(err)
		}
	}

	businesses, err := f.svc.ListByPlayer(context.Background(), domain.ListBusinessesRequest{
		PlayerID: f.player.ID.String(),
	})
	assert.NoError(t, err)
	assert.Len(t, businesses, 3)
	assert.Equal(t, "Third", businesses[0].Name)
	assert.Equal(t, "First", businesses[2].Name)
}

func TestUpdateBusiness(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(context.Background(), domain.CreateBusinessRequest{
		PlayerID: f.player.ID,
		Name:     "Acme",
		Industry: domain.IndustryTechnology,
	})
	assert.NoError(t, err)

	income := 9000.0
	inactive := false
	updated, err := f.svc.Update(context.Background(), domain.UpdateBusinessRequest{
		ID:            created.ID,
		MonthlyIncome: &income,
		IsActive:      &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, income, updated.MonthlyIncome)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Acme", updated.Name)

	_, err = f.svc.Update(context.Background(), domain.UpdateBusinessRequest{
		ID: snowflake.ID(555555),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
