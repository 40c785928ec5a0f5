package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/tycoon/internal/achievement/domain"
	"github.com/smallbiznis/tycoon/internal/achievement/repository"
	"github.com/smallbiznis/tycoon/internal/clock"
	"github.com/smallbiznis/tycoon/internal/playerctx"
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
	if err := db.AutoMigrate(&playerdomain.Player{}, &domain.Achievement{}); err != nil {
		t.Fatal(err)
	}
	return db
}

type fixture struct {
	db     *gorm.DB
	svc    domain.Service
	clk    *clock.FakeClock
	player playerdomain.Player
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}
	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	player := playerdomain.Player{
		ID:               node.Generate(),
		Username:         "alice",
		Email:            "alice@example.com",
		TotalWealth:      10000,
		ExperiencePoints: 50,
		Level:            1,
		CreatedAt:        clk.Now(),
		LastActive:       clk.Now(),
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatal(err)
	}

	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Clock:      clk,
		Repo:       repository.Provide(),
		PlayerRepo: playerrepository.Provide(),
	})
	return &fixture{db: db, svc: svc, clk: clk, player: player}
}

func (f *fixture) reloadPlayer(t *testing.T) playerdomain.Player {
	t.Helper()
	var player playerdomain.Player
	if err := f.db.Where("id = ?", f.player.ID).Take(&player).Error; err != nil {
		t.Fatal(err)
	}
	return player
}

func TestCreateAchievementAwardsExperience(t *testing.T) {
	f := newFixture(t)

	achievement, err := f.svc.Create(context.Background(), domain.CreateAchievementRequest{
		PlayerID:         f.player.ID,
		AchievementType:  domain.AchievementMilestone,
		Title:            "First Million",
		Description:      "Reach one million in total wealth",
		Icon:             "trophy",
		ExperienceReward: 500,
	})
	assert.NoError(t, err)
	assert.Equal(t, f.clk.Now(), achievement.UnlockedAt)

	player := f.reloadPlayer(t)
	assert.Equal(t, 550, player.ExperiencePoints)
	// Wealth is untouched by achievements.
	assert.InDelta(t, 10000, player.TotalWealth, 1e-9)
}

func TestCreateAchievementZeroRewardSkipsUpdate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateAchievementRequest{
		PlayerID:        f.player.ID,
		AchievementType: domain.AchievementBadge,
		Title:           "Early Adopter",
		Description:     "Joined during the beta",
		Icon:            "star",
	})
	assert.NoError(t, err)

	player := f.reloadPlayer(t)
	assert.Equal(t, 50, player.ExperiencePoints)
}

func TestCreateAchievementValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateAchievementRequest{
		PlayerID:        f.player.ID,
		AchievementType: domain.AchievementType("legendary"),
		Title:           "Nope",
		Description:     "x",
		Icon:            "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	_, err = f.svc.Create(context.Background(), domain.CreateAchievementRequest{
		PlayerID:         f.player.ID,
		AchievementType:  domain.AchievementStreak,
		Title:            "Nope",
		Description:      "x",
		Icon:             "x",
		ExperienceReward: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReward)

	_, err = f.svc.Create(context.Background(), domain.CreateAchievementRequest{
		PlayerID:        f.player.ID,
		AchievementType: domain.AchievementStreak,
		Title:           "Nope",
		Description:     "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidIcon)
}

func TestCreateAchievementCallerMismatch(t *testing.T) {
	f := newFixture(t)

	ctx := playerctx.WithPlayerID(context.Background(), snowflake.ID(424242))
	_, err := f.svc.Create(ctx, domain.CreateAchievementRequest{
		PlayerID:         f.player.ID,
		AchievementType:  domain.AchievementMilestone,
		Title:            "Not Yours",
		Description:      "x",
		Icon:             "trophy",
		ExperienceReward: 50,
	})
	assert.ErrorIs(t, err, playerctx.ErrCallerMismatch)

	player := f.reloadPlayer(t)
	assert.Equal(t, 50, player.ExperiencePoints)

	var count int64
	if err := f.db.Model(&domain.Achievement{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	assert.Zero(t, count)
}

func TestCreateAchievementPlayerNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateAchievementRequest{
		PlayerID:        snowflake.ID(999999),
		AchievementType: domain.AchievementSpecialEvent,
		Title:           "Ghost",
		Description:     "x",
		Icon:            "ghost",
	})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestListAchievementsNewestFirst(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(context.Background(), domain.CreateAchievementRequest{
			PlayerID:        f.player.ID,
			AchievementType: domain.AchievementMilestone,
			Title:           fmt.Sprintf("Milestone %d", i),
			Description:     "x",
			Icon:            "medal",
		})
		assert.NoError(t, err)
		f.clk.Advance(time.Minute)
	}

	achievements, err := f.svc.ListByPlayer(context.Background(), domain.ListAchievementsRequest{
		PlayerID: f.player.ID.String(),
	})
	assert.NoError(t, err)
	assert.Len(t, achievements, 3)
	assert.Equal(t, "Milestone 2", achievements[0].Title)
	assert.Equal(t, "Milestone 0", achievements[2].Title)
}
