package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	"github.com/smallbiznis/tycoon/internal/leaderboard/domain"
	"github.com/smallbiznis/tycoon/internal/leaderboard/repository"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
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
	if err := db.AutoMigrate(&playerdomain.Player{}, &businessdomain.Business{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()
	return New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func seedPlayers(t *testing.T, db *gorm.DB, node *snowflake.Node, wealths []float64) []playerdomain.Player {
	t.Helper()
	players := make([]playerdomain.Player, 0, len(wealths))
	for i, wealth := range wealths {
		player := playerdomain.Player{
			ID:          node.Generate(),
			Username:    fmt.Sprintf("player%d", i),
			Email:       fmt.Sprintf("player%d@example.com", i),
			TotalWealth: wealth,
			Level:       1,
			CreatedAt:   time.Now().UTC(),
			LastActive:  time.Now().UTC(),
		}
		if err := db.Create(&player).Error; err != nil {
			t.Fatal(err)
		}
		players = append(players, player)
	}
	return players
}

func TestLeaderboardOrderedByWealth(t *testing.T) {
	db := newTestDB(t)
	node, _ := snowflake.NewNode(1)
	players := seedPlayers(t, db, node, []float64{5000, 90000, 22000})
	svc := newTestService(t, db)

	entries, err := svc.List(context.Background(), domain.ListRequest{
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, players[1].ID, entries[0].Player.ID)
	assert.Equal(t, players[2].ID, entries[1].Player.ID)
	assert.Equal(t, players[0].ID, entries[2].Player.ID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestLeaderboardRankIsGlobalAcrossPages(t *testing.T) {
	db := newTestDB(t)
	node, _ := snowflake.NewNode(1)
	seedPlayers(t, db, node, []float64{100, 200, 300, 400, 500})
	svc := newTestService(t, db)

	page2, err := svc.List(context.Background(), domain.ListRequest{
		Pagination: pagination.Params{Page: 2, Limit: 2},
	})
	assert.NoError(t, err)
	assert.Len(t, page2, 2)
	assert.Equal(t, 3, page2[0].Rank)
	assert.Equal(t, 4, page2[1].Rank)
	assert.InDelta(t, 300, page2[0].TotalWealth, 1e-9)
}

func TestLeaderboardBusinessCount(t *testing.T) {
	db := newTestDB(t)
	node, _ := snowflake.NewNode(1)
	players := seedPlayers(t, db, node, []float64{1000, 2000})
	svc := newTestService(t, db)

	for i := 0; i < 3; i++ {
		business := businessdomain.Business{
			ID:        node.Generate(),
			PlayerID:  players[1].ID,
			Name:      fmt.Sprintf("Biz %d", i),
			Industry:  businessdomain.IndustryRetail,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		}
		if err := db.Create(&business).Error; err != nil {
			t.Fatal(err)
		}
	}

	entries, err := svc.List(context.Background(), domain.ListRequest{
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].BusinessCount)
	assert.Equal(t, 0, entries[1].BusinessCount)
}

func TestLeaderboardEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	entries, err := svc.List(context.Background(), domain.ListRequest{})
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}
