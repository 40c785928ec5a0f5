package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"gorm.io/gorm"
)

const (
	demoUsername = "demo_player"
	demoEmail    = "demo@tycoon.local"
)

// EnsureDemoPlayer inserts the demo account used by local frontends if
// it is not already present. Idempotent across restarts.
func EnsureDemoPlayer(db *gorm.DB, genID *snowflake.Node) error {
	var count int64
	err := db.Model(&playerdomain.Player{}).
		Where("username = ?", demoUsername).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	demo := playerdomain.Player{
		ID:               genID.Generate(),
		Username:         demoUsername,
		Email:            demoEmail,
		TotalWealth:      playerdomain.DefaultStartingWealth,
		ExperiencePoints: 0,
		Level:            playerdomain.DefaultLevel,
		CreatedAt:        now,
		LastActive:       now,
	}
	return db.Create(&demo).Error
}
