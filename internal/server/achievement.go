package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	achievementdomain "github.com/smallbiznis/tycoon/internal/achievement/domain"
)

type createAchievementRequest struct {
	PlayerID         string `json:"player_id"`
	AchievementType  string `json:"achievement_type"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	ExperienceReward int    `json:"experience_reward"`
}

func (s *Server) CreateAchievement(c *gin.Context) {
	var req createAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		AbortWithError(c, newValidationError("player_id", "invalid_player_id", "invalid player id"))
		return
	}

	resp, err := s.achievementSvc.Create(c.Request.Context(), achievementdomain.CreateAchievementRequest{
		PlayerID:         playerID,
		AchievementType:  achievementdomain.AchievementType(strings.TrimSpace(req.AchievementType)),
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Icon:             req.Icon,
		ExperienceReward: req.ExperienceReward,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAchievements(c *gin.Context) {
	resp, err := s.achievementSvc.ListByPlayer(c.Request.Context(), achievementdomain.ListAchievementsRequest{
		PlayerID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isAchievementValidationError(err error) bool {
	switch err {
	case achievementdomain.ErrInvalidTitle,
		achievementdomain.ErrInvalidDescription,
		achievementdomain.ErrInvalidType,
		achievementdomain.ErrInvalidIcon,
		achievementdomain.ErrInvalidReward,
		achievementdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
