package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
)

type createPlayerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) CreatePlayer(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.playerSvc.Create(c.Request.Context(), playerdomain.CreatePlayerRequest{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPlayerByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.playerSvc.GetByID(c.Request.Context(), playerdomain.GetPlayerRequest{
		ID: id,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updatePlayerRequest struct {
	TotalWealth      *float64   `json:"total_wealth"`
	ExperiencePoints *int       `json:"experience_points"`
	Level            *int       `json:"level"`
	LastActive       *time.Time `json:"last_active"`
}

func (s *Server) UpdatePlayer(c *gin.Context) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || id == 0 {
		AbortWithError(c, playerdomain.ErrInvalidID)
		return
	}

	var req updatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.playerSvc.Update(c.Request.Context(), playerdomain.UpdatePlayerRequest{
		ID:               id,
		TotalWealth:      req.TotalWealth,
		ExperiencePoints: req.ExperiencePoints,
		Level:            req.Level,
		LastActive:       req.LastActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isPlayerValidationError(err error) bool {
	switch err {
	case playerdomain.ErrInvalidUsername,
		playerdomain.ErrInvalidEmail,
		playerdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
