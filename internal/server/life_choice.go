package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	lifechoicedomain "github.com/smallbiznis/tycoon/internal/lifechoice/domain"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
)

type createLifeChoiceRequest struct {
	PlayerID       string  `json:"player_id"`
	ChoiceType     string  `json:"choice_type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Cost           float64 `json:"cost"`
	WealthImpact   float64 `json:"wealth_impact"`
	BusinessImpact float64 `json:"business_impact"`
	ExperienceGain int     `json:"experience_gain"`
}

func (s *Server) CreateLifeChoice(c *gin.Context) {
	var req createLifeChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		AbortWithError(c, newValidationError("player_id", "invalid_player_id", "invalid player id"))
		return
	}

	resp, err := s.lifeChoiceSvc.Create(c.Request.Context(), lifechoicedomain.CreateChoiceRequest{
		PlayerID:       playerID,
		ChoiceType:     lifechoicedomain.ChoiceType(strings.TrimSpace(req.ChoiceType)),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Cost:           req.Cost,
		WealthImpact:   req.WealthImpact,
		BusinessImpact: req.BusinessImpact,
		ExperienceGain: req.ExperienceGain,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLifeChoices(c *gin.Context) {
	var query pagination.Params
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.lifeChoiceSvc.ListByPlayer(c.Request.Context(), lifechoicedomain.ListChoicesRequest{
		PlayerID:   strings.TrimSpace(c.Param("id")),
		Pagination: query,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isLifeChoiceValidationError(err error) bool {
	switch err {
	case lifechoicedomain.ErrInvalidTitle,
		lifechoicedomain.ErrInvalidDescription,
		lifechoicedomain.ErrInvalidChoiceType,
		lifechoicedomain.ErrInvalidCost,
		lifechoicedomain.ErrInvalidImpact,
		lifechoicedomain.ErrInvalidExperience,
		lifechoicedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
