package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	investmentdomain "github.com/smallbiznis/tycoon/internal/investment/domain"
)

type createInvestmentRequest struct {
	PlayerID       string  `json:"player_id"`
	BusinessID     *string `json:"business_id"`
	InvestmentType string  `json:"investment_type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	AmountInvested float64 `json:"amount_invested"`
	ExpectedReturn float64 `json:"expected_return"`
	RiskLevel      int     `json:"risk_level"`
	DurationMonths int     `json:"duration_months"`
}

func (s *Server) CreateInvestment(c *gin.Context) {
	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		AbortWithError(c, newValidationError("player_id", "invalid_player_id", "invalid player id"))
		return
	}

	var businessID *snowflake.ID
	if req.BusinessID != nil && strings.TrimSpace(*req.BusinessID) != "" {
		id, err := snowflake.ParseString(strings.TrimSpace(*req.BusinessID))
		if err != nil || id == 0 {
			AbortWithError(c, newValidationError("business_id", "invalid_business_id", "invalid business id"))
			return
		}
		businessID = &id
	}

	resp, err := s.investmentSvc.Create(c.Request.Context(), investmentdomain.CreateInvestmentRequest{
		PlayerID:       playerID,
		BusinessID:     businessID,
		InvestmentType: investmentdomain.InvestmentType(strings.TrimSpace(req.InvestmentType)),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		AmountInvested: req.AmountInvested,
		ExpectedReturn: req.ExpectedReturn,
		RiskLevel:      req.RiskLevel,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListInvestments(c *gin.Context) {
	resp, err := s.investmentSvc.ListByPlayer(c.Request.Context(), investmentdomain.ListInvestmentsRequest{
		PlayerID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type completeInvestmentRequest struct {
	ActualReturn float64 `json:"actual_return"`
}

func (s *Server) CompleteInvestment(c *gin.Context) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || id == 0 {
		AbortWithError(c, investmentdomain.ErrInvalidID)
		return
	}

	var req completeInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.investmentSvc.Complete(c.Request.Context(), investmentdomain.CompleteInvestmentRequest{
		ID:           id,
		ActualReturn: req.ActualReturn,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isInvestmentValidationError(err error) bool {
	switch err {
	case investmentdomain.ErrInvalidTitle,
		investmentdomain.ErrInvalidDescription,
		investmentdomain.ErrInvalidType,
		investmentdomain.ErrInvalidAmount,
		investmentdomain.ErrInvalidRisk,
		investmentdomain.ErrInvalidDuration,
		investmentdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
