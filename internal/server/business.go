package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
)

type createBusinessRequest struct {
	PlayerID        string  `json:"player_id"`
	Name            string  `json:"name"`
	Industry        string  `json:"industry"`
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
}

func (s *Server) CreateBusiness(c *gin.Context) {
	var req createBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	playerID, err := snowflake.ParseString(strings.TrimSpace(req.PlayerID))
	if err != nil || playerID == 0 {
		AbortWithError(c, newValidationError("player_id", "invalid_player_id", "invalid player id"))
		return
	}

	resp, err := s.businessSvc.Create(c.Request.Context(), businessdomain.CreateBusinessRequest{
		PlayerID:        playerID,
		Name:            strings.TrimSpace(req.Name),
		Industry:        businessdomain.Industry(strings.TrimSpace(req.Industry)),
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBusinesses(c *gin.Context) {
	resp, err := s.businessSvc.ListByPlayer(c.Request.Context(), businessdomain.ListBusinessesRequest{
		PlayerID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateBusinessRequest struct {
	Name            *string  `json:"name"`
	MonthlyIncome   *float64 `json:"monthly_income"`
	MonthlyExpenses *float64 `json:"monthly_expenses"`
	EmployeeCount   *int     `json:"employee_count"`
	GrowthRate      *float64 `json:"growth_rate"`
	MarketShare     *float64 `json:"market_share"`
	IsActive        *bool    `json:"is_active"`
}

func (s *Server) UpdateBusiness(c *gin.Context) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || id == 0 {
		AbortWithError(c, businessdomain.ErrInvalidID)
		return
	}

	var req updateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.businessSvc.Update(c.Request.Context(), businessdomain.UpdateBusinessRequest{
		ID:              id,
		Name:            req.Name,
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		EmployeeCount:   req.EmployeeCount,
		GrowthRate:      req.GrowthRate,
		MarketShare:     req.MarketShare,
		IsActive:        req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isBusinessValidationError(err error) bool {
	switch err {
	case businessdomain.ErrInvalidName,
		businessdomain.ErrInvalidIndustry,
		businessdomain.ErrInvalidAmount,
		businessdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
