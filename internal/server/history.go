package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	historydomain "github.com/smallbiznis/tycoon/internal/history/domain"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
)

type recordBusinessPerformanceRequest struct {
	Income        float64 `json:"income_snapshot"`
	Expenses      float64 `json:"expenses_snapshot"`
	EmployeeCount int     `json:"employee_count_snapshot"`
	GrowthRate    float64 `json:"growth_rate_snapshot"`
	MarketShare   float64 `json:"market_share_snapshot"`
}

func (s *Server) RecordBusinessPerformance(c *gin.Context) {
	businessID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || businessID == 0 {
		AbortWithError(c, historydomain.ErrInvalidID)
		return
	}

	var req recordBusinessPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.historySvc.RecordBusinessPerformance(c.Request.Context(), historydomain.RecordBusinessPerformanceRequest{
		BusinessID:    businessID,
		Income:        req.Income,
		Expenses:      req.Expenses,
		EmployeeCount: req.EmployeeCount,
		GrowthRate:    req.GrowthRate,
		MarketShare:   req.MarketShare,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBusinessPerformance(c *gin.Context) {
	var query pagination.Params
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.historySvc.ListBusinessPerformance(c.Request.Context(), historydomain.ListBusinessPerformanceRequest{
		BusinessID: strings.TrimSpace(c.Param("id")),
		Pagination: query,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type recordPlayerWealthRequest struct {
	TotalWealth      float64 `json:"total_wealth_snapshot"`
	Level            int     `json:"level_snapshot"`
	ExperiencePoints int     `json:"experience_points_snapshot"`
}

func (s *Server) RecordPlayerWealth(c *gin.Context) {
	playerID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || playerID == 0 {
		AbortWithError(c, historydomain.ErrInvalidID)
		return
	}

	var req recordPlayerWealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.historySvc.RecordPlayerWealth(c.Request.Context(), historydomain.RecordPlayerWealthRequest{
		PlayerID:         playerID,
		TotalWealth:      req.TotalWealth,
		Level:            req.Level,
		ExperiencePoints: req.ExperiencePoints,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPlayerWealthHistory(c *gin.Context) {
	var query pagination.Params
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.historySvc.ListPlayerWealth(c.Request.Context(), historydomain.ListPlayerWealthRequest{
		PlayerID:   strings.TrimSpace(c.Param("id")),
		Pagination: query,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isHistoryValidationError(err error) bool {
	switch err {
	case historydomain.ErrInvalidID,
		historydomain.ErrInvalidSnapshot:
		return true
	default:
		return false
	}
}
