package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	leaderboarddomain "github.com/smallbiznis/tycoon/internal/leaderboard/domain"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
)

func (s *Server) GetLeaderboard(c *gin.Context) {
	var query pagination.Params
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.leaderboardSvc.List(c.Request.Context(), leaderboarddomain.ListRequest{
		Pagination: query,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
