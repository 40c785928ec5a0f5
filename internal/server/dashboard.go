package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	dashboarddomain "github.com/smallbiznis/tycoon/internal/dashboard/domain"
)

func (s *Server) GetDashboard(c *gin.Context) {
	resp, err := s.dashboardSvc.Get(c.Request.Context(), dashboarddomain.GetDashboardRequest{
		PlayerID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
