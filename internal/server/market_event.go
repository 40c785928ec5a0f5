package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	marketeventdomain "github.com/smallbiznis/tycoon/internal/marketevent/domain"
)

type createMarketEventRequest struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	EventType        string  `json:"event_type"`
	ImpactMagnitude  float64 `json:"impact_magnitude"`
	AffectedIndustry *string `json:"affected_industry"`
	DurationHours    *int    `json:"duration_hours"`
}

func (s *Server) CreateMarketEvent(c *gin.Context) {
	var req createMarketEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var industry *businessdomain.Industry
	if req.AffectedIndustry != nil {
		value := businessdomain.Industry(strings.TrimSpace(*req.AffectedIndustry))
		industry = &value
	}

	resp, err := s.marketEventSvc.Create(c.Request.Context(), marketeventdomain.CreateEventRequest{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		EventType:        marketeventdomain.EventType(strings.TrimSpace(req.EventType)),
		ImpactMagnitude:  req.ImpactMagnitude,
		AffectedIndustry: industry,
		DurationHours:    req.DurationHours,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListActiveMarketEvents(c *gin.Context) {
	resp, err := s.marketEventSvc.ListActive(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isMarketEventValidationError(err error) bool {
	switch err {
	case marketeventdomain.ErrInvalidTitle,
		marketeventdomain.ErrInvalidDescription,
		marketeventdomain.ErrInvalidEventType,
		marketeventdomain.ErrInvalidImpact,
		marketeventdomain.ErrInvalidDuration,
		marketeventdomain.ErrInvalidIndustry:
		return true
	default:
		return false
	}
}
