package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	employeedomain "github.com/smallbiznis/tycoon/internal/employee/domain"
)

type hireEmployeeRequest struct {
	BusinessID string  `json:"business_id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
}

func (s *Server) HireEmployee(c *gin.Context) {
	var req hireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	businessID, err := snowflake.ParseString(strings.TrimSpace(req.BusinessID))
	if err != nil || businessID == 0 {
		AbortWithError(c, newValidationError("business_id", "invalid_business_id", "invalid business id"))
		return
	}

	resp, err := s.employeeSvc.Hire(c.Request.Context(), employeedomain.HireEmployeeRequest{
		BusinessID: businessID,
		Name:       strings.TrimSpace(req.Name),
		Position:   strings.TrimSpace(req.Position),
		Salary:     req.Salary,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEmployees(c *gin.Context) {
	resp, err := s.employeeSvc.ListByBusiness(c.Request.Context(), employeedomain.ListEmployeesRequest{
		BusinessID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateEmployeeRequest struct {
	Salary            *float64 `json:"salary"`
	ProductivityScore *float64 `json:"productivity_score"`
	MoraleScore       *float64 `json:"morale_score"`
	ExperienceLevel   *int     `json:"experience_level"`
	IsActive          *bool    `json:"is_active"`
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil || id == 0 {
		AbortWithError(c, employeedomain.ErrInvalidID)
		return
	}

	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Update(c.Request.Context(), employeedomain.UpdateEmployeeRequest{
		ID:                id,
		Salary:            req.Salary,
		ProductivityScore: req.ProductivityScore,
		MoraleScore:       req.MoraleScore,
		ExperienceLevel:   req.ExperienceLevel,
		IsActive:          req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isEmployeeValidationError(err error) bool {
	switch err {
	case employeedomain.ErrInvalidName,
		employeedomain.ErrInvalidPosition,
		employeedomain.ErrInvalidSalary,
		employeedomain.ErrInvalidScore,
		employeedomain.ErrInvalidExperience,
		employeedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
