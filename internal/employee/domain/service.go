package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type HireEmployeeRequest struct {
	BusinessID snowflake.ID
	Name       string
	Position   string
	Salary     float64
}

type ListEmployeesRequest struct {
	BusinessID string
}

type UpdateEmployeeRequest struct {
	ID                snowflake.ID
	Salary            *float64
	ProductivityScore *float64
	MoraleScore       *float64
	ExperienceLevel   *int
	IsActive          *bool
}

type Service interface {
	Hire(context.Context, HireEmployeeRequest) (Employee, error)
	ListByBusiness(context.Context, ListEmployeesRequest) ([]Employee, error)
	Update(context.Context, UpdateEmployeeRequest) (Employee, error)
}

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidPosition   = errors.New("invalid_position")
	ErrInvalidSalary     = errors.New("invalid_salary")
	ErrInvalidScore      = errors.New("invalid_score")
	ErrInvalidExperience = errors.New("invalid_experience")
	ErrInvalidID         = errors.New("invalid_id")
	ErrBusinessNotFound  = errors.New("business_not_found")
	ErrNotFound          = errors.New("not_found")
)
