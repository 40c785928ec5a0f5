package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	achievementdomain "github.com/smallbiznis/tycoon/internal/achievement/domain"
	businessdomain "github.com/smallbiznis/tycoon/internal/business/domain"
	dashboarddomain "github.com/smallbiznis/tycoon/internal/dashboard/domain"
	employeedomain "github.com/smallbiznis/tycoon/internal/employee/domain"
	historydomain "github.com/smallbiznis/tycoon/internal/history/domain"
	investmentdomain "github.com/smallbiznis/tycoon/internal/investment/domain"
	lifechoicedomain "github.com/smallbiznis/tycoon/internal/lifechoice/domain"
	"github.com/smallbiznis/tycoon/internal/playerctx"
	playerdomain "github.com/smallbiznis/tycoon/internal/player/domain"
	"github.com/smallbiznis/tycoon/pkg/db/pagination"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrTooManyRequests = errors.New("too_many_requests")
	ErrInvalidRequest  = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case errors.Is(err, playerctx.ErrCallerMismatch),
		errors.Is(err, investmentdomain.ErrBusinessNotOwned):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, playerdomain.ErrPlayerExists):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case errors.Is(err, investmentdomain.ErrAlreadyCompleted):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "investment already completed",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "too_many_requests",
			Message: "too many requests",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, pagination.ErrLimitTooLarge):
		return true
	case isPlayerValidationError(err),
		isBusinessValidationError(err),
		isEmployeeValidationError(err),
		isMarketEventValidationError(err),
		isLifeChoiceValidationError(err),
		isInvestmentValidationError(err),
		isAchievementValidationError(err),
		isHistoryValidationError(err),
		errors.Is(err, dashboarddomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, playerdomain.ErrNotFound),
		errors.Is(err, businessdomain.ErrNotFound),
		errors.Is(err, businessdomain.ErrPlayerNotFound),
		errors.Is(err, employeedomain.ErrNotFound),
		errors.Is(err, employeedomain.ErrBusinessNotFound),
		errors.Is(err, lifechoicedomain.ErrPlayerNotFound),
		errors.Is(err, investmentdomain.ErrNotFound),
		errors.Is(err, investmentdomain.ErrPlayerNotFound),
		errors.Is(err, investmentdomain.ErrBusinessNotFound),
		errors.Is(err, achievementdomain.ErrPlayerNotFound),
		errors.Is(err, historydomain.ErrPlayerNotFound),
		errors.Is(err, historydomain.ErrBusinessNotFound),
		errors.Is(err, dashboarddomain.ErrPlayerNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func classifyErrorForLog(err error) string {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return payload.Type
}
