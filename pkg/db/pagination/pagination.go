package pagination

import "errors"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ErrLimitTooLarge rejects limits above MaxLimit as client input errors.
var ErrLimitTooLarge = errors.New("invalid_limit")

// Params is a page/limit pair bound from query strings.
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize applies the API contract: page >= 1, limit >= 1, with
// defaults when unset. Limits above MaxLimit are rejected, not clamped.
func (p Params) Normalize() (Params, error) {
	if p.Limit > MaxLimit {
		return Params{}, ErrLimitTooLarge
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p, nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
