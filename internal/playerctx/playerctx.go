package playerctx

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// ErrCallerMismatch is returned when a caller identity is present on the
// request but does not match the player a mutation targets.
var ErrCallerMismatch = errors.New("caller_mismatch")

// PlayerContextKey is the request context key for the caller's player ID.
type PlayerContextKey struct{}

// WithPlayerID stores the caller's player ID in the context.
func WithPlayerID(ctx context.Context, playerID snowflake.ID) context.Context {
	return context.WithValue(ctx, PlayerContextKey{}, playerID)
}

// PlayerIDFromContext returns the caller's player ID from context, if set.
func PlayerIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}
	value := ctx.Value(PlayerContextKey{})
	if value == nil {
		return 0, false
	}
	id, ok := value.(snowflake.ID)
	return id, ok
}

// Authorize rejects a mutation against playerID when the context carries a
// different caller. Requests without a caller identity pass through.
func Authorize(ctx context.Context, playerID snowflake.ID) error {
	caller, ok := PlayerIDFromContext(ctx)
	if ok && caller != playerID {
		return ErrCallerMismatch
	}
	return nil
}
