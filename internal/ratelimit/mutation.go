package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/tycoon/internal/config"
)

const keyMutation = "tycoon:mutation:%s"

// MutationLimiter throttles state-changing requests per caller. A nil
// limiter (rate limiting disabled) allows everything.
type MutationLimiter struct {
	enabled bool

	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewMutationLimiter(cfg config.Config) (*MutationLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	if limitCfg.RedisAddr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.MutationRate <= 0 || limitCfg.MutationBurst <= 0 {
		return nil, errors.New("mutation rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     limitCfg.RedisAddr,
		Password: limitCfg.RedisPassword,
		DB:       limitCfg.RedisDB,
	})

	return &MutationLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.MutationRate,
		burst:   limitCfg.MutationBurst,
	}, nil
}

func (l *MutationLimiter) Enabled() bool {
	return l != nil && l.enabled
}

// Allow consumes one token for the caller key (player ID or client IP).
func (l *MutationLimiter) Allow(ctx context.Context, caller string) (bool, time.Duration, error) {
	if !l.Enabled() {
		return true, 0, nil
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keyMutation, caller), l.rate, l.burst)
}
