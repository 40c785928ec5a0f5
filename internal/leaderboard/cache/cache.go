package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/tycoon/internal/config"
	"github.com/smallbiznis/tycoon/internal/leaderboard/domain"
	"go.uber.org/zap"
)

// PageCache keeps rendered leaderboard pages in redis for a short TTL.
// A nil *PageCache is valid and disables caching, mirroring how the
// rate limiter degrades when redis is not configured.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) *PageCache {
	c := cfg.LeaderboardCache
	if c.RedisAddr == "" {
		return nil
	}
	return &PageCache{
		client: redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		}),
		ttl: time.Duration(c.TTLSeconds) * time.Second,
		log: log.Named("leaderboard.cache"),
	}
}

func key(page, limit int) string {
	return fmt.Sprintf("tycoon:leaderboard:%d:%d", page, limit)
}

// Get returns the cached page, or (nil, false) on miss or any redis
// error. Cache failures never surface to callers.
func (c *PageCache) Get(ctx context.Context, page, limit int) ([]domain.Entry, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(page, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("leaderboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var entries []domain.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *PageCache) Set(ctx context.Context, page, limit int, entries []domain.Entry) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(page, limit), raw, c.ttl).Err(); err != nil {
		c.log.Warn("leaderboard cache write failed", zap.Error(err))
	}
}
