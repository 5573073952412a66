package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client is the subset of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type Source interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// Leaderboard serves ranked lists from Redis and recomputes on a miss.
// Redis failures fall through to the source.
type Leaderboard struct {
	rdb    Client
	source Source
	ttl    time.Duration
	log    *zap.Logger
}

func NewLeaderboard(rdb Client, source Source, ttl time.Duration, log *zap.Logger) *Leaderboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Leaderboard{rdb: rdb, source: source, ttl: ttl, log: log}
}

func key(limit int) string { return fmt.Sprintf("leaderboard:top:%d", limit) }

func (c *Leaderboard) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	limit = learning.ClampLimit(limit)
	raw, err := c.rdb.Get(ctx, key(limit)).Bytes()
	switch {
	case err == nil:
		var entries []models.LeaderboardEntry
		if jerr := json.Unmarshal(raw, &entries); jerr == nil {
			return entries, nil
		}
	case !errors.Is(err, redis.Nil):
		c.log.Warn("leaderboard cache read failed", zap.Error(err))
	}
	return c.refresh(ctx, limit)
}

// Refresh recomputes and stores the default list.
func (c *Leaderboard) Refresh(ctx context.Context) error {
	_, err := c.refresh(ctx, learning.DefaultLeaderboardLimit)
	return err
}

func (c *Leaderboard) refresh(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	entries, err := c.source.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return entries, nil
	}
	if err := c.rdb.Set(ctx, key(limit), raw, c.ttl).Err(); err != nil {
		c.log.Warn("leaderboard cache write failed", zap.Error(err))
	}
	return entries, nil
}

func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
