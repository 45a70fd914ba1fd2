// Package redisad memoizes computed sentiment scores. Keys carry the
// scorer version, so the cache never has to be flushed on a lexicon
// upgrade; old entries just stop being asked for and expire.
package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
)

type ScoreCache struct{ c *redis.Client }

func New(addr, pass string, db int) *ScoreCache {
	return &ScoreCache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// NewWithClient wraps an existing client (tests).
func NewWithClient(c *redis.Client) *ScoreCache { return &ScoreCache{c: c} }

func (r *ScoreCache) Get(ctx context.Context, key string) (domain.SentimentScore, bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return domain.SentimentScore{}, false, nil
	}
	if err != nil {
		return domain.SentimentScore{}, false, err
	}
	var s domain.SentimentScore
	if err := json.Unmarshal(v, &s); err != nil {
		return domain.SentimentScore{}, false, err
	}
	observability.ObserveCache("redis", "hit")
	return s, true, nil
}

func (r *ScoreCache) Set(ctx context.Context, key string, s domain.SentimentScore, ttl time.Duration) error {
	b, _ := json.Marshal(s)
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, b, ttl).Err()
}
