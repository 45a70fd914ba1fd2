package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "review_radar/internal/adapters/redis"
	"review_radar/internal/domain"
)

func newCache(t *testing.T) (*redisad.ScoreCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestScoreCache_MissThenHit(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "score:vader-1:abc"); err != nil || ok {
		t.Fatalf("want clean miss, got ok=%v err=%v", ok, err)
	}

	want := domain.SentimentScore{Negative: 0.1, Neutral: 0.5, Positive: 0.4, Compound: 0.6}
	if err := cache.Set(ctx, "score:vader-1:abc", want, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := cache.Get(ctx, "score:vader-1:abc")
	if err != nil || !ok {
		t.Fatalf("want hit, got ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestScoreCache_TTLExpiry(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "score:vader-1:abc", domain.SentimentScore{Compound: 0.2}, time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	if _, ok, _ := cache.Get(ctx, "score:vader-1:abc"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestScoreCache_VersionedKeysAreIndependent(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "score:vader-1:abc", domain.SentimentScore{Compound: 0.2}, time.Minute)

	if _, ok, _ := cache.Get(ctx, "score:vader-2:abc"); ok {
		t.Fatal("new scorer version must start cold")
	}
}
