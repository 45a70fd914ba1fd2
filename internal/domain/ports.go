package domain

import (
	"context"
	"time"
)

// ReviewRepository is the append-only store of reviews. Insertion
// order is the contract: List returns reviews in the order they were
// appended, and a successful Append is visible to every later List.
type ReviewRepository interface {
	Append(ctx context.Context, r Review) error
	List(ctx context.Context) ([]Review, error)
}

// SentimentScorer turns text into polarity scores. Implementations
// must be pure and deterministic for a fixed Version; empty text
// yields a neutral score, never an error. Version changes whenever
// the underlying lexicon/model does, so cached scores can be keyed
// by it and invalidate themselves.
type SentimentScorer interface {
	Score(text string) SentimentScore
	Version() string
}

// ScoreCache optionally memoizes computed scores. A nil cache means
// every read re-scores, which is the reference behavior.
type ScoreCache interface {
	Get(ctx context.Context, key string) (SentimentScore, bool, error)
	Set(ctx context.Context, key string, s SentimentScore, ttl time.Duration) error
}

// ReviewQuery holds the read-path predicates. All bounds are
// date-only and inclusive, compared against the review timestamp's
// date component. Nil means the predicate is absent and passes all.
type ReviewQuery struct {
	Location *string
	Start    *time.Time
	End      *time.Time
}
