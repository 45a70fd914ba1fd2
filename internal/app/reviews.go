package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"review_radar/internal/domain"
)

// DateLayout is the query-parameter date format for start_date/end_date.
const DateLayout = "2006-01-02"

// ReviewService owns the write and read paths over the shared store.
// The scorer is an injected capability; cache may be nil, in which
// case every read re-scores every surviving review (the reference
// behavior — classifier upgrades apply retroactively).
type ReviewService struct {
	repo     domain.ReviewRepository
	scorer   domain.SentimentScorer
	cache    domain.ScoreCache
	cacheTTL time.Duration
}

func NewReviewService(repo domain.ReviewRepository, scorer domain.SentimentScorer, cache domain.ScoreCache, ttl time.Duration) *ReviewService {
	return &ReviewService{repo: repo, scorer: scorer, cache: cache, cacheTTL: ttl}
}

// Create validates and appends one review. Repeated identical
// submissions create distinct records: reviews are events, not keyed
// entities.
func (s *ReviewService) Create(ctx context.Context, location, body string) (domain.Review, error) {
	if location == "" || body == "" {
		return domain.Review{}, domain.ErrMissingField
	}
	if !domain.IsValidLocation(location) {
		return domain.Review{}, domain.ErrInvalidLocation
	}

	r := domain.Review{
		ID:        uuid.NewString(),
		Body:      body,
		Location:  location,
		CreatedAt: domain.Timestamp{Time: time.Now().Truncate(time.Second)},
	}
	if err := s.repo.Append(ctx, r); err != nil {
		return domain.Review{}, fmt.Errorf("append review: %w", err)
	}
	return r, nil
}

// Query scans the store once, keeps reviews passing every provided
// predicate, attaches a sentiment score to each survivor and returns
// them sorted by compound score descending. The sort is stable on
// purpose: ties keep the store's insertion order.
func (s *ReviewService) Query(ctx context.Context, q domain.ReviewQuery) ([]domain.ScoredReview, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]domain.ScoredReview, 0, len(reviews))
	for _, r := range reviews {
		if q.Location != nil && r.Location != *q.Location {
			continue
		}
		d := dateKey(r.CreatedAt.Time)
		if q.Start != nil && d < dateKey(*q.Start) {
			continue
		}
		if q.End != nil && d > dateKey(*q.End) {
			continue
		}
		out = append(out, domain.ScoredReview{Review: r, Sentiment: s.scoreOf(ctx, r)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sentiment.Compound > out[j].Sentiment.Compound
	})
	return out, nil
}

// ParseReviewQuery turns raw query parameters into predicates. An
// unknown location is not rejected here; it simply matches nothing on
// the read path. A malformed date aborts the whole query.
func ParseReviewQuery(location, start, end string) (domain.ReviewQuery, error) {
	var q domain.ReviewQuery
	if location != "" {
		q.Location = &location
	}
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return domain.ReviewQuery{}, fmt.Errorf("%w: start_date %q", domain.ErrInvalidDate, start)
		}
		q.Start = &t
	}
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return domain.ReviewQuery{}, fmt.Errorf("%w: end_date %q", domain.ErrInvalidDate, end)
		}
		q.End = &t
	}
	return q, nil
}

// scoreOf computes (or recalls) the sentiment of one review. Cache
// keys carry the scorer version so a lexicon upgrade invalidates every
// memoized score at once.
func (s *ReviewService) scoreOf(ctx context.Context, r domain.Review) domain.SentimentScore {
	if s.cache == nil {
		return s.scorer.Score(r.Body)
	}
	key := fmt.Sprintf("score:%s:%s", s.scorer.Version(), r.ID)
	if sc, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return sc
	}
	sc := s.scorer.Score(r.Body)
	_ = s.cache.Set(ctx, key, sc, s.cacheTTL)
	return sc
}

// dateKey collapses a time to its calendar date in the time's own
// zone. Bounds parsed from query params and timestamps captured in
// process-local time then compare by date component alone, so the
// inclusive-range semantics hold in any deployment zone.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10_000 + int(m)*100 + d
}
