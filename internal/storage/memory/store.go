// Package memory holds the process-lifetime review store. Reviews are
// append-only and unbounded, which is an accepted scope limit of the
// service, not an oversight.
package memory

import (
	"context"
	"sync"

	"review_radar/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func New() *Store { return &Store{} }

// NewSeeded starts the store with historical reviews, preserving their
// order.
func NewSeeded(seed []domain.Review) *Store {
	s := &Store{reviews: make([]domain.Review, len(seed))}
	copy(s.reviews, seed)
	return s
}

func (s *Store) Append(ctx context.Context, r domain.Review) error {
	s.mu.Lock()
	s.reviews = append(s.reviews, r)
	s.mu.Unlock()
	return nil
}

// List returns a copy of the stored reviews in insertion order. The
// copy keeps callers from observing appends that land mid-scan.
func (s *Store) List(ctx context.Context) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}
