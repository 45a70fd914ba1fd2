package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the wall-clock format reviews carry on the wire,
// second granularity, no zone.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp wraps time.Time so reviews serialize in TimeLayout form.
type Timestamp struct{ time.Time }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Review is one customer's text feedback tied to a location. Immutable
// after creation; sentiment is never stored on it.
type Review struct {
	ID        string    `json:"ReviewId"`
	Body      string    `json:"ReviewBody"`
	Location  string    `json:"Location"`
	CreatedAt Timestamp `json:"Timestamp"`
}

// SentimentScore is the polarity breakdown of a text. Negative,
// Neutral and Positive are non-negative and sum to roughly one;
// Compound is the normalized aggregate in [-1, 1] used for ranking.
type SentimentScore struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// ScoredReview is the read model: a stored review plus the sentiment
// computed for this response.
type ScoredReview struct {
	Review
	Sentiment SentimentScore `json:"sentiment"`
}
