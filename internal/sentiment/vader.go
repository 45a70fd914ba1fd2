// Package sentiment adapts a lexicon-based polarity classifier to the
// domain scorer port. The classifier is a black box here: swapping it
// out only requires a new adapter and a new version string.
package sentiment

import (
	"strings"
	"time"

	"github.com/jonreiter/govader"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
)

// version bumps whenever the underlying lexicon changes, so any cached
// scores keyed by it go stale on upgrade.
const version = "vader-1"

// VADER scores text with the VADER lexicon. Construction loads the
// lexicon once; Score is read-only afterwards and safe for concurrent
// use.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VADER) Version() string { return version }

func (v *VADER) Score(text string) domain.SentimentScore {
	if strings.TrimSpace(text) == "" {
		// Empty text is neutral, never an error.
		return domain.SentimentScore{Neutral: 1}
	}
	start := time.Now()
	s := v.analyzer.PolarityScores(text)
	observability.ObserveScoring(time.Since(start))
	return domain.SentimentScore{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}
