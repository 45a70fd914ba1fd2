// Package ingest loads and back-fills historical review datasets.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"review_radar/internal/domain"
)

// LoadCSV reads a historical review dataset from disk. Expected
// columns: ReviewId, ReviewBody, Location, Timestamp, in any order.
func LoadCSV(path string) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV decodes the dataset. Malformed rows are logged and skipped
// rather than aborting the load; the service can start on a partial
// dataset.
func ParseCSV(r io.Reader) ([]domain.Review, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"ReviewBody", "Location", "Timestamp"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("seed csv missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []domain.Review
	line := 1
	for {
		row, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping unreadable seed row")
			continue
		}

		body := field(row, "ReviewBody")
		loc := field(row, "Location")
		if body == "" || loc == "" {
			log.Warn().Int("line", line).Msg("skipping seed row with empty body or location")
			continue
		}
		if !domain.IsValidLocation(loc) {
			log.Warn().Int("line", line).Str("location", loc).Msg("skipping seed row with unknown location")
			continue
		}
		ts, err := time.Parse(domain.TimeLayout, field(row, "Timestamp"))
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping seed row with bad timestamp")
			continue
		}

		id := field(row, "ReviewId")
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, domain.Review{
			ID:        id,
			Body:      body,
			Location:  loc,
			CreatedAt: domain.Timestamp{Time: ts},
		})
	}
	return out, nil
}
