package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
	"review_radar/internal/ingest"
	"review_radar/internal/shared"
)

// Back-fills a historical review dataset into a running API instance,
// one POST per row, with bounded concurrency.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.SeedFile == "" {
		log.Fatal().Msg("SEED_FILE is required")
	}

	rows, err := ingest.LoadCSV(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("dataset load failed")
	}

	log.Info().
		Str("api", cfg.APIBase).
		Int("rows", len(rows)).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	client := ingest.NewClient(cfg.APIBase, cfg.SubmitRPS)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, row := range rows {
		row := row

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(r domain.Review) {
			defer wg.Done()
			defer sem.Release(1)

			created, err := client.Submit(ctx, r.Location, r.Body)
			if err != nil {
				log.Warn().Str("id", r.ID).Err(err).Msg("submit failed")
				return
			}
			log.Info().Str("id", created.ID).Str("location", created.Location).Msg("submit ok")
		}(row)
	}

	wg.Wait()
	log.Info().Msg("back-fill completed")
}
