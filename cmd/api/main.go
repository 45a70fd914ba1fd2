package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "review_radar/internal/adapters/http_server"
	"review_radar/internal/adapters/observability"
	redisad "review_radar/internal/adapters/redis"
	"review_radar/internal/app"
	"review_radar/internal/domain"
	"review_radar/internal/ingest"
	"review_radar/internal/sentiment"
	"review_radar/internal/shared"
	"review_radar/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// store, optionally pre-seeded from a historical dataset
	store := memory.New()
	if cfg.SeedFile != "" {
		seed, err := ingest.LoadCSV(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("seed load failed")
		}
		store = memory.NewSeeded(seed)
		log.Info().Int("reviews", len(seed)).Str("file", cfg.SeedFile).Msg("store seeded")
	}

	// deps
	scorer := sentiment.NewVADER()
	var cache domain.ScoreCache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("score cache enabled")
	}
	svc := app.NewReviewService(store, scorer, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Svc: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
