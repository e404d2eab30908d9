package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/grocery-pos/internal/config"
	"github.com/rogerio-castellano/grocery-pos/internal/db"
	api "github.com/rogerio-castellano/grocery-pos/internal/http"
	"github.com/rogerio-castellano/grocery-pos/internal/http/handlers"
	"github.com/rogerio-castellano/grocery-pos/internal/http/ratelimit"
	"github.com/rogerio-castellano/grocery-pos/internal/repo"
)

// @title Grocery POS API
// @version 1.0
// @description Point-of-sale and inventory backend for a single retail store.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	database, err := db.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal().Err(err).Msg("could not apply schema")
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("could not connect to Redis")
		}
		defer rdb.Close()

		limiter := ratelimit.New(rdb, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.MaxStrikes)
		go limiter.StartVisitorCleanupLoop()
		api.SetRateLimiter(limiter)
		log.Info().Str("settings", limiter.String()).Msg("rate limiting enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, rate limiting disabled")
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetCustomerRepo(repo.NewPostgresCustomerRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetTransactionRepo(repo.NewPostgresTransactionRepository(database))
	handlers.SetReportRepo(repo.NewPostgresReportRepository(database))

	r := api.NewRouter()
	log.Info().Str("addr", cfg.ListenAddr()).Msg("server listening")
	if err := http.ListenAndServe(cfg.ListenAddr(), r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
