package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/config"
	"cryptoprices-service/internal/infrastructure/httpx"
	"cryptoprices-service/internal/infrastructure/inmem"
	"cryptoprices-service/internal/infrastructure/logx"
	"cryptoprices-service/internal/infrastructure/pg"
	"cryptoprices-service/internal/infrastructure/provider"
	redisstore "cryptoprices-service/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
)

// Repo carries the built repository plus its readiness probe; Ping is
// nil for backends without one.
type Repo struct {
	Currencies application.CurrencyRepo
	Ping       func(context.Context) error
}

// BuildRepo builds the currency repository based on cfg.Storage.
func BuildRepo(ctx context.Context, cfg config.Config) (Repo, func(), error) {
	log := logx.L()

	switch cfg.Storage {
	case "pg":
		if cfg.DatabaseURL == "" {
			return Repo{}, func() {}, fmt.Errorf("DATABASE_URL is required for STORAGE=pg")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return Repo{}, func() {}, err
		}
		if err := pg.RunMigrations(ctx, db); err != nil {
			db.Close()
			return Repo{}, func() {}, err
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return Repo{Currencies: pg.NewCurrencyRepo(db), Ping: db.Ping}, cleanup, nil
	case "inmem":
		return Repo{Currencies: inmem.NewCurrencyRepo()}, func() {}, nil
	default:
		return Repo{}, func() {}, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
}

// BuildFetcher returns the upstream price fetcher based on cfg.Fetcher.
func BuildFetcher(cfg config.Config) application.PriceFetcher {
	switch cfg.Fetcher {
	case "cex":
		return &provider.CexAPIFetcher{
			BaseURL: cfg.CexAPIBase,
			Client:  &httpx.Client{HTTP: &http.Client{Timeout: cfg.FetchTimeout}},
		}
	default:
		return provider.NewFake(nil)
	}
}

// BuildCache builds the sorted-price cache if enabled (defaults to none).
func BuildCache(cfg config.Config) (application.PriceCache, func(), error) {
	if cfg.CacheBackend != "redis" {
		return application.NoopCache{}, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cleanup := func() { _ = rdb.Close() }
	return redisstore.New(rdb, cfg.CacheTTL), cleanup, nil
}
