package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/bootstrap"
	"cryptoprices-service/internal/config"
	"cryptoprices-service/internal/domain"
	httpserver "cryptoprices-service/internal/infrastructure/http"
	"cryptoprices-service/internal/infrastructure/logx"
	"cryptoprices-service/internal/metrics"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		logx.L().Fatal("load config", zap.Error(err))
	}
	logx.Init(cfg.LogLevel)
	logger := logx.L()
	addr := ":" + cfg.Port

	repo, closeRepo, err := bootstrap.BuildRepo(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap repo", zap.Error(err))
	}
	defer closeRepo()

	cache, closeCache, err := bootstrap.BuildCache(cfg)
	if err != nil {
		logger.Fatal("bootstrap cache", zap.Error(err))
	}
	defer closeCache()

	fetcher := bootstrap.BuildFetcher(cfg)
	svc := application.NewCurrencyService(repo.Currencies, fetcher, application.WithCache(cache))
	m := metrics.New()

	fetchStartupPrices(ctx, cfg, svc, m, logger)

	srv := httpserver.NewServer(svc, cfg.QuoteSymbol)
	if repo.Ping != nil {
		srv.SetReadyCheck(repo.Ping)
	}
	server := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(srv, m),
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}

// fetchStartupPrices loads the configured pairs once before the API
// starts serving. A failed pair is logged and skipped; the remaining
// pairs still load.
func fetchStartupPrices(ctx context.Context, cfg config.Config, svc *application.CurrencyService, m *metrics.Metrics, logger *zap.Logger) {
	window := domain.FetchWindow{LastHours: cfg.FetchLastHours, MaxCount: cfg.FetchMaxCount}
	for _, base := range cfg.FetchSymbols {
		pair := base + "/" + cfg.QuoteSymbol
		cur, err := svc.FetchAndUpsert(ctx, base, cfg.QuoteSymbol, window)
		if err != nil {
			m.FetchesTotal.WithLabelValues(pair, "error").Inc()
			logger.Warn("startup fetch failed", zap.String("pair", pair), zap.Error(err))
			continue
		}
		m.FetchesTotal.WithLabelValues(pair, "ok").Inc()
		logger.Info("prices fetched", zap.String("pair", pair), zap.Int("count", len(cur.Prices)))
	}
}
