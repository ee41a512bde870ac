package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/perfectbooks/stock-api/api/controllers"
	"github.com/perfectbooks/stock-api/api/routes"
	"github.com/perfectbooks/stock-api/internal/activity"
	"github.com/perfectbooks/stock-api/internal/books"
	"github.com/perfectbooks/stock-api/internal/dashboard"
	"github.com/perfectbooks/stock-api/internal/orders"
	"github.com/perfectbooks/stock-api/pkg/config"
	"github.com/perfectbooks/stock-api/pkg/db"
	"github.com/perfectbooks/stock-api/pkg/logger"
	"github.com/perfectbooks/stock-api/pkg/metrics"
	"github.com/perfectbooks/stock-api/pkg/migrate"
	"github.com/perfectbooks/stock-api/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	// Missing .env is fine; containers inject the environment directly.
	_ = godotenv.Load()

	bootLogg := logger.New(logger.Options{ServiceName: "stock-api"})

	cfg, err := config.Load()
	if err != nil {
		bootLogg.Error(context.Background(), "config load failed", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: "stock-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "server exited with error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return multierr.Append(err, dbClient.Close())
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis)
		if err != nil {
			return multierr.Append(err, dbClient.Close())
		}
		logg.Info(ctx, "redis cache connected")
	} else {
		logg.Info(ctx, "redis disabled, dashboard aggregates are computed per request")
	}

	cache := dashboard.NewCache(redisClient, logg, cfg.Dashboard.CacheTTL)

	activityRepo := activity.NewRepository(dbClient.DB())
	recorder := activity.NewRecorder(activityRepo, logg)

	bookRepo := books.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())

	var invalidator books.CacheInvalidator
	if cache != nil {
		invalidator = cache
	}
	bookSvc := books.NewService(bookRepo, recorder, invalidator)

	var orderInvalidator orders.CacheInvalidator
	if cache != nil {
		orderInvalidator = cache
	}
	orderSvc := orders.NewService(orderRepo, recorder, orderInvalidator)

	dashboardSvc := dashboard.NewService(bookRepo, orderRepo, activityRepo, cache, cfg.Dashboard)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	var cachePinger controllers.Pinger
	if redisClient != nil {
		cachePinger = redisClient
	}

	handler := routes.New(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		Books:       controllers.NewBooksController(bookSvc, logg),
		Orders:      controllers.NewOrdersController(orderSvc, logg),
		Dashboard:   controllers.NewDashboardController(dashboardSvc, logg),
		Health:      controllers.NewHealthController(dbClient, cachePinger, logg),
		HTTPMetrics: httpMetrics,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", server.Addr), "http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return multierr.Append(err, closeAll(dbClient, redisClient))
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var result error
	if err := server.Shutdown(shutdownCtx); err != nil {
		result = multierr.Append(result, err)
	}
	result = multierr.Append(result, closeAll(dbClient, redisClient))

	if result == nil {
		logg.Info(context.Background(), "shutdown complete")
	}
	return result
}

func closeAll(dbClient *db.Client, redisClient *redis.Client) error {
	var result error
	if dbClient != nil {
		result = multierr.Append(result, dbClient.Close())
	}
	if redisClient != nil {
		result = multierr.Append(result, redisClient.Close())
	}
	return result
}
