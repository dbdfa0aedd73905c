package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/mvillaluz/tindera-backend/api/routes"
	"github.com/mvillaluz/tindera-backend/internal/cart"
	"github.com/mvillaluz/tindera-backend/internal/catalog"
	"github.com/mvillaluz/tindera-backend/internal/checkout"
	"github.com/mvillaluz/tindera-backend/internal/paymenttypes"
	"github.com/mvillaluz/tindera-backend/internal/transactions"
	"github.com/mvillaluz/tindera-backend/pkg/config"
	"github.com/mvillaluz/tindera-backend/pkg/db"
	"github.com/mvillaluz/tindera-backend/pkg/env"
	"github.com/mvillaluz/tindera-backend/pkg/logger"
	"github.com/mvillaluz/tindera-backend/pkg/metrics"
	"github.com/mvillaluz/tindera-backend/pkg/migrate"
	"github.com/mvillaluz/tindera-backend/pkg/redis"
	"github.com/mvillaluz/tindera-backend/pkg/session"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	paymentTypeRepo := paymenttypes.NewRepository(dbClient.DB())
	paymentTypeService, err := paymenttypes.NewService(paymentTypeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment type service", err)
		os.Exit(1)
	}

	cartRegistry := cart.NewRegistry()
	cartService, err := cart.NewService(cartRegistry, catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(checkout.NewRepository(dbClient.DB()), dbClient, cartRegistry, paymentTypeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	transactionService, err := transactions.NewService(transactions.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create transaction service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			DB:           dbClient,
			Redis:        redisClient,
			Sessions:     sessionManager,
			HTTPMetrics:  httpMetrics,
			PromGatherer: promRegistry,
			Catalog:      catalogService,
			PaymentTypes: paymentTypeService,
			Cart:         cartService,
			Checkout:     checkoutService,
			Transactions: transactionService,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		var errs error
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = multierr.Append(errs, err)
		}
		if err := redisClient.Close(); err != nil {
			errs = multierr.Append(errs, err)
		}
		if err := dbClient.Close(); err != nil {
			errs = multierr.Append(errs, err)
		}
		if errs != nil {
			logg.Error(ctx, "shutdown finished with errors", errs)
			os.Exit(1)
		}
		logg.Info(ctx, "api server stopped")
	}
}
