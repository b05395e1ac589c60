package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"stockfolio/internal/cache"
	"stockfolio/internal/config"
	"stockfolio/internal/database"
	"stockfolio/internal/events"
	"stockfolio/internal/ledger"
	"stockfolio/internal/logger"
	"stockfolio/internal/prices"
	"stockfolio/internal/router"
	"stockfolio/internal/scheduler"
	"stockfolio/internal/services"
	"stockfolio/internal/validator"

	_ "stockfolio/internal/docs" // Import swagger docs
)

// @title           Stockfolio API
// @version         1.0
// @description     Stockfolio is a single-user portfolio tracker: a cash wallet, stock trades with weighted-average cost basis, holdings, a watchlist and portfolio snapshots.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

const shutdownTimeout = 10 * time.Second

func main() {
	appConfig, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("Fatal error: failed to load configuration: %v", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context, appConfig *config.Config) error {
	log := logger.Get()

	validator.Register()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	if _, err := database.EnsureWallet(db, appConfig.WalletInitialBalance); err != nil {
		return err
	}

	// Latest prices, optionally cached in redis
	store := prices.NewStore(db)
	var (
		lookup      ledger.PriceLookup = store
		invalidator services.PriceInvalidator
	)
	if appConfig.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()

		priceCache := cache.NewPriceCache(rdb, store, appConfig.PriceCacheTTL)
		lookup = priceCache
		invalidator = priceCache
	}

	publisher := events.NewPublisher(appConfig.KafkaBrokers, appConfig.KafkaTradeTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnf("event publisher close error: %v", err)
		}
	}()

	// Initialize services
	engine := ledger.NewEngine(database.NewUnitOfWork(db), lookup, publisher)
	snapshotService := services.NewSnapshotService(db, lookup)

	handler := router.New(router.Deps{
		Ledger:         engine,
		Prices:         lookup,
		Stocks:         services.NewStockService(db, invalidator),
		Wallet:         services.NewWalletService(db),
		Transactions:   services.NewTransactionService(db),
		Watchlist:      services.NewWatchlistService(db),
		Snapshots:      snapshotService,
		Audit:          services.NewAuditService(db),
		PipelineAPIKey: appConfig.PipelineAPIKey,
	})

	if appConfig.SnapshotInterval > 0 {
		sched, err := scheduler.New()
		if err != nil {
			return err
		}
		err = sched.AddIntervalJob("portfolio-snapshot", appConfig.SnapshotInterval, func(ctx context.Context) error {
			_, err := snapshotService.RecordSnapshot(ctx, time.Now().UTC().Truncate(time.Second))
			return err
		}, false)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				log.Warnf("scheduler stop error: %v", err)
			}
		}()
		log.Infof("Portfolio snapshots scheduled every %s", appConfig.SnapshotInterval)
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Stockfolio server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
