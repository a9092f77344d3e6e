package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heavensaji/fundtos/config"
	httpHandler "github.com/heavensaji/fundtos/internal/adapter/http/handler"
	"github.com/heavensaji/fundtos/internal/adapter/ledger/aptos"
	pgStorage "github.com/heavensaji/fundtos/internal/adapter/storage/postgres"
	redisStorage "github.com/heavensaji/fundtos/internal/adapter/storage/redis"
	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/internal/service"
	"github.com/heavensaji/fundtos/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("node", cfg.Ledger.NodeURL).
		Msg("Starting Fundtos campaign service")

	ctx := context.Background()

	// Initialize PostgreSQL pool (operation history)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client (rate limiting)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Ledger gateway
	gateway := aptos.New(
		cfg.Ledger.NodeURL,
		cfg.Ledger.SignerURL,
		&http.Client{Timeout: 30 * time.Second},
		cfg.Ledger.PollInterval,
		log,
	)

	// Repositories and stores
	operationRepo := pgStorage.NewOperationRepo(pool)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services
	campaignSvc := service.NewCampaignService(
		gateway,
		cfg.Ledger.Function(service.FnAllCampaigns),
		cfg.Ledger.Function(service.FnOwnerCampaigns),
		log,
	)
	orchestrator := service.NewOrchestrator(
		gateway,
		campaignSvc,
		service.NewFeeCalculator(),
		operationRepo,
		service.OrchestratorConfig{
			DonateFn:   cfg.Ledger.Function(service.FnDonate),
			CreateFn:   cfg.Ledger.Function(service.FnCreateCampaign),
			WithdrawFn: cfg.Ledger.Function(service.FnWithdrawFunds),
			CloseFn:    cfg.Ledger.Function(service.FnCloseCampaign),
			ResetAfter: cfg.Status.ResetAfter,
		},
		log,
	)
	defer orchestrator.Close()

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CampaignSvc:    campaignSvc,
		Orchestrator:   orchestrator,
		OperationLog:   operationRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{gateway, pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
