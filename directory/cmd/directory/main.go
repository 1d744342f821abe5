package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"github.com/RomanyU1662160/docker-kuberents/directory/internal/gateway"
	httpx "github.com/RomanyU1662160/docker-kuberents/directory/internal/http"
	"github.com/RomanyU1662160/docker-kuberents/directory/internal/store"
	"github.com/RomanyU1662160/docker-kuberents/directory/internal/ws"
	"github.com/RomanyU1662160/docker-kuberents/pkg/config"
	"github.com/RomanyU1662160/docker-kuberents/pkg/logger"
)

func main() {
	cfg := config.LoadDirectoryConfig()
	log := logger.New("directory", slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	users := store.Seed()

	gatewayClient, err := gateway.New(cfg.FulfillmentURL, cfg.GatewayTimeout, cfg.HealthProbeTimeout, log)
	if err != nil {
		log.Error("failed to configure fulfillment gateway", "error", err)
		os.Exit(1)
	}

	healthHub := ws.NewHub()
	monitor := gateway.NewMonitor(gatewayClient, healthHub, log, cfg.HealthPollInterval)
	go monitor.Run(ctx)

	limiter := httpx.NewMemoryRateLimiter()
	if addr := strings.TrimSpace(cfg.RateLimitRedisAddr); addr != "" {
		redisLimiter, err := httpx.NewRedisRateLimiter(addr, cfg.RateLimitRedisPass, cfg.RateLimitRedisDB, log)
		if err != nil {
			log.Warn("redis rate limiter unavailable", "error", err)
		} else {
			limiter = redisLimiter
		}
	}

	router := httpx.NewRouter(log, users, gatewayClient, healthHub, limiter)
	defer router.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("directory server starting", "addr", cfg.Addr, "fulfillment_url", gatewayClient.BaseURL())
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("directory server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
