package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	httpx "github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/http"
	"github.com/RomanyU1662160/docker-kuberents/fulfillment/internal/store"
	"github.com/RomanyU1662160/docker-kuberents/pkg/config"
	"github.com/RomanyU1662160/docker-kuberents/pkg/logger"
)

func main() {
	cfg := config.LoadFulfillmentConfig()
	log := logger.New("fulfillment", slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orders := store.Seed()
	router := httpx.New(log, orders)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("fulfillment server starting", "addr", cfg.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("fulfillment server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
