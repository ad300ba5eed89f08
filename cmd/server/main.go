package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/router"
	"salesdash/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	for _, dir := range []string{cfg.SalesDataDir, cfg.InventoryDataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("failed to create data directory")
		}
	}

	loader := service.NewLoader(service.LoaderOptions{
		SalesDir:            cfg.SalesDataDir,
		InventoryDir:        cfg.InventoryDataDir,
		PoolSize:            cfg.WorkerPoolSize,
		LoadCacheMaxEntries: cfg.LoadCacheMaxEntries,
		LoadCacheTTL:        cfg.LoadCacheTTL(),
		AggCacheMaxEntries:  cfg.AggCacheMaxEntries,
		AggCacheTTL:         cfg.AggCacheTTL(),
	})

	r := router.New(cfg, loader)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("sales dashboard backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
