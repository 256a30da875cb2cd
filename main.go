// Package main is the entry point for the rizqly expense tracker server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rizqly/rizqly/internal/api"
	"github.com/rizqly/rizqly/internal/auth"
	"github.com/rizqly/rizqly/internal/config"
	"github.com/rizqly/rizqly/internal/database"
	"github.com/rizqly/rizqly/internal/localcache"
	"github.com/rizqly/rizqly/internal/logger"
	"github.com/rizqly/rizqly/internal/repository"
	"github.com/rizqly/rizqly/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("rizqly %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)

	cache, err := localcache.NewSQLiteStore(cfg.CachePath)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open local cache")
	}
	defer cache.Close()

	// The remote store is optional: a missing URL or a failed connection
	// degrades to local-only persistence instead of exiting.
	var remote store.RemoteStore
	if cfg.RemoteConfigured() {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Remote store unreachable, running in offline mode")
		} else {
			defer pool.Close()
			if err := database.RunMigrations(ctx, pool); err != nil {
				logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
			}
			remote = repository.NewExpenseRepository(pool)
			logger.Log.Info().Msg("Remote store initialized")
		}
	} else {
		logger.Log.Info().Msg("No DATABASE_URL configured, running in offline mode")
	}

	manager := store.NewManager(remote, cache, logger.Log)
	server := api.NewServer(manager, auth.ContextProvider{}, logger.Log)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Router([]byte(cfg.JWTSecret)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error().Err(err).Msg("Shutdown error")
		}
		cancel()
	}()

	logger.Log.Info().Str("addr", cfg.ListenAddr).Msg("Listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal().Err(err).Msg("Server error")
	}
}
