package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"projectvault/app"
	"projectvault/config"
	"projectvault/database"
	"projectvault/gateway"
	"projectvault/handlers"
	"projectvault/logging"
	"projectvault/middleware"
	"projectvault/preferences"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg.Database)
	defer closeStore()

	prefStore, closePrefs := openPreferences(ctx, cfg.Preferences)
	defer closePrefs()

	a := app.New(store, prefStore)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	handlers.Register(r, a)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Str("store", cfg.Database.Backend).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Shutdown failed")
	}
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (gateway.Store, func()) {
	if cfg.Backend == "memory" {
		logging.Warn().Msg("Using the in-memory catalog; changes are lost on exit")
		return database.NewSeededMemoryStore(), func() {}
	}

	// Create context with timeout for initial connection
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := database.Connect(connectCtx, cfg.URL, cfg.AccessKey)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	return db, db.Close
}

func openPreferences(ctx context.Context, cfg config.PreferencesConfig) (preferences.Store, func()) {
	if cfg.RedisURL == "" {
		return preferences.NewMemoryStore(), func() {}
	}

	rs, err := preferences.NewRedisStore(cfg.RedisURL, cfg.DeviceID)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid REDIS_URL")
	}
	if err := rs.Ping(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to reach preference store")
	}
	return rs, func() {
		if err := rs.Close(); err != nil {
			logging.Warn().Err(err).Msg("Closing preference store")
		}
	}
}
