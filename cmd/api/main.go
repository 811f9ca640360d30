// Art gallery service: session-backed demo gallery with paintings,
// categories, ratings, and comments.
//
// @title        Art Gallery API
// @version      1.0
// @description  Painting gallery with a server-held demo session and
// @description  role-gated views for artists and enthusiasts.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artgallery/gallery-service/internal/api"
	"github.com/artgallery/gallery-service/internal/core/session"
	"github.com/artgallery/gallery-service/internal/infrastructure/config"
	mongoinfra "github.com/artgallery/gallery-service/internal/infrastructure/db/mongo"
	redisinfra "github.com/artgallery/gallery-service/internal/infrastructure/db/redis"
	"github.com/artgallery/gallery-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	if err := mongoinfra.EnsureAllIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	var verifier session.CredentialVerifier
	if !cfg.DemoAuth {
		verifier, err = session.NewBcryptVerifier(session.DefaultPasswords())
		if err != nil {
			log.Fatal().Err(err).Msg("verifier setup failed")
		}
		log.Info().Msg("demo auth disabled, passwords are checked")
	}

	store := session.New(session.Options{
		Verifier: verifier,
		Logger:   logger.Component("session"),
	})

	e := api.NewRouter(cfg, db, rdb, store)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
