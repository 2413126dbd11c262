// @title           Task System API
// @version         1.0
// @description     Task management API with token auth and admin gating.
// @BasePath        /
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        x-auth-token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskhive/task-system/internal/api"
	"github.com/taskhive/task-system/internal/core/service"
	mongodb "github.com/taskhive/task-system/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/task-system/internal/infrastructure/db/redis"
	"github.com/taskhive/task-system/internal/infrastructure/queue"
	"github.com/taskhive/task-system/internal/pkg/config"
	"github.com/taskhive/task-system/pkg/logger"
)

const envFile = ".env"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	generated, err := cfg.EnsureJWTSecret(envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap jwt secret")
	}
	if generated {
		log.Warn().Msg("no JWT_SECRET configured, generated one and persisted it to .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, redisdb.NewDedupChecker(rdb), log)

	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, tokens, dispatcher, activityService, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
