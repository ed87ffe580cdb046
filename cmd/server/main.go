package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/inkpress/article-service/internal/api"
	"github.com/inkpress/article-service/internal/core/ports"
	"github.com/inkpress/article-service/internal/infrastructure/config"
	"github.com/inkpress/article-service/internal/infrastructure/db/memory"
	redisdb "github.com/inkpress/article-service/internal/infrastructure/db/redis"
	"github.com/inkpress/article-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rdb *goredis.Client
	var sessions ports.SessionRepository

	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = redisdb.NewSessionRepository(rdb, cfg.Session.TTL)
	default:
		sessions = memory.NewSessionRepository(cfg.Session.TTL)
	}

	e := api.NewRouter(api.Stores{
		Users:    memory.NewUserRepository(),
		Sessions: sessions,
		Articles: memory.NewArticleRepository(),
	}, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
