// @title        Consultant Nexus API
// @version      1.0
// @description  Marketplace API connecting business users with consultants: projects, applications, invitations, reviews, and generative assistance.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/consultantnexus/marketplace-system/internal/api"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/service"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/ai"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/config"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/db/mongo"
	"github.com/consultantnexus/marketplace-system/internal/infrastructure/db/redis"
	"github.com/consultantnexus/marketplace-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// --- Snapshot backend selection ---
	var (
		snapshots ports.SnapshotStore
		mongoDB   *gomongo.Database
		redisCli  *goredis.Client
	)
	switch cfg.StoreBackend {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mongoDB = db
		snapshots = mongo.NewSnapshotStore(db)
	case "redis":
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		redisCli = client
		snapshots = redis.NewSnapshotStore(client)
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND, want mongo or redis")
	}

	// Redis also backs the assist in-flight guard when available.
	var guard service.InflightGuard
	if redisCli == nil {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, assist in-flight guard disabled")
		} else {
			defer func() { _ = client.Close() }()
			redisCli = client
		}
	}
	if redisCli != nil {
		guard = redis.NewInflightGuard(redisCli)
	}

	store := state.Open(ctx, snapshots, log)

	var assistant ports.Assistant
	if cfg.Gemini.APIKey != "" {
		assistant = ai.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.ImageModel, log)
	} else {
		log.Info().Msg("GEMINI_API_KEY not set, assistant features disabled")
	}

	e := api.NewRouter(api.Dependencies{
		Sessions:     service.NewSessionService(store, cfg.JWTSecret, 24*time.Hour, log),
		Projects:     service.NewProjectService(store, log),
		Applications: service.NewApplicationService(store, log),
		Reviews:      service.NewReviewService(store, log),
		Profiles:     service.NewProfileService(store, log),
		Directory:    service.NewDirectoryService(store, log),
		Assist:       service.NewAssistService(store, assistant, guard, log),
		Mongo:        mongoDB,
		Redis:        redisCli,
		JWTSecret:    cfg.JWTSecret,
		Log:          log,
	})

	// --- Start and wait for shutdown ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
