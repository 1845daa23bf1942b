package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tokengate/auth-service/internal/api"
	"github.com/tokengate/auth-service/internal/core/ports"
	"github.com/tokengate/auth-service/internal/core/service"
	mongodb "github.com/tokengate/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/tokengate/auth-service/internal/infrastructure/db/redis"
	"github.com/tokengate/auth-service/internal/infrastructure/queue"
	"github.com/tokengate/auth-service/internal/infrastructure/store/memory"
	"github.com/tokengate/auth-service/internal/pkg/config"
	"github.com/tokengate/auth-service/pkg/logger"
)

// @title        Token Auth Service API
// @version      1.0
// @description  Signed session tokens for a small user registry, with role-gated endpoints.
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// A missing secret is a configuration fault, surfaced at startup rather
	// than as per-request failures.
	tokens, err := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service configuration invalid")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Credential store ---
	var (
		users       ports.UserRepository
		auditRepo   ports.AuditRepository
		mongoDB     *mongo.Database
		mongoClient *mongo.Client
	)
	switch cfg.StoreBackend {
	case "mongo":
		var db *mongo.Database
		mongoClient, db, err = mongodb.Connect(ctx, mongodb.Options{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		repo := mongodb.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		users = repo
		auditRepo = mongodb.NewAuditRepository(db)
		mongoDB = db
	case "memory":
		users = memory.NewUserRepository()
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	// --- Login throttling (optional) ---
	var (
		limiter     service.LoginLimiter = service.NopLimiter{}
		redisClient *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redisdb.Connect(ctx, redisdb.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		limiter = redisdb.NewLoginLimiter(redisClient)
	}

	// --- Audit trail ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Users:   users,
		Hasher:  service.NewBcryptHasher(cfg.BcryptCost),
		Tokens:  tokens,
		Limiter: limiter,
		Audit:   dispatcher,
		Mongo:   mongoDB,
		Redis:   redisClient,
		Log:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}
}
