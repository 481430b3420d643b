package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/playschool-a2z/management-api/internal/api"
	"github.com/playschool-a2z/management-api/internal/core/auth"
	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/infrastructure/config"
	mongodb "github.com/playschool-a2z/management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/playschool-a2z/management-api/internal/infrastructure/db/redis"
	"github.com/playschool-a2z/management-api/internal/infrastructure/queue"
	"github.com/playschool-a2z/management-api/pkg/logger"
)

// @title           Playschool Management API
// @version         1.0
// @description     Daycare administration backend: accounts, role-based access, student records.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	if err := seedAdmin(ctx, cfg, db, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

// seedAdmin creates the bootstrap administrator account when one is
// configured and no account with that username exists yet. Idempotent
// across restarts.
func seedAdmin(ctx context.Context, cfg *config.Config, db *mongo.Database, log zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Debug().Msg("no bootstrap admin configured, skipping")
		return nil
	}

	users := mongodb.NewUserRepository(db)
	if _, err := users.FindByUsername(ctx, cfg.Admin.Username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := users.Insert(ctx, &domain.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleAdmin},
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		// Lost a race against a concurrent instance seeding the same account.
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return err
	}

	log.Info().Str("username", cfg.Admin.Username).Msg("bootstrap admin created")
	return nil
}
