package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/heshima/studio-api/internal/api"
	"github.com/heshima/studio-api/internal/infrastructure/bootstrap"
	"github.com/heshima/studio-api/internal/infrastructure/config"
	mongodb "github.com/heshima/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/heshima/studio-api/internal/infrastructure/db/redis"
	"github.com/heshima/studio-api/pkg/logger"
)

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
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	// Indexes before seeding: the role-name unique index is what makes
	// concurrent bootstraps race-free.
	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)
	for _, ensure := range []func(context.Context) error{
		roleRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
		productRepo.EnsureIndexes,
		inquiryRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure indexes")
		}
	}

	seeder := bootstrap.NewSeeder(roleRepo, userRepo, productRepo, bootstrap.AdminAccount{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bootstrap seeding failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
