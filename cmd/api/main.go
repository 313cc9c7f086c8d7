package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maisondespoir/orphanage-api/internal/api"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
	"github.com/maisondespoir/orphanage-api/internal/core/service"
	"github.com/maisondespoir/orphanage-api/internal/infrastructure/config"
	"github.com/maisondespoir/orphanage-api/internal/infrastructure/db/memory"
	mongodb "github.com/maisondespoir/orphanage-api/internal/infrastructure/db/mongo"
	redisdb "github.com/maisondespoir/orphanage-api/internal/infrastructure/db/redis"
	"github.com/maisondespoir/orphanage-api/internal/infrastructure/notify"
	"github.com/maisondespoir/orphanage-api/internal/infrastructure/queue"
	"github.com/maisondespoir/orphanage-api/pkg/logger"
)

const (
	notificationWorkers = 4
	loginMaxFailures    = 10
	loginFailureWindow  = 15 * time.Minute
	shutdownGracePeriod = 10 * time.Second
)

// @title        Orphanage Management API
// @version      1.0
// @description  Account registration workflow, role-based access, and daily operations for an orphanage.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Repositories ---
	var (
		userRepo     ports.UserRepository
		childRepo    ports.ChildRepository
		donationRepo ports.DonationRepository
		donorRepo    ports.DonorRepository
		stockRepo    ports.StockRepository
		familyRepo   ports.FamilyRepository
		scheduleRepo ports.ScheduleRepository
	)

	deps := api.RouterDeps{Logger: log}

	switch cfg.Store {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		users := mongodb.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongodb index creation failed")
		}

		donors := mongodb.NewDonorRepository(db)
		if err := donors.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongodb index creation failed")
		}

		userRepo = users
		childRepo = mongodb.NewChildRepository(db)
		donationRepo = mongodb.NewDonationRepository(db)
		donorRepo = donors
		stockRepo = mongodb.NewStockRepository(db)
		familyRepo = mongodb.NewFamilyRepository(db)
		scheduleRepo = mongodb.NewScheduleRepository(db)
		deps.Mongo = db

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		deps.Redis = rdb

	case "memory":
		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		childRepo = memory.NewChildRepository(store)
		donationRepo = memory.NewDonationRepository(store)
		donorRepo = memory.NewDonorRepository(store)
		stockRepo = memory.NewStockRepository(store)
		familyRepo = memory.NewFamilyRepository(store)
		scheduleRepo = memory.NewScheduleRepository(store)
		log.Warn().Msg("running on the in-memory store, data will not survive a restart")
	}

	// --- Notifications ---
	dispatcher := queue.NewDispatcher(notificationWorkers, notify.NewLogNotifier(log), log)
	dispatcher.Start(ctx)

	// --- Services ---
	tokens := service.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		log,
	)

	var limiter service.LoginLimiter
	if deps.Redis != nil {
		limiter = redisdb.NewLoginLimiter(deps.Redis, loginMaxFailures, loginFailureWindow)
	}

	deps.Tokens = tokens
	deps.Auth = service.NewAuthService(userRepo, tokens, limiter, log)
	deps.Registration = service.NewRegistrationService(userRepo, dispatcher, cfg.BcryptCost, log)
	deps.Users = service.NewUserAdminService(userRepo, cfg.BcryptCost, log)
	deps.Children = service.NewChildService(childRepo, log)
	deps.Donations = service.NewDonationService(donationRepo, dispatcher, log)
	deps.Donors = service.NewDonorService(donorRepo, log)
	deps.Stock = service.NewStockService(stockRepo, log)
	deps.Families = service.NewFamilyService(familyRepo, log)
	deps.Schedule = service.NewScheduleService(scheduleRepo, log)

	// --- HTTP server ---
	e := api.NewRouter(deps)
	e.Server.ReadHeaderTimeout = 5 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("store", cfg.Store).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
