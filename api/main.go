package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/archive"
	"github.com/mpdl-apps/cleaning-inventory/internal/auth"
	"github.com/mpdl-apps/cleaning-inventory/internal/cache"
	"github.com/mpdl-apps/cleaning-inventory/internal/config"
	"github.com/mpdl-apps/cleaning-inventory/internal/db"
	api "github.com/mpdl-apps/cleaning-inventory/internal/http"
	"github.com/mpdl-apps/cleaning-inventory/internal/http/handlers"
	rl "github.com/mpdl-apps/cleaning-inventory/internal/http/rate_limiter"
	"github.com/mpdl-apps/cleaning-inventory/internal/inventory"
	"github.com/mpdl-apps/cleaning-inventory/internal/logging"
	"github.com/mpdl-apps/cleaning-inventory/internal/mail"
	"github.com/mpdl-apps/cleaning-inventory/internal/report"
	"github.com/mpdl-apps/cleaning-inventory/internal/repo"
	"github.com/mpdl-apps/cleaning-inventory/internal/scheduler"
)

// @title Cleaning Inventory API
// @version 1.0
// @description Inventory tracking for cleaning supplies across MPDL locations.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := logging.Must(logging.New())
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	database, err := db.Connect(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		logger.Fatal("could not connect to the store", zap.Error(err))
	}
	defer database.Close()

	if err := db.EnsureSchema(database, cfg.Store.Driver); err != nil {
		logger.Fatal("could not ensure store schema", zap.Error(err))
	}

	var snapshots repo.SnapshotRepository
	if cfg.Store.Driver == "sqlite" {
		snapshots = repo.NewSQLiteSnapshotRepository(database)
	} else {
		snapshots = repo.NewPostgresSnapshotRepository(database)
	}

	ctx := context.Background()
	var cacheSvc *cache.Service
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("could not connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		cacheSvc = cache.NewService(rdb, ctx)
	}

	var blobs archive.BlobStore
	if cfg.Blob.BaseURL != "" {
		blobs = archive.NewHTTPBlobStore(cfg.Blob.BaseURL, cfg.Blob.Token)
	} else {
		logger.Warn("no blob service configured, archives are kept in memory")
		blobs = archive.NewInMemoryBlobStore()
	}

	inventorySvc := inventory.NewService(snapshots, logging.Named(logger, "inventory"))
	reportSvc := report.NewService(inventorySvc, blobs, cacheSvc, logging.Named(logger, "report"))
	authSvc := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.AdminUser, cfg.Auth.AdminPasswordHash)

	handlers.SetInventoryService(inventorySvc)
	handlers.SetReportService(reportSvc)
	handlers.SetAuthService(authSvc)
	handlers.SetMailSender(mail.NewSender(cfg.Mail.SMTP))
	handlers.SetMailRecipient(cfg.Mail.Recipient)
	handlers.SetLogger(logging.Named(logger, "http"))
	api.SetAuthService(authSvc)

	go rl.StartVisitorCleanupLoop()

	cronJobs := scheduler.New(cfg.Archive.CronSchedule, func() error {
		_, _, err := reportSvc.Archive(context.Background())
		return err
	}, logging.Named(logger, "scheduler"))
	if err := cronJobs.Start(); err != nil {
		logger.Fatal("could not start the archive scheduler", zap.Error(err))
	}
	defer cronJobs.Stop()

	logger.Info("server running", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, api.NewRouter()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
