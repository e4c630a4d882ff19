package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/apex-maintenance/internal/cloudsync"
	"github.com/ukydev/apex-maintenance/internal/config"
	"github.com/ukydev/apex-maintenance/internal/db"
	"github.com/ukydev/apex-maintenance/internal/handlers"
	"github.com/ukydev/apex-maintenance/internal/insight"
	"github.com/ukydev/apex-maintenance/internal/report"
)

// openBlobStore connects the configured backend. The returned func closes it.
func openBlobStore(ctx context.Context, cfg config.Config) (db.BlobStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return db.NewMemoryBlobStore(), func() {}, nil
	case config.DriverRedis:
		client, err := db.ConnectRedis(ctx, cfg.RedisAddress)
		if err != nil {
			return nil, nil, err
		}
		return &db.RedisBlobStore{Client: client}, func() { _ = client.Close() }, nil
	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return &db.MongoBlobStore{Collection: coll}, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// newGenerator returns nil when no API key is configured.
func newGenerator(ctx context.Context, cfg config.Config, logger *log.Logger) insight.Generator {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, insight analysis disabled")
		return nil
	}
	gen, err := insight.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.WithError(err).Error("Failed to create Gemini client, insight analysis disabled")
		return nil
	}
	return gen
}

func newServer(ctx context.Context, cfg config.Config, blobs db.BlobStore, logger *log.Logger) *http.Server {
	store := db.NewStore(blobs, cfg.StoreKey, logger)
	router := handlers.SetupRouter(handlers.RouterDeps{
		Store:       store,
		Reports:     report.NewService(store, cfg.EngineerName, logger),
		Insights:    insight.NewService(newGenerator(ctx, cfg, logger), logger),
		Syncer:      cloudsync.NewSyncer(store, cfg.SyncDelay, logger),
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func main() {
	// Load environment variables from .env file
	config.LoadDotEnv()
	cfg := config.Load()
	logger := cfg.NewLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	blobs, closeStore, err := openBlobStore(ctx, cfg)
	if err != nil {
		logger.WithError(err).WithField("driver", cfg.StoreDriver).Fatal("Failed to open record store")
	}
	defer closeStore()
	logger.WithField("driver", cfg.StoreDriver).Info("Record store connected")

	srv := newServer(ctx, cfg, blobs, logger)
	go func() {
		logger.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
	logger.Info("HTTP server stopped")
}
