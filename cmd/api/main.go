package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"

	"github.com/feral-file/ff-guarantees/internal/adapter"
	"github.com/feral-file/ff-guarantees/internal/api/middleware"
	"github.com/feral-file/ff-guarantees/internal/api/server"
	"github.com/feral-file/ff-guarantees/internal/api/shared/executor"
	"github.com/feral-file/ff-guarantees/internal/attachment"
	"github.com/feral-file/ff-guarantees/internal/blob"
	"github.com/feral-file/ff-guarantees/internal/config"
	"github.com/feral-file/ff-guarantees/internal/guarantee"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/reference"
	"github.com/feral-file/ff-guarantees/internal/report"
	"github.com/feral-file/ff-guarantees/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Letters of Guarantee API")

	// Apply pending migrations before the store sees the schema
	if cfg.Migrations.AutoApply {
		if err := applyMigrations(cfg.Database.MigrateURL()); err != nil {
			logger.FatalCtx(ctx, "Failed to apply migrations", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Applied database migrations")
	}

	// Connect to database
	db, err := store.Open(ctx, cfg.Database.DSN(), cfg.Database.ConnectMaxElapsed, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if cfg.Database.ReadHost != "" {
		if err := store.UseReadReplica(db, postgres.Open(cfg.Database.ReadDSN())); err != nil {
			logger.FatalCtx(ctx, "Failed to configure read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Routing reads to replica", zap.String("read_host", cfg.Database.ReadHost))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize attachment storage
	blobs, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize attachment storage", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	logger.InfoCtx(ctx, "Initialized attachment storage", zap.String("driver", cfg.Storage.Driver))

	attachments := attachment.NewManager(blobs, cfg.Storage.Workers)
	defer attachments.Close()

	// Create the domain services and the shared executor
	exec := executor.NewExecutor(
		dataStore,
		guarantee.NewService(dataStore, attachments),
		reference.NewService(dataStore),
		report.NewService(dataStore, adapter.NewClock()),
		attachments,
	)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

// newBlobStore selects the attachment backend
func newBlobStore(ctx context.Context, cfg config.StorageConfig) (blob.Store, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		client, err := blob.NewS3Client(ctx, blob.S3Config{
			Bucket:       cfg.S3.Bucket,
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
			Prefix:       cfg.S3.Prefix,
		})
		if err != nil {
			return nil, err
		}
		s3Store, err := blob.NewS3Store(client, cfg.S3.Bucket, cfg.S3.Prefix)
		if err != nil {
			return nil, err
		}
		return s3Store, nil
	default:
		fileStore, err := blob.NewFileStore(cfg.Dir, adapter.NewFileSystem())
		if err != nil {
			return nil, err
		}
		return fileStore, nil
	}
}

func applyMigrations(databaseURL string) error {
	migrator, err := store.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}
