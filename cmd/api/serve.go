package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/database"
	"taskboard-api/internal/job"
	"taskboard-api/internal/lock"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Taskboard API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage", cfg.Storage.Backend),
	)

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		return err
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	statsDone := database.StartDBStatsCollector(db, m)
	defer close(statsDone)

	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	storage, err := newStorage(cmd.Context(), m)
	if err != nil {
		return err
	}

	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		return err
	}
	var locker lock.Locker = lock.NewLocalLocker()
	if redisClient != nil {
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, logger)
	}

	cleanup, err := startCleanup(db, storage)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer func() { <-cleanup.Stop().Done() }()
	}

	r := router.Setup(router.Config{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		BasePath:       cfg.Server.BasePath,
		Metrics:        m,
		Storage:        storage,
		UploadDir:      localUploadDir(),
		MaxFileSize:    cfg.Storage.MaxFileSize,
		Locker:         locker,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	return serve(r, redisClient)
}

func newStorage(ctx context.Context, m *metrics.Metrics) (client.FileStorage, error) {
	if cfg.Storage.Backend == "s3" {
		s3Storage, err := client.NewS3Storage(ctx, &cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		logger.Info("S3 storage initialized",
			zap.String("bucket", cfg.S3.Bucket),
			zap.String("region", cfg.S3.Region),
		)
		return client.NewInstrumentedStorage(s3Storage, "s3", m), nil
	}

	local, err := client.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload directory: %w", err)
	}
	logger.Info("Local storage initialized", zap.String("upload_dir", cfg.Storage.UploadDir))
	return client.NewInstrumentedStorage(local, "local", m), nil
}

// localUploadDir is served under /uploads only for the local backend
func localUploadDir() string {
	if cfg.Storage.Backend == "s3" {
		return ""
	}
	return cfg.Storage.UploadDir
}

func startCleanup(db *gorm.DB, storage client.FileStorage) (*cron.Cron, error) {
	if !cfg.Cleanup.Enabled {
		return nil, nil
	}
	cleanupJob := job.NewCleanupJob(repository.NewAttachmentRepository(db), storage, cfg.Cleanup.MinAge, logger)
	c, err := cleanupJob.Schedule(cfg.Cleanup.Schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule cleanup job: %w", err)
	}
	logger.Info("Cleanup job scheduled", zap.String("schedule", cfg.Cleanup.Schedule))
	return c, nil
}

func serve(handler http.Handler, redisClient *redis.Client) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Taskboard API started successfully",
			zap.String("address", srv.Addr),
			zap.Bool("redis", redisClient != nil),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
	return nil
}
