// @title           Jornada Registro API
// @version         1.0
// @description     API de registro, asistencias, equipos y constancias de la Jornada de Ingeniería Industrial

// @host      localhost:3001
// @BasePath  /api

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"jornada-registro-api/internal/cache"
	"jornada-registro-api/internal/client"
	"jornada-registro-api/internal/config"
	"jornada-registro-api/internal/database"
	"jornada-registro-api/internal/job"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Jornada Registro API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)

	// Initialize database; a failed first attempt retries in the background
	// so the pod stays alive and reports not-ready
	dbConfig := database.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime(),
	}

	onConnect := func(db *gorm.DB) {
		if err := database.AutoMigrateWithRetry(db, logger, 5); err != nil {
			logger.Error("Database migrations failed", zap.Error(err))
		}
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, onConnect)
	} else {
		logger.Info("Database connected successfully")
		database.SetDB(db)
		onConnect(db)
	}

	// Initialize Redis; a nil client disables the schedule cache
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("Failed to connect to Redis, schedule cache disabled", zap.Error(err))
		redisClient = nil
	} else if redisClient != nil {
		logger.Info("Redis connected successfully")
	}

	// Initialize email client
	var emailClient client.EmailClient
	if cfg.Email.ResendAPIKey != "" && cfg.Email.From != "" {
		emailClient = client.NewEmailClient(cfg.Email.ResendAPIKey, cfg.Email.From, logger, m)
		logger.Info("Email client initialized", zap.String("from", cfg.Email.From))
	} else {
		emailClient = client.NewNoOpEmailClient()
		logger.Warn("Email configuration incomplete, confirmation emails disabled")
	}

	// Initialize storage client for certificate archiving
	var storageClient client.StorageClient
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err := client.NewS3StorageClient(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, certificate archiving disabled", zap.Error(err))
			storageClient = client.NewNoOpStorageClient()
		} else {
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
			storageClient = s3Client
		}
	} else {
		storageClient = client.NewNoOpStorageClient()
		logger.Warn("S3 configuration incomplete, certificate archiving disabled")
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:            db,
		Redis:         redisClient,
		Logger:        logger,
		Metrics:       m,
		AppConfig:     cfg,
		EmailClient:   emailClient,
		StorageClient: storageClient,
		PDFRenderer:   client.NewPDFRenderer(),
	})

	// Schedule the stats job (business gauges and cache warming)
	if db != nil {
		activityCache := cache.NewActivityCache(redisClient, cfg.Redis.ScheduleTTL(), logger)
		statsJob := job.NewStatsJob(
			repository.NewParticipantRepository(db),
			repository.NewTeamRepository(db),
			repository.NewActivityRepository(db),
			activityCache,
			m,
			logger,
		)
		scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
		if _, err := scheduler.AddJob("@every 1m", statsJob); err != nil {
			logger.Error("Failed to schedule stats job", zap.Error(err))
		} else {
			scheduler.Start()
			defer scheduler.Stop()
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	// Start server in goroutine
	go func() {
		logger.Info("Jornada Registro API started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if current := database.GetDB(); current != nil {
		if err := database.Close(current); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis client", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
