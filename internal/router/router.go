package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	// swaggerFiles "github.com/swaggo/files"
	// ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/cache"
	"jornada-registro-api/internal/client"
	appConfig "jornada-registro-api/internal/config"
	"jornada-registro-api/internal/handler"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/middleware"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
	AppConfig     *appConfig.Config
	EmailClient   client.EmailClient
	StorageClient client.StorageClient
	PDFRenderer   client.PDFRenderer
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AppConfig.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "jornada-registro-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "jornada-registro-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "jornada-registro-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "jornada-registro-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "jornada-registro-api"})
	})

	// Swagger documentation (disabled for faster builds)
	// r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	participantRepo := repository.NewParticipantRepository(cfg.DB)
	activityRepo := repository.NewActivityRepository(cfg.DB)
	attendanceRepo := repository.NewAttendanceRepository(cfg.DB)
	teamRepo := repository.NewTeamRepository(cfg.DB)

	// Initialize services
	activityCache := cache.NewActivityCache(cfg.Redis, cfg.AppConfig.Redis.ScheduleTTL(), cfg.Logger)
	participantService := service.NewParticipantService(participantRepo, cfg.EmailClient, cfg.Metrics, cfg.Logger)
	activityService := service.NewActivityService(activityRepo, activityCache, cfg.Logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, participantRepo, activityRepo, cfg.Metrics, cfg.Logger)
	teamService := service.NewTeamService(teamRepo, participantRepo, cfg.Metrics, cfg.Logger)
	certificateService := service.NewCertificateService(
		participantRepo,
		attendanceRepo,
		cfg.PDFRenderer,
		cfg.StorageClient,
		cfg.AppConfig.Certificate,
		cfg.Metrics,
		cfg.Logger,
	)

	// Initialize handlers
	participantHandler := handler.NewParticipantHandler(participantService)
	activityHandler := handler.NewActivityHandler(activityService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	teamHandler := handler.NewTeamHandler(teamService)
	certificateHandler := handler.NewCertificateHandler(certificateService)

	// API routes group
	api := r.Group(cfg.AppConfig.Server.BasePath)

	// ============================================================
	// Participant routes
	// ============================================================
	participants := api.Group("/participants")
	{
		participants.POST("", participantHandler.Register)
		participants.GET("/by-email", participantHandler.GetByEmail)
		participants.GET("/check-email", participantHandler.CheckEmail)
		participants.GET("/check-bracelet", participantHandler.CheckBracelet)
		participants.PUT("/bracelet", participantHandler.AssignBracelet)
	}

	// ============================================================
	// Activity routes
	// ============================================================
	api.GET("/activities", activityHandler.GetActive)

	// ============================================================
	// Attendance routes
	// ============================================================
	attendances := api.Group("/attendances")
	{
		attendances.POST("", attendanceHandler.Confirm)
		attendances.GET("", attendanceHandler.ListByEmail)
	}

	// ============================================================
	// Team routes
	// ============================================================
	teams := api.Group("/teams")
	{
		teams.POST("", teamHandler.Create)
		teams.GET("", teamHandler.GetAll)
		teams.GET("/by-participant", teamHandler.GetByParticipant)
		teams.GET("/check-name", teamHandler.CheckName)
		teams.GET("/check-participant", teamHandler.CheckParticipant)
		teams.GET("/:teamId", teamHandler.GetByID)
	}

	// ============================================================
	// Certificate routes
	// ============================================================
	certificates := api.Group("/certificates")
	{
		certificates.GET("/check", certificateHandler.Check)
		certificates.GET("/download", certificateHandler.Download)
	}

	return r
}
