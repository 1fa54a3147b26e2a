package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"edurec_backend/database"
	"edurec_backend/internal/config"
	"edurec_backend/internal/handlers"
	"edurec_backend/internal/logger"
	"edurec_backend/internal/middleware"
	"edurec_backend/internal/narrative"
	"edurec_backend/internal/repositories"
	"edurec_backend/internal/routes"
	"edurec_backend/internal/services"
	"edurec_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	weights := config.LoadWeights(cfg.Weights.Path)

	serviceContainer := initializeServices(cfg, weights)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, weights map[string]float64) *services.ServiceContainer {
	studentRepo := repositories.NewStudentRepository()
	institutionRepo := repositories.NewInstitutionRepository()
	eventRepo := repositories.NewEventRepository()

	var narrativeProvider narrative.Provider = narrative.NoopProvider{}
	if cfg.Narrative.Enabled && cfg.Narrative.URL != "" {
		timeout := time.Duration(cfg.Narrative.TimeoutMS) * time.Millisecond
		if timeout <= 0 {
			timeout = 2 * time.Second
		}
		narrativeProvider = narrative.NewHTTPProvider(cfg.Narrative.URL, timeout)
		logger.Info("narrative enrichment enabled", "url", cfg.Narrative.URL)
	} else {
		logger.Info("narrative enrichment disabled, rule-based summaries only")
	}

	return &services.ServiceContainer{
		RecommendationService: services.NewRecommendationService(studentRepo, institutionRepo, narrativeProvider, weights),
		EventService:          services.NewEventService(eventRepo),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		RecommendationHandler: handlers.NewRecommendationHandler(baseHandler, serviceContainer.RecommendationService),
		EventHandler:          handlers.NewEventHandler(baseHandler, serviceContainer.EventService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
