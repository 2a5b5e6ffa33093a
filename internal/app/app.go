package app

import (
	"fmt"
	"time"

	"volunhub_backend/database"
	"volunhub_backend/internal/config"
	"volunhub_backend/internal/handlers"
	"volunhub_backend/internal/logger"
	"volunhub_backend/internal/middleware"
	"volunhub_backend/internal/repositories"
	"volunhub_backend/internal/routes"
	"volunhub_backend/internal/services"
	"volunhub_backend/internal/storage"
	"volunhub_backend/internal/validator"
	"volunhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run is the single configuration-driven startup routine.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware, services, and
// routes. Tests call it directly with their own DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	listingRepo := repositories.NewListingRepository()
	applicationRepo := repositories.NewApplicationRepository()
	messageRepo := repositories.NewMessageRepository()

	tokenTTL := time.Duration(cfg.JWT.TTL) * time.Hour

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, cfg.JWT.Secret, tokenTTL),
		UserService:        services.NewUserService(userRepo),
		ListingService:     services.NewListingService(listingRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, listingRepo),
		MessageService:     services.NewMessageService(messageRepo, userRepo),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		ListingHandler:     handlers.NewListingHandler(baseHandler, serviceContainer.ListingService, storageInstance),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, serviceContainer.ApplicationService),
		MessageHandler:     handlers.NewMessageHandler(baseHandler, serviceContainer.MessageService),
		FileHandler:        handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
