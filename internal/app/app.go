package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"jobsfi_backend/internal/config"
	"jobsfi_backend/internal/handlers"
	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/middleware"
	"jobsfi_backend/internal/payments"
	"jobsfi_backend/internal/repositories"
	"jobsfi_backend/internal/routes"
	"jobsfi_backend/internal/services"
	"jobsfi_backend/internal/storage"
	"jobsfi_backend/internal/validator"
	"jobsfi_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("Failed to create storage directory", "dir", dir, "error", err)
		}
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("Failed to open local store", "path", cfg.Storage.Path, "error", err)
	}
	logger.Info("Local store opened", "path", cfg.Storage.Path)

	ginRouter := SetupRouter(cfg, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный роутер приложения поверх готового хранилища.
// Вынесен из Run, чтобы тесты могли поднять роутер на временном файле.
func SetupRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, store)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Store) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	jobRepo := repositories.NewJobRepository(store)
	applicationRepo := repositories.NewApplicationRepository(store)
	subscriptionRepo := repositories.NewSubscriptionRepository(store)
	notificationRepo := repositories.NewNotificationRepository(store)

	if cfg.Storage.Seed {
		if err := repositories.Seed(store, jobRepo, applicationRepo); err != nil {
			logger.Fatal("Failed to seed demo data", "error", err)
		}
	}

	chain := payments.NewSimulatedChain(
		time.Duration(cfg.Chain.PayDelayMs)*time.Millisecond,
		time.Duration(cfg.Chain.CancelDelayMs)*time.Millisecond,
	)

	// --- Инициализация сервисов ---
	jobService := services.NewJobService(jobRepo, applicationRepo, subscriptionRepo, notificationRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, notificationRepo, chain)
	notificationService := services.NewNotificationService(notificationRepo)

	return &services.ServiceContainer{
		JobService:          jobService,
		SubscriptionService: subscriptionService,
		NotificationService: notificationService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, services.SubscriptionService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.WalletMiddleware())
	return router
}

func startWorkers(ctx context.Context, cfg *config.Config, store storage.Store) {
	subscriptionRepo := repositories.NewSubscriptionRepository(store)
	worker := workers.NewSubscriptionWorker(
		subscriptionRepo,
		time.Duration(cfg.Workers.ExpirySweepHours)*time.Hour,
	)
	worker.Start(ctx)
	logger.Info("Subscription worker started", "sweep_hours", cfg.Workers.ExpirySweepHours)
}
