package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ClementNdome/agri-insight/internal/config"
	v1 "github.com/ClementNdome/agri-insight/internal/handler/http/v1"
	"github.com/ClementNdome/agri-insight/internal/index"
	"github.com/ClementNdome/agri-insight/internal/provider"
	"github.com/ClementNdome/agri-insight/internal/repository"
	"github.com/ClementNdome/agri-insight/internal/scheduler"
	"github.com/ClementNdome/agri-insight/internal/service"
	"github.com/ClementNdome/agri-insight/internal/webhook"
	"github.com/ClementNdome/agri-insight/pkg/logger"
	"github.com/ClementNdome/agri-insight/pkg/postgres"
	redisclient "github.com/ClementNdome/agri-insight/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/ClementNdome/agri-insight/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Agri Insight Monitoring API
// @version 1.0
// @description Satellite vegetation-index monitoring service for areas of interest.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown of the background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Satellite statistics provider
	providerClient, err := provider.NewClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to create provider client: %v", err)
	}
	if err := providerClient.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to satellite data provider: %v", err)
	}
	defer providerClient.Close()
	log.Info("Successfully connected to satellite data provider")

	// Alert webhook queue and delivery worker
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Repositories
	areaRepo := repository.NewAreaRepository(dbpool)
	monitoringRepo := repository.NewMonitoringRepository(dbpool, redisClient)
	configRepo := repository.NewConfigurationRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)

	// Index catalog and computation
	catalog := index.NewCatalog()
	computer := index.NewComputer(catalog, log)
	engine := service.NewAlertEngine(cfg)

	// Services
	areaService := service.NewAreaService(areaRepo, log)
	monitoringService := service.NewMonitoringService(
		areaRepo, monitoringRepo, configRepo, alertRepo,
		providerClient, catalog, computer, engine, alertPublisher,
		cfg.SchedulerLookbackDays, log,
	)
	alertService := service.NewAlertService(alertRepo, log)

	// Background scheduler for due monitoring configurations
	checkScheduler := scheduler.New(monitoringService, providerClient,
		cfg.SchedulerInterval, cfg.SchedulerWorkers, log)
	checkScheduler.Start(ctx)

	handler := v1.NewHandler(areaService, monitoringService, alertService, catalog, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
