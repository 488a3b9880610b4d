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
	"github.com/rs/cors"

	"github.com/shenikar/etraffic/internal/auth"
	"github.com/shenikar/etraffic/internal/config"
	v1 "github.com/shenikar/etraffic/internal/handler/http/v1"
	"github.com/shenikar/etraffic/internal/realtime"
	"github.com/shenikar/etraffic/internal/repository"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/shenikar/etraffic/internal/webhook"
	"github.com/shenikar/etraffic/pkg/logger"
	pkgnats "github.com/shenikar/etraffic/pkg/nats"
	"github.com/shenikar/etraffic/pkg/postgres"
	redisclient "github.com/shenikar/etraffic/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/etraffic/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ETraffic API
// @version 1.0
// @description Crowd-sourced traffic incident reporting for Addis Ababa.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки: издатель кладёт события в очередь Redis, воркер доставляет
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)
	coinRepo := repository.NewCoinRepository(dbpool)
	adminRepo := repository.NewAdminRepository(dbpool)
	intakeStore := repository.NewIntakeStore(dbpool)
	locationRepo := repository.NewLocationRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	eventRepo := repository.NewEventRepository(dbpool)
	analyticsRepo := repository.NewAnalyticsRepository(dbpool)

	coinPolicy := service.CoinPolicy{
		PerReport:         cfg.CoinsPerReport,
		PerVerifiedReport: cfg.CoinsPerVerifiedReport,
		MinForConversion:  cfg.MinCoinsForConversion,
		BirrRate:          cfg.CoinToBirrRate,
	}

	tokens := auth.NewJWTService(auth.JWTConfig{
		SigningKey: cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		Audience:   cfg.JWTAudience,
		TTL:        cfg.JWTTTL,
	})

	accountService := service.NewAccountService(userRepo, tokens, log)
	incidentService := service.NewIncidentService(incidentRepo, log, cfg.StatsTimeWindowMinutes)

	// WebSocket-хаб
	hub := realtime.NewHub(accountService, incidentService, log, realtime.HubConfig{
		PushRadiusMeters:  cfg.WSPushRadiusMeters,
		BroadcastInterval: cfg.WSBroadcastInterval,
		AllowedOrigins:    []string{cfg.FrontendURL},
	})
	go hub.Run(ctx)

	// Транспорт рассылки: NATS между репликами или напрямую в хаб
	var broadcaster realtime.Broadcaster = realtime.NewLocalBroadcaster(hub)
	if cfg.NATSURL != "" {
		natsConn, err := pkgnats.NewNATSConn(cfg.NATSURL, cfg.NATSMaxReconnects, cfg.NATSReconnectWait, log)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer natsConn.Drain()

		sub, err := hub.SubscribeNATS(natsConn)
		if err != nil {
			log.Fatalf("Failed to subscribe to NATS: %v", err)
		}
		defer sub.Unsubscribe()

		broadcaster = realtime.NewNATSBroadcaster(natsConn)
		log.Info("Broadcasting incidents through NATS")
	}

	// Инициализация сервисов
	intakeService := service.NewIntakeService(intakeStore, userRepo, log, service.IntakeConfig{
		MaxGPSDistanceMeters:  cfg.GPSMaxDistanceMeters,
		GPSEnforcementEnabled: cfg.GPSValidationEnabled,
		SimilarityThreshold:   cfg.SimilarityThreshold,
		CredibilityBoost:      cfg.SimilarityCredibilityBoost,
		NearbyRadiusMeters:    cfg.NearbyRadiusMeters,
	}, coinPolicy, webhookPublisher, broadcaster)
	coinService := service.NewCoinService(coinRepo, coinPolicy, log)
	adminService := service.NewAdminService(adminRepo, incidentRepo, userRepo, coinPolicy, webhookPublisher, log)
	locationService := service.NewLocationService(locationRepo, log, time.Now)
	alertService := service.NewAlertService(alertRepo, log)
	eventService := service.NewEventService(eventRepo, log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, log, time.Now)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Intake:    intakeService,
		Incidents: incidentService,
		Coins:     coinService,
		Admin:     adminService,
		Accounts:  accountService,
		Locations: locationService,
		Alerts:    alertService,
		Events:    eventService,
		Analytics: analyticsService,
	}, hub.HandleWebSocket, log, cfg)
	go handler.RateLimiter().Cleanup(ctx)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
	})

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
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

	// останавливаем хаб, воркер вебхуков и очистку лимитера
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
