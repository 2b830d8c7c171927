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
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"workshoppro/internal/analytics"
	"workshoppro/internal/caching"
	"workshoppro/internal/common"
	"workshoppro/internal/config"
	"workshoppro/internal/handlers"
	"workshoppro/internal/logging"
	"workshoppro/internal/metrics"
	"workshoppro/internal/middleware"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"
	"workshoppro/internal/services"
	"workshoppro/pkg/database"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap := logging.New(logging.Options{ServiceName: "workshoppro"})
	cfg, err := config.Load()
	requireResource(ctx, bootstrap, "config", err)

	logger := logging.New(logging.Options{
		ServiceName: "workshoppro",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		BufferSize:  cfg.App.LogBufferSize,
	})
	loc, err := cfg.App.Location()
	requireResource(ctx, logger, "timezone", err)

	// Database
	pool, err := database.NewPool(ctx, cfg.DB.URL, cfg.DB.MaxConns)
	requireResource(ctx, logger, "database", err)
	defer pool.Close()

	if cfg.App.IsDev() && cfg.DB.AutoMigrate {
		err := logger.WithOperation(ctx, "migrate", "goose up", func(ctx context.Context) error {
			return database.Migrate(ctx, database.OpenSQL(pool), "up")
		})
		requireResource(ctx, logger, "migrations", err)
	}

	// Redis
	redisClient, err := caching.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	requireResource(ctx, logger, "redis", err)
	defer redisClient.Close()
	cacheSvc := caching.NewRedisCacheService(redisClient)
	if err := cacheSvc.Ping(ctx); err != nil {
		logger.Warn(ctx, "cache", "redis unavailable, dashboard views will be derived on every request", map[string]any{"error": err.Error()})
	}

	// MinIO
	minioSvc, err := services.NewMinioService(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
	requireResource(ctx, logger, "object storage", err)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	analyticsMetrics := metrics.NewAnalyticsMetrics(registry)

	// Repositories
	clientRepo := repositories.NewClientRepo(pool)
	vehicleRepo := repositories.NewVehicleRepo(pool)
	supplierRepo := repositories.NewSupplierRepo(pool)
	partRepo := repositories.NewPartRepo(pool)
	inventoryRepo := repositories.NewInventoryRepo(pool)
	orderRepo := repositories.NewServiceOrderRepo(pool)
	appointmentRepo := repositories.NewAppointmentRepo(pool)
	quotationRepo := repositories.NewQuotationRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	settingsRepo := repositories.NewWorkshopSettingsRepo(pool)
	transactionRepo := repositories.NewTransactionRepo(pool)

	// Services
	now := func() time.Time { return time.Now().In(loc) }
	analyticsSvc := analytics.NewAnalyticsService(analytics.ServiceParams{
		Stock:           inventoryRepo,
		Orders:          orderRepo,
		Appointments:    appointmentRepo,
		Cache:           cacheSvc,
		Logger:          logger,
		Metrics:         analyticsMetrics,
		StatsTTL:        cfg.Cache.DashboardStatsTTL,
		RecentOrdersTTL: cfg.Cache.RecentOrdersTTL,
		StockAlertsTTL:  cfg.Cache.StockAlertsTTL,
		Now:             now,
	})
	orderSvc := services.NewServiceOrderService(orderRepo, logger, now)
	notificationSvc := services.NewNotificationService(notificationRepo, logger)
	financeSvc := services.NewFinanceService(transactionRepo, logger)
	settingsSvc := services.NewSettingsService(settingsRepo, minioSvc, cacheSvc, logger, services.SettingsOptions{
		Bucket:        cfg.Storage.Bucket,
		PresignExpiry: cfg.Storage.PresignExpiry,
		MaxLogoBytes:  cfg.Storage.MaxLogoBytes,
		CacheTTL:      cfg.Cache.SettingsTTL,
	})

	// Middleware
	jwtMiddleware, stopJWKS, err := middleware.JWT(cfg.Auth, logger)
	requireResource(ctx, logger, "auth", err)
	defer stopJWKS()
	versionMiddleware := middleware.NewVersionMiddleware(version)

	e := echo.New()
	e.HideBanner = true
	e.Validator = common.NewRequestValidator()
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(versionMiddleware.APIVersionResolver())

	// Health and metrics (no auth required)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, version)
	e.GET("/health", healthHandlers.LivenessCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	v1 := e.Group("/v1", versionMiddleware.VersionHeader("v1"), jwtMiddleware)

	// Dashboard
	handlers.NewDashboardHandlers(analyticsSvc, handlers.DashboardRefresh{
		Stats:        cfg.Cache.DashboardStatsTTL,
		RecentOrders: cfg.Cache.RecentOrdersTTL,
		StockAlerts:  cfg.Cache.StockAlertsTTL,
	}, logger).Register(v1)

	// Resources
	handlers.NewResourceHandlers[models.Client]("Client", clientRepo, func(c *models.Client, id uuid.UUID) { c.ID = id }, logger).Register(v1, "/clients")
	handlers.NewResourceHandlers[models.Vehicle]("Vehicle", vehicleRepo, func(v *models.Vehicle, id uuid.UUID) { v.ID = id }, logger).Register(v1, "/vehicles")
	handlers.NewResourceHandlers[models.Supplier]("Supplier", supplierRepo, func(s *models.Supplier, id uuid.UUID) { s.ID = id }, logger).Register(v1, "/suppliers")
	handlers.NewResourceHandlers[models.Part]("Part", partRepo, func(p *models.Part, id uuid.UUID) { p.ID = id }, logger).Register(v1, "/parts")
	handlers.NewResourceHandlers[models.InventoryItem]("Inventory item", inventoryRepo, func(i *models.InventoryItem, id uuid.UUID) { i.ID = id }, logger).Register(v1, "/inventory")
	handlers.NewResourceHandlers[models.ServiceOrder]("Service order", handlers.NewServiceOrderStore(orderRepo, orderSvc), func(o *models.ServiceOrder, id uuid.UUID) { o.ID = id }, logger).Register(v1, "/service-orders")
	handlers.NewResourceHandlers[models.Appointment]("Appointment", appointmentRepo, func(a *models.Appointment, id uuid.UUID) { a.ID = id }, logger).Register(v1, "/appointments")
	handlers.NewResourceHandlers[models.Quotation]("Quotation", quotationRepo, func(q *models.Quotation, id uuid.UUID) { q.ID = id }, logger).Register(v1, "/quotations")
	handlers.NewResourceHandlers[models.Transaction]("Transaction", transactionRepo, func(t *models.Transaction, id uuid.UUID) { t.ID = id }, logger).Register(v1, "/transactions")

	orderHandlers := handlers.NewServiceOrderHandlers(orderSvc, logger)
	v1.PUT("/service-orders/:id/status", orderHandlers.UpdateStatus)

	scheduleHandlers := handlers.NewScheduleHandlers(vehicleRepo, appointmentRepo, logger)
	v1.GET("/clients/:id/vehicles", scheduleHandlers.ClientVehicles)
	v1.GET("/appointments/day/:date", scheduleHandlers.AppointmentsByDay)

	financeHandlers := handlers.NewFinanceHandlers(financeSvc, logger)
	v1.GET("/transactions/summary", financeHandlers.Summary)

	handlers.NewNotificationHandlers(notificationSvc, analyticsSvc, logger).Register(v1)
	handlers.NewSettingsHandlers(settingsSvc, logger).Register(v1)
	handlers.NewLogHandlers(logger).Register(v1)

	reportHandlers := handlers.NewReportHandlers(handlers.ReportSources{
		Clients:      clientRepo,
		Orders:       orderRepo,
		Inventory:    inventoryRepo,
		Alerts:       analyticsSvc,
		Transactions: financeSvc,
	}, logger, now)
	v1.GET("/reports/:report", reportHandlers.Export)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.App.Port)
	go func() {
		logger.Info(ctx, "server", "workshoppro server starting", map[string]any{
			"version": version,
			"addr":    addr,
			"env":     cfg.App.Env,
		})
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server", "server stopped unexpectedly", err, nil)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server", "graceful shutdown failed", err, nil)
	}
	logger.Info(shutdownCtx, "server", "server stopped", nil)
}

func requireResource(ctx context.Context, logger *logging.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logger.Error(ctx, "bootstrap", fmt.Sprintf("resource not working: %s", resource), err, nil)
	os.Exit(1)
}
