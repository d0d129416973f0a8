package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-service/internal/api/http"
	"github.com/spec-kit/event-service/internal/api/http/handlers"
	"github.com/spec-kit/event-service/internal/auth"
	"github.com/spec-kit/event-service/internal/config"
	"github.com/spec-kit/event-service/internal/events"
	"github.com/spec-kit/event-service/internal/observability"
	"github.com/spec-kit/event-service/internal/persistence"
	"github.com/spec-kit/event-service/internal/repository"
	"github.com/spec-kit/event-service/internal/service"
	"github.com/spec-kit/event-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	venueRepo := repository.NewVenueRepository(pool)
	packageRepo := repository.NewPackageRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)
	eventVendorRepo := repository.NewEventVendorRepository(pool)
	guestRepo := repository.NewGuestRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	auditRepo := repository.NewAuditLogRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	csrfStore := auth.NewCSRFStore(redis.Client, cfg.Auth.CSRFTokenTTLMinutes)
	eventCache := service.NewListCache(redis.Client, cfg.Cache.EventListTTLSeconds)
	dashboardCache := service.NewListCache(redis.Client, cfg.Cache.DashboardTTLSeconds)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		CSRFStore:         csrfStore,
		Dispatcher:        dispatcher,
	})
	eventService := service.NewEventService(service.EventDependencies{
		EventRepo:       eventRepo,
		VenueRepo:       venueRepo,
		PackageRepo:     packageRepo,
		EventVendorRepo: eventVendorRepo,
		PaymentRepo:     paymentRepo,
		Cache:           eventCache,
		Dispatcher:      dispatcher,
	})
	guestService := service.NewGuestService(service.GuestDependencies{
		GuestRepo:  guestRepo,
		EventRepo:  eventRepo,
		Dispatcher: dispatcher,
	})
	vendorService := service.NewVendorService(service.VendorDependencies{
		VendorRepo:      vendorRepo,
		EventVendorRepo: eventVendorRepo,
		EventRepo:       eventRepo,
		Dispatcher:      dispatcher,
	})
	paymentService := service.NewPaymentService(service.PaymentDependencies{
		PaymentRepo:  paymentRepo,
		EventService: eventService,
		Dispatcher:   dispatcher,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		VenueRepo:   venueRepo,
		PackageRepo: packageRepo,
		VendorRepo:  vendorRepo,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:    userRepo,
		EventRepo:   eventRepo,
		PaymentRepo: paymentRepo,
		AuditRepo:   auditRepo,
		Cache:       dashboardCache,
		Dispatcher:  dispatcher,
	})
	auditService := service.NewAuditService(auditRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartSubscribers(auditService, notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokenManager, userRepo)

	metrics := observability.NewMetrics()
	metricsServer := observability.ServeMetrics(cfg.App.MetricsAddr(), logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(eventService),
		Guests:         handlers.NewGuestsHandler(guestService),
		Vendors:        handlers.NewVendorsHandler(vendorService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Admin:          handlers.NewAdminHandler(adminService),
		AuthMiddleware: authMiddleware,
		CSRF:           csrfStore,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = app.Shutdown()
	_ = metricsServer.Shutdown(shutdownCtx)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
