package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/inquiry-console/internal/api/http"
	"github.com/spec-kit/inquiry-console/internal/api/http/handlers"
	"github.com/spec-kit/inquiry-console/internal/auth"
	"github.com/spec-kit/inquiry-console/internal/config"
	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/events"
	"github.com/spec-kit/inquiry-console/internal/observability"
	"github.com/spec-kit/inquiry-console/internal/persistence"
	"github.com/spec-kit/inquiry-console/internal/repository"
	"github.com/spec-kit/inquiry-console/internal/service"
	"github.com/spec-kit/inquiry-console/internal/worker"
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

	store, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	inquiryRepo := repository.NewInquiryRepository(ctx, store, logger)
	contentRepo := repository.NewTemplateContentRepository(ctx, store, logger)
	autoGroupRepo := repository.NewTemplateGroupRepository(ctx, store, logger, domain.TemplateKindAuto)
	manualGroupRepo := repository.NewTemplateGroupRepository(ctx, store, logger, domain.TemplateKindManual)
	autoSendRepo := repository.NewAutoSendRepository(ctx, store, logger)
	sendGroupRepo := repository.NewSendGroupRepository(ctx, store, logger)
	historyRepo := repository.NewHistoryRepository(ctx, store, logger)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	notificationService.RegisterHandlers()

	authService, err := service.NewAuthService(cfg.Auth, store, logger)
	if err != nil {
		logger.Fatal("failed to init auth", zap.Error(err))
	}

	inquiryService := service.NewInquiryService(inquiryRepo, dispatcher, nil)
	analyticsService := service.NewAnalyticsService(inquiryRepo, nil)
	templateService := service.NewTemplateService(service.TemplateDependencies{
		AutoGroups:   autoGroupRepo,
		ManualGroups: manualGroupRepo,
		Contents:     contentRepo,
		AutoSend:     autoSendRepo,
	})
	sendGroupService := service.NewSendGroupService(sendGroupRepo, nil)
	mailService := service.NewMailService(cfg.Mail, service.MailDependencies{
		ManualGroups: manualGroupRepo,
		AutoGroups:   autoGroupRepo,
		Contents:     contentRepo,
		SendGroups:   sendGroupRepo,
		AutoSend:     autoSendRepo,
		History:      historyRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})

	var autoWorker *worker.AutoMailWorker
	if cfg.Scheduler.Enabled {
		autoWorker = worker.NewAutoMailWorker(cfg.Scheduler, mailService, logger)
		if err := autoWorker.Start(); err != nil {
			logger.Fatal("failed to start auto mail worker", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(),
		Auth:           handlers.NewAuthHandler(authService),
		Inquiries:      handlers.NewInquiriesHandler(inquiryService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		Mail:           handlers.NewMailHandler(templateService, mailService),
		SendGroups:     handlers.NewSendGroupsHandler(sendGroupService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if autoWorker != nil {
		autoWorker.Stop()
	}
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
