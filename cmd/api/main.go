package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/analytics"
	httptransport "github.com/spec-kit/workspace-hub/internal/api/http"
	"github.com/spec-kit/workspace-hub/internal/api/http/handlers"
	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/config"
	"github.com/spec-kit/workspace-hub/internal/events"
	"github.com/spec-kit/workspace-hub/internal/observability"
	"github.com/spec-kit/workspace-hub/internal/persistence"
	"github.com/spec-kit/workspace-hub/internal/repository"
	"github.com/spec-kit/workspace-hub/internal/service"
	"github.com/spec-kit/workspace-hub/internal/worker"
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

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	pool := pg.PoolHandle()
	workspaceRepo := repository.NewWorkspaceRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	branchRepo := repository.NewBranchRepository(pool)
	regionRepo := repository.NewRegionRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	scope := service.NewScopeResolver(workspaceRepo, logger)
	aggregator := service.NewAggregator(service.AggregatorDependencies{
		WorkspaceRepo:  workspaceRepo,
		ReportRepo:     reportRepo,
		TaskRepo:       taskRepo,
		UserRepo:       userRepo,
		TeamRepo:       teamRepo,
		TemplateRepo:   templateRepo,
		DepartmentRepo: departmentRepo,
	}, logger)

	scorer := analytics.NewWeightedScorer(
		cfg.Analytics.TaskWeight,
		cfg.Analytics.ReportWeight,
		cfg.Analytics.SynergyBonus,
		cfg.Analytics.MaxActivityScore,
	)

	authService := service.NewAuthService(*cfg, userRepo, workspaceRepo)
	workspaceService := service.NewWorkspaceService(workspaceRepo)
	reportService := service.NewReportService(service.ReportDependencies{
		ReportRepo:   reportRepo,
		TemplateRepo: templateRepo,
		Dispatcher:   dispatcher,
	})
	taskService := service.NewTaskService(taskRepo, userRepo, dispatcher)
	teamService := service.NewTeamService(service.TeamDependencies{
		TeamRepo:   teamRepo,
		UserRepo:   userRepo,
		BranchRepo: branchRepo,
		RegionRepo: regionRepo,
		Scope:      scope,
		Aggregator: aggregator,
	}, logger)
	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		Scope:      scope,
		Aggregator: aggregator,
		TicketRepo: ticketRepo,
		Scorer:     scorer,
		Cache:      redis,
		Metrics:    metrics,
	}, cfg.Analytics.SnapshotCacheTTL(), logger)
	analyticsService := service.NewReportAnalyticsService(scope, aggregator, cfg.Analytics.TrendMonths, logger)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Workspaces:     handlers.NewWorkspacesHandler(workspaceService),
		Reports:        handlers.NewReportsHandler(reportService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Teams:          handlers.NewTeamsHandler(teamService),
		Tasks:          handlers.NewTasksHandler(taskService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		RefData:        handlers.NewRefDataHandler(departmentRepo, templateRepo, branchRepo, regionRepo),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
