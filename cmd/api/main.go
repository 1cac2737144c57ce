package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hiring-service/internal/api/http"
	"github.com/spec-kit/hiring-service/internal/api/http/handlers"
	"github.com/spec-kit/hiring-service/internal/config"
	"github.com/spec-kit/hiring-service/internal/events"
	"github.com/spec-kit/hiring-service/internal/observability"
	"github.com/spec-kit/hiring-service/internal/persistence"
	"github.com/spec-kit/hiring-service/internal/repository"
	"github.com/spec-kit/hiring-service/internal/service"
	"github.com/spec-kit/hiring-service/internal/worker"
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
	departmentRepo := repository.NewDepartmentRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	departmentService := service.NewDepartmentService(departmentRepo)
	jobService := service.NewJobService(jobRepo)
	employeeService := service.NewEmployeeService(employeeRepo, dispatcher)
	importService := service.NewImportService(service.ImportDependencies{
		DepartmentRepo: departmentRepo,
		JobRepo:        jobRepo,
		EmployeeRepo:   employeeRepo,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, metrics, cfg.Notification)
	worker.StartImportWorker(notificationService)

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Import.MaxUploadBytes(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	departmentsHandler := handlers.NewDepartmentsHandler(departmentService, importService)
	jobsHandler := handlers.NewJobsHandler(jobService, importService)
	employeesHandler := handlers.NewEmployeesHandler(employeeService, importService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      healthHandler,
		Departments: departmentsHandler,
		Jobs:        jobsHandler,
		Employees:   employeesHandler,
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
