package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/todo-dashboard/internal/api/http"
	"github.com/spec-kit/todo-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/todo-dashboard/internal/auth"
	"github.com/spec-kit/todo-dashboard/internal/config"
	"github.com/spec-kit/todo-dashboard/internal/events"
	"github.com/spec-kit/todo-dashboard/internal/observability"
	"github.com/spec-kit/todo-dashboard/internal/persistence"
	"github.com/spec-kit/todo-dashboard/internal/repository"
	"github.com/spec-kit/todo-dashboard/internal/service"
	"github.com/spec-kit/todo-dashboard/internal/session"
	"github.com/spec-kit/todo-dashboard/internal/worker"
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

	var store persistence.Store
	var pinger handlers.Pinger

	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := persistence.NewPostgresStore(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		store, pinger = pg, pg
	case "memory":
		mem := persistence.NewMemoryStore()
		store, pinger = mem, mem
	default:
		rs := persistence.NewRedisStore(cfg.Redis, logger)
		defer rs.Close()
		store, pinger = rs, rs
	}

	sessions := session.NewManager(store)
	if err := sessions.Init(ctx); err != nil {
		logger.Fatal("failed to init session state", zap.Error(err))
	}
	logger.Info("session state initialized", zap.String("state", string(sessions.State())))

	userRepo := repository.NewUserRepository(store)
	todoRepo := repository.NewTodoRepository(store)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Sessions: sessions,
	})
	todoService := service.NewTodoService(cfg.App, service.TodoDependencies{
		TodoRepo:   todoRepo,
		Dispatcher: dispatcher,
	})
	userService := service.NewUserService(service.UserDependencies{
		UserRepo:   userRepo,
		Sessions:   sessions,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(todoRepo, dispatcher, logger, cfg.Notification)
	reminderWorker := worker.NewReminderWorker(todoRepo, dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(ctx, notificationService, reminderWorker)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Storage.Driver, pinger),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Todos:          handlers.NewTodosHandler(todoService, notificationService),
		Users:          handlers.NewUsersHandler(userService),
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
