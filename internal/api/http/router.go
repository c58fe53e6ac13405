package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/todo-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/todo-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	Todos          *handlers.TodosHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Patch("/profile", cfg.Auth.UpdateProfile)

	todos := app.Group("/todos", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	todos.Get("/", cfg.Todos.List)
	todos.Get("/stats", cfg.Todos.Stats)
	todos.Get("/notifications", cfg.Todos.Notifications)
	todos.Post("/", cfg.Todos.Create)
	todos.Put("/:id", cfg.Todos.Update)
	todos.Delete("/:id", cfg.Todos.Delete)
	todos.Patch("/:id/toggle", cfg.Todos.ToggleStatus)

	// account management is superuser territory; non-superusers get a 403
	// instead of the dashboard redirect the web client performs
	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireSuperuser())
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Create)
	users.Patch("/:id/role", cfg.Users.ToggleRole)
	users.Patch("/:id/status", cfg.Users.ToggleActive)
}
