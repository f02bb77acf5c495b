package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/identity-service/internal/api/http/handlers"
	"github.com/spec-kit/identity-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Companies      *handlers.CompaniesHandler
	NIT            *handlers.NITHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	app.Post("/login", cfg.Auth.Login)
	app.Post("/users", cfg.Users.Register)
	app.Post("/nit/validate", cfg.NIT.Validate)

	requireToken := cfg.AuthMiddleware.Handle
	app.Get("/auth", requireToken, cfg.Auth.Me)
	app.Post("/logout", requireToken, cfg.Auth.Logout)
	app.Patch("/users/:id", requireToken, cfg.Users.Update)
	app.Post("/users/:id/activate", requireToken, cfg.Users.Activate)
	app.Post("/users/:id/deactivate", requireToken, cfg.Users.Deactivate)
	app.Post("/companies", requireToken, cfg.Companies.Create)
	app.Get("/companies/:id", requireToken, cfg.Companies.Get)
}
