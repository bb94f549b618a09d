package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvaldes-dev/portfolio-api/internal/config"
	"github.com/mvaldes-dev/portfolio-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler *handler.ContactHandler
	StatusHandler  *handler.StatusHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(api.Group("/contact"))
	}

	if deps.StatusHandler != nil {
		deps.StatusHandler.Register(api.Group("/status"))
	}
}
