package api

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/bilgisen/nexus/internal/config"
	"github.com/bilgisen/nexus/internal/logger"
	"github.com/bilgisen/nexus/internal/middleware"
)

// SetupRoutes configures the API and, when a build is present, the SPA host.
func SetupRoutes(app *fiber.App, h *Handlers, cfg *config.Config) {
	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	api.Get("/health", h.HealthCheck)

	// Content endpoints
	api.Get("/posts", h.ListPosts)
	api.Get("/posts/:id", h.GetPost)
	api.Get("/testimonials", h.ListTestimonials)

	// Inquiry intake
	api.Get("/contact/options", h.ContactOptions)
	api.Post("/contact", middleware.ContactLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow), h.SubmitContact)

	// AI growth engine
	api.Post("/roadmap", h.GenerateRoadmap)

	api.Use(middleware.NotFound)

	setupStatic(app, cfg.StaticDir)

	app.Use(middleware.NotFound)
}

// setupStatic serves the single-page app from dir, falling back to
// index.html for client-side routes.
func setupStatic(app *fiber.App, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		logger.Get().Warn().Str("static_dir", dir).Msg("No SPA build found, serving API only")
		return
	}

	app.Static("/", dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Next()
		}
		return c.SendFile(index)
	})
}
