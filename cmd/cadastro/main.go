package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/devheloisa/Cadastro-Produtos/internal/config"
	"github.com/devheloisa/Cadastro-Produtos/internal/http/handlers"
	applog "github.com/devheloisa/Cadastro-Produtos/internal/log"
	"github.com/devheloisa/Cadastro-Produtos/internal/repos"
	"github.com/devheloisa/Cadastro-Produtos/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// The catalog is loaded once here and owned by the service from then on.
	// A corrupt or unreadable file is a startup failure, not an empty list.
	store := repos.NewFileStore(cfg.CatalogFile)
	catalog, err := services.NewCatalogService(store)
	if err != nil {
		log.Fatalf("[catalog] cannot load %s: %v", cfg.CatalogFile, err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer with a friendly message; no internals leak out.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(catalog)

	app.Get("/", deps.PageHandler.Home)

	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Get("/products/:code", deps.ProductHandler.Get)
	api.Put("/products/:code", deps.ProductHandler.Replace)
	api.Delete("/products/:code", deps.ProductHandler.Delete)
	api.Get("/reports/expiring", deps.ReportHandler.Expiring)
	api.Get("/reports/low-stock", deps.ReportHandler.LowStock)
	api.Get("/reports/margins", deps.ReportHandler.Margins)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
