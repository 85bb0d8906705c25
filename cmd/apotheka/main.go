package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"apotheka/internal/config"
	"apotheka/internal/http/handlers"
	applog "apotheka/internal/log"
	"apotheka/internal/store"
)

func main() {
	cfg := config.Load()
	applog.Setup(cfg.LogPretty, cfg.LogFile)

	st := store.New(cfg.DataDir)
	deps := handlers.NewDeps(st, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Uploads top out around a few MB; keep a hard cap on everything else too.
	app.Server().MaxRequestBodySize = 10 << 20

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// ---------- API ----------
	deps.Mount(app.Group("/api"))

	// ---------- Static assets ----------
	uploadDir := cfg.UploadDir
	if abs, err := filepath.Abs(uploadDir); err == nil {
		uploadDir = abs
	}
	log.Printf("[static] /uploads -> %s", uploadDir)
	log.Printf("[static] /image   -> %s", uploadDir)
	log.Printf("[static] /admin   -> %s", cfg.AdminDir)

	app.Static("/uploads", uploadDir)
	app.Static("/image", uploadDir)
	app.Static("/admin", cfg.AdminDir, fiber.Static{Index: "index.html"})
	app.Static("/", cfg.FrontendDir)

	// SPA fallback: any unmatched non-API, non-asset path gets the frontend
	// entry point so client-side routing works on refresh.
	app.Use(func(c *fiber.Ctx) error {
		p := c.Path()
		for _, prefix := range []string{"/api", "/uploads", "/image", "/admin"} {
			if strings.HasPrefix(p, prefix) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
			}
		}
		return c.SendFile(filepath.Join(cfg.FrontendDir, "index.html"))
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
