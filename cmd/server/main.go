package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/verda/internal/config"
	"github.com/example/verda/internal/database"
	"github.com/example/verda/internal/handlers"
	"github.com/example/verda/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if cfg.AdminEmail != "" {
		if err := database.PromoteAdmin(db, cfg.AdminEmail); err != nil {
			log.Printf("admin bootstrap failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Verda Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
