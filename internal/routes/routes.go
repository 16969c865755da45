package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/verda/internal/cart"
	"github.com/example/verda/internal/config"
	"github.com/example/verda/internal/handlers"
	"github.com/example/verda/internal/middleware"
	"github.com/example/verda/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	carts := cart.NewStore()

	authHandler := handlers.NewAuthHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(carts)
	orderHandler := handlers.NewOrderHandler(db, carts, telegramService)
	profileHandler := handlers.NewProfileHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Put("/cart/items", cartHandler.UpdateItem)
	protected.Delete("/cart/items", cartHandler.RemoveItem)
	protected.Delete("/cart", cartHandler.ClearCart)
	protected.Put("/cart/drawer", cartHandler.SetDrawer)

	protected.Get("/checkout", orderHandler.Checkout)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders/:id/cancel", orderHandler.CancelOrder)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Patch("/profile", profileHandler.UpdateProfile)

	// Staff routes
	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Get("/orders", adminHandler.ListAllOrders)
	admin.Patch("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.Get("/users", adminHandler.ListAllUsers)
	admin.Get("/users/:id/orders", adminHandler.ListUserOrders)
}
