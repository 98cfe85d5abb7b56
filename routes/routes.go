package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/register", handlers.HandleRegister)
	auth.Post("/login", handlers.HandleLogin)

	// --- Merchant Routes ---
	merchant := api.Group("/merchant", middleware.Authenticate, middleware.MerchantRequired)

	// Inventory & bookkeeping
	merchant.Get("/inventory", handlers.HandleListInventory)
	merchant.Post("/inventory", handlers.HandleCreateInventoryItem)
	merchant.Get("/transactions", handlers.HandleListTransactions)
	merchant.Post("/transactions", handlers.HandleCreateTransaction)

	// Analytics & automation
	automation := merchant.Group("/automation")
	automation.Get("/low-stock", handlers.HandleLowStockCheck)
	automation.Get("/reorder-suggestions", handlers.HandleReorderSuggestions)
	automation.Get("/sales-forecast", handlers.HandleSalesForecast)
	automation.Get("/demand/:productName", handlers.HandleProductDemand)
	automation.Get("/notifications", handlers.HandleSmartNotifications)
	automation.Post("/advisor", handlers.HandleBusinessAdvisor)
}
