package handlers

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"app/analytics"
	"app/database"

	"github.com/gofiber/fiber/v2"
)

// automationEngine binds the analytics engine to the live database. Degraded
// engine results are still served: the engine guarantees a safe default
// payload, so the handlers log the typed error and respond 200 rather than
// surfacing garbage or a crash to the dashboard.
func automationEngine() *analytics.Engine {
	return analytics.NewEngine(database.NewRecordStore(database.GetDB()))
}

// HandleLowStockCheck lists items at or below their reorder point.
// GET /api/v1/merchant/automation/low-stock
func HandleLowStockCheck(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	result, err := automationEngine().CheckLowStock(context.Background(), userID)
	if err != nil {
		log.Printf("Low-stock check degraded for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandleReorderSuggestions returns ranked restock suggestions.
// GET /api/v1/merchant/automation/reorder-suggestions
func HandleReorderSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	suggestions, err := automationEngine().ReorderSuggestions(context.Background(), userID)
	if err != nil {
		log.Printf("Reorder suggestions degraded for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": suggestions})
}

// HandleSalesForecast predicts sales over the requested horizon (default 7 days).
// GET /api/v1/merchant/automation/sales-forecast?days=7
func HandleSalesForecast(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	forecast, err := automationEngine().PredictSales(context.Background(), userID, days)
	if err != nil {
		log.Printf("Sales forecast degraded for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": forecast})
}

// HandleProductDemand profiles demand for one product.
// GET /api/v1/merchant/automation/demand/:productName
func HandleProductDemand(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	productName, err := parseProductName(c.Params("productName"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product name"})
	}

	profile, err := automationEngine().AnalyzeProductDemand(context.Background(), userID, productName)
	if err != nil {
		log.Printf("Demand analysis degraded for user %s, product %s: %v", userID, productName, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}

// HandleSmartNotifications composes the prioritized notification list.
// GET /api/v1/merchant/automation/notifications
func HandleSmartNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	notifications, err := automationEngine().SmartNotifications(context.Background(), userID)
	if err != nil {
		log.Printf("Smart notifications degraded for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": notifications})
}

func parseProductName(raw string) (string, error) {
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" {
		return "", fiber.ErrBadRequest
	}
	return name, nil
}
