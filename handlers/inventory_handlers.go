package handlers

import (
	"context"
	"log"
	"strconv"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListInventory returns the merchant's inventory, paginated.
// GET /api/v1/merchant/inventory
func HandleListInventory(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID := c.Locals("userID").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM inventory WHERE user_id = $1"
	if err := db.QueryRow(ctx, countQuery, userID).Scan(&totalCount); err != nil {
		log.Printf("Error counting inventory items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	query := `
		SELECT id, user_id, product_name, COALESCE(stock_qty, 0), COALESCE(max_buy_price, 0), min_sell_price, created_at, updated_at
		FROM inventory
		WHERE user_id = $1
		ORDER BY product_name
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		log.Printf("Error fetching inventory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductName, &item.StockQty, &item.MaxBuyPrice, &item.MinSellPrice, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Printf("Error scanning inventory item: %v", err)
			continue
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"meta":    utils.CreatePagination(totalCount, page, pageSize),
	})
}

// HandleCreateInventoryItem adds a product to the merchant's inventory.
// POST /api/v1/merchant/inventory
func HandleCreateInventoryItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID := c.Locals("userID").(string)

	var req models.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "product_name is required"})
	}
	if req.StockQty < 0 || req.MaxBuyPrice < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "stock_qty and max_buy_price must not be negative"})
	}

	query := `
		INSERT INTO inventory (user_id, product_name, stock_qty, max_buy_price, min_sell_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, product_name, stock_qty, max_buy_price, min_sell_price, created_at, updated_at
	`

	var item models.InventoryItem
	err := db.QueryRow(ctx, query, userID, req.ProductName, req.StockQty, req.MaxBuyPrice, req.MinSellPrice).Scan(
		&item.ID, &item.UserID, &item.ProductName, &item.StockQty, &item.MaxBuyPrice, &item.MinSellPrice, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating inventory item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not create inventory item"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}
