package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

var validTransactionTypes = map[string]bool{
	"SALE":     true,
	"PURCHASE": true,
	"EXPENSE":  true,
}

// HandleListTransactions returns the merchant's transactions, newest first,
// optionally filtered by type.
// GET /api/v1/merchant/transactions
func HandleListTransactions(c *fiber.Ctx) error {
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

	txType := c.Query("type")
	if txType != "" && !validTransactionTypes[txType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "type must be SALE, PURCHASE or EXPENSE"})
	}

	countQuery := "SELECT COUNT(*) FROM transactions WHERE user_id = $1"
	countArgs := []interface{}{userID}
	if txType != "" {
		countQuery += " AND type = $2"
		countArgs = append(countArgs, txType)
	}

	var totalCount int
	if err := db.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		log.Printf("Error counting transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	query := `
		SELECT id, user_id, type, product_name, qty, total_amount, description, created_at
		FROM transactions
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if txType != "" {
		query += " AND type = $2"
		args = append(args, txType)
	}
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error fetching transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.ProductName, &tx.Qty, &tx.TotalAmount, &tx.Description, &tx.CreatedAt); err != nil {
			log.Printf("Error scanning transaction: %v", err)
			continue
		}
		transactions = append(transactions, tx)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
		"meta":    utils.CreatePagination(totalCount, page, pageSize),
	})
}

// HandleCreateTransaction records a transaction. A SALE linked to a product
// also decrements that product's stock, atomically with the insert.
// POST /api/v1/merchant/transactions
func HandleCreateTransaction(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID := c.Locals("userID").(string)

	var req models.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if !validTransactionTypes[req.Type] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "type must be SALE, PURCHASE or EXPENSE"})
	}
	if req.TotalAmount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "total_amount must not be negative"})
	}
	if req.ProductName != nil && (req.Qty == nil || *req.Qty <= 0) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "qty must be positive for product transactions"})
	}

	dbtx, err := db.Begin(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to start transaction"})
	}
	defer dbtx.Rollback(ctx)

	insertQuery := `
		INSERT INTO transactions (user_id, type, product_name, qty, total_amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, type, product_name, qty, total_amount, description, created_at
	`

	var tx models.Transaction
	err = dbtx.QueryRow(ctx, insertQuery, userID, req.Type, req.ProductName, req.Qty, req.TotalAmount, req.Description, time.Now()).Scan(
		&tx.ID, &tx.UserID, &tx.Type, &tx.ProductName, &tx.Qty, &tx.TotalAmount, &tx.Description, &tx.CreatedAt,
	)
	if err != nil {
		log.Printf("Error inserting transaction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not record transaction"})
	}

	// Keep stock in step with product-linked sales and purchases.
	if req.ProductName != nil && req.Qty != nil {
		var delta int
		switch req.Type {
		case "SALE":
			delta = -*req.Qty
		case "PURCHASE":
			delta = *req.Qty
		}
		if delta != 0 {
			updateQuery := `
				UPDATE inventory
				SET stock_qty = GREATEST(stock_qty + $1, 0), updated_at = NOW()
				WHERE user_id = $2 AND product_name = $3
			`
			if _, err := dbtx.Exec(ctx, updateQuery, delta, userID, *req.ProductName); err != nil {
				log.Printf("Error updating stock for %s: %v", *req.ProductName, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not update stock"})
			}
		}
	}

	if err := dbtx.Commit(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to commit transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": tx})
}
