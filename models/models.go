package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Core Models ---

// User represents a business owner (merchant) or an admin.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName *string   `json:"business_name,omitempty"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InventoryItem is one product in a merchant's inventory. ProductName is
// unique per merchant and is how transactions refer back to the item.
type InventoryItem struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProductName  string    `json:"product_name"`
	StockQty     int       `json:"stock_qty"`
	MaxBuyPrice  float64   `json:"max_buy_price"`
	MinSellPrice *float64  `json:"min_sell_price,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Transaction is one bookkeeping record: a sale, a purchase, or an expense.
// ProductName and Qty are set for product-linked records only.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	ProductName *string   `json:"product_name,omitempty"`
	Qty         *int      `json:"qty,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- API Request Structs ---

type CreateInventoryItemRequest struct {
	ProductName  string   `json:"product_name"`
	StockQty     int      `json:"stock_qty"`
	MaxBuyPrice  float64  `json:"max_buy_price"`
	MinSellPrice *float64 `json:"min_sell_price,omitempty"`
}

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	ProductName *string `json:"product_name,omitempty"`
	Qty         *int    `json:"qty,omitempty"`
	TotalAmount float64 `json:"total_amount"`
	Description *string `json:"description,omitempty"`
}

// AdvisorRequest carries an optional focus question for the AI advisor.
type AdvisorRequest struct {
	Question string `json:"question"`
}
