// Package analytics is the inventory and sales forecasting engine: low-stock
// alerts, reorder suggestions, short-horizon sales predictions, and per-product
// demand profiles. It is a pure library — every operation takes an explicit
// owner ID, reads a snapshot through RecordStore, computes in memory, and
// returns an advisory result. Nothing is ever written back.
package analytics

import (
	"context"
	"fmt"
	"time"
)

// TransactionKind is the type of a bookkeeping record.
type TransactionKind string

const (
	KindSale     TransactionKind = "SALE"
	KindPurchase TransactionKind = "PURCHASE"
	KindExpense  TransactionKind = "EXPENSE"
)

// StockItem is a read-only snapshot of one inventory row.
type StockItem struct {
	ProductName     string  `json:"product_name"`
	CurrentQuantity int     `json:"current_quantity"`
	MaxBuyPrice     float64 `json:"max_buy_price"`
}

// TransactionRecord is an immutable dated bookkeeping record.
type TransactionRecord struct {
	Kind        TransactionKind `json:"kind"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity,omitempty"`
	TotalAmount float64         `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// RecordStore is the engine's only boundary: a read-only, owner-scoped view of
// the record store. GetSaleTransactions and GetTransactionsByProduct return
// SALE records only, ascending by time. A nil since means no lower bound.
type RecordStore interface {
	GetStockItems(ctx context.Context, ownerID string) ([]StockItem, error)
	GetSaleTransactions(ctx context.Context, ownerID string, since *time.Time) ([]TransactionRecord, error)
	GetTransactionsByProduct(ctx context.Context, ownerID, productName string) ([]TransactionRecord, error)
}

// UpstreamFetchError reports a failed record-store call. Operations that hit
// one still return their safe default result; the error is there so callers
// and tests can tell the degraded path from a genuinely empty one.
type UpstreamFetchError struct {
	Op  string
	Err error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("analytics: %s: upstream fetch failed: %v", e.Op, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// DataError reports malformed records (missing timestamps) that were skipped
// during bucketing. The surviving records are still processed in full.
type DataError struct {
	Op      string
	Skipped int
}

func (e *DataError) Error() string {
	return fmt.Sprintf("analytics: %s: skipped %d record(s) with malformed timestamps", e.Op, e.Skipped)
}

// Engine runs the analytic operations against an injected store.
type Engine struct {
	store RecordStore
}

// NewEngine returns an engine bound to the given record store.
func NewEngine(store RecordStore) *Engine {
	return &Engine{store: store}
}
