package database

import (
	"context"
	"time"

	"app/analytics"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RecordStore is the production implementation of analytics.RecordStore,
// reading the inventory and transactions tables through the shared pool.
type RecordStore struct {
	pool *pgxpool.Pool
}

// NewRecordStore wraps a connection pool in the analytics read port.
func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

// GetStockItems returns a snapshot of the owner's inventory.
func (s *RecordStore) GetStockItems(ctx context.Context, ownerID string) ([]analytics.StockItem, error) {
	query := `
		SELECT product_name, COALESCE(stock_qty, 0), COALESCE(max_buy_price, 0)
		FROM inventory
		WHERE user_id = $1
		ORDER BY product_name
	`
	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []analytics.StockItem{}
	for rows.Next() {
		var item analytics.StockItem
		if err := rows.Scan(&item.ProductName, &item.CurrentQuantity, &item.MaxBuyPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetSaleTransactions returns the owner's SALE records ascending by time,
// optionally bounded below by since.
func (s *RecordStore) GetSaleTransactions(ctx context.Context, ownerID string, since *time.Time) ([]analytics.TransactionRecord, error) {
	query := `
		SELECT type, COALESCE(product_name, ''), COALESCE(qty, 0), total_amount, created_at
		FROM transactions
		WHERE user_id = $1 AND type = 'SALE'
	`
	args := []interface{}{ownerID}
	if since != nil {
		query += " AND created_at >= $2"
		args = append(args, *since)
	}
	query += " ORDER BY created_at ASC"

	return s.queryTransactions(ctx, query, args...)
}

// GetTransactionsByProduct returns the owner's SALE records for one product,
// ascending by time.
func (s *RecordStore) GetTransactionsByProduct(ctx context.Context, ownerID, productName string) ([]analytics.TransactionRecord, error) {
	query := `
		SELECT type, COALESCE(product_name, ''), COALESCE(qty, 0), total_amount, created_at
		FROM transactions
		WHERE user_id = $1 AND type = 'SALE' AND product_name = $2
		ORDER BY created_at ASC
	`
	return s.queryTransactions(ctx, query, ownerID, productName)
}

func (s *RecordStore) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]analytics.TransactionRecord, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []analytics.TransactionRecord{}
	for rows.Next() {
		var rec analytics.TransactionRecord
		if err := rows.Scan(&rec.Kind, &rec.ProductName, &rec.Quantity, &rec.TotalAmount, &rec.OccurredAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
