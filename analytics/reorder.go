package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

// LowStockAlert flags one item at or below its reorder point.
type LowStockAlert struct {
	Product      string `json:"product"`
	CurrentStock int    `json:"currentStock"`
	Threshold    int    `json:"threshold"`
}

// LowStockResult is the outcome of a low-stock sweep over an owner's inventory.
type LowStockResult struct {
	Alerts    []LowStockAlert `json:"alerts"`
	Triggered int             `json:"triggered"`
}

// ReorderSuggestion recommends a restock quantity for one low item.
type ReorderSuggestion struct {
	Product        string  `json:"product"`
	CurrentStock   int     `json:"currentStock"`
	SuggestedOrder int     `json:"suggestedOrder"`
	EstimatedCost  float64 `json:"estimatedCost"`
	Reason         string  `json:"reason"`
}

// reorderPointFor computes the restock threshold for a quantity:
// 20% of the current stock level, rounded up, with a floor of 5 units.
func reorderPointFor(quantity int) int {
	point := int(math.Ceil(float64(quantity) * 0.2))
	if point < 5 {
		point = 5
	}
	return point
}

// CheckLowStock flags every stock item whose quantity is at or below its
// reorder point. On a store failure the alert list is empty and the returned
// error is an *UpstreamFetchError.
func (e *Engine) CheckLowStock(ctx context.Context, ownerID string) (LowStockResult, error) {
	items, err := e.store.GetStockItems(ctx, ownerID)
	if err != nil {
		return LowStockResult{Alerts: []LowStockAlert{}}, &UpstreamFetchError{Op: "CheckLowStock", Err: err}
	}

	alerts := []LowStockAlert{}
	for _, item := range items {
		qty := item.CurrentQuantity
		if qty < 0 {
			qty = 0
		}
		threshold := reorderPointFor(qty)
		if qty <= threshold {
			alerts = append(alerts, LowStockAlert{
				Product:      item.ProductName,
				CurrentStock: qty,
				Threshold:    threshold,
			})
		}
	}

	return LowStockResult{Alerts: alerts, Triggered: len(alerts)}, nil
}

// ReorderSuggestions produces a restock list for every low item, sized to a
// two-week supply at the demand rate of the last 30 days and sorted by
// estimated cost descending. Items with no sales history are still listed
// with a zero order so they surface without triggering spend.
func (e *Engine) ReorderSuggestions(ctx context.Context, ownerID string) ([]ReorderSuggestion, error) {
	items, err := e.store.GetStockItems(ctx, ownerID)
	if err != nil {
		return []ReorderSuggestion{}, &UpstreamFetchError{Op: "ReorderSuggestions", Err: err}
	}

	since := time.Now().AddDate(0, 0, -30)
	sales, err := e.store.GetSaleTransactions(ctx, ownerID, &since)
	if err != nil {
		return []ReorderSuggestion{}, &UpstreamFetchError{Op: "ReorderSuggestions", Err: err}
	}

	// Monthly demand per product over the window.
	demand := make(map[string]int)
	for _, tx := range sales {
		if tx.ProductName == "" {
			continue
		}
		qty := tx.Quantity
		if qty < 0 {
			qty = 0
		}
		demand[tx.ProductName] += qty
	}

	suggestions := []ReorderSuggestion{}
	for _, item := range items {
		currentStock := item.CurrentQuantity
		if currentStock < 0 {
			currentStock = 0
		}
		if currentStock > reorderPointFor(currentStock) {
			continue
		}

		dailyDemand := float64(demand[item.ProductName]) / 30
		suggestedOrder := int(math.Ceil(dailyDemand * 14))
		suggestions = append(suggestions, ReorderSuggestion{
			Product:        item.ProductName,
			CurrentStock:   currentStock,
			SuggestedOrder: suggestedOrder,
			EstimatedCost:  float64(suggestedOrder) * item.MaxBuyPrice,
			Reason:         fmt.Sprintf("Stock rendah (%d unit). Demand harian: %.1f unit", currentStock, dailyDemand),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].EstimatedCost > suggestions[j].EstimatedCost
	})
	return suggestions, nil
}
