package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotificationType is the severity of a composed notification.
type NotificationType string

const (
	NotifyInfo    NotificationType = "INFO"
	NotifyWarning NotificationType = "WARNING"
	NotifyAlert   NotificationType = "ALERT"
)

// Notification is one human-readable signal for the owner's dashboard.
type Notification struct {
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Action  string           `json:"action,omitempty"`
}

// SmartNotifications merges the low-stock check, the 7-day forecast, and the
// reorder suggestions into one prioritized list: low-stock warnings first,
// then the trend notification, then the reorder summary. Sub-operations that
// degrade contribute their safe defaults; their errors are joined into the
// returned error so the degraded path stays visible.
func (e *Engine) SmartNotifications(ctx context.Context, ownerID string) ([]Notification, error) {
	notifications := []Notification{}

	lowStock, lowErr := e.CheckLowStock(ctx, ownerID)
	for _, alert := range lowStock.Alerts {
		notifications = append(notifications, Notification{
			Type:    NotifyWarning,
			Title:   "Stock Menipis",
			Message: fmt.Sprintf("%s: %d unit tersisa (threshold: %d)", alert.Product, alert.CurrentStock, alert.Threshold),
			Action:  "Reorder sekarang",
		})
	}

	forecast, forecastErr := e.PredictSales(ctx, ownerID, 7)
	switch forecast.Trend {
	case TrendDown:
		notifications = append(notifications, Notification{
			Type:    NotifyAlert,
			Title:   "Trend Penjualan Menurun",
			Message: fmt.Sprintf("Prediksi penjualan 7 hari ke depan: Rp %s. Pertimbangkan promosi.", formatRupiah(forecast.Prediction)),
			Action:  "Buat promosi",
		})
	case TrendUp:
		notifications = append(notifications, Notification{
			Type:    NotifyInfo,
			Title:   "Trend Penjualan Meningkat",
			Message: fmt.Sprintf("Prediksi penjualan 7 hari ke depan: Rp %s. Pastikan stock cukup!", formatRupiah(forecast.Prediction)),
			Action:  "Cek inventory",
		})
	}

	suggestions, suggestErr := e.ReorderSuggestions(ctx, ownerID)
	if len(suggestions) > 0 {
		totalCost := 0.0
		for _, s := range suggestions {
			totalCost += s.EstimatedCost
		}
		notifications = append(notifications, Notification{
			Type:    NotifyInfo,
			Title:   "Saran Reorder",
			Message: fmt.Sprintf("%d produk perlu di-reorder. Total estimasi: Rp %s", len(suggestions), formatRupiah(int64(math.Round(totalCost)))),
			Action:  "Lihat detail",
		})
	}

	return notifications, errors.Join(lowErr, forecastErr, suggestErr)
}

// formatRupiah renders an amount with id-ID digit grouping: 1234567 → 1.234.567.
func formatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
