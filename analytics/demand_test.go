package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// productSale builds a SALE of one product on a calendar day.
func productSale(d string, qty int) TransactionRecord {
	return TransactionRecord{
		Kind:        KindSale,
		ProductName: "Beras",
		Quantity:    qty,
		TotalAmount: float64(qty) * 15000,
		OccurredAt:  day(d),
	}
}

func demandEngine(records []TransactionRecord) *Engine {
	return NewEngine(&fakeStore{sales: map[string][]TransactionRecord{"o": records}})
}

func TestAnalyzeProductDemandInsufficientData(t *testing.T) {
	records := []TransactionRecord{}
	for i := 1; i <= 6; i++ {
		records = append(records, productSale(fmt.Sprintf("2024-01-%02d", i), 2))
	}
	engine := demandEngine(records)

	profile, err := engine.AnalyzeProductDemand(context.Background(), "o", "Beras")
	assert.NoError(t, err)
	assert.Equal(t, DemandProfile{AvgDailyDemand: 0, PeakDay: "N/A", Trend: DemandStable, Seasonality: false}, profile)
}

func TestAnalyzeProductDemandPeakDayAndSeasonality(t *testing.T) {
	// 2024-01-01 is a Monday. One sale per day for a week, with Wednesday
	// far above the rest.
	records := []TransactionRecord{
		productSale("2024-01-01", 1), // Senin
		productSale("2024-01-02", 1), // Selasa
		productSale("2024-01-03", 10), // Rabu
		productSale("2024-01-04", 1), // Kamis
		productSale("2024-01-05", 1), // Jumat
		productSale("2024-01-06", 1), // Sabtu
		productSale("2024-01-07", 1), // Minggu
	}
	engine := demandEngine(records)

	profile, err := engine.AnalyzeProductDemand(context.Background(), "o", "Beras")
	assert.NoError(t, err)
	assert.Equal(t, "Rabu", profile.PeakDay)
	// 16 units over 7 sales days, rounded to one decimal.
	assert.Equal(t, 2.3, profile.AvgDailyDemand)
	assert.True(t, profile.Seasonality)
}

func TestAnalyzeProductDemandPeakDayTieKeepsFirstSeen(t *testing.T) {
	records := []TransactionRecord{
		productSale("2024-01-02", 5), // Selasa, seen first
		productSale("2024-01-01", 5), // Senin, equal total
		productSale("2024-01-03", 1),
		productSale("2024-01-04", 1),
		productSale("2024-01-05", 1),
		productSale("2024-01-06", 1),
		productSale("2024-01-07", 1),
	}
	engine := demandEngine(records)

	profile, err := engine.AnalyzeProductDemand(context.Background(), "o", "Beras")
	assert.NoError(t, err)
	assert.Equal(t, "Selasa", profile.PeakDay)
}

func TestAnalyzeProductDemandTrend(t *testing.T) {
	increasing := []TransactionRecord{}
	for i := 1; i <= 4; i++ {
		increasing = append(increasing, productSale(fmt.Sprintf("2024-01-%02d", i), 1))
	}
	for i := 5; i <= 8; i++ {
		increasing = append(increasing, productSale(fmt.Sprintf("2024-01-%02d", i), 5))
	}

	profile, err := demandEngine(increasing).AnalyzeProductDemand(context.Background(), "o", "Beras")
	assert.NoError(t, err)
	assert.Equal(t, DemandIncreasing, profile.Trend)

	decreasing := []TransactionRecord{}
	for i := 1; i <= 4; i++ {
		decreasing = append(decreasing, productSale(fmt.Sprintf("2024-01-%02d", i), 5))
	}
	for i := 5; i <= 8; i++ {
		decreasing = append(decreasing, productSale(fmt.Sprintf("2024-01-%02d", i), 1))
	}

	profile, err = demandEngine(decreasing).AnalyzeProductDemand(context.Background(), "o", "Beras")
	assert.NoError(t, err)
	assert.Equal(t, DemandDecreasing, profile.Trend)
}

func TestAnalyzeProductDemandUniformWeekIsStable(t *testing.T) {
	records := []TransactionRecord{}
	for i := 1; i <= 7; i++ {
		records = append(records, productSale(fmt.Sprintf("2024-01-%02d", i), 2))
	}
	engine := demandEngine(records)

	profile, err := engine.AnalyzeProductDemand(context.Background(), "o", "Beras")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, profile.AvgDailyDemand)
	assert.Equal(t, DemandStable, profile.Trend)
	assert.False(t, profile.Seasonality)
}

func TestAnalyzeProductDemandSkipsMalformedTimestamps(t *testing.T) {
	records := []TransactionRecord{
		{Kind: KindSale, ProductName: "Beras", Quantity: 99}, // zero timestamp
	}
	for i := 1; i <= 7; i++ {
		records = append(records, productSale(fmt.Sprintf("2024-01-%02d", i), 2))
	}
	engine := demandEngine(records)

	profile, err := engine.AnalyzeProductDemand(context.Background(), "o", "Beras")
	var dataErr *DataError
	assert.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 1, dataErr.Skipped)

	// The malformed record contributes nothing to the profile.
	assert.Equal(t, 2.0, profile.AvgDailyDemand)
}
