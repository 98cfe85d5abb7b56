package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// salesOn builds one SALE per given day with the given amount.
func salesOn(amounts map[string]float64, order []string) []TransactionRecord {
	records := []TransactionRecord{}
	for _, d := range order {
		records = append(records, TransactionRecord{
			Kind:        KindSale,
			TotalAmount: amounts[d],
			OccurredAt:  day(d),
		})
	}
	return records
}

func forecastEngine(records []TransactionRecord) *Engine {
	return NewEngine(&fakeStore{sales: map[string][]TransactionRecord{"o": records}})
}

func TestPredictSalesInsufficientData(t *testing.T) {
	records := []TransactionRecord{}
	for i := 0; i < 6; i++ {
		records = append(records, saleDaysAgo(i, "", 1, 100000))
	}
	engine := forecastEngine(records)

	forecast, err := engine.PredictSales(context.Background(), "o", 7)
	assert.NoError(t, err)
	assert.Equal(t, ForecastResult{Prediction: 0, Confidence: ConfidenceLow, Trend: TrendStable}, forecast)
}

func TestPredictSalesConstantSeries(t *testing.T) {
	// 10 sales of 100,000 on 10 distinct days: avg 100,000/day, cv 0.
	amounts := map[string]float64{}
	order := []string{}
	for i := 1; i <= 10; i++ {
		d := fmt.Sprintf("2024-03-%02d", i)
		amounts[d] = 100000
		order = append(order, d)
	}
	engine := forecastEngine(salesOn(amounts, order))

	forecast, err := engine.PredictSales(context.Background(), "o", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(700000), forecast.Prediction)
	assert.Equal(t, ConfidenceHigh, forecast.Confidence)
	assert.Equal(t, TrendStable, forecast.Trend)
}

func buildTrendSeries(olderAmount, recentAmount float64) []TransactionRecord {
	amounts := map[string]float64{}
	order := []string{}
	for i := 1; i <= 14; i++ {
		d := fmt.Sprintf("2024-03-%02d", i)
		if i <= 7 {
			amounts[d] = olderAmount
		} else {
			amounts[d] = recentAmount
		}
		order = append(order, d)
	}
	return salesOn(amounts, order)
}

func TestPredictSalesTrendBoundaries(t *testing.T) {
	cases := []struct {
		older, recent float64
		want          Trend
	}{
		{100000, 110000, TrendStable}, // exactly 1.1x needs strict >
		{100000, 120000, TrendUp},
		{100000, 90000, TrendStable}, // exactly 0.9x needs strict <
		{100000, 80000, TrendDown},
		{100000, 100000, TrendStable},
	}

	for _, tc := range cases {
		engine := forecastEngine(buildTrendSeries(tc.older, tc.recent))
		forecast, err := engine.PredictSales(context.Background(), "o", 7)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, forecast.Trend, "older=%v recent=%v", tc.older, tc.recent)
	}
}

func TestPredictSalesTrendScaling(t *testing.T) {
	// Mean over 14 days of (7x100,000 + 7x200,000) is 150,000/day.
	engine := forecastEngine(buildTrendSeries(100000, 200000))

	forecast, err := engine.PredictSales(context.Background(), "o", 7)
	assert.NoError(t, err)
	assert.Equal(t, TrendUp, forecast.Trend)
	// 150,000 * 7 * 1.1
	assert.Equal(t, int64(1155000), forecast.Prediction)
}

func TestPredictSalesConfidenceFromVariance(t *testing.T) {
	// Alternating 0 and 1,000: mean 500, stddev 500, cv 1 -> LOW.
	amounts := map[string]float64{}
	order := []string{}
	for i := 1; i <= 14; i++ {
		d := fmt.Sprintf("2024-03-%02d", i)
		if i%2 == 0 {
			amounts[d] = 1000
		}
		order = append(order, d)
	}
	engine := forecastEngine(salesOn(amounts, order))

	forecast, err := engine.PredictSales(context.Background(), "o", 7)
	assert.NoError(t, err)
	assert.Equal(t, ConfidenceLow, forecast.Confidence)
}

func TestPredictSalesShortSeriesHasNoTrendWindow(t *testing.T) {
	// 7 records on 7 days: the older trend window is empty, so STABLE.
	engine := forecastEngine(buildTrendSeries(100000, 100000)[:7])

	forecast, err := engine.PredictSales(context.Background(), "o", 7)
	assert.NoError(t, err)
	assert.Equal(t, TrendStable, forecast.Trend)
	assert.Equal(t, int64(700000), forecast.Prediction)
}

func TestPredictSalesZeroMeanStaysMedium(t *testing.T) {
	// All-zero amounts leave the cv undefined; confidence stays MEDIUM.
	engine := forecastEngine(buildTrendSeries(0, 0))

	forecast, err := engine.PredictSales(context.Background(), "o", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), forecast.Prediction)
	assert.Equal(t, ConfidenceMedium, forecast.Confidence)
	assert.Equal(t, TrendStable, forecast.Trend)
}
