package analytics

import (
	"context"
	"math"
)

// Trend classifies the direction of recent sales against the prior window.
type Trend string

const (
	TrendUp     Trend = "UP"
	TrendDown   Trend = "DOWN"
	TrendStable Trend = "STABLE"
)

// Confidence grades a prediction by how consistent the daily series was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// ForecastResult is a sales prediction over a horizon, in whole currency units.
type ForecastResult struct {
	Prediction int64      `json:"prediction"`
	Confidence Confidence `json:"confidence"`
	Trend      Trend      `json:"trend"`
}

// PredictSales forecasts total sales over the next horizonDays days from the
// owner's full SALE history. Fewer than 7 records short-circuits to a zero
// prediction with LOW confidence; that is a normal low-data path, not an
// error. The daily series covers sales days only — days with no sales produce
// no bucket, so trend windows on a sparse history span more than 7 calendar
// days.
func (e *Engine) PredictSales(ctx context.Context, ownerID string, horizonDays int) (ForecastResult, error) {
	fallback := ForecastResult{Prediction: 0, Confidence: ConfidenceLow, Trend: TrendStable}

	sales, err := e.store.GetSaleTransactions(ctx, ownerID, nil)
	if err != nil {
		return fallback, &UpstreamFetchError{Op: "PredictSales", Err: err}
	}
	if len(sales) < 7 {
		return fallback, nil
	}

	points := make([]SeriesPoint, len(sales))
	for i, tx := range sales {
		points[i] = SeriesPoint{When: tx.OccurredAt, Amount: tx.TotalAmount}
	}
	buckets, dataErr := BucketDaily(points)
	series := bucketAmounts(buckets)
	if len(series) == 0 {
		if dataErr != nil {
			return fallback, dataErr
		}
		return fallback, nil
	}

	avgDailySales := mean(series)
	trend := salesTrend(series)

	prediction := avgDailySales * float64(horizonDays)
	switch trend {
	case TrendUp:
		prediction *= 1.1
	case TrendDown:
		prediction *= 0.9
	}

	result := ForecastResult{
		Prediction: int64(math.Round(prediction)),
		Confidence: salesConfidence(series, avgDailySales),
		Trend:      trend,
	}
	if dataErr != nil {
		return result, dataErr
	}
	return result, nil
}

// salesTrend compares the mean of the last 7 sales days against the mean of
// the 7 before that. A series too short to fill the older window is STABLE.
func salesTrend(series []float64) Trend {
	n := len(series)
	recent := series[max(0, n-7):]
	older := series[max(0, n-14):max(0, n-7)]
	if len(recent) == 0 || len(older) == 0 {
		return TrendStable
	}

	recentAvg := mean(recent)
	olderAvg := mean(older)
	switch {
	case recentAvg > olderAvg*1.1:
		return TrendUp
	case recentAvg < olderAvg*0.9:
		return TrendDown
	default:
		return TrendStable
	}
}

// salesConfidence grades the coefficient of variation of the whole series.
// A zero mean leaves the cv undefined; that stays MEDIUM.
func salesConfidence(series []float64, avg float64) Confidence {
	if avg == 0 {
		return ConfidenceMedium
	}
	cv := math.Sqrt(populationVariance(series, avg)) / avg
	switch {
	case cv < 0.3:
		return ConfidenceHigh
	case cv > 0.6:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationVariance(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return sum / float64(len(values))
}
