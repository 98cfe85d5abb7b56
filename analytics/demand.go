package analytics

import (
	"context"
	"math"
	"time"
)

// DemandTrend classifies how a product's demand moved across its history.
type DemandTrend string

const (
	DemandIncreasing DemandTrend = "INCREASING"
	DemandDecreasing DemandTrend = "DECREASING"
	DemandStable     DemandTrend = "STABLE"
)

// DemandProfile summarizes one product's demand pattern.
type DemandProfile struct {
	AvgDailyDemand float64     `json:"avgDailyDemand"`
	PeakDay        string      `json:"peakDay"`
	Trend          DemandTrend `json:"trend"`
	Seasonality    bool        `json:"seasonality"`
}

// Indonesian long weekday names, as the consuming UI shows them.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

type weekdayBucket struct {
	day string
	qty float64
}

// AnalyzeProductDemand builds a demand profile for one product from its SALE
// records: average units per sales day, the heaviest weekday, a first-half
// versus second-half trend, and a seasonality flag from the spread of the
// weekday totals. Fewer than 7 records short-circuits to an empty profile.
func (e *Engine) AnalyzeProductDemand(ctx context.Context, ownerID, productName string) (DemandProfile, error) {
	fallback := DemandProfile{AvgDailyDemand: 0, PeakDay: "N/A", Trend: DemandStable, Seasonality: false}

	sales, err := e.store.GetTransactionsByProduct(ctx, ownerID, productName)
	if err != nil {
		return fallback, &UpstreamFetchError{Op: "AnalyzeProductDemand", Err: err}
	}
	if len(sales) < 7 {
		return fallback, nil
	}

	points := make([]SeriesPoint, 0, len(sales))
	weekdays := []weekdayBucket{}
	weekdayIndex := map[string]int{}
	skipped := 0
	for _, tx := range sales {
		if tx.OccurredAt.IsZero() {
			skipped++
			continue
		}
		qty := float64(tx.Quantity)
		points = append(points, SeriesPoint{When: tx.OccurredAt, Amount: qty})

		name := weekdayNames[tx.OccurredAt.Weekday()]
		if i, ok := weekdayIndex[name]; ok {
			weekdays[i].qty += qty
		} else {
			weekdayIndex[name] = len(weekdays)
			weekdays = append(weekdays, weekdayBucket{day: name, qty: qty})
		}
	}

	daily, _ := BucketDaily(points)
	if len(daily) == 0 {
		if skipped > 0 {
			return fallback, &DataError{Op: "AnalyzeProductDemand", Skipped: skipped}
		}
		return fallback, nil
	}
	series := bucketAmounts(daily)

	total := 0.0
	for _, v := range series {
		total += v
	}
	avgDailyDemand := math.Round(total/float64(len(series))*10) / 10

	// Peak weekday; ties keep whichever weekday was seen first.
	peakDay := "N/A"
	maxQty := 0.0
	for _, wd := range weekdays {
		if wd.qty > maxQty {
			maxQty = wd.qty
			peakDay = wd.day
		}
	}

	profile := DemandProfile{
		AvgDailyDemand: avgDailyDemand,
		PeakDay:        peakDay,
		Trend:          demandTrend(series),
		Seasonality:    hasSeasonality(weekdays),
	}
	if skipped > 0 {
		return profile, &DataError{Op: "AnalyzeProductDemand", Skipped: skipped}
	}
	return profile, nil
}

// demandTrend compares the means of the two chronological halves of the daily
// series with 20% thresholds.
func demandTrend(series []float64) DemandTrend {
	half := len(series) / 2
	first := series[:half]
	second := series[half:]
	if len(first) == 0 || len(second) == 0 {
		return DemandStable
	}

	firstAvg := mean(first)
	secondAvg := mean(second)
	switch {
	case secondAvg > firstAvg*1.2:
		return DemandIncreasing
	case secondAvg < firstAvg*0.8:
		return DemandDecreasing
	default:
		return DemandStable
	}
}

// hasSeasonality flags demand concentrated on particular weekdays: the
// population variance of the weekday totals exceeding half their mean.
func hasSeasonality(weekdays []weekdayBucket) bool {
	if len(weekdays) == 0 {
		return false
	}
	values := make([]float64, len(weekdays))
	for i, wd := range weekdays {
		values[i] = wd.qty
	}
	avg := mean(values)
	return populationVariance(values, avg) > avg*0.5
}
