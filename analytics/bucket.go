package analytics

import "time"

// SeriesPoint is one dated value fed to the bucketer.
type SeriesPoint struct {
	When   time.Time
	Amount float64
}

// DailyBucket is the summed amount of one calendar day. Days with no points
// produce no bucket; the engine never synthesizes zero days.
type DailyBucket struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

const dayKeyLayout = "2006-01-02"

// BucketDaily groups points into calendar-day buckets, summing amounts per
// day. Bucket order is the order in which each day was first seen. Points
// with a zero timestamp are skipped and reported through the returned
// DataError (nil when every point was well-formed).
func BucketDaily(points []SeriesPoint) ([]DailyBucket, *DataError) {
	buckets := make([]DailyBucket, 0, len(points))
	index := make(map[string]int, len(points))
	skipped := 0

	for _, p := range points {
		if p.When.IsZero() {
			skipped++
			continue
		}
		key := p.When.Format(dayKeyLayout)
		if i, ok := index[key]; ok {
			buckets[i].Amount += p.Amount
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, DailyBucket{Day: key, Amount: p.Amount})
	}

	if skipped > 0 {
		return buckets, &DataError{Op: "BucketDaily", Skipped: skipped}
	}
	return buckets, nil
}

func bucketAmounts(buckets []DailyBucket) []float64 {
	series := make([]float64, len(buckets))
	for i, b := range buckets {
		series[i] = b.Amount
	}
	return series
}
