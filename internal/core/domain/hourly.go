package domain

import "math"

// HoursPerDay is the number of allocation slots in a day.
const HoursPerDay = 24

// HourlyAllocation maps hour of day (index 0-23) to an allocated budget.
type HourlyAllocation [HoursPerDay]float64

// Total returns the sum of all 24 slots.
func (a HourlyAllocation) Total() float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}

// Through returns the cumulative allocation for hours 0..hour inclusive.
func (a HourlyAllocation) Through(hour int) float64 {
	var sum float64
	for h := 0; h <= hour && h < HoursPerDay; h++ {
		sum += a[h]
	}
	return sum
}

// HourlyPerformance holds observed performance for one hour of the day,
// usually aggregated over a lookback window.
type HourlyPerformance struct {
	Hour        int     `json:"hour"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	CTR         float64 `json:"ctr"`
	ROAS        float64 `json:"roas"`
	Weight      float64 `json:"weight"`
}

// HourlyBudget is the allocation and observed delivery of one hour of a
// campaign day.
type HourlyBudget struct {
	Hour        int     `json:"hour"`
	Allocated   float64 `json:"allocated"`
	ActualSpend float64 `json:"actual_spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
}

// Utilization is the share of the allocation actually spent, capped at 100.
func (h HourlyBudget) Utilization() float64 {
	if h.Allocated <= 0 {
		return 0
	}
	return math.Min(h.ActualSpend/h.Allocated*100, 100)
}

// Variance is the signed deviation of actual spend from the allocation in
// percent.
func (h HourlyBudget) Variance() float64 {
	if h.Allocated <= 0 {
		return 0
	}
	return (h.ActualSpend - h.Allocated) / h.Allocated * 100
}
