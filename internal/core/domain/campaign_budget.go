package domain

import "time"

// CampaignBudget is the daily and monthly budget state of a single ad
// campaign. Amounts are in KRW. It is built fresh from upstream spend data for
// every analysis and treated as a value.
type CampaignBudget struct {
	CampaignID     string         `json:"campaign_id"`
	CampaignName   string         `json:"campaign_name"`
	Platform       string         `json:"platform"` // naver, google, meta, kakao
	DailyBudget    float64        `json:"daily_budget"`
	MonthlyBudget  float64        `json:"monthly_budget"`
	SpentToday     float64        `json:"spent_today"`
	SpentThisMonth float64        `json:"spent_this_month"`
	PacingStrategy PacingStrategy `json:"pacing_strategy"`

	// DaypartWeights holds the relative weight per hour for the dayparting
	// strategy. Missing hours weigh 1.0.
	DaypartWeights map[int]float64 `json:"daypart_weights,omitempty"`
	// Performance is the per-hour history used by the performance strategy.
	Performance map[int]HourlyPerformance `json:"-"`

	UpdatedAt time.Time `json:"updated_at"`
}

// RemainingToday returns the unspent part of today's budget. It is negative
// when the campaign overspent.
func (c CampaignBudget) RemainingToday() float64 {
	return c.DailyBudget - c.SpentToday
}
