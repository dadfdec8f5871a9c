package domain

import "time"

// RecommendationType is the kind of change a recommendation proposes.
type RecommendationType string

const (
	RecommendStrategyChange RecommendationType = "strategy_change"
	RecommendBidAdjustment  RecommendationType = "bid_adjustment"
	RecommendBudgetIncrease RecommendationType = "budget_increase"
)

// PacingRecommendation is a suggested change for one campaign. Priority 1 is
// the most urgent, 5 the least.
type PacingRecommendation struct {
	ID                  string             `json:"id"`
	CampaignID          string             `json:"campaign_id"`
	Type                RecommendationType `json:"type"`
	CurrentStrategy     PacingStrategy     `json:"current_strategy"`
	RecommendedStrategy PacingStrategy     `json:"recommended_strategy"`
	Description         string             `json:"description"`
	ExpectedImpact      string             `json:"expected_impact"`
	Priority            int                `json:"priority"`
	// HourlyAdjustments maps hour of day to a budget multiplier.
	HourlyAdjustments map[int]float64 `json:"hourly_adjustments,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
