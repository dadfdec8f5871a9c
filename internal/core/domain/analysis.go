package domain

import "time"

// PacingAnalysis is an immutable snapshot of a campaign's pacing at a point
// in time.
type PacingAnalysis struct {
	ID           string         `json:"id"`
	CampaignID   string         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	Strategy     PacingStrategy `json:"strategy"`
	AnalyzedAt   time.Time      `json:"analyzed_at"`

	HoursElapsed   int `json:"hours_elapsed"`
	HoursRemaining int `json:"hours_remaining"`

	DailyBudget      float64      `json:"daily_budget"`
	ExpectedSpend    float64      `json:"expected_spend"`
	ActualSpend      float64      `json:"actual_spend"`
	ActualVsExpected float64      `json:"actual_vs_expected"` // percent
	PacingStatus     PacingStatus `json:"pacing_status"`

	BurnRate                float64 `json:"burn_rate"` // spend per elapsed hour
	ProjectedEndOfDaySpend  float64 `json:"projected_end_of_day_spend"`
	BudgetUtilization       float64 `json:"budget_utilization"`
	RecommendedAdjustment   float64 `json:"recommended_adjustment"`
	RecommendedHourlyBudget float64 `json:"recommended_hourly_budget"`
	ConfidenceScore         float64 `json:"confidence_score"`
}

// MonthlyProjection extrapolates month-end spend from the month-to-date
// average.
type MonthlyProjection struct {
	CampaignID             string       `json:"campaign_id"`
	MonthlyBudget          float64      `json:"monthly_budget"`
	SpentThisMonth         float64      `json:"spent_this_month"`
	DayOfMonth             int          `json:"day_of_month"`
	DaysRemaining          int          `json:"days_remaining"`
	DailyAvgSpend          float64      `json:"daily_avg_spend"`
	ProjectedMonthlySpend  float64      `json:"projected_monthly_spend"`
	MonthlyUtilization     float64      `json:"monthly_utilization"`
	ExpectedUtilization    float64      `json:"expected_utilization"`
	ProjectedUtilization   float64      `json:"projected_utilization"`
	MonthlyStatus          PacingStatus `json:"monthly_status"`
	RecommendedDailyBudget float64      `json:"recommended_daily_budget"`
}

// PacingSummary aggregates one pacing run over a set of campaigns.
type PacingSummary struct {
	TotalCampaigns     int                   `json:"total_campaigns"`
	TotalDailyBudget   float64               `json:"total_daily_budget"`
	TotalSpentToday    float64               `json:"total_spent_today"`
	OverallUtilization float64               `json:"overall_utilization"`
	StatusCounts       map[PacingStatus]int  `json:"status_counts"`
	AlertCounts        map[AlertSeverity]int `json:"alert_counts"`
	OnTrackRatio       float64               `json:"on_track_ratio"`
	GeneratedAt        time.Time             `json:"generated_at"`

	Analyses []PacingAnalysis `json:"analyses"`
	Alerts   []PacingAlert    `json:"alerts"`
}
