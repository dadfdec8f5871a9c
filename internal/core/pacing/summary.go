package pacing

import (
	"time"

	"adpacing/internal/core/domain"
)

// GetSummary analyses every campaign as of now and aggregates statuses and
// alerts into a dashboard summary.
func (o *Optimizer) GetSummary(campaigns []domain.CampaignBudget) domain.PacingSummary {
	return o.summarize(campaigns, time.Time{})
}

// summarize is GetSummary at an explicit time. A zero at means now.
func (o *Optimizer) summarize(campaigns []domain.CampaignBudget, at time.Time) domain.PacingSummary {
	at = o.resolve(at)

	summary := domain.PacingSummary{
		TotalCampaigns: len(campaigns),
		StatusCounts:   make(map[domain.PacingStatus]int, len(domain.Statuses)),
		AlertCounts:    make(map[domain.AlertSeverity]int, len(domain.Severities)),
		GeneratedAt:    at,
		Analyses:       o.analyzeAll(campaigns, at),
		Alerts:         []domain.PacingAlert{},
	}
	for _, s := range domain.Statuses {
		summary.StatusCounts[s] = 0
	}
	for _, s := range domain.Severities {
		summary.AlertCounts[s] = 0
	}

	for i, a := range summary.Analyses {
		summary.TotalDailyBudget += campaigns[i].DailyBudget
		summary.TotalSpentToday += campaigns[i].SpentToday
		summary.StatusCounts[a.PacingStatus]++
		for _, alert := range alertsFor(a) {
			summary.AlertCounts[alert.Severity]++
			summary.Alerts = append(summary.Alerts, alert)
		}
	}

	if summary.TotalDailyBudget > 0 {
		summary.OverallUtilization = summary.TotalSpentToday / summary.TotalDailyBudget * 100
	}
	if summary.TotalCampaigns > 0 {
		summary.OnTrackRatio = float64(summary.StatusCounts[domain.StatusOnTrack]) / float64(summary.TotalCampaigns)
	}
	return summary
}
