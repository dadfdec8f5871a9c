package pacing

import (
	"math"
	"time"

	"github.com/google/uuid"

	"adpacing/internal/core/domain"
)

const (
	// Deviation band, in percent of expected spend, inside which a campaign
	// is on track.
	underspendThreshold = -15.0
	overspendThreshold  = 15.0
	// confidenceFullHours is the elapsed time after which an analysis is
	// fully trusted.
	confidenceFullHours = 12.0
)

// AnalyzePacing compares a campaign's spend so far with the spend its
// allocation expects by the hour of at. A zero at means now.
func (o *Optimizer) AnalyzePacing(c domain.CampaignBudget, at time.Time) domain.PacingAnalysis {
	at = o.resolve(at)

	hoursElapsed := at.Hour() + 1
	hoursRemaining := domain.HoursPerDay - hoursElapsed

	alloc := o.allocationFor(c)
	expected := alloc.Through(hoursElapsed - 1)

	var actualVsExpected float64
	if expected > 0 {
		actualVsExpected = (c.SpentToday - expected) / expected * 100
	}

	status := classify(c, actualVsExpected)

	var burnRate float64
	if hoursElapsed > 0 {
		burnRate = c.SpentToday / float64(hoursElapsed)
	}

	var utilization float64
	if c.DailyBudget > 0 {
		utilization = c.SpentToday / c.DailyBudget * 100
	}

	var adjustment, hourlyBudget float64
	if hoursRemaining > 0 {
		switch status {
		case domain.StatusUnderspending:
			adjustment = (expected - c.SpentToday) / float64(hoursRemaining) * 100
		case domain.StatusOverspending:
			adjustment = -(c.SpentToday - expected) / float64(hoursRemaining) * 100
		}
		hourlyBudget = c.RemainingToday() / float64(hoursRemaining)
	}

	return domain.PacingAnalysis{
		ID:                      uuid.NewString(),
		CampaignID:              c.CampaignID,
		CampaignName:            c.CampaignName,
		Strategy:                c.PacingStrategy,
		AnalyzedAt:              at,
		HoursElapsed:            hoursElapsed,
		HoursRemaining:          hoursRemaining,
		DailyBudget:             c.DailyBudget,
		ExpectedSpend:           expected,
		ActualSpend:             c.SpentToday,
		ActualVsExpected:        actualVsExpected,
		PacingStatus:            status,
		BurnRate:                burnRate,
		ProjectedEndOfDaySpend:  c.SpentToday + burnRate*float64(hoursRemaining),
		BudgetUtilization:       utilization,
		RecommendedAdjustment:   adjustment,
		RecommendedHourlyBudget: hourlyBudget,
		ConfidenceScore:         math.Min(float64(hoursElapsed)/confidenceFullHours, 1.0) * 100,
	}
}

// classify applies the status rules in order: depleted, underspending,
// overspending, on track.
func classify(c domain.CampaignBudget, actualVsExpected float64) domain.PacingStatus {
	switch {
	case c.SpentToday >= c.DailyBudget:
		return domain.StatusDepleted
	case actualVsExpected < underspendThreshold:
		return domain.StatusUnderspending
	case actualVsExpected > overspendThreshold:
		return domain.StatusOverspending
	default:
		return domain.StatusOnTrack
	}
}

func (o *Optimizer) analyzeAll(campaigns []domain.CampaignBudget, at time.Time) []domain.PacingAnalysis {
	analyses := make([]domain.PacingAnalysis, 0, len(campaigns))
	for _, c := range campaigns {
		analyses = append(analyses, o.AnalyzePacing(c, at))
	}
	return analyses
}
