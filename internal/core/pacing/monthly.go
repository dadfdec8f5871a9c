package pacing

import (
	"time"

	"adpacing/internal/core/domain"
)

// DaysInMonthApprox is the month length used by monthly projections. The
// projection deliberately ignores calendar month lengths.
const DaysInMonthApprox = 30

// monthlyBand is the tolerance, in utilization points, around the expected
// month-to-date utilization.
const monthlyBand = 10.0

// ProjectMonthlySpend linearly extrapolates month-end spend from the
// month-to-date daily average. A zero at means now.
func (o *Optimizer) ProjectMonthlySpend(c domain.CampaignBudget, at time.Time) domain.MonthlyProjection {
	at = o.resolve(at)

	day := at.Day()
	daysRemaining := max(DaysInMonthApprox-day, 0)

	// Day of month is at least 1.
	dailyAvg := c.SpentThisMonth / float64(day)
	projected := c.SpentThisMonth + dailyAvg*float64(daysRemaining)

	var utilization, projectedUtilization float64
	if c.MonthlyBudget > 0 {
		utilization = c.SpentThisMonth / c.MonthlyBudget * 100
		projectedUtilization = projected / c.MonthlyBudget * 100
	}
	expected := float64(day) / DaysInMonthApprox * 100

	status := domain.StatusOnTrack
	switch {
	case utilization < expected-monthlyBand:
		status = domain.StatusUnderspending
	case utilization > expected+monthlyBand:
		status = domain.StatusOverspending
	}

	var recommendedDaily float64
	if daysRemaining > 0 {
		recommendedDaily = max((c.MonthlyBudget-c.SpentThisMonth)/float64(daysRemaining), 0)
	}

	return domain.MonthlyProjection{
		CampaignID:             c.CampaignID,
		MonthlyBudget:          c.MonthlyBudget,
		SpentThisMonth:         c.SpentThisMonth,
		DayOfMonth:             day,
		DaysRemaining:          daysRemaining,
		DailyAvgSpend:          dailyAvg,
		ProjectedMonthlySpend:  projected,
		MonthlyUtilization:     utilization,
		ExpectedUtilization:    expected,
		ProjectedUtilization:   projectedUtilization,
		MonthlyStatus:          status,
		RecommendedDailyBudget: recommendedDaily,
	}
}
