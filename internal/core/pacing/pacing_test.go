package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacing/internal/core/domain"
)

func at(hour int) time.Time {
	return time.Date(2026, 10, 15, hour, 30, 0, 0, time.UTC)
}

func newTestOptimizer(now time.Time) *Optimizer {
	return NewOptimizer(time.UTC, nil, WithClock(func() time.Time { return now }))
}

func campaign(strategy domain.PacingStrategy, daily, spent float64) domain.CampaignBudget {
	return domain.CampaignBudget{
		CampaignID:     "cmp-1",
		CampaignName:   "blog keywords",
		Platform:       "naver",
		DailyBudget:    daily,
		MonthlyBudget:  daily * 30,
		SpentToday:     spent,
		PacingStrategy: strategy,
	}
}

func TestCalculateHourlyBudget_FixedStrategiesSumToBudget(t *testing.T) {
	o := NewOptimizer(nil, nil)
	for _, s := range []domain.PacingStrategy{
		domain.StrategyStandard,
		domain.StrategyAccelerated,
		domain.StrategyFrontLoaded,
		domain.StrategyBackLoaded,
	} {
		t.Run(string(s), func(t *testing.T) {
			alloc, err := o.CalculateHourlyBudget(100000, s, nil)
			require.NoError(t, err)
			assert.InDelta(t, 100000, alloc.Total(), 1e-6)
			for h, v := range alloc {
				assert.Greater(t, v, 0.0, "hour %d", h)
			}
		})
	}
}

func TestCalculateHourlyBudget_Performance(t *testing.T) {
	o := NewOptimizer(nil, nil)

	_, err := o.CalculateHourlyBudget(100000, domain.StrategyPerformance, nil)
	require.ErrorIs(t, err, ErrPerformanceDataRequired)

	perf := map[int]domain.HourlyPerformance{
		10: {Hour: 10, CTR: 0.02, ROAS: 4}, // 0.02*50 + 4*0.5 = 3.0
	}
	alloc, err := o.CalculateHourlyBudget(53000, domain.StrategyPerformance, perf)
	require.NoError(t, err)

	// 23 idle hours floored at 0.1 plus 3.0 for hour 10.
	assert.InDelta(t, 30000, alloc[10], 1e-6)
	assert.InDelta(t, 1000, alloc[0], 1e-6)
	assert.InDelta(t, 53000, alloc.Total(), 1e-6)
}

func TestCalculateHourlyBudget_Dayparting(t *testing.T) {
	o := NewOptimizer(nil, nil)

	alloc, err := o.CalculateHourlyBudget(24000, domain.StrategyDayparting, nil)
	require.NoError(t, err)
	for h := range alloc {
		assert.InDelta(t, 1000, alloc[h], 1e-9)
	}

	alloc, err = o.CalculateHourlyBudget(26000, domain.StrategyDayparting, map[int]domain.HourlyPerformance{
		9: {Hour: 9, Weight: 3},
	})
	require.NoError(t, err)
	assert.InDelta(t, 3000, alloc[9], 1e-9)
	assert.InDelta(t, 1000, alloc[8], 1e-9)
}

func TestCalculateHourlyBudget_UnknownStrategy(t *testing.T) {
	o := NewOptimizer(nil, nil)
	_, err := o.CalculateHourlyBudget(1000, domain.PacingStrategy("turbo"), nil)
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestAnalyzePacing_StartOfDay(t *testing.T) {
	o := NewOptimizer(nil, nil)
	a := o.AnalyzePacing(campaign(domain.StrategyStandard, 100000, 0), at(0))

	assert.Equal(t, 1, a.HoursElapsed)
	assert.Equal(t, 23, a.HoursRemaining)
	assert.NotEqual(t, domain.StatusDepleted, a.PacingStatus)
	assert.Equal(t, 0.0, a.BudgetUtilization)
	assert.InDelta(t, 100.0/12, a.ConfidenceScore, 1e-9)
}

func TestAnalyzePacing_OnTrackWhenSpendFollowsCurve(t *testing.T) {
	o := NewOptimizer(nil, nil)
	alloc, err := o.CalculateHourlyBudget(240000, domain.StrategyStandard, nil)
	require.NoError(t, err)

	for _, hour := range []int{0, 7, 13, 22} {
		a := o.AnalyzePacing(campaign(domain.StrategyStandard, 240000, alloc.Through(hour)), at(hour))
		assert.InDelta(t, 0, a.ActualVsExpected, 1e-9, "hour %d", hour)
		assert.Equal(t, domain.StatusOnTrack, a.PacingStatus, "hour %d", hour)
		assert.Equal(t, 0.0, a.RecommendedAdjustment)
	}
}

func TestAnalyzePacing_Underspending(t *testing.T) {
	o := NewOptimizer(nil, nil)
	// Standard weights through 12h sum to 9.3 out of 21.9.
	a := o.AnalyzePacing(campaign(domain.StrategyStandard, 219000, 0), at(12))

	require.Equal(t, domain.StatusUnderspending, a.PacingStatus)
	assert.Equal(t, 13, a.HoursElapsed)
	assert.Equal(t, 11, a.HoursRemaining)
	assert.InDelta(t, 93000, a.ExpectedSpend, 1e-6)
	assert.InDelta(t, -100, a.ActualVsExpected, 1e-9)
	assert.InDelta(t, 93000.0/11*100, a.RecommendedAdjustment, 1e-6)
	assert.InDelta(t, 219000.0/11, a.RecommendedHourlyBudget, 1e-6)
	assert.Equal(t, 100.0, a.ConfidenceScore)
}

func TestAnalyzePacing_Overspending(t *testing.T) {
	o := NewOptimizer(nil, nil)
	a := o.AnalyzePacing(campaign(domain.StrategyStandard, 219000, 93000*1.5), at(12))

	require.Equal(t, domain.StatusOverspending, a.PacingStatus)
	assert.InDelta(t, 50, a.ActualVsExpected, 1e-9)
	assert.InDelta(t, -(139500.0-93000)/11*100, a.RecommendedAdjustment, 1e-6)
	assert.InDelta(t, 139500.0/13, a.BurnRate, 1e-9)
	assert.InDelta(t, 139500+139500.0/13*11, a.ProjectedEndOfDaySpend, 1e-6)
}

func TestAnalyzePacing_DepletedWins(t *testing.T) {
	o := NewOptimizer(nil, nil)
	for _, hour := range []int{0, 12, 23} {
		a := o.AnalyzePacing(campaign(domain.StrategyBackLoaded, 50000, 50000), at(hour))
		assert.Equal(t, domain.StatusDepleted, a.PacingStatus, "hour %d", hour)
	}

	a := o.AnalyzePacing(campaign(domain.StrategyStandard, 50000, 60000), at(23))
	assert.Equal(t, domain.StatusDepleted, a.PacingStatus)
	assert.Equal(t, 0, a.HoursRemaining)
	assert.Equal(t, 0.0, a.RecommendedAdjustment)
	assert.Equal(t, 0.0, a.RecommendedHourlyBudget)
}

func TestAnalyzePacing_PerformanceWithoutHistoryUsesStandardCurve(t *testing.T) {
	o := NewOptimizer(nil, nil)
	perf := o.AnalyzePacing(campaign(domain.StrategyPerformance, 219000, 0), at(12))
	std := o.AnalyzePacing(campaign(domain.StrategyStandard, 219000, 0), at(12))
	assert.InDelta(t, std.ExpectedSpend, perf.ExpectedSpend, 1e-9)
}

func TestAnalyzePacing_DefaultsToClock(t *testing.T) {
	o := newTestOptimizer(at(5))
	a := o.AnalyzePacing(campaign(domain.StrategyStandard, 100000, 0), time.Time{})
	assert.Equal(t, 6, a.HoursElapsed)
	assert.Equal(t, at(5), a.AnalyzedAt)
	assert.NotEmpty(t, a.ID)
}

func TestDetectPacingIssues(t *testing.T) {
	o := NewOptimizer(nil, nil)
	expected := 93000.0 // standard curve through 12h at a 219000 budget

	tests := []struct {
		name  string
		spent float64
		want  []domain.AlertType
		sev   []domain.AlertSeverity
	}{
		{"on track", expected, nil, nil},
		{"underspend", expected * 0.8, []domain.AlertType{domain.AlertUnderspend}, []domain.AlertSeverity{domain.SeverityWarning}},
		{"critical underspend", expected * 0.5, []domain.AlertType{domain.AlertCriticalUnderspend}, []domain.AlertSeverity{domain.SeverityCritical}},
		{"overspend", expected * 1.2, []domain.AlertType{domain.AlertOverspend}, []domain.AlertSeverity{domain.SeverityWarning}},
		{"critical overspend", expected * 1.4, []domain.AlertType{domain.AlertCriticalOverspend}, []domain.AlertSeverity{domain.SeverityCritical}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := o.DetectPacingIssues([]domain.CampaignBudget{campaign(domain.StrategyStandard, 219000, tt.spent)}, at(12))
			require.Len(t, alerts, len(tt.want))
			for i, a := range alerts {
				assert.Equal(t, tt.want[i], a.AlertType)
				assert.Equal(t, tt.sev[i], a.Severity)
				assert.NotEmpty(t, a.RecommendedAction)
				assert.Equal(t, "cmp-1", a.CampaignID)
			}
		})
	}
}

func TestDetectPacingIssues_EarlyDepletion(t *testing.T) {
	o := NewOptimizer(nil, nil)

	alerts := o.DetectPacingIssues([]domain.CampaignBudget{campaign(domain.StrategyStandard, 100000, 100000)}, at(10))
	require.Len(t, alerts, 2)
	assert.Equal(t, domain.AlertEarlyDepletion, alerts[0].AlertType)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, domain.AlertCriticalOverspend, alerts[1].AlertType)

	// Six hours left is no longer early.
	alerts = o.DetectPacingIssues([]domain.CampaignBudget{campaign(domain.StrategyStandard, 100000, 100000)}, at(17))
	for _, a := range alerts {
		assert.NotEqual(t, domain.AlertEarlyDepletion, a.AlertType)
	}
}

func TestDetectPacingIssues_CriticalUnderspendOnly(t *testing.T) {
	o := NewOptimizer(nil, nil)
	alerts := o.DetectPacingIssues([]domain.CampaignBudget{campaign(domain.StrategyStandard, 100000, 0)}, at(12))
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertCriticalUnderspend, alerts[0].AlertType)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, -30.0, alerts[0].ThresholdValue)
}

func TestGenerateRecommendations(t *testing.T) {
	o := newTestOptimizer(at(12))

	t.Run("underspending standard", func(t *testing.T) {
		recs := o.GenerateRecommendations([]domain.CampaignBudget{campaign(domain.StrategyStandard, 219000, 0)}, nil)
		require.Len(t, recs, 2)
		assert.Equal(t, domain.RecommendStrategyChange, recs[0].Type)
		assert.Equal(t, domain.StrategyAccelerated, recs[0].RecommendedStrategy)
		assert.Equal(t, 2, recs[0].Priority)
		assert.Equal(t, domain.RecommendBidAdjustment, recs[1].Type)
		assert.Equal(t, 3, recs[1].Priority)
	})

	t.Run("underspending front loaded", func(t *testing.T) {
		recs := o.GenerateRecommendations([]domain.CampaignBudget{campaign(domain.StrategyFrontLoaded, 219000, 0)}, nil)
		require.Len(t, recs, 1)
		assert.Equal(t, domain.RecommendBidAdjustment, recs[0].Type)
	})

	t.Run("overspending accelerated", func(t *testing.T) {
		// Accelerated weights through 12h sum to 15.0 out of 26.9.
		spent := 269000.0 * 15.0 / 26.9 * 1.5
		recs := o.GenerateRecommendations([]domain.CampaignBudget{campaign(domain.StrategyAccelerated, 269000, spent)}, nil)
		require.Len(t, recs, 2)
		assert.Equal(t, domain.RecommendStrategyChange, recs[0].Type)
		assert.Equal(t, domain.StrategyStandard, recs[0].RecommendedStrategy)
		assert.Equal(t, 1, recs[0].Priority)
		assert.Equal(t, domain.RecommendBudgetIncrease, recs[1].Type)
		assert.Equal(t, 2, recs[1].Priority)
	})

	t.Run("on track", func(t *testing.T) {
		recs := o.GenerateRecommendations([]domain.CampaignBudget{campaign(domain.StrategyStandard, 219000, 93000)}, nil)
		assert.Empty(t, recs)
	})
}

func TestGenerateRecommendations_PerformanceHistory(t *testing.T) {
	o := newTestOptimizer(at(12))
	history := func(highHours ...int) map[string]map[int]domain.HourlyPerformance {
		perf := make(map[int]domain.HourlyPerformance)
		for h := 0; h < 24; h++ {
			perf[h] = domain.HourlyPerformance{Hour: h, ROAS: 1.2}
		}
		for _, h := range highHours {
			perf[h] = domain.HourlyPerformance{Hour: h, ROAS: 2.5}
		}
		return map[string]map[int]domain.HourlyPerformance{"cmp-1": perf}
	}
	onTrack := campaign(domain.StrategyStandard, 219000, 93000)

	recs := o.GenerateRecommendations([]domain.CampaignBudget{onTrack}, history(10, 11, 20, 21))
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, domain.StrategyPerformance, rec.RecommendedStrategy)
	assert.Equal(t, 1, rec.Priority)
	require.Len(t, rec.HourlyAdjustments, 24)
	assert.Equal(t, 1.5, rec.HourlyAdjustments[10])
	assert.Equal(t, 1.5, rec.HourlyAdjustments[21])
	assert.Equal(t, 0.7, rec.HourlyAdjustments[3])

	assert.Empty(t, o.GenerateRecommendations([]domain.CampaignBudget{onTrack}, history(10, 11, 20)))

	perfCampaign := onTrack
	perfCampaign.PacingStrategy = domain.StrategyPerformance
	assert.Empty(t, o.GenerateRecommendations([]domain.CampaignBudget{perfCampaign}, history(10, 11, 20, 21)))
}

func TestGenerateRecommendations_SortedByPriority(t *testing.T) {
	o := newTestOptimizer(at(12))
	perf := map[int]domain.HourlyPerformance{
		9: {ROAS: 3}, 10: {ROAS: 3}, 11: {ROAS: 3}, 12: {ROAS: 3},
	}
	recs := o.GenerateRecommendations(
		[]domain.CampaignBudget{campaign(domain.StrategyStandard, 219000, 0)},
		map[string]map[int]domain.HourlyPerformance{"cmp-1": perf},
	)
	require.Len(t, recs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{recs[0].Priority, recs[1].Priority, recs[2].Priority})
	assert.Equal(t, domain.StrategyPerformance, recs[0].RecommendedStrategy)
}

func TestProjectMonthlySpend(t *testing.T) {
	o := NewOptimizer(nil, nil)
	c := domain.CampaignBudget{CampaignID: "cmp-1", MonthlyBudget: 300000, SpentThisMonth: 150000}

	p := o.ProjectMonthlySpend(c, time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 15, p.DayOfMonth)
	assert.Equal(t, 15, p.DaysRemaining)
	assert.Equal(t, 50.0, p.ExpectedUtilization)
	assert.Equal(t, 50.0, p.MonthlyUtilization)
	assert.Equal(t, domain.StatusOnTrack, p.MonthlyStatus)
	assert.InDelta(t, 10000, p.DailyAvgSpend, 1e-9)
	assert.InDelta(t, 300000, p.ProjectedMonthlySpend, 1e-9)
	assert.InDelta(t, 10000, p.RecommendedDailyBudget, 1e-9)

	c.SpentThisMonth = 100000
	p = o.ProjectMonthlySpend(c, time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, domain.StatusUnderspending, p.MonthlyStatus)

	c.SpentThisMonth = 250000
	p = o.ProjectMonthlySpend(c, time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, domain.StatusOverspending, p.MonthlyStatus)
	assert.InDelta(t, 2500, p.RecommendedDailyBudget, 1e-9)

	p = o.ProjectMonthlySpend(c, time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, p.DaysRemaining)
	assert.Equal(t, 0.0, p.RecommendedDailyBudget)
}

func TestGetSummary_Empty(t *testing.T) {
	o := newTestOptimizer(at(12))
	s := o.GetSummary(nil)

	assert.Equal(t, 0, s.TotalCampaigns)
	assert.Equal(t, 0.0, s.TotalDailyBudget)
	assert.Equal(t, 0.0, s.TotalSpentToday)
	assert.Equal(t, 0.0, s.OverallUtilization)
	assert.Equal(t, 0.0, s.OnTrackRatio)
	for _, st := range domain.Statuses {
		assert.Equal(t, 0, s.StatusCounts[st])
	}
	for _, sev := range domain.Severities {
		assert.Equal(t, 0, s.AlertCounts[sev])
	}
	assert.Empty(t, s.Alerts)
}

func TestGetSummary(t *testing.T) {
	o := newTestOptimizer(at(12))
	campaigns := []domain.CampaignBudget{
		campaign(domain.StrategyStandard, 219000, 93000),     // on track
		campaign(domain.StrategyStandard, 219000, 0),         // critical underspend
		campaign(domain.StrategyStandard, 219000, 93000*1.2), // overspend warning
		campaign(domain.StrategyStandard, 100000, 100000),    // depleted early + critical overspend
	}
	s := o.GetSummary(campaigns)

	assert.Equal(t, 4, s.TotalCampaigns)
	assert.InDelta(t, 757000, s.TotalDailyBudget, 1e-9)
	assert.InDelta(t, 93000+111600+100000, s.TotalSpentToday, 1e-6)
	assert.InDelta(t, (93000+111600+100000)/757000.0*100, s.OverallUtilization, 1e-9)
	assert.Equal(t, 1, s.StatusCounts[domain.StatusOnTrack])
	assert.Equal(t, 1, s.StatusCounts[domain.StatusUnderspending])
	assert.Equal(t, 1, s.StatusCounts[domain.StatusOverspending])
	assert.Equal(t, 1, s.StatusCounts[domain.StatusDepleted])
	assert.Equal(t, 3, s.AlertCounts[domain.SeverityCritical])
	assert.Equal(t, 1, s.AlertCounts[domain.SeverityWarning])
	assert.Equal(t, 0.25, s.OnTrackRatio)
	assert.Len(t, s.Analyses, 4)
	assert.Len(t, s.Alerts, 4)
}

func TestHourlyBreakdown(t *testing.T) {
	o := NewOptimizer(nil, nil)
	c := campaign(domain.StrategyDayparting, 24000, 0)
	rows := o.HourlyBreakdown(c, map[int]domain.HourlyPerformance{
		9:  {Hour: 9, Spend: 1500, Clicks: 12},
		10: {Hour: 10, Spend: 500},
	})

	require.Len(t, rows, 24)
	assert.Equal(t, 1000.0, rows[9].Allocated)
	assert.Equal(t, 100.0, rows[9].Utilization())
	assert.Equal(t, 50.0, rows[9].Variance())
	assert.Equal(t, int64(12), rows[9].Clicks)
	assert.Equal(t, 50.0, rows[10].Utilization())
	assert.Equal(t, -50.0, rows[10].Variance())
	assert.Equal(t, 0.0, rows[0].Utilization())
}
