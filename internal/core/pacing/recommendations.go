package pacing

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"adpacing/internal/core/domain"
)

const (
	// highROAS marks an hour as profitable (200% return on ad spend).
	highROAS = 2.0
	// minHighROASHours is how many profitable hours justify performance pacing.
	minHighROASHours = 4

	highROASMultiplier = 1.5
	lowROASMultiplier  = 0.7
)

// GenerateRecommendations proposes strategy, bid and budget changes for each
// campaign. history maps campaign id to its per-hour performance and may be
// nil. Results are ordered by priority, most urgent first.
func (o *Optimizer) GenerateRecommendations(campaigns []domain.CampaignBudget, history map[string]map[int]domain.HourlyPerformance) []domain.PacingRecommendation {
	at := o.resolve(time.Time{})

	var recs []domain.PacingRecommendation
	for _, c := range campaigns {
		a := o.AnalyzePacing(c, at)
		recs = append(recs, pacingRecommendations(c, a)...)
		if rec, ok := performanceRecommendation(c, history[c.CampaignID], at); ok {
			recs = append(recs, rec)
		}
	}

	slices.SortStableFunc(recs, func(a, b domain.PacingRecommendation) int {
		return a.Priority - b.Priority
	})
	return recs
}

func pacingRecommendations(c domain.CampaignBudget, a domain.PacingAnalysis) []domain.PacingRecommendation {
	var recs []domain.PacingRecommendation
	switch a.PacingStatus {
	case domain.StatusUnderspending:
		if c.PacingStrategy == domain.StrategyStandard {
			recs = append(recs, newRecommendation(c, a.AnalyzedAt, domain.RecommendStrategyChange, domain.StrategyAccelerated, 2,
				fmt.Sprintf("Spend is %.1f%% behind plan. Switch to accelerated pacing to deliver more of the budget earlier.", -a.ActualVsExpected),
				"Higher delivery during the remaining hours of the day"))
		}
		recs = append(recs, newRecommendation(c, a.AnalyzedAt, domain.RecommendBidAdjustment, c.PacingStrategy, 3,
			"Raise bids by 10-20% to win more auctions.",
			"More impressions and clicks at a slightly higher CPC"))
	case domain.StatusOverspending:
		if c.PacingStrategy == domain.StrategyAccelerated {
			recs = append(recs, newRecommendation(c, a.AnalyzedAt, domain.RecommendStrategyChange, domain.StrategyStandard, 1,
				fmt.Sprintf("Spend is %.1f%% ahead of plan. Switch to standard pacing to avoid running out early.", a.ActualVsExpected),
				"Budget lasts through the evening peak"))
		}
		recs = append(recs, newRecommendation(c, a.AnalyzedAt, domain.RecommendBudgetIncrease, c.PacingStrategy, 2,
			fmt.Sprintf("Demand exceeds the daily budget of %.0f. Consider raising it.", c.DailyBudget),
			"Capture demand that is currently capped by budget"))
	}
	return recs
}

// performanceRecommendation suggests performance pacing when enough hours
// return more than highROAS.
func performanceRecommendation(c domain.CampaignBudget, history map[int]domain.HourlyPerformance, at time.Time) (domain.PacingRecommendation, bool) {
	if len(history) == 0 || c.PacingStrategy == domain.StrategyPerformance {
		return domain.PacingRecommendation{}, false
	}

	high := make(map[int]bool)
	for h, p := range history {
		if h >= 0 && h < domain.HoursPerDay && p.ROAS > highROAS {
			high[h] = true
		}
	}
	if len(high) < minHighROASHours {
		return domain.PacingRecommendation{}, false
	}

	adjustments := make(map[int]float64, domain.HoursPerDay)
	for h := 0; h < domain.HoursPerDay; h++ {
		if high[h] {
			adjustments[h] = highROASMultiplier
		} else {
			adjustments[h] = lowROASMultiplier
		}
	}

	rec := newRecommendation(c, at, domain.RecommendStrategyChange, domain.StrategyPerformance, 1,
		fmt.Sprintf("%d hours return more than %.0f%% ROAS. Shift budget toward them with performance pacing.", len(high), highROAS*100),
		"Higher overall ROAS at the same daily budget")
	rec.HourlyAdjustments = adjustments
	return rec, true
}

func newRecommendation(c domain.CampaignBudget, at time.Time, typ domain.RecommendationType, recommended domain.PacingStrategy, priority int, desc, impact string) domain.PacingRecommendation {
	return domain.PacingRecommendation{
		ID:                  uuid.NewString(),
		CampaignID:          c.CampaignID,
		Type:                typ,
		CurrentStrategy:     c.PacingStrategy,
		RecommendedStrategy: recommended,
		Description:         desc,
		ExpectedImpact:      impact,
		Priority:            priority,
		CreatedAt:           at,
	}
}
