package pacing

import (
	"errors"
	"fmt"

	"adpacing/internal/core/domain"
)

var (
	// ErrUnknownStrategy is returned for a strategy the allocator cannot
	// dispatch.
	ErrUnknownStrategy = errors.New("unknown pacing strategy")
	// ErrPerformanceDataRequired is returned when the performance strategy is
	// requested without hourly history.
	ErrPerformanceDataRequired = errors.New("performance strategy requires hourly performance data")
)

const (
	// Hourly weight of the performance strategy is ctr*ctrWeight + roas*roasWeight.
	ctrWeight  = 50.0
	roasWeight = 0.5
	// minPerformanceWeight keeps idle hours funded.
	minPerformanceWeight = 0.1
	defaultDaypartWeight = 1.0
)

// CalculateHourlyBudget spreads dailyBudget over the 24 hours of the day
// according to strategy. performance is consulted only by the performance
// and dayparting strategies and may be nil otherwise.
func (o *Optimizer) CalculateHourlyBudget(dailyBudget float64, strategy domain.PacingStrategy, performance map[int]domain.HourlyPerformance) (domain.HourlyAllocation, error) {
	weights, err := strategyWeights(strategy, performance)
	if err != nil {
		return domain.HourlyAllocation{}, err
	}
	return normalize(weights, dailyBudget), nil
}

func strategyWeights(strategy domain.PacingStrategy, performance map[int]domain.HourlyPerformance) (domain.HourlyAllocation, error) {
	var weights domain.HourlyAllocation
	switch strategy {
	case domain.StrategyStandard:
		weights = standardWeights
	case domain.StrategyAccelerated:
		weights = acceleratedWeights
	case domain.StrategyFrontLoaded:
		weights = frontLoadedWeights
	case domain.StrategyBackLoaded:
		weights = backLoadedWeights
	case domain.StrategyPerformance:
		if len(performance) == 0 {
			return weights, ErrPerformanceDataRequired
		}
		for h := range weights {
			p := performance[h]
			w := p.CTR*ctrWeight + p.ROAS*roasWeight
			if w < minPerformanceWeight {
				w = minPerformanceWeight
			}
			weights[h] = w
		}
	case domain.StrategyDayparting:
		for h := range weights {
			weights[h] = defaultDaypartWeight
			if p, ok := performance[h]; ok && p.Weight >= 0 {
				weights[h] = p.Weight
			}
		}
	default:
		return weights, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return weights, nil
}

// normalize scales weights so that they sum to total. A zero weight sum
// yields an even split.
func normalize(weights domain.HourlyAllocation, total float64) domain.HourlyAllocation {
	var out domain.HourlyAllocation
	if total <= 0 {
		return out
	}
	sum := weights.Total()
	for h, w := range weights {
		if sum > 0 {
			out[h] = w / sum * total
		} else {
			out[h] = total / domain.HoursPerDay
		}
	}
	return out
}

// daypartPerformance converts a dayparting schedule into the performance
// shape the allocator reads weights from.
func daypartPerformance(weights map[int]float64) map[int]domain.HourlyPerformance {
	if len(weights) == 0 {
		return nil
	}
	out := make(map[int]domain.HourlyPerformance, len(weights))
	for h, w := range weights {
		out[h] = domain.HourlyPerformance{Hour: h, Weight: w}
	}
	return out
}

// allocationFor computes the allocation a campaign is paced against. A
// performance campaign without history is paced on the standard curve.
func (o *Optimizer) allocationFor(c domain.CampaignBudget) domain.HourlyAllocation {
	var performance map[int]domain.HourlyPerformance
	switch c.PacingStrategy {
	case domain.StrategyPerformance:
		performance = c.Performance
	case domain.StrategyDayparting:
		performance = daypartPerformance(c.DaypartWeights)
	}

	alloc, err := o.CalculateHourlyBudget(c.DailyBudget, c.PacingStrategy, performance)
	if err != nil {
		o.logger.Debug("falling back to standard pacing curve",
			"campaign_id", c.CampaignID,
			"strategy", string(c.PacingStrategy),
			"error", err)
		return normalize(standardWeights, c.DailyBudget)
	}
	return alloc
}

// HourlyBreakdown pairs the campaign's allocation with observed per-hour
// delivery. Hours without actuals report zero delivery.
func (o *Optimizer) HourlyBreakdown(c domain.CampaignBudget, actuals map[int]domain.HourlyPerformance) []domain.HourlyBudget {
	alloc := o.allocationFor(c)
	rows := make([]domain.HourlyBudget, 0, domain.HoursPerDay)
	for h, allocated := range alloc {
		a := actuals[h]
		rows = append(rows, domain.HourlyBudget{
			Hour:        h,
			Allocated:   allocated,
			ActualSpend: a.Spend,
			Impressions: a.Impressions,
			Clicks:      a.Clicks,
			Conversions: a.Conversions,
		})
	}
	return rows
}
