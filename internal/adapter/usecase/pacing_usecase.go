package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adpacing/internal/core/domain"
	"adpacing/internal/core/pacing"
	"adpacing/internal/core/port"
	"adpacing/internal/metrics"
)

// PacingUseCase orchestrates the budget repository and the pacing engine to
// implement port.PacingUseCase.
type PacingUseCase struct {
	repo      port.BudgetRepository
	optimizer *pacing.Optimizer
	logger    *slog.Logger

	// lookback is how far back hourly performance history is aggregated
	// for performance pacing and recommendations.
	lookback time.Duration
	now      func() time.Time
}

// NewPacingUseCase creates a new usecase. lookbackDays below 1 default to
// 14 days of history.
func NewPacingUseCase(repo port.BudgetRepository, optimizer *pacing.Optimizer, logger *slog.Logger, lookbackDays int) *PacingUseCase {
	if lookbackDays < 1 {
		lookbackDays = 14
	}
	return &PacingUseCase{
		repo:      repo,
		optimizer: optimizer,
		logger:    logger,
		lookback:  time.Duration(lookbackDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

// RunPacingCheck analyses all active campaigns, persists the analyses and
// alerts of the run and returns the summary.
func (u *PacingUseCase) RunPacingCheck(ctx context.Context) (summary *domain.PacingSummary, err error) {
	start := u.now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.PacingChecksTotal.WithLabelValues(result).Inc()
		metrics.PacingCheckDuration.Observe(time.Since(start).Seconds())
	}()

	campaigns, err := u.loadCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	s := u.optimizer.GetSummary(campaigns)
	if err = u.repo.SaveAnalyses(ctx, s.Analyses); err != nil {
		return nil, fmt.Errorf("save analyses: %w", err)
	}
	if len(s.Alerts) > 0 {
		if err = u.repo.SaveAlerts(ctx, s.Alerts); err != nil {
			return nil, fmt.Errorf("save alerts: %w", err)
		}
	}

	for status, n := range s.StatusCounts {
		metrics.PacingCampaigns.WithLabelValues(string(status)).Set(float64(n))
	}
	for _, a := range s.Alerts {
		metrics.PacingAlertsTotal.WithLabelValues(string(a.Severity), string(a.AlertType)).Inc()
		if a.Severity == domain.SeverityCritical {
			u.logger.Warn("pacing alert",
				slog.String("campaign_id", a.CampaignID),
				slog.String("type", string(a.AlertType)),
				slog.Float64("current", a.CurrentValue))
		}
	}

	u.logger.Info("pacing check completed",
		slog.Int("campaigns", s.TotalCampaigns),
		slog.Int("alerts", len(s.Alerts)),
		slog.Float64("utilization", s.OverallUtilization))
	return &s, nil
}

// Summary analyses all active campaigns and returns the aggregated summary.
// Nothing is stored and no metrics are updated.
func (u *PacingUseCase) Summary(ctx context.Context) (*domain.PacingSummary, error) {
	campaigns, err := u.loadCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	s := u.optimizer.GetSummary(campaigns)
	return &s, nil
}

// AnalyzeCampaign analyses one campaign and stores the analysis.
func (u *PacingUseCase) AnalyzeCampaign(ctx context.Context, campaignID string) (*domain.PacingAnalysis, error) {
	c, err := u.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	a := u.optimizer.AnalyzePacing(*c, time.Time{})
	if err = u.repo.SaveAnalyses(ctx, []domain.PacingAnalysis{a}); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	return &a, nil
}

// HourlyBudget returns today's allocation for a campaign alongside the
// delivery recorded since midnight in the pacing time zone.
func (u *PacingUseCase) HourlyBudget(ctx context.Context, campaignID string) ([]domain.HourlyBudget, error) {
	c, err := u.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	now := u.now().In(u.optimizer.Location())
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	actuals, err := u.repo.GetHourlyPerformance(ctx, campaignID, midnight)
	if err != nil {
		return nil, fmt.Errorf("hourly performance: %w", err)
	}
	return u.optimizer.HourlyBreakdown(*c, actuals), nil
}

// MonthlyProjection projects month-end spend of a campaign.
func (u *PacingUseCase) MonthlyProjection(ctx context.Context, campaignID string) (*domain.MonthlyProjection, error) {
	c, err := u.loadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	p := u.optimizer.ProjectMonthlySpend(*c, time.Time{})
	return &p, nil
}

// Recommendations generates recommendations for all active campaigns using
// their recent hourly history, stores and returns them.
func (u *PacingUseCase) Recommendations(ctx context.Context) ([]domain.PacingRecommendation, error) {
	campaigns, err := u.loadCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	history := make(map[string]map[int]domain.HourlyPerformance, len(campaigns))
	for _, c := range campaigns {
		if c.Performance != nil {
			history[c.CampaignID] = c.Performance
			continue
		}
		perf, err := u.repo.GetHourlyPerformance(ctx, c.CampaignID, u.now().Add(-u.lookback))
		if err != nil {
			return nil, fmt.Errorf("hourly performance of %s: %w", c.CampaignID, err)
		}
		history[c.CampaignID] = perf
	}

	recs := u.optimizer.GenerateRecommendations(campaigns, history)
	if len(recs) > 0 {
		if err = u.repo.SaveRecommendations(ctx, recs); err != nil {
			return nil, fmt.Errorf("save recommendations: %w", err)
		}
	}
	for _, r := range recs {
		metrics.PacingRecommendationsTotal.WithLabelValues(string(r.Type)).Inc()
	}
	return recs, nil
}

// ChangeStrategy switches the pacing strategy of an existing campaign.
func (u *PacingUseCase) ChangeStrategy(ctx context.Context, campaignID string, strategy domain.PacingStrategy) error {
	if _, err := u.loadCampaign(ctx, campaignID); err != nil {
		return err
	}
	if err := u.repo.UpdatePacingStrategy(ctx, campaignID, strategy); err != nil {
		return fmt.Errorf("update strategy: %w", err)
	}
	u.logger.Info("pacing strategy changed",
		slog.String("campaign_id", campaignID),
		slog.String("strategy", string(strategy)))
	return nil
}

func (u *PacingUseCase) loadCampaigns(ctx context.Context) ([]domain.CampaignBudget, error) {
	campaigns, err := u.repo.ListCampaignBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaign budgets: %w", err)
	}
	for i := range campaigns {
		if err = u.attachPerformance(ctx, &campaigns[i]); err != nil {
			return nil, err
		}
	}
	return campaigns, nil
}

func (u *PacingUseCase) loadCampaign(ctx context.Context, campaignID string) (*domain.CampaignBudget, error) {
	c, err := u.repo.GetCampaignBudget(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign budget: %w", err)
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	if err = u.attachPerformance(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// attachPerformance loads the hourly history a performance-paced campaign is
// allocated by.
func (u *PacingUseCase) attachPerformance(ctx context.Context, c *domain.CampaignBudget) error {
	if c.PacingStrategy != domain.StrategyPerformance || c.Performance != nil {
		return nil
	}
	perf, err := u.repo.GetHourlyPerformance(ctx, c.CampaignID, u.now().Add(-u.lookback))
	if err != nil {
		return fmt.Errorf("hourly performance of %s: %w", c.CampaignID, err)
	}
	c.Performance = perf
	return nil
}
