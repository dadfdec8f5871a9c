package port

import (
	"context"

	"adpacing/internal/core/domain"
)

// PacingUseCase defines the business operations exposed by the pacing
// service. It is the primary port used by the HTTP adapter and the
// scheduler.
type PacingUseCase interface {
	// Summary analyses every active campaign and returns the aggregated
	// summary without storing anything.
	Summary(ctx context.Context) (*domain.PacingSummary, error)

	// RunPacingCheck analyses every active campaign, stores the analyses and
	// alerts and returns the aggregated summary.
	RunPacingCheck(ctx context.Context) (*domain.PacingSummary, error)

	// AnalyzeCampaign analyses a single campaign and stores the result.
	// ErrCampaignNotFound is returned for unknown ids.
	AnalyzeCampaign(ctx context.Context, campaignID string) (*domain.PacingAnalysis, error)

	// HourlyBudget returns today's hourly allocation of a campaign together
	// with observed delivery.
	HourlyBudget(ctx context.Context, campaignID string) ([]domain.HourlyBudget, error)

	// MonthlyProjection projects month-end spend for a campaign.
	MonthlyProjection(ctx context.Context, campaignID string) (*domain.MonthlyProjection, error)

	// Recommendations generates and stores recommendations for all active
	// campaigns, most urgent first.
	Recommendations(ctx context.Context) ([]domain.PacingRecommendation, error)

	// ChangeStrategy switches the pacing strategy of a campaign.
	ChangeStrategy(ctx context.Context, campaignID string, strategy domain.PacingStrategy) error
}
