package port

import (
	"context"
	"errors"
	"time"

	"adpacing/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// BudgetRepository defines the persistence layer for pacing. It is an
// outbound port in hexagonal architecture. Implementations must be safe for
// concurrent use.
type BudgetRepository interface {
	// ListCampaignBudgets returns the budget state of all active campaigns.
	ListCampaignBudgets(ctx context.Context) ([]domain.CampaignBudget, error)
	// GetCampaignBudget returns a campaign budget by id, or nil when the
	// campaign does not exist.
	GetCampaignBudget(ctx context.Context, campaignID string) (*domain.CampaignBudget, error)
	// UpdatePacingStrategy changes the pacing strategy of a campaign.
	UpdatePacingStrategy(ctx context.Context, campaignID string, strategy domain.PacingStrategy) error
	// GetHourlyPerformance aggregates per-hour performance of a campaign
	// recorded since the given time.
	GetHourlyPerformance(ctx context.Context, campaignID string, since time.Time) (map[int]domain.HourlyPerformance, error)

	// SaveAnalyses stores pacing analyses.
	SaveAnalyses(ctx context.Context, analyses []domain.PacingAnalysis) error
	// SaveAlerts stores pacing alerts.
	SaveAlerts(ctx context.Context, alerts []domain.PacingAlert) error
	// SaveRecommendations stores pacing recommendations.
	SaveRecommendations(ctx context.Context, recs []domain.PacingRecommendation) error
}
