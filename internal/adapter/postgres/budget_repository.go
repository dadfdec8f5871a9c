package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpacing/internal/core/domain"
	"adpacing/internal/core/port"
)

// BudgetRepository implements port.BudgetRepository using pgxpool for PostgreSQL.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository returns a new repository instance.
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const selectBudget = `
        SELECT
            campaign_id,
            campaign_name,
            platform,
            daily_budget,
            monthly_budget,
            spent_today,
            spent_this_month,
            pacing_strategy,
            COALESCE(daypart_weights, '{}'::jsonb),
            updated_at
        FROM campaign_budgets`

func scanBudget(row pgx.CollectableRow) (domain.CampaignBudget, error) {
	var (
		c        domain.CampaignBudget
		strategy string
		weights  []byte
	)
	err := row.Scan(
		&c.CampaignID,
		&c.CampaignName,
		&c.Platform,
		&c.DailyBudget,
		&c.MonthlyBudget,
		&c.SpentToday,
		&c.SpentThisMonth,
		&strategy,
		&weights,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.PacingStrategy = domain.PacingStrategy(strategy)
	if err = json.Unmarshal(weights, &c.DaypartWeights); err != nil {
		return c, fmt.Errorf("daypart weights of %s: %w", c.CampaignID, err)
	}
	if len(c.DaypartWeights) == 0 {
		c.DaypartWeights = nil
	}
	return c, nil
}

// ListCampaignBudgets returns budgets of all active campaigns.
func (r *BudgetRepository) ListCampaignBudgets(ctx context.Context) ([]domain.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx, selectBudget+` WHERE status = 'active' ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBudget)
}

// GetCampaignBudget returns a campaign budget by id.
func (r *BudgetRepository) GetCampaignBudget(ctx context.Context, campaignID string) (*domain.CampaignBudget, error) {
	rows, err := r.pool.Query(ctx, selectBudget+` WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanBudget)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdatePacingStrategy changes the strategy of a campaign.
func (r *BudgetRepository) UpdatePacingStrategy(ctx context.Context, campaignID string, strategy domain.PacingStrategy) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_budgets SET pacing_strategy = $1, updated_at = now() WHERE campaign_id = $2`, string(strategy), campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// GetHourlyPerformance aggregates delivery per hour of day since the given
// time. CTR and ROAS are derived from the sums.
func (r *BudgetRepository) GetHourlyPerformance(ctx context.Context, campaignID string, since time.Time) (map[int]domain.HourlyPerformance, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            hour,
            COALESCE(sum(impressions), 0)::bigint,
            COALESCE(sum(clicks), 0)::bigint,
            COALESCE(sum(conversions), 0)::bigint,
            COALESCE(sum(spend), 0)::double precision,
            COALESCE(sum(revenue), 0)::double precision
        FROM campaign_hourly_performance
        WHERE campaign_id = $1 AND recorded_at >= $2
        GROUP BY hour`, campaignID, since)
	if err != nil {
		return nil, err
	}
	perf, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HourlyPerformance, error) {
		var p domain.HourlyPerformance
		err := row.Scan(&p.Hour, &p.Impressions, &p.Clicks, &p.Conversions, &p.Spend, &p.Revenue)
		return p, err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int]domain.HourlyPerformance, len(perf))
	for _, p := range perf {
		if p.Impressions > 0 {
			p.CTR = float64(p.Clicks) / float64(p.Impressions)
		}
		if p.Spend > 0 {
			p.ROAS = p.Revenue / p.Spend
		}
		out[p.Hour] = p
	}
	return out, nil
}

// SaveAnalyses inserts analyses in a single transaction.
func (r *BudgetRepository) SaveAnalyses(ctx context.Context, analyses []domain.PacingAnalysis) error {
	if len(analyses) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range analyses {
		batch.Queue(`INSERT INTO pacing_analyses
    (id, campaign_id, strategy, analyzed_at, hours_elapsed, hours_remaining, daily_budget,
     expected_spend, actual_spend, actual_vs_expected, pacing_status, burn_rate,
     projected_end_of_day_spend, budget_utilization, recommended_adjustment,
     recommended_hourly_budget, confidence_score)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
			a.ID, a.CampaignID, string(a.Strategy), a.AnalyzedAt, a.HoursElapsed, a.HoursRemaining, a.DailyBudget,
			a.ExpectedSpend, a.ActualSpend, a.ActualVsExpected, string(a.PacingStatus), a.BurnRate,
			a.ProjectedEndOfDaySpend, a.BudgetUtilization, a.RecommendedAdjustment,
			a.RecommendedHourlyBudget, a.ConfidenceScore)
	}
	return r.sendBatch(ctx, batch)
}

// SaveAlerts inserts alerts in a single transaction.
func (r *BudgetRepository) SaveAlerts(ctx context.Context, alerts []domain.PacingAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range alerts {
		batch.Queue(`INSERT INTO pacing_alerts
    (id, campaign_id, alert_type, severity, message, current_value, threshold_value, recommended_action, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			a.ID, a.CampaignID, string(a.AlertType), string(a.Severity), a.Message,
			a.CurrentValue, a.ThresholdValue, a.RecommendedAction, a.CreatedAt)
	}
	return r.sendBatch(ctx, batch)
}

// SaveRecommendations inserts recommendations in a single transaction.
func (r *BudgetRepository) SaveRecommendations(ctx context.Context, recs []domain.PacingRecommendation) error {
	if len(recs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range recs {
		var adjustments []byte
		if len(rec.HourlyAdjustments) > 0 {
			var err error
			if adjustments, err = json.Marshal(rec.HourlyAdjustments); err != nil {
				return err
			}
		}
		batch.Queue(`INSERT INTO pacing_recommendations
    (id, campaign_id, type, current_strategy, recommended_strategy, description,
     expected_impact, priority, hourly_adjustments, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			rec.ID, rec.CampaignID, string(rec.Type), string(rec.CurrentStrategy), string(rec.RecommendedStrategy),
			rec.Description, rec.ExpectedImpact, rec.Priority, adjustments, rec.CreatedAt)
	}
	return r.sendBatch(ctx, batch)
}

func (r *BudgetRepository) sendBatch(ctx context.Context, batch *pgx.Batch) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	err = tx.SendBatch(ctx, batch).Close()
	return err
}
