package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaign budgets and a week of hourly performance.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	platforms := []string{"naver", "google", "meta", "kakao"}
	strategies := []string{"standard", "accelerated", "front_loaded", "back_loaded", "performance", "dayparting"}
	now := time.Now()

	for i := 1; i <= 6; i++ {
		id := fmt.Sprintf("cmp-%03d", i)
		name := fmt.Sprintf("Blog campaign %d", i)
		dailyBudget := float64(50000 * i) // KRW
		monthlyBudget := dailyBudget * 30
		spentToday := dailyBudget * (0.2 + r.Float64()*0.8) * float64(now.Hour()+1) / 24
		spentThisMonth := dailyBudget * float64(now.Day()-1) * (0.8 + r.Float64()*0.4)

		var weights []byte
		if strategies[i-1] == "dayparting" {
			// evenings and lunch break weigh double
			w := map[int]float64{12: 2, 13: 2, 19: 2, 20: 2, 21: 2, 22: 2}
			weights, _ = json.Marshal(w)
		}

		tag, err := db.Exec(ctx, `INSERT INTO campaign_budgets
    (campaign_id, campaign_name, platform, daily_budget, monthly_budget, spent_today,
     spent_this_month, pacing_strategy, daypart_weights, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'active',now(),now()) ON CONFLICT DO NOTHING`,
			id, name, platforms[(i-1)%len(platforms)], dailyBudget, monthlyBudget,
			spentToday, spentThisMonth, strategies[i-1], weights)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// already seeded
			continue
		}

		for d := 1; d <= 7; d++ {
			day := now.AddDate(0, 0, -d)
			for h := 0; h < 24; h++ {
				impressions := int64(200 + r.Intn(800))
				clicks := impressions * int64(1+r.Intn(5)) / 100
				conversions := clicks * int64(r.Intn(10)) / 100
				spend := float64(clicks) * float64(300+r.Intn(700))
				revenue := spend * (0.5 + r.Float64()*3)
				recordedAt := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
				_, err = db.Exec(ctx, `INSERT INTO campaign_hourly_performance
(campaign_id, recorded_at, hour, impressions, clicks, conversions, spend, revenue)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
					id, recordedAt, h, impressions, clicks, conversions, spend, revenue)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
