package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Pacing check runs by outcome (ok, error).
	PacingChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacing_checks_total",
			Help: "Count of pacing check runs by result.",
		},
		[]string{"result"},
	)

	PacingCheckDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pacing_check_duration_seconds",
		Help:    "Duration of a full pacing check run",
		Buckets: prometheus.DefBuckets,
	})

	// Campaigns per pacing status in the latest check.
	PacingCampaigns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pacing_campaigns",
			Help: "Number of campaigns per pacing status in the latest check.",
		},
		[]string{"status"},
	)

	PacingAlertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacing_alerts_total",
			Help: "Count of pacing alerts by severity and type.",
		},
		[]string{"severity", "type"},
	)

	PacingRecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacing_recommendations_total",
			Help: "Count of generated pacing recommendations by type.",
		},
		[]string{"type"},
	)
)

func Init() {
	prometheus.MustRegister(
		PacingChecksTotal,
		PacingCheckDuration,
		PacingCampaigns,
		PacingAlertsTotal,
		PacingRecommendationsTotal,
	)
}
