package domain

import "time"

// AlertSeverity ranks a pacing alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Severities lists every alert severity.
var Severities = []AlertSeverity{SeverityInfo, SeverityWarning, SeverityCritical}

// AlertType identifies the kind of pacing anomaly.
type AlertType string

const (
	AlertEarlyDepletion     AlertType = "early_depletion"
	AlertCriticalUnderspend AlertType = "critical_underspend"
	AlertUnderspend         AlertType = "underspend"
	AlertCriticalOverspend  AlertType = "critical_overspend"
	AlertOverspend          AlertType = "overspend"
)

// PacingAlert is one anomaly detected for a campaign in a detection run.
type PacingAlert struct {
	ID                string        `json:"id"`
	CampaignID        string        `json:"campaign_id"`
	CampaignName      string        `json:"campaign_name"`
	AlertType         AlertType     `json:"alert_type"`
	Severity          AlertSeverity `json:"severity"`
	Message           string        `json:"message"`
	CurrentValue      float64       `json:"current_value"`
	ThresholdValue    float64       `json:"threshold_value"`
	RecommendedAction string        `json:"recommended_action"`
	CreatedAt         time.Time     `json:"created_at"`
}
