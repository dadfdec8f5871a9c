package pacing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"adpacing/internal/core/domain"
)

const (
	criticalUnderspendThreshold = -30.0
	criticalOverspendThreshold  = 30.0
	// earlyDepletionHours is the number of remaining hours above which a
	// depleted budget is critical.
	earlyDepletionHours = 6
)

var recommendedActions = map[domain.AlertType]string{
	domain.AlertEarlyDepletion:     "Raise the daily budget or lower bids so the campaign keeps serving for the rest of the day.",
	domain.AlertCriticalUnderspend: "Raise bids or broaden keyword targeting immediately.",
	domain.AlertUnderspend:         "Consider raising bids or switching to accelerated pacing.",
	domain.AlertCriticalOverspend:  "Lower bids or cap hourly spend immediately.",
	domain.AlertOverspend:          "Consider lowering bids or switching to standard pacing.",
}

// DetectPacingIssues analyses every campaign at at (zero means now) and
// returns the alerts raised by this run.
func (o *Optimizer) DetectPacingIssues(campaigns []domain.CampaignBudget, at time.Time) []domain.PacingAlert {
	at = o.resolve(at)
	var alerts []domain.PacingAlert
	for _, a := range o.analyzeAll(campaigns, at) {
		alerts = append(alerts, alertsFor(a)...)
	}
	return alerts
}

// alertsFor derives the alerts of a single analysis. Early depletion is
// checked on its own; underspend and overspend levels exclude each other.
func alertsFor(a domain.PacingAnalysis) []domain.PacingAlert {
	var alerts []domain.PacingAlert

	if a.PacingStatus == domain.StatusDepleted && a.HoursRemaining > earlyDepletionHours {
		alerts = append(alerts, newAlert(a, domain.AlertEarlyDepletion, domain.SeverityCritical,
			fmt.Sprintf("%s exhausted its daily budget with %d hours remaining", a.CampaignName, a.HoursRemaining),
			a.BudgetUtilization, 100))
	}

	ave := a.ActualVsExpected
	switch {
	case ave < criticalUnderspendThreshold:
		alerts = append(alerts, newAlert(a, domain.AlertCriticalUnderspend, domain.SeverityCritical,
			fmt.Sprintf("%s is spending %.1f%% below plan", a.CampaignName, -ave),
			ave, criticalUnderspendThreshold))
	case ave < underspendThreshold:
		alerts = append(alerts, newAlert(a, domain.AlertUnderspend, domain.SeverityWarning,
			fmt.Sprintf("%s is spending %.1f%% below plan", a.CampaignName, -ave),
			ave, underspendThreshold))
	case ave > criticalOverspendThreshold:
		alerts = append(alerts, newAlert(a, domain.AlertCriticalOverspend, domain.SeverityCritical,
			fmt.Sprintf("%s is spending %.1f%% above plan", a.CampaignName, ave),
			ave, criticalOverspendThreshold))
	case ave > overspendThreshold:
		alerts = append(alerts, newAlert(a, domain.AlertOverspend, domain.SeverityWarning,
			fmt.Sprintf("%s is spending %.1f%% above plan", a.CampaignName, ave),
			ave, overspendThreshold))
	}
	return alerts
}

func newAlert(a domain.PacingAnalysis, typ domain.AlertType, sev domain.AlertSeverity, msg string, current, threshold float64) domain.PacingAlert {
	return domain.PacingAlert{
		ID:                uuid.NewString(),
		CampaignID:        a.CampaignID,
		CampaignName:      a.CampaignName,
		AlertType:         typ,
		Severity:          sev,
		Message:           msg,
		CurrentValue:      current,
		ThresholdValue:    threshold,
		RecommendedAction: recommendedActions[typ],
		CreatedAt:         a.AnalyzedAt,
	}
}
