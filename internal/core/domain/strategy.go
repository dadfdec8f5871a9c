package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStrategy is returned when a raw strategy name does not map to a
// known PacingStrategy.
var ErrInvalidStrategy = errors.New("invalid pacing strategy")

// PacingStrategy controls how a daily budget is spread across the hours of
// the day.
type PacingStrategy string

const (
	StrategyStandard    PacingStrategy = "standard"
	StrategyAccelerated PacingStrategy = "accelerated"
	StrategyFrontLoaded PacingStrategy = "front_loaded"
	StrategyBackLoaded  PacingStrategy = "back_loaded"
	StrategyPerformance PacingStrategy = "performance"
	StrategyDayparting  PacingStrategy = "dayparting"
)

// Strategies lists every supported strategy in a stable order.
var Strategies = []PacingStrategy{
	StrategyStandard,
	StrategyAccelerated,
	StrategyFrontLoaded,
	StrategyBackLoaded,
	StrategyPerformance,
	StrategyDayparting,
}

// ParsePacingStrategy converts a raw, case-insensitive name into a
// PacingStrategy. Unknown names produce ErrInvalidStrategy.
func ParsePacingStrategy(s string) (PacingStrategy, error) {
	name := PacingStrategy(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range Strategies {
		if st == name {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// PacingStatus classifies the spend trajectory of a campaign.
type PacingStatus string

const (
	StatusOnTrack       PacingStatus = "on_track"
	StatusUnderspending PacingStatus = "underspending"
	StatusOverspending  PacingStatus = "overspending"
	StatusDepleted      PacingStatus = "depleted"
)

// Statuses lists every pacing status.
var Statuses = []PacingStatus{StatusOnTrack, StatusUnderspending, StatusOverspending, StatusDepleted}
