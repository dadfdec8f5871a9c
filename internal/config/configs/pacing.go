package configs

import (
	"time"
	_ "time/tzdata"
)

// Pacing configures the pacing engine and its periodic check. Timezone is
// the IANA zone that defines the campaign day; budgets reset at its midnight.
// CheckSchedule is a cron expression with a leading seconds field.
type Pacing struct {
	Timezone         string `env:"TIMEZONE" envDefault:"Asia/Seoul"`
	CheckSchedule    string `env:"CHECK_SCHEDULE" envDefault:"0 */15 * * * *"`
	SchedulerEnabled bool   `env:"SCHEDULER_ENABLED" envDefault:"true"`
	// LookbackDays is how many days of hourly history feed performance
	// pacing and recommendations.
	LookbackDays int `env:"LOOKBACK_DAYS" envDefault:"14"`
}

// Location resolves Timezone.
func (c Pacing) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
