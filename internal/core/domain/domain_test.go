package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePacingStrategy(t *testing.T) {
	for _, s := range Strategies {
		got, err := ParsePacingStrategy(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParsePacingStrategy("  Front_Loaded ")
	require.NoError(t, err)
	assert.Equal(t, StrategyFrontLoaded, got)

	_, err = ParsePacingStrategy("asap")
	require.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestRemainingToday(t *testing.T) {
	c := CampaignBudget{DailyBudget: 100000, SpentToday: 120000}
	assert.Equal(t, -20000.0, c.RemainingToday())
}

func TestHourlyAllocation(t *testing.T) {
	var a HourlyAllocation
	for h := range a {
		a[h] = float64(h)
	}
	assert.Equal(t, 276.0, a.Total())
	assert.Equal(t, 0.0, a.Through(0))
	assert.Equal(t, 6.0, a.Through(3))
	assert.Equal(t, 276.0, a.Through(40))
}

func TestHourlyBudgetZeroAllocation(t *testing.T) {
	h := HourlyBudget{ActualSpend: 500}
	assert.Equal(t, 0.0, h.Utilization())
	assert.Equal(t, 0.0, h.Variance())
}
