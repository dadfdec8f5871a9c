package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacing/internal/core/domain"
	"adpacing/internal/core/port"
)

// countingUseCase counts pacing checks. Other methods are not used by the
// scheduler.
type countingUseCase struct {
	port.PacingUseCase
	calls atomic.Int32
	err   error
}

func (c *countingUseCase) RunPacingCheck(ctx context.Context) (*domain.PacingSummary, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	if c.err != nil {
		return nil, c.err
	}
	return &domain.PacingSummary{TotalCampaigns: 1}, nil
}

func TestNewPacingSchedulerRejectsBadSpec(t *testing.T) {
	_, err := NewPacingScheduler(&countingUseCase{}, slog.New(slog.DiscardHandler), time.UTC, "every now and then")
	require.Error(t, err)
}

func TestRunCallsPacingCheck(t *testing.T) {
	svc := &countingUseCase{}
	s, err := NewPacingScheduler(svc, slog.New(slog.DiscardHandler), time.UTC, "0 */15 * * * *")
	require.NoError(t, err)

	s.run()
	svc.err = errors.New("db down")
	s.run()

	assert.Equal(t, int32(2), svc.calls.Load())
}

func TestSchedulerFires(t *testing.T) {
	svc := &countingUseCase{}
	s, err := NewPacingScheduler(svc, slog.New(slog.DiscardHandler), time.UTC, "* * * * * *")
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return svc.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
