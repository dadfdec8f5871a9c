package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"adpacing/internal/core/port"
)

// PacingScheduler runs the pacing check on a cron schedule.
type PacingScheduler struct {
	cron    *cron.Cron
	svc     port.PacingUseCase
	logger  *slog.Logger
	timeout time.Duration
}

// NewPacingScheduler registers the pacing check under schedule, a cron
// expression with a leading seconds field evaluated in loc. Overlapping runs
// are skipped.
func NewPacingScheduler(svc port.PacingUseCase, logger *slog.Logger, loc *time.Location, schedule string) (*PacingScheduler, error) {
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	s := &PacingScheduler{cron: c, svc: svc, logger: logger, timeout: 2 * time.Minute}
	if _, err := c.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("schedule pacing check %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the scheduler in its own goroutine.
func (s *PacingScheduler) Start() {
	s.logger.Info("pacing scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop stops scheduling new runs and waits for a running check to finish
// or ctx to expire.
func (s *PacingScheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("pacing scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("pacing scheduler stop timed out")
	}
}

func (s *PacingScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	summary, err := s.svc.RunPacingCheck(ctx)
	if err != nil {
		s.logger.Error("scheduled pacing check failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("scheduled pacing check",
		slog.Int("campaigns", summary.TotalCampaigns),
		slog.Float64("on_track_ratio", summary.OnTrackRatio))
}
