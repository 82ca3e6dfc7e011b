// Package scheduler drives the periodic refresh and GPS health polling loops.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"shiplog/config"
	"shiplog/internal/delivery"
	"shiplog/internal/domain/entity"
	"shiplog/internal/domain/service"
	"shiplog/internal/usecase"

	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Cfg        *config.Config
	Logger     *slog.Logger
	LogbookUC  usecase.LogbookUsecase
	TrackingUC usecase.TrackingUsecase
	Recorder   service.RecorderService
}

// scheduler refreshes the logbook on a burst-then-backoff cadence and polls
// recorder GPS health on its own ticker. Tracking transitions trigger an
// immediate refresh and restart the burst window.
type scheduler struct {
	cfg        *config.Config
	logger     *slog.Logger
	logbookUC  usecase.LogbookUsecase
	trackingUC usecase.TrackingUsecase
	recorder   service.RecorderService
}

// NewScheduler creates the refresh scheduler delivery.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	return &scheduler{
		cfg:        params.Cfg,
		logger:     params.Logger,
		logbookUC:  params.LogbookUC,
		trackingUC: params.TrackingUC,
		recorder:   params.Recorder,
	}, nil
}

// Serve runs the polling loops until the context is cancelled.
func (s *scheduler) Serve(ctx context.Context) error {
	s.warmUp(ctx)

	lastTransition := time.Now()

	refreshTimer := time.NewTimer(time.Hour)
	resetTimer(refreshTimer, s.refreshInterval(lastTransition))
	defer refreshTimer.Stop()

	healthTicker := time.NewTicker(s.cfg.Tracking.GpsHealthInterval)
	defer healthTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopping")

			return nil
		case <-s.trackingUC.Changes():
			// A transition restarts the burst window so the log catches up
			// quickly right after start/pause/stop.
			lastTransition = time.Now()
			s.refresh(ctx)
			resetTimer(refreshTimer, s.refreshInterval(lastTransition))
		case <-refreshTimer.C:
			s.refresh(ctx)
			resetTimer(refreshTimer, s.refreshInterval(lastTransition))
		case <-healthTicker.C:
			s.pollGpsHealth(ctx)
		}
	}
}

// warmUp publishes a first snapshot before the loops start, bounded so a dead
// source cannot hold up process start.
func (s *scheduler) warmUp(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, s.cfg.Tracking.InitTimeout)
	defer cancel()

	if _, err := s.logbookUC.Refresh(warmCtx); err != nil {
		s.logger.Warn("Warm-up refresh failed, starting with empty snapshot",
			slog.Any("error", err))
	}
}

// refreshInterval picks the cadence for the next refresh. Rapid sampling wins
// over the burst window; idle sessions do not poll at all and rely on the
// transition signal to re-arm the loop.
func (s *scheduler) refreshInterval(lastTransition time.Time) time.Duration {
	status := s.trackingUC.Status()
	switch {
	case status.Mode == entity.TrackingModeIdle:
		return 0
	case status.Mode == entity.TrackingModeTracking && status.RapidSampling:
		return s.cfg.Tracking.RapidInterval
	case time.Since(lastTransition) < s.cfg.Tracking.BurstWindow:
		return s.cfg.Tracking.BurstInterval
	default:
		return s.cfg.Tracking.SteadyInterval
	}
}

func (s *scheduler) refresh(ctx context.Context) {
	if _, err := s.logbookUC.Refresh(ctx); err != nil {
		s.logger.Warn("Scheduled refresh failed", slog.Any("error", err))

		return
	}

	// Retention is enforced opportunistically after each successful refresh;
	// failures inside the sweep are logged by the usecase and retried later.
	s.logbookUC.ArchiveStale(ctx)
}

// pollGpsHealth reads the recorder fix state while tracking. Idle and paused
// sessions do not bother the recorder.
func (s *scheduler) pollGpsHealth(ctx context.Context) {
	if s.trackingUC.Status().Mode != entity.TrackingModeTracking {
		return
	}

	health, err := s.recorder.GpsHealth(ctx)
	if err != nil {
		s.logger.Warn("GPS health poll failed", slog.Any("error", err))

		return
	}

	s.trackingUC.RecordGpsHealth(health)
}

// resetTimer safely re-arms a timer whose channel may still hold a value.
// A non-positive interval leaves the timer stopped.
func resetTimer(timer *time.Timer, interval time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	if interval > 0 {
		timer.Reset(interval)
	}
}
