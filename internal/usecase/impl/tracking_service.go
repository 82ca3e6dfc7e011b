package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"shiplog/internal/domain/entity"
	"shiplog/internal/domain/service"
	"shiplog/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrVoyageChoiceRequired is returned when voyages already exist and the
	// start command does not say whether to continue or begin anew.
	ErrVoyageChoiceRequired = errors.New("voyage choice required: continue or start new")
	// ErrContinueVoyageRequired is returned when a continue resolution names
	// no voyage.
	ErrContinueVoyageRequired = errors.New("continue resolution requires a voyage id")
	// ErrStopConfirmationRequired is returned when stop is attempted without
	// explicit confirmation.
	ErrStopConfirmationRequired = errors.New("stop requires explicit confirmation")
	// ErrNotTracking is returned when a command needs an active voyage.
	ErrNotTracking = errors.New("no voyage is being tracked")
	// ErrAlreadyTracking is returned when start is attempted mid-voyage.
	ErrAlreadyTracking = errors.New("a voyage is already being tracked")
)

// trackingService owns the process-wide tracking session. The state is
// mutated only by the transition methods below; every other component reads
// copies through Status. Mode changes are applied optimistically before the
// recorder call completes and reverted if it fails, so the control feels
// instantaneous while failure stays observable.
type trackingService struct {
	recorder  service.RecorderService
	publisher service.EventPublisher
	logbook   usecase.LogbookUsecase
	logger    *slog.Logger

	mu      sync.Mutex
	state   entity.TrackingState
	changes chan struct{}
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(
	recorder service.RecorderService,
	publisher service.EventPublisher,
	logbook usecase.LogbookUsecase,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return &trackingService{
		recorder:  recorder,
		publisher: publisher,
		logbook:   logbook,
		logger:    logger,
		state: entity.TrackingState{
			Mode:      entity.TrackingModeIdle,
			GpsHealth: entity.GpsHealthNone,
		},
		changes: make(chan struct{}, 1),
	}
}

// Start transitions Idle → Tracking, resolving the continue-or-new ambiguity
// first when voyages already exist.
func (s *trackingService) Start(ctx context.Context, input usecase.StartInput) (entity.TrackingState, error) {
	voyageID, resetVoyage, err := s.resolveStart(input)
	if err != nil {
		return s.Status(), err
	}

	s.mu.Lock()
	if s.state.Mode == entity.TrackingModeTracking {
		s.mu.Unlock()

		return s.Status(), ErrAlreadyTracking
	}
	prev := s.state
	s.state = entity.TrackingState{
		Mode:            entity.TrackingModeTracking,
		CurrentVoyageID: voyageID,
		GpsHealth:       prev.GpsHealth,
		StartedAt:       time.Now(),
	}
	s.mu.Unlock()
	s.notify()

	continueID := uuid.Nil
	if !resetVoyage {
		continueID = voyageID
	}
	if err := s.recorder.StartRecording(ctx, resetVoyage, continueID); err != nil {
		s.revert(prev)

		return s.Status(), fmt.Errorf("failed to start recording: %w", err)
	}

	s.publishVoyageEvent(ctx, service.VoyageEventStarted, voyageID)

	return s.Status(), nil
}

// resolveStart turns the start input into a concrete voyage id. With no
// resolution given, starting is only unambiguous while no voyages exist.
func (s *trackingService) resolveStart(input usecase.StartInput) (uuid.UUID, bool, error) {
	switch input.Resolution {
	case usecase.StartResolutionNew:
		return uuid.New(), true, nil
	case usecase.StartResolutionContinue:
		if input.ContinueVoyageID == uuid.Nil {
			return uuid.Nil, false, ErrContinueVoyageRequired
		}

		return input.ContinueVoyageID, false, nil
	default:
		if len(s.logbook.Snapshot().Voyages) > 0 {
			return uuid.Nil, false, ErrVoyageChoiceRequired
		}

		return uuid.New(), true, nil
	}
}

// Pause transitions Tracking → Paused and clears rapid sampling. Pausing is
// a dead end: resuming requires Start, which re-enters ambiguity resolution.
func (s *trackingService) Pause(ctx context.Context) (entity.TrackingState, error) {
	s.mu.Lock()
	if s.state.Mode != entity.TrackingModeTracking {
		s.mu.Unlock()

		return s.Status(), ErrNotTracking
	}
	prev := s.state
	s.state.Mode = entity.TrackingModePaused
	s.state.RapidSampling = false
	s.mu.Unlock()
	s.notify()

	if err := s.recorder.PauseRecording(ctx); err != nil {
		s.revert(prev)

		return s.Status(), fmt.Errorf("failed to pause recording: %w", err)
	}

	s.publishVoyageEvent(ctx, service.VoyageEventPaused, prev.CurrentVoyageID)

	return s.Status(), nil
}

// Stop finalizes the current voyage and returns to Idle.
func (s *trackingService) Stop(ctx context.Context, confirm bool) (entity.TrackingState, error) {
	if !confirm {
		return s.Status(), ErrStopConfirmationRequired
	}

	s.mu.Lock()
	if s.state.Mode == entity.TrackingModeIdle {
		s.mu.Unlock()

		return s.Status(), ErrNotTracking
	}
	prev := s.state
	s.state = entity.TrackingState{
		Mode:      entity.TrackingModeIdle,
		GpsHealth: entity.GpsHealthNone,
	}
	s.mu.Unlock()
	s.notify()

	if err := s.recorder.StopRecording(ctx); err != nil {
		s.revert(prev)

		return s.Status(), fmt.Errorf("failed to stop recording: %w", err)
	}

	s.publishVoyageEvent(ctx, service.VoyageEventStopped, prev.CurrentVoyageID)

	return s.Status(), nil
}

// SetRapidSampling toggles high-frequency capture without changing the
// voyage or ending it.
func (s *trackingService) SetRapidSampling(ctx context.Context, enabled bool) (entity.TrackingState, error) {
	s.mu.Lock()
	if s.state.Mode != entity.TrackingModeTracking {
		s.mu.Unlock()

		return s.Status(), ErrNotTracking
	}
	prev := s.state
	s.state.RapidSampling = enabled
	s.mu.Unlock()
	s.notify()

	if err := s.recorder.SetRapidSampling(ctx, enabled); err != nil {
		s.revert(prev)

		return s.Status(), fmt.Errorf("failed to toggle rapid sampling: %w", err)
	}

	return s.Status(), nil
}

// Status returns a copy of the current tracking state.
func (s *trackingService) Status() entity.TrackingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// RecordGpsHealth stores the latest recorder health reading.
func (s *trackingService) RecordGpsHealth(health entity.GpsHealth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GpsHealth = health
}

// Changes returns the transition signal channel.
func (s *trackingService) Changes() <-chan struct{} {
	return s.changes
}

func (s *trackingService) revert(prev entity.TrackingState) {
	s.mu.Lock()
	s.state = prev
	s.mu.Unlock()
	s.notify()
}

func (s *trackingService) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func (s *trackingService) publishVoyageEvent(ctx context.Context, eventType string, voyageID uuid.UUID) {
	if s.publisher == nil {
		return
	}

	event := &service.VoyageEvent{
		EventType:  eventType,
		VoyageID:   voyageID.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishVoyageEvent(ctx, event); err != nil {
		s.logger.Warn("Voyage event publish failed",
			slog.String("eventType", eventType),
			slog.Any("error", err))
	}
}
