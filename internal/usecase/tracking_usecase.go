package usecase

import (
	"context"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
)

// StartResolution answers the ambiguity raised when voyages already exist:
// continue the most recent voyage or begin a new one.
type StartResolution string

const (
	// StartResolutionNew opens a fresh voyage.
	StartResolutionNew StartResolution = "new"
	// StartResolutionContinue appends to an existing voyage.
	StartResolutionContinue StartResolution = "continue"
)

// StartInput carries the start command and, when required, the resolved
// continue-or-new choice.
type StartInput struct {
	Resolution StartResolution `json:"resolution,omitempty"`
	// ContinueVoyageID names the voyage to continue; required with
	// StartResolutionContinue.
	ContinueVoyageID uuid.UUID `json:"continue_voyage_id,omitempty"`
}

// TrackingUsecase owns the process-wide tracking session. It is the only
// component allowed to mutate the tracking mode; everything else reads
// copies through Status.
type TrackingUsecase interface {
	// Start transitions Idle → Tracking. When voyages already exist and the
	// input carries no resolution, ErrVoyageChoiceRequired is returned and
	// no transition happens. The visible state flips optimistically before
	// the recorder confirms and is reverted if the recorder call fails.
	Start(ctx context.Context, input StartInput) (entity.TrackingState, error)

	// Pause transitions Tracking → Paused and clears rapid sampling.
	// Resuming requires Start again.
	Pause(ctx context.Context) (entity.TrackingState, error)

	// Stop finalizes the current voyage and returns to Idle. It refuses to
	// act without confirm, surfacing ErrStopConfirmationRequired.
	Stop(ctx context.Context, confirm bool) (entity.TrackingState, error)

	// SetRapidSampling toggles high-frequency capture while tracking; the
	// voyage id is unchanged and the voyage does not end.
	SetRapidSampling(ctx context.Context, enabled bool) (entity.TrackingState, error)

	// Status returns a copy of the current tracking state.
	Status() entity.TrackingState

	// RecordGpsHealth stores the latest recorder health reading. It never
	// touches the mode.
	RecordGpsHealth(health entity.GpsHealth)

	// Changes returns a signal channel that receives after every transition.
	// Sends are non-blocking; a slow consumer only coalesces signals.
	Changes() <-chan struct{}
}
