// Package service defines interfaces for infrastructure-facing collaborators.
package service

import (
	"context"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
)

// RecorderService is the boundary to the onboard GPS recorder agent. The
// engine never samples positions itself; it only drives the recorder's
// lifecycle and reads its health.
type RecorderService interface {
	// StartRecording begins automatic sampling. With resetVoyage the recorder
	// opens a fresh voyage; otherwise it appends to continueVoyageID.
	StartRecording(ctx context.Context, resetVoyage bool, continueVoyageID uuid.UUID) error

	// PauseRecording suspends sampling without closing the voyage.
	PauseRecording(ctx context.Context) error

	// StopRecording finalizes the current voyage; no further automatic
	// entries may be appended to it afterward.
	StopRecording(ctx context.Context) error

	// SetRapidSampling toggles the high-frequency capture mode.
	SetRapidSampling(ctx context.Context, enabled bool) error

	// GpsHealth reports the freshness of the recorder's GPS fix.
	GpsHealth(ctx context.Context) (entity.GpsHealth, error)
}
