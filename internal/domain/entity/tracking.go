// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingMode represents the live recording state of the tracking session.
type TrackingMode string

const (
	// TrackingModeIdle indicates no recording is in progress.
	TrackingModeIdle TrackingMode = "idle"
	// TrackingModeTracking indicates entries are being recorded for a voyage.
	TrackingModeTracking TrackingMode = "tracking"
	// TrackingModePaused indicates recording is suspended; resuming requires
	// a fresh start.
	TrackingModePaused TrackingMode = "paused"
)

// String returns the string representation of the TrackingMode.
func (m TrackingMode) String() string {
	return string(m)
}

// IsValid checks if the TrackingMode is a valid value.
func (m TrackingMode) IsValid() bool {
	switch m {
	case TrackingModeIdle, TrackingModeTracking, TrackingModePaused:
		return true
	default:
		return false
	}
}

// TrackingState is a snapshot of the process-wide tracking session.
// It is a value: consumers receive copies and never mutate the original.
type TrackingState struct {
	Mode            TrackingMode `json:"mode"`
	RapidSampling   bool         `json:"rapid_sampling"`             // Valid only while tracking.
	CurrentVoyageID uuid.UUID    `json:"current_voyage_id,omitempty"` // uuid.Nil outside tracking/paused.
	GpsHealth       GpsHealth    `json:"gps_health"`
	StartedAt       time.Time    `json:"started_at,omitempty"` // When the current voyage began tracking.
}

// IsActive reports whether the session is in a non-idle mode.
func (s TrackingState) IsActive() bool {
	return s.Mode != TrackingModeIdle
}
