// Package service defines interfaces for infrastructure-facing collaborators.
package service

import (
	"context"
)

// Voyage lifecycle event types.
const (
	VoyageEventStarted  = "voyage_started"
	VoyageEventPaused   = "voyage_paused"
	VoyageEventStopped  = "voyage_stopped"
	VoyageEventArchived = "voyage_archived"
)

// VoyageEvent announces a voyage lifecycle transition to downstream
// consumers (document export, social feed). Publishing is always best
// effort; the tracking engine never blocks on it.
type VoyageEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`
	VoyageID   string `json:"voyage_id"`
	OccurredAt string `json:"occurred_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVoyageEvent publishes a voyage lifecycle event for async processing
	PublishVoyageEvent(ctx context.Context, event *VoyageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
