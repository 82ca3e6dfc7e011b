// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shiplog/internal/domain/entity"
)

// OfflineQueueRepository defines the interface for the local offline queue.
// Entries captured while the device has no connectivity wait here until the
// sync worker drains them into the durable store; the read path merges them
// so a voyage is visible immediately, connectivity or not.
type OfflineQueueRepository interface {
	// Entries returns all queued entries in queue order.
	Entries(ctx context.Context) ([]*entity.LogEntry, error)

	// Enqueue appends entries to the queue.
	Enqueue(ctx context.Context, entries []*entity.LogEntry) error

	// Clear drops the whole queue, typically after a successful sync.
	Clear(ctx context.Context) error
}
