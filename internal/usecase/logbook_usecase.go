package usecase

import (
	"context"
	"time"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
)

// Snapshot is one immutable result of the merge → group → classify pipeline.
// Every refresh produces a fresh snapshot; consumers read it as a value and
// never mutate it.
type Snapshot struct {
	Entries  []*entity.LogEntry    `json:"entries"`  // Merged, deduplicated, newest-first.
	Voyages  []*entity.VoyageGroup `json:"voyages"`  // Canonical display order.
	Archived []*entity.VoyageGroup `json:"archived"` // Archived voyage groups, same ordering.
	Career   entity.CareerTotals   `json:"career"`

	// Degraded source flags: a failed source leaves its entries out of the
	// snapshot (fail-open) and is reported here instead of failing the refresh.
	RemoteDegraded  bool `json:"remote_degraded"`
	OfflineDegraded bool `json:"offline_degraded"`

	// DroppedNoID counts entries excluded because they carried no id.
	DroppedNoID int `json:"dropped_no_id,omitempty"`

	RefreshedAt time.Time `json:"refreshed_at"`
}

// EntryFilter narrows the entry views produced from a snapshot.
type EntryFilter struct {
	EntryType *entity.EntryType `json:"entry_type,omitempty"`
	VoyageID  *uuid.UUID        `json:"voyage_id,omitempty"`
	Query     string            `json:"query,omitempty"` // Case-insensitive match on title and note.
}

// DateGroup is a presentation bucket of entries sharing a calendar date.
type DateGroup struct {
	Date    string             `json:"date"` // YYYY-MM-DD
	Entries []*entity.LogEntry `json:"entries"`
}

// LogbookUsecase owns the canonical in-memory entry set for the session and
// every derived view over it.
type LogbookUsecase interface {
	// Refresh re-runs the fetch → merge → group pipeline and swaps in a new
	// snapshot. Source failures are fail-open: the refresh proceeds with
	// whatever sources succeeded and flags the degraded ones. An error is
	// returned only when both sources fail.
	Refresh(ctx context.Context) (*Snapshot, error)

	// Snapshot returns the latest published snapshot. Before the first
	// successful refresh it returns an empty, usable snapshot.
	Snapshot() *Snapshot

	// FilterEntries applies an EntryFilter over the latest snapshot.
	FilterEntries(filter EntryFilter) []*entity.LogEntry

	// EntriesByDate groups the latest snapshot's entries by calendar date,
	// newest date first.
	EntriesByDate() []DateGroup

	// DeleteEntry removes one entry from the store and refreshes.
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// DeleteVoyage removes every entry of the voyage and refreshes.
	DeleteVoyage(ctx context.Context, voyageID uuid.UUID) error

	// ArchiveVoyage flags a voyage inactive without deleting its entries.
	ArchiveVoyage(ctx context.Context, voyageID uuid.UUID) error

	// UnarchiveVoyage restores an archived voyage to the active log.
	UnarchiveVoyage(ctx context.Context, voyageID uuid.UUID) error

	// ArchiveStale requests archival for every voyage whose newest entry is
	// older than the retention threshold. Fire-and-forget semantics:
	// failures are logged, never surfaced, and retried on the next sweep.
	ArchiveStale(ctx context.Context)

	// IngestEntries persists a device sync batch into the durable store.
	// Entries without an id are rejected, not silently dropped.
	IngestEntries(ctx context.Context, entries []*entity.LogEntry) error

	// EnqueueOffline parks entries in the offline queue, typically when the
	// durable store rejected a sync.
	EnqueueOffline(ctx context.Context, entries []*entity.LogEntry) error

	// DrainOfflineQueue moves queued entries into the durable store and
	// clears the queue. It returns how many entries were persisted.
	DrainOfflineQueue(ctx context.Context) (int, error)
}
