// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for log entry persistence.
var (
	// ErrEntryNotFound is returned when a log entry is not found.
	ErrEntryNotFound = errors.New("log entry not found")
	// ErrVoyageNotFound is returned when no entries exist for a voyage.
	ErrVoyageNotFound = errors.New("voyage not found")
	// ErrDuplicateEntry is returned when an entry with the same id already exists.
	ErrDuplicateEntry = errors.New("log entry already exists")
)

// LogEntryRepository defines the interface for the durable remote entry store.
type LogEntryRepository interface {
	// CreateEntries persists a batch of entries from the device sync upload.
	CreateEntries(ctx context.Context, entries []*entity.LogEntry) error

	// FindRecent retrieves the newest non-archived entries, newest-first,
	// bounded by limit (0 means no limit).
	FindRecent(ctx context.Context, limit int) ([]*entity.LogEntry, error)

	// FindArchived retrieves all archived entries, newest-first.
	FindArchived(ctx context.Context) ([]*entity.LogEntry, error)

	// ArchiveVoyage flags every entry of a voyage as archived. Idempotent:
	// archiving an already-archived voyage is not an error.
	ArchiveVoyage(ctx context.Context, voyageID uuid.UUID) error

	// UnarchiveVoyage clears the archived flag on every entry of a voyage.
	UnarchiveVoyage(ctx context.Context, voyageID uuid.UUID) error

	// DeleteEntry removes a single entry. Returns false when no entry matched.
	DeleteEntry(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteVoyage removes every entry sharing the voyage id. Returns false
	// when no entries matched.
	DeleteVoyage(ctx context.Context, voyageID uuid.UUID) (bool, error)
}
