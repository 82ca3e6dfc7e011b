package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"shiplog/config"
	"shiplog/internal/domain/entity"
	"shiplog/internal/domain/repository"
	"shiplog/internal/domain/service"
	"shiplog/internal/domain/voyage"
	"shiplog/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrAllSourcesFailed is returned when neither entry source could be read.
	ErrAllSourcesFailed = errors.New("all entry sources failed")
	// ErrEntryMissingID is returned when an ingested entry carries no id.
	ErrEntryMissingID = errors.New("entry missing id")
	// ErrEntryNotFound is returned when a log entry is not found.
	ErrEntryNotFound = errors.New("log entry not found")
	// ErrVoyageNotFound is returned when a voyage has no entries.
	ErrVoyageNotFound = errors.New("voyage not found")
)

type logbookService struct {
	entryRepo repository.LogEntryRepository
	queueRepo repository.OfflineQueueRepository
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger

	snapshot atomic.Pointer[usecase.Snapshot]

	// Voyages whose archival has already been accepted by the store this
	// process; a failed request is not remembered so the next sweep retries.
	archiveMu        sync.Mutex
	archiveRequested map[uuid.UUID]struct{}
}

// NewLogbookService creates a new logbook service instance
func NewLogbookService(
	entryRepo repository.LogEntryRepository,
	queueRepo repository.OfflineQueueRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LogbookUsecase {
	// If Logbook is not configured, provide a default configuration
	if cfg.Logbook == nil {
		cfg.Logbook = &config.LogbookConfig{
			FetchLimit:         500,
			RetentionDays:      30,
			LandRatioThreshold: voyage.DefaultLandRatioThreshold,
		}
	}

	return &logbookService{
		entryRepo:        entryRepo,
		queueRepo:        queueRepo,
		publisher:        publisher,
		config:           cfg,
		logger:           logger,
		archiveRequested: make(map[uuid.UUID]struct{}),
	}
}

// Refresh re-runs the fetch → merge → group pipeline and swaps in a new snapshot.
func (s *logbookService) Refresh(ctx context.Context) (*usecase.Snapshot, error) {
	remote, remoteErr := s.entryRepo.FindRecent(ctx, s.config.Logbook.FetchLimit)
	if remoteErr != nil {
		s.logger.Warn("Persisted entry source failed, continuing without it",
			slog.Any("error", remoteErr))
		remote = nil
	}

	offline, offlineErr := s.queueRepo.Entries(ctx)
	if offlineErr != nil {
		s.logger.Warn("Offline queue source failed, continuing without it",
			slog.Any("error", offlineErr))
		offline = nil
	}

	if remoteErr != nil && offlineErr != nil {
		// Keep the API interactive on an empty snapshot rather than a
		// permanent loading state.
		s.ensureSnapshot()

		return nil, fmt.Errorf("%w: remote: %v; offline: %v", ErrAllSourcesFailed, remoteErr, offlineErr)
	}

	merged := voyage.Merge(remote, offline)
	groups := voyage.Group(merged)

	archivedGroups := s.fetchArchivedGroups(ctx)

	career := voyage.ComputeCareerTotals(
		append(append([]*entity.VoyageGroup{}, groups...), archivedGroups...),
		s.config.Logbook.LandRatioThreshold,
	)

	snapshot := &usecase.Snapshot{
		Entries:         merged,
		Voyages:         groups,
		Archived:        archivedGroups,
		Career:          career,
		RemoteDegraded:  remoteErr != nil,
		OfflineDegraded: offlineErr != nil,
		DroppedNoID:     countMissingIDs(remote) + countMissingIDs(offline),
		RefreshedAt:     time.Now(),
	}
	s.snapshot.Store(snapshot)

	return snapshot, nil
}

func (s *logbookService) fetchArchivedGroups(ctx context.Context) []*entity.VoyageGroup {
	archivedEntries, err := s.entryRepo.FindArchived(ctx)
	if err != nil {
		// Archived history is not worth failing the live view over; career
		// totals fall back to active voyages until the next refresh.
		s.logger.Warn("Archived entry fetch failed", slog.Any("error", err))

		return nil
	}

	return voyage.Group(voyage.Merge(archivedEntries, nil))
}

func countMissingIDs(entries []*entity.LogEntry) int {
	count := 0
	for _, entry := range entries {
		if entry != nil && entry.ID == uuid.Nil {
			count++
		}
	}

	return count
}

// Snapshot returns the latest published snapshot, or an empty one before the
// first refresh.
func (s *logbookService) Snapshot() *usecase.Snapshot {
	if snapshot := s.snapshot.Load(); snapshot != nil {
		return snapshot
	}

	return &usecase.Snapshot{}
}

// ensureSnapshot publishes an empty snapshot if none exists yet.
func (s *logbookService) ensureSnapshot() {
	s.snapshot.CompareAndSwap(nil, &usecase.Snapshot{RefreshedAt: time.Now()})
}

// FilterEntries applies an EntryFilter over the latest snapshot.
func (s *logbookService) FilterEntries(filter usecase.EntryFilter) []*entity.LogEntry {
	snapshot := s.Snapshot()
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]*entity.LogEntry, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		if filter.EntryType != nil && entry.EntryType != *filter.EntryType {
			continue
		}
		if filter.VoyageID != nil && entry.VoyageID != *filter.VoyageID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(entry.Title), query) &&
			!strings.Contains(strings.ToLower(entry.Note), query) {
			continue
		}
		matched = append(matched, entry)
	}

	return matched
}

// EntriesByDate groups the latest snapshot's entries by calendar date,
// newest date first.
func (s *logbookService) EntriesByDate() []usecase.DateGroup {
	snapshot := s.Snapshot()

	buckets := make(map[string][]*entity.LogEntry)
	dates := make([]string, 0)
	for _, entry := range snapshot.Entries {
		date := entry.Timestamp.Format("2006-01-02")
		if _, ok := buckets[date]; !ok {
			dates = append(dates, date)
		}
		buckets[date] = append(buckets[date], entry)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]usecase.DateGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, usecase.DateGroup{Date: date, Entries: buckets[date]})
	}

	return groups
}

// DeleteEntry removes one entry from the store and refreshes.
func (s *logbookService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.entryRepo.DeleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return ErrEntryNotFound
	}

	s.refreshAfterMutation(ctx)

	return nil
}

// DeleteVoyage removes every entry of the voyage and refreshes.
func (s *logbookService) DeleteVoyage(ctx context.Context, voyageID uuid.UUID) error {
	deleted, err := s.entryRepo.DeleteVoyage(ctx, voyageID)
	if err != nil {
		return fmt.Errorf("failed to delete voyage: %w", err)
	}
	if !deleted {
		return ErrVoyageNotFound
	}

	s.archiveMu.Lock()
	delete(s.archiveRequested, voyageID)
	s.archiveMu.Unlock()

	s.refreshAfterMutation(ctx)

	return nil
}

// ArchiveVoyage flags a voyage inactive without deleting its entries.
func (s *logbookService) ArchiveVoyage(ctx context.Context, voyageID uuid.UUID) error {
	if err := s.entryRepo.ArchiveVoyage(ctx, voyageID); err != nil {
		if errors.Is(err, repository.ErrVoyageNotFound) {
			return ErrVoyageNotFound
		}

		return fmt.Errorf("failed to archive voyage: %w", err)
	}

	s.archiveMu.Lock()
	s.archiveRequested[voyageID] = struct{}{}
	s.archiveMu.Unlock()

	s.publishVoyageEvent(ctx, service.VoyageEventArchived, voyageID)
	s.refreshAfterMutation(ctx)

	return nil
}

// UnarchiveVoyage restores an archived voyage to the active log.
func (s *logbookService) UnarchiveVoyage(ctx context.Context, voyageID uuid.UUID) error {
	if err := s.entryRepo.UnarchiveVoyage(ctx, voyageID); err != nil {
		if errors.Is(err, repository.ErrVoyageNotFound) {
			return ErrVoyageNotFound
		}

		return fmt.Errorf("failed to unarchive voyage: %w", err)
	}

	s.archiveMu.Lock()
	delete(s.archiveRequested, voyageID)
	s.archiveMu.Unlock()

	s.refreshAfterMutation(ctx)

	return nil
}

// ArchiveStale requests archival for every voyage whose newest entry is older
// than the retention threshold. Failures are logged only; the voyage remains
// eligible and the next sweep retries it.
func (s *logbookService) ArchiveStale(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.Logbook.RetentionDays)

	for _, group := range s.Snapshot().Voyages {
		if group.VoyageID == uuid.Nil {
			// The default bucket for unassigned entries is never archived.
			continue
		}
		if group.NewestTimestamp().IsZero() || !group.NewestTimestamp().Before(cutoff) {
			continue
		}
		if s.alreadyRequested(group.VoyageID) {
			continue
		}

		if err := s.entryRepo.ArchiveVoyage(ctx, group.VoyageID); err != nil {
			s.logger.Warn("Voyage archival failed, will retry on next sweep",
				slog.String("voyageId", group.VoyageID.String()),
				slog.Any("error", err))

			continue
		}

		s.archiveMu.Lock()
		s.archiveRequested[group.VoyageID] = struct{}{}
		s.archiveMu.Unlock()

		s.logger.Info("Voyage archived",
			slog.String("voyageId", group.VoyageID.String()))
		s.publishVoyageEvent(ctx, service.VoyageEventArchived, group.VoyageID)
	}
}

func (s *logbookService) alreadyRequested(voyageID uuid.UUID) bool {
	s.archiveMu.Lock()
	defer s.archiveMu.Unlock()
	_, ok := s.archiveRequested[voyageID]

	return ok
}

// IngestEntries persists a device sync batch into the durable store.
func (s *logbookService) IngestEntries(ctx context.Context, entries []*entity.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	for _, entry := range entries {
		if entry == nil || entry.ID == uuid.Nil {
			return ErrEntryMissingID
		}
	}

	if err := s.entryRepo.CreateEntries(ctx, entries); err != nil {
		return fmt.Errorf("failed to ingest entries: %w", err)
	}

	return nil
}

// EnqueueOffline parks entries in the offline queue.
func (s *logbookService) EnqueueOffline(ctx context.Context, entries []*entity.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	if err := s.queueRepo.Enqueue(ctx, entries); err != nil {
		return fmt.Errorf("failed to enqueue offline entries: %w", err)
	}

	return nil
}

// DrainOfflineQueue moves queued entries into the durable store and clears
// the queue. Entries without an id cannot be persisted and are dropped with
// a warning rather than blocking the rest of the queue.
func (s *logbookService) DrainOfflineQueue(ctx context.Context) (int, error) {
	queued, err := s.queueRepo.Entries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read offline queue: %w", err)
	}
	if len(queued) == 0 {
		return 0, nil
	}

	persistable := make([]*entity.LogEntry, 0, len(queued))
	for _, entry := range queued {
		if entry == nil || entry.ID == uuid.Nil {
			s.logger.Warn("Dropping queued entry without id during drain")

			continue
		}
		persistable = append(persistable, entry)
	}

	if len(persistable) > 0 {
		if err := s.entryRepo.CreateEntries(ctx, persistable); err != nil {
			// Leave the queue intact so nothing is lost before persistence.
			return 0, fmt.Errorf("failed to persist queued entries: %w", err)
		}
	}

	if err := s.queueRepo.Clear(ctx); err != nil {
		// Entries are persisted; a stale queue only causes duplicate ids,
		// which the store upserts away on the next drain.
		s.logger.Warn("Offline queue clear failed after drain", slog.Any("error", err))
	}

	s.refreshAfterMutation(ctx)

	return len(persistable), nil
}

// refreshAfterMutation keeps the snapshot coherent after a store mutation;
// the mutation itself already succeeded, so a failed refresh is only logged.
func (s *logbookService) refreshAfterMutation(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Post-mutation refresh failed", slog.Any("error", err))
	}
}

func (s *logbookService) publishVoyageEvent(ctx context.Context, eventType string, voyageID uuid.UUID) {
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
