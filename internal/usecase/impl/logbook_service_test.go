package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shiplog/config"
	"shiplog/internal/domain/entity"
	mockRepo "shiplog/internal/mocks/repository"
	mockService "shiplog/internal/mocks/service"
	"shiplog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Logbook: &config.LogbookConfig{
			FetchLimit:         500,
			RetentionDays:      30,
			LandRatioThreshold: 0.6,
		},
	}
}

func logEntryAt(voyageID uuid.UUID, ts time.Time) *entity.LogEntry {
	return &entity.LogEntry{
		ID:        uuid.New(),
		Timestamp: ts,
		EntryType: entity.EntryTypeAuto,
		VoyageID:  voyageID,
	}
}

func TestLogbookService_Refresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	voyageID := uuid.New()
	now := time.Now()

	shared := logEntryAt(voyageID, now.Add(-2*time.Hour))
	sharedRemote := *shared
	sharedRemote.Note = "persisted copy"
	sharedOffline := *shared
	sharedOffline.Note = "queued copy"

	remoteOnly := logEntryAt(voyageID, now.Add(-1*time.Hour))
	offlineOnly := logEntryAt(voyageID, now)

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).
		Return([]*entity.LogEntry{remoteOnly, &sharedRemote}, nil)
	queueRepo.EXPECT().Entries(ctx).
		Return([]*entity.LogEntry{&sharedOffline, offlineOnly}, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	snapshot, err := svc.Refresh(ctx)

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	require.Len(t, snapshot.Entries, 3)
	// Newest first, duplicate resolved in favor of the persisted copy.
	assert.Equal(t, offlineOnly.ID, snapshot.Entries[0].ID)
	assert.Equal(t, remoteOnly.ID, snapshot.Entries[1].ID)
	assert.Equal(t, shared.ID, snapshot.Entries[2].ID)
	assert.Equal(t, "persisted copy", snapshot.Entries[2].Note)

	require.Len(t, snapshot.Voyages, 1)
	assert.Equal(t, voyageID, snapshot.Voyages[0].VoyageID)
	assert.False(t, snapshot.RemoteDegraded)
	assert.False(t, snapshot.OfflineDegraded)

	// The published snapshot is the one Refresh returned.
	assert.Equal(t, snapshot, svc.Snapshot())
}

func TestLogbookService_Refresh_RemoteSourceDown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	queued := logEntryAt(uuid.New(), time.Now())

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).
		Return(nil, errors.New("connection refused"))
	queueRepo.EXPECT().Entries(ctx).Return([]*entity.LogEntry{queued}, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	snapshot, err := svc.Refresh(ctx)

	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 1)
	assert.Equal(t, queued.ID, snapshot.Entries[0].ID)
	assert.True(t, snapshot.RemoteDegraded)
	assert.False(t, snapshot.OfflineDegraded)
}

func TestLogbookService_Refresh_AllSourcesDown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).
		Return(nil, errors.New("connection refused"))
	queueRepo.EXPECT().Entries(ctx).Return(nil, errors.New("redis down"))

	snapshot, err := svc.Refresh(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllSourcesFailed)
	assert.Nil(t, snapshot)

	// The view stays usable on an empty snapshot instead of blocking.
	current := svc.Snapshot()
	require.NotNil(t, current)
	assert.Empty(t, current.Entries)
	assert.Empty(t, current.Voyages)
}

func TestLogbookService_Snapshot_BeforeFirstRefresh(t *testing.T) {
	t.Parallel()

	svc := NewLogbookService(
		mockRepo.NewMockLogEntryRepository(t),
		mockRepo.NewMockOfflineQueueRepository(t),
		nil,
		testConfig(),
		testLogger(),
	)

	snapshot := svc.Snapshot()

	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.Entries)
	assert.Empty(t, snapshot.Voyages)
	assert.Zero(t, snapshot.Career.VoyageCount)
	assert.Empty(t, svc.FilterEntries(usecase.EntryFilter{}))
	assert.Empty(t, svc.EntriesByDate())
}

func TestLogbookService_FilterEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	voyageID := uuid.New()
	otherVoyage := uuid.New()
	now := time.Now()

	waypoint := logEntryAt(voyageID, now)
	waypoint.EntryType = entity.EntryTypeWaypoint
	waypoint.Title = "Harbor Entrance"

	manual := logEntryAt(voyageID, now.Add(-time.Hour))
	manual.EntryType = entity.EntryTypeManual
	manual.Note = "Dolphins off the harbor buoy"

	auto := logEntryAt(otherVoyage, now.Add(-2*time.Hour))

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).
		Return([]*entity.LogEntry{waypoint, manual, auto}, nil)
	queueRepo.EXPECT().Entries(ctx).Return(nil, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	waypointType := entity.EntryTypeWaypoint
	byType := svc.FilterEntries(usecase.EntryFilter{EntryType: &waypointType})
	require.Len(t, byType, 1)
	assert.Equal(t, waypoint.ID, byType[0].ID)

	byVoyage := svc.FilterEntries(usecase.EntryFilter{VoyageID: &otherVoyage})
	require.Len(t, byVoyage, 1)
	assert.Equal(t, auto.ID, byVoyage[0].ID)

	// Query matches title and note, case-insensitively.
	byQuery := svc.FilterEntries(usecase.EntryFilter{Query: "HARBOR"})
	require.Len(t, byQuery, 2)
	assert.Equal(t, waypoint.ID, byQuery[0].ID)
	assert.Equal(t, manual.ID, byQuery[1].ID)
}

func TestLogbookService_EntriesByDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	voyageID := uuid.New()
	day1Morning := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	day1Evening := time.Date(2026, 7, 10, 18, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 7, 12, 12, 0, 0, 0, time.UTC)

	entries := []*entity.LogEntry{
		logEntryAt(voyageID, day1Morning),
		logEntryAt(voyageID, day1Evening),
		logEntryAt(voyageID, day2),
	}

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).Return(entries, nil)
	queueRepo.EXPECT().Entries(ctx).Return(nil, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	groups := svc.EntriesByDate()

	require.Len(t, groups, 2)
	assert.Equal(t, "2026-07-12", groups[0].Date)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, "2026-07-10", groups[1].Date)
	require.Len(t, groups[1].Entries, 2)
}

func TestLogbookService_DeleteEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	id := uuid.New()

	entryRepo.EXPECT().DeleteEntry(ctx, id).Return(true, nil)
	// A successful delete triggers a refresh of the snapshot.
	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).Return(nil, nil)
	queueRepo.EXPECT().Entries(ctx).Return(nil, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	err := svc.DeleteEntry(ctx, id)

	require.NoError(t, err)
}

func TestLogbookService_DeleteEntry_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	svc := NewLogbookService(entryRepo, mockRepo.NewMockOfflineQueueRepository(t), nil, testConfig(), testLogger())

	id := uuid.New()
	entryRepo.EXPECT().DeleteEntry(ctx, id).Return(false, nil)

	err := svc.DeleteEntry(ctx, id)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestLogbookService_DeleteVoyage_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	svc := NewLogbookService(entryRepo, mockRepo.NewMockOfflineQueueRepository(t), nil, testConfig(), testLogger())

	voyageID := uuid.New()
	entryRepo.EXPECT().DeleteVoyage(ctx, voyageID).Return(false, nil)

	err := svc.DeleteVoyage(ctx, voyageID)

	assert.ErrorIs(t, err, ErrVoyageNotFound)
}

func TestLogbookService_ArchiveStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, publisher, cfg, testLogger())

	staleVoyage := uuid.New()
	freshVoyage := uuid.New()
	now := time.Now()

	entries := []*entity.LogEntry{
		logEntryAt(staleVoyage, now.AddDate(0, 0, -45)),
		logEntryAt(freshVoyage, now.Add(-time.Hour)),
		// Unassigned entries land in the default bucket and are never archived.
		logEntryAt(uuid.Nil, now.AddDate(0, 0, -45)),
	}

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).Return(entries, nil)
	queueRepo.EXPECT().Entries(ctx).Return(nil, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	entryRepo.EXPECT().ArchiveVoyage(ctx, staleVoyage).Return(nil).Once()
	publisher.EXPECT().PublishVoyageEvent(ctx, mock.Anything).Return(nil).Once()

	svc.ArchiveStale(ctx)

	// A second sweep does not re-request the already archived voyage.
	svc.ArchiveStale(ctx)
}

func TestLogbookService_ArchiveStale_RetriesAfterFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	cfg := testConfig()
	svc := NewLogbookService(entryRepo, queueRepo, nil, cfg, testLogger())

	staleVoyage := uuid.New()
	entries := []*entity.LogEntry{
		logEntryAt(staleVoyage, time.Now().AddDate(0, 0, -45)),
	}

	entryRepo.EXPECT().FindRecent(ctx, cfg.Logbook.FetchLimit).Return(entries, nil)
	queueRepo.EXPECT().Entries(ctx).Return(nil, nil)
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil)

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	// A failed request is not remembered, so the next sweep retries it.
	entryRepo.EXPECT().ArchiveVoyage(ctx, staleVoyage).Return(errors.New("store unavailable")).Once()
	entryRepo.EXPECT().ArchiveVoyage(ctx, staleVoyage).Return(nil).Once()

	svc.ArchiveStale(ctx)
	svc.ArchiveStale(ctx)
	svc.ArchiveStale(ctx)
}

func TestLogbookService_IngestEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	svc := NewLogbookService(entryRepo, mockRepo.NewMockOfflineQueueRepository(t), nil, testConfig(), testLogger())

	entries := []*entity.LogEntry{logEntryAt(uuid.New(), time.Now())}
	entryRepo.EXPECT().CreateEntries(ctx, entries).Return(nil)

	err := svc.IngestEntries(ctx, entries)

	require.NoError(t, err)
}

func TestLogbookService_IngestEntries_RejectsMissingID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewLogbookService(
		mockRepo.NewMockLogEntryRepository(t),
		mockRepo.NewMockOfflineQueueRepository(t),
		nil,
		testConfig(),
		testLogger(),
	)

	entries := []*entity.LogEntry{
		logEntryAt(uuid.New(), time.Now()),
		{Timestamp: time.Now(), EntryType: entity.EntryTypeAuto},
	}

	err := svc.IngestEntries(ctx, entries)

	assert.ErrorIs(t, err, ErrEntryMissingID)
}

func TestLogbookService_IngestEntries_EmptyBatch(t *testing.T) {
	t.Parallel()

	svc := NewLogbookService(
		mockRepo.NewMockLogEntryRepository(t),
		mockRepo.NewMockOfflineQueueRepository(t),
		nil,
		testConfig(),
		testLogger(),
	)

	require.NoError(t, svc.IngestEntries(context.Background(), nil))
}

func TestLogbookService_EnqueueOffline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	svc := NewLogbookService(mockRepo.NewMockLogEntryRepository(t), queueRepo, nil, testConfig(), testLogger())

	entries := []*entity.LogEntry{logEntryAt(uuid.New(), time.Now())}
	queueRepo.EXPECT().Enqueue(ctx, entries).Return(nil).Once()

	require.NoError(t, svc.EnqueueOffline(ctx, entries))
	require.NoError(t, svc.EnqueueOffline(ctx, nil))
}

func TestLogbookService_DrainOfflineQueue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	svc := NewLogbookService(entryRepo, queueRepo, nil, testConfig(), testLogger())

	valid := logEntryAt(uuid.New(), time.Now())
	queued := []*entity.LogEntry{
		valid,
		{Timestamp: time.Now(), EntryType: entity.EntryTypeAuto}, // no id, dropped
	}

	queueRepo.EXPECT().Entries(ctx).Return(queued, nil).Once()
	entryRepo.EXPECT().CreateEntries(ctx, []*entity.LogEntry{valid}).Return(nil).Once()
	queueRepo.EXPECT().Clear(ctx).Return(nil).Once()

	// Post-drain refresh.
	entryRepo.EXPECT().FindRecent(ctx, testConfig().Logbook.FetchLimit).Return([]*entity.LogEntry{valid}, nil).Once()
	queueRepo.EXPECT().Entries(ctx).Return(nil, nil).Once()
	entryRepo.EXPECT().FindArchived(ctx).Return(nil, nil).Once()

	drained, err := svc.DrainOfflineQueue(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, drained)
}

func TestLogbookService_DrainOfflineQueue_Empty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	svc := NewLogbookService(mockRepo.NewMockLogEntryRepository(t), queueRepo, nil, testConfig(), testLogger())

	queueRepo.EXPECT().Entries(ctx).Return(nil, nil).Once()

	drained, err := svc.DrainOfflineQueue(ctx)

	require.NoError(t, err)
	assert.Zero(t, drained)
}

func TestLogbookService_DrainOfflineQueue_PersistFailureKeepsQueue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entryRepo := mockRepo.NewMockLogEntryRepository(t)
	queueRepo := mockRepo.NewMockOfflineQueueRepository(t)
	svc := NewLogbookService(entryRepo, queueRepo, nil, testConfig(), testLogger())

	queued := []*entity.LogEntry{logEntryAt(uuid.New(), time.Now())}
	queueRepo.EXPECT().Entries(ctx).Return(queued, nil).Once()
	entryRepo.EXPECT().CreateEntries(ctx, queued).Return(errors.New("store down")).Once()

	drained, err := svc.DrainOfflineQueue(ctx)

	require.Error(t, err)
	assert.Zero(t, drained)
	queueRepo.AssertNotCalled(t, "Clear", mock.Anything)
}
