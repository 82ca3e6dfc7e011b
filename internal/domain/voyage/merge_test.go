package voyage

import (
	"testing"
	"time"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(id uuid.UUID, ts time.Time) *entity.LogEntry {
	return &entity.LogEntry{
		ID:        id,
		Timestamp: ts,
		EntryType: entity.EntryTypeAuto,
	}
}

func TestMerge_DedupAcrossSources(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()

	remote := []*entity.LogEntry{
		entryAt(idA, base.Add(10*time.Second)),
		entryAt(idB, base.Add(20*time.Second)),
	}
	offline := []*entity.LogEntry{
		entryAt(idB, base.Add(20*time.Second)),
		entryAt(idC, base.Add(5*time.Second)),
	}

	merged := Merge(remote, offline)
	require.Len(t, merged, 3)

	assert.Equal(t, idB, merged[0].ID)
	assert.Equal(t, idA, merged[1].ID)
	assert.Equal(t, idC, merged[2].ID)
}

func TestMerge_RemoteCopyWinsOnDuplicate(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	remoteCopy := entryAt(id, ts)
	remoteCopy.Note = "remote"
	offlineCopy := entryAt(id, ts)
	offlineCopy.Note = "offline"

	merged := Merge([]*entity.LogEntry{remoteCopy}, []*entity.LogEntry{offlineCopy})
	require.Len(t, merged, 1)
	assert.Equal(t, "remote", merged[0].Note)
}

func TestMerge_Idempotent(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	remote := []*entity.LogEntry{
		entryAt(uuid.New(), base.Add(3*time.Minute)),
		entryAt(uuid.New(), base.Add(1*time.Minute)),
	}
	offline := []*entity.LogEntry{
		entryAt(uuid.New(), base.Add(2*time.Minute)),
	}

	once := Merge(remote, offline)
	twice := Merge(once, once)

	assert.Equal(t, once, twice)
}

func TestMerge_SelfMergeYieldsOriginal(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	list := []*entity.LogEntry{
		entryAt(uuid.New(), base.Add(2*time.Minute)),
		entryAt(uuid.New(), base.Add(1*time.Minute)),
	}

	merged := Merge(list, list)
	assert.Equal(t, list, merged)
}

func TestMerge_DropsEntriesWithoutID(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	keep := entryAt(uuid.New(), base)

	merged := Merge(
		[]*entity.LogEntry{entryAt(uuid.Nil, base.Add(time.Minute)), keep},
		[]*entity.LogEntry{nil},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, keep.ID, merged[0].ID)
}

func TestMerge_SortedNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	merged := Merge(
		[]*entity.LogEntry{
			entryAt(uuid.New(), base.Add(1*time.Minute)),
			entryAt(uuid.New(), base.Add(5*time.Minute)),
		},
		[]*entity.LogEntry{
			entryAt(uuid.New(), base.Add(3*time.Minute)),
		},
	)

	require.Len(t, merged, 3)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Timestamp.After(merged[i-1].Timestamp),
			"entries must be sorted newest-first")
	}
}

func TestMerge_EmptySources(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))

	only := []*entity.LogEntry{entryAt(uuid.New(), time.Now())}
	assert.Len(t, Merge(only, nil), 1)
	assert.Len(t, Merge(nil, only), 1)
}
