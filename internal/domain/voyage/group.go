package voyage

import (
	"sort"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
)

// Group partitions merged entries into voyage groups and establishes the
// canonical display order: groups sorted by their most recent entry,
// descending, entries within a group sorted newest-first.
//
// Entries without a voyage id land in a single default group keyed by
// uuid.Nil. Statistics are recomputed on every call from the entry set, so
// they can never go stale relative to it.
func Group(entries []*entity.LogEntry) []*entity.VoyageGroup {
	buckets := make(map[uuid.UUID][]*entity.LogEntry)
	order := make([]uuid.UUID, 0)

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if _, ok := buckets[entry.VoyageID]; !ok {
			order = append(order, entry.VoyageID)
		}
		buckets[entry.VoyageID] = append(buckets[entry.VoyageID], entry)
	}

	groups := make([]*entity.VoyageGroup, 0, len(order))
	for _, voyageID := range order {
		groupEntries := buckets[voyageID]
		sort.SliceStable(groupEntries, func(i, j int) bool {
			return groupEntries[i].Timestamp.After(groupEntries[j].Timestamp)
		})

		groups = append(groups, &entity.VoyageGroup{
			VoyageID: voyageID,
			Entries:  groupEntries,
			Stats:    ComputeStats(groupEntries),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].NewestTimestamp().After(groups[j].NewestTimestamp())
	})

	return groups
}
