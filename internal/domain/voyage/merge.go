// Package voyage implements the pure log-consistency engine: entry merge and
// deduplication, voyage grouping, per-voyage statistics and the maritime
// classifier. Everything in this package operates on snapshots and cannot
// fail on well-formed input; all I/O and failure handling stays with callers.
package voyage

import (
	"sort"

	"shiplog/internal/domain/entity"

	"github.com/google/uuid"
)

// Merge combines entries from the durable remote store and the local offline
// queue into one consistent, time-ordered set.
//
// The concatenation is scanned in a fixed order, remote first, so when both
// sources carry the same id the remote copy wins. Duplicates are assumed
// identical once matched by id and are dropped silently. Entries without an
// id cannot be deduplicated or referenced later and are excluded; callers
// must guarantee a non-nil id on every locally created entry.
//
// The result is sorted newest-first by timestamp. The sort is stable, so
// entries sharing a timestamp keep their source order.
func Merge(remote, offline []*entity.LogEntry) []*entity.LogEntry {
	seen := make(map[uuid.UUID]struct{}, len(remote)+len(offline))
	merged := make([]*entity.LogEntry, 0, len(remote)+len(offline))

	for _, list := range [][]*entity.LogEntry{remote, offline} {
		for _, entry := range list {
			if entry == nil || entry.ID == uuid.Nil {
				continue
			}
			if _, ok := seen[entry.ID]; ok {
				continue
			}
			seen[entry.ID] = struct{}{}
			merged = append(merged, entry)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	return merged
}
