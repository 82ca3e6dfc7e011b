package voyage

import (
	"shiplog/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersPerNauticalMile = 1852.0

// ComputeStats derives the per-voyage figures from a single scan of the
// voyage's entries. Entries are expected newest-first as produced by Group;
// the scan itself does not depend on order except for start/end times, which
// use the actual min and max timestamps.
func ComputeStats(entries []*entity.LogEntry) entity.VoyageStats {
	stats := entity.VoyageStats{}
	if len(entries) == 0 {
		return stats
	}

	stats.EntryCount = len(entries)
	stats.StartedAt = entries[0].Timestamp
	stats.EndedAt = entries[0].Timestamp

	var (
		speedSum   float64
		speedCount int
		windSum    float64
		windCount  int
		maxCumNM   float64
	)

	for _, entry := range entries {
		if entry.Timestamp.Before(stats.StartedAt) {
			stats.StartedAt = entry.Timestamp
		}
		if entry.Timestamp.After(stats.EndedAt) {
			stats.EndedAt = entry.Timestamp
		}

		switch entry.EntryType {
		case entity.EntryTypeWaypoint:
			stats.WaypointCount++
		case entity.EntryTypeManual:
			stats.ManualCount++
		}

		if entry.SpeedKts != nil {
			kts := *entry.SpeedKts
			speedSum += kts
			speedCount++
			if kts > stats.MaxSpeedKts {
				stats.MaxSpeedKts = kts
			}
			if speedCount == 1 || kts < stats.MinSpeedKts {
				stats.MinSpeedKts = kts
			}
		}

		if entry.WindSpeedKts != nil {
			windSum += *entry.WindSpeedKts
			windCount++
		}

		if entry.CumulativeDistanceNM != nil && *entry.CumulativeDistanceNM > maxCumNM {
			maxCumNM = *entry.CumulativeDistanceNM
		}
	}

	if speedCount > 0 {
		stats.AvgSpeedKts = speedSum / float64(speedCount)
	}
	if windCount > 0 {
		stats.AvgWindKts = windSum / float64(windCount)
	}

	stats.Duration = stats.EndedAt.Sub(stats.StartedAt)

	// Prefer the recorder's own cumulative distance; fall back to a haversine
	// pass over the coordinates when the recorder did not report one.
	if maxCumNM > 0 {
		stats.DistanceNM = maxCumNM
	} else {
		stats.DistanceNM = trackDistanceNM(entries)
	}

	return stats
}

// trackDistanceNM sums the haversine distance over consecutive positioned
// entries in chronological order.
func trackDistanceNM(entries []*entity.LogEntry) float64 {
	var meters float64
	var prev *entity.LogEntry

	// Entries arrive newest-first; walk them backwards for a chronological pass.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if !entry.HasCoordinates() {
			continue
		}
		if prev != nil {
			meters += geo.DistanceHaversine(
				orb.Point{*prev.Longitude, *prev.Latitude},
				orb.Point{*entry.Longitude, *entry.Latitude},
			)
		}
		prev = entry
	}

	return meters / metersPerNauticalMile
}
