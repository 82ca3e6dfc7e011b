// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VoyageGroup is the derived, ordered set of entries sharing a voyage
// identifier. Voyages are never persisted as their own object; groups and
// their statistics are recomputed from the entry set on every refresh so
// no stored aggregate can diverge from the entries.
type VoyageGroup struct {
	VoyageID uuid.UUID   `json:"voyage_id"` // uuid.Nil identifies the default group for unassigned entries.
	Entries  []*LogEntry `json:"entries"`   // Sorted newest-first by timestamp.
	Stats    VoyageStats `json:"stats"`
}

// NewestTimestamp returns the timestamp of the most recent entry, or the
// zero time for an empty group.
func (g *VoyageGroup) NewestTimestamp() time.Time {
	if len(g.Entries) == 0 {
		return time.Time{}
	}

	return g.Entries[0].Timestamp
}

// VoyageStats holds the per-voyage figures derived from a single scan of
// the voyage's entries.
type VoyageStats struct {
	EntryCount    int           `json:"entry_count"`
	WaypointCount int           `json:"waypoint_count"`
	ManualCount   int           `json:"manual_count"`
	StartedAt     time.Time     `json:"started_at"`
	EndedAt       time.Time     `json:"ended_at"`
	Duration      time.Duration `json:"duration"`
	DistanceNM    float64       `json:"distance_nm"`
	MinSpeedKts   float64       `json:"min_speed_kts"`
	AvgSpeedKts   float64       `json:"avg_speed_kts"`
	MaxSpeedKts   float64       `json:"max_speed_kts"`
	AvgWindKts    float64       `json:"avg_wind_kts"`
}

// CareerTotals aggregates maritime-classified voyages across the user's
// entire history, active and archived, excluding imported and community data.
type CareerTotals struct {
	VoyageCount     int           `json:"voyage_count"`
	DistanceNM      float64       `json:"distance_nm"`
	TimeUnderway    time.Duration `json:"time_underway"`
	ExcludedVoyages int           `json:"excluded_voyages"` // Land-classified voyages left out of the totals.
}
