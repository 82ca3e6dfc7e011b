// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry represents one recorded observation in the ship's log.
// Entries originate from the onboard GPS recorder, user input, GPX imports
// or the community feed; the engine treats them uniformly once merged.
type LogEntry struct {
	ID        uuid.UUID `json:"id"`        // Globally unique identifier, stable across sources.
	Timestamp time.Time `json:"timestamp"` // Absolute instant of capture.
	Latitude  *float64  `json:"latitude,omitempty"`  // Optional; absent for some manual entries.
	Longitude *float64  `json:"longitude,omitempty"` // Optional; absent for some manual entries.
	EntryType EntryType `json:"entry_type"`          // auto, manual or waypoint.
	VoyageID  uuid.UUID `json:"voyage_id"`           // Groups entries into a voyage; uuid.Nil means unassigned.
	Source    EntrySource `json:"source,omitempty"`  // Provenance tag; empty means legacy device data.
	IsOnWater *bool     `json:"is_on_water,omitempty"` // Tri-state land/water signal for the maritime classifier.

	// Derived navigation and weather readings, carried through but not
	// interpreted by the merge/group pipeline.
	SpeedKts             *float64 `json:"speed_kts,omitempty"`
	CourseDeg            *float64 `json:"course_deg,omitempty"`
	CumulativeDistanceNM *float64 `json:"cumulative_distance_nm,omitempty"`
	WindSpeedKts         *float64 `json:"wind_speed_kts,omitempty"`
	WindDirectionDeg     *float64 `json:"wind_direction_deg,omitempty"`

	Title string `json:"title,omitempty"` // Short label for manual entries and waypoints.
	Note  string `json:"note,omitempty"`  // Free-form user note.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the entry carries a GPS position.
func (e *LogEntry) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// EffectiveSource resolves the provenance tag, treating legacy untagged
// entries as device-recorded.
func (e *LogEntry) EffectiveSource() EntrySource {
	if e.Source == "" {
		return EntrySourceDevice
	}

	return e.Source
}
