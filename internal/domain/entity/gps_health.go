// Package entity contains the core business objects of the project.
package entity

// GpsHealth represents the freshness of the GPS fix reported by the recorder.
type GpsHealth string

const (
	// GpsHealthLocked indicates a current, reliable GPS fix.
	GpsHealthLocked GpsHealth = "locked"
	// GpsHealthStale indicates the last fix is outdated.
	GpsHealthStale GpsHealth = "stale"
	// GpsHealthNone indicates no fix is available or tracking is inactive.
	GpsHealthNone GpsHealth = "none"
)

// String returns the string representation of the GpsHealth.
func (h GpsHealth) String() string {
	return string(h)
}

// IsValid checks if the GpsHealth is a valid value.
func (h GpsHealth) IsValid() bool {
	switch h {
	case GpsHealthLocked, GpsHealthStale, GpsHealthNone:
		return true
	default:
		return false
	}
}
