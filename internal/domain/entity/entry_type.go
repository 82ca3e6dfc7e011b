// Package entity contains the core business objects of the project.
package entity

// EntryType represents how a log entry was produced.
type EntryType string

const (
	// EntryTypeAuto indicates an automatic GPS-interval sample.
	EntryTypeAuto EntryType = "auto"
	// EntryTypeManual indicates a user-authored log entry.
	EntryTypeManual EntryType = "manual"
	// EntryTypeWaypoint indicates a user-marked point of interest.
	EntryTypeWaypoint EntryType = "waypoint"
)

// String returns the string representation of the EntryType.
func (t EntryType) String() string {
	return string(t)
}

// IsValid checks if the EntryType is a valid value.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeAuto, EntryTypeManual, EntryTypeWaypoint:
		return true
	default:
		return false
	}
}
