// Package entity contains the core business objects of the project.
package entity

// EntrySource represents the provenance of a log entry.
type EntrySource string

const (
	// EntrySourceDevice indicates the entry was recorded by the user's own GPS.
	EntrySourceDevice EntrySource = "device"
	// EntrySourceGPXImport indicates the entry was imported from a GPX file.
	EntrySourceGPXImport EntrySource = "gpx_import"
	// EntrySourceCommunity indicates the entry came from the community feed.
	EntrySourceCommunity EntrySource = "community"
)

// String returns the string representation of the EntrySource.
func (s EntrySource) String() string {
	return string(s)
}

// CountsForCareer reports whether entries from this source may contribute
// to career sailing totals. Imported and community tracks never do.
func (s EntrySource) CountsForCareer() bool {
	return s == EntrySourceDevice || s == ""
}
