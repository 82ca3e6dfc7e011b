package model

import (
	"time"

	"github.com/google/uuid"
)

// LogEntryModel mirrors the 'log_entries' table. Entry IDs are assigned by
// the capturing device, never by the database, so the primary key carries no
// default.
type LogEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Timestamp time.Time `gorm:"not null;index:idx_log_entries_timestamp,sort:desc"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	EntryType string    `gorm:"type:varchar(20);not null"`
	VoyageID  uuid.UUID `gorm:"type:uuid;index"`
	Source    string    `gorm:"type:varchar(20)"`
	IsOnWater *bool

	SpeedKts             *float64 `gorm:"type:double precision"`
	CourseDeg            *float64 `gorm:"type:double precision"`
	CumulativeDistanceNM *float64 `gorm:"type:double precision"`
	WindSpeedKts         *float64 `gorm:"type:double precision"`
	WindDirectionDeg     *float64 `gorm:"type:double precision"`

	Title string `gorm:"type:varchar(255)"`
	Note  string `gorm:"type:text"`

	// Archived voyages stay out of the live log but keep contributing to
	// career totals.
	Archived bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LogEntryModel) TableName() string {
	return "log_entries"
}
