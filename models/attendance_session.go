package models

import "time"

// AttendanceSession is opened by a teacher for one section on one day and
// accepts marks until it is closed. At most one open session may exist
// per (section, date); the create path checks first and a partial unique
// index backs the check up (see database.Migrate).
type AttendanceSession struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	SectionID uint       `json:"section_id" gorm:"index;not null"`
	Section   *Section   `json:"section,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Date      string     `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"` // null until closed
	CreatedBy uint       `json:"created_by" gorm:"not null"`
	IsClosed  bool       `json:"is_closed" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
