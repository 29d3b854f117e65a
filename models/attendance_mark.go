package models

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

// Valid reports whether the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	default:
		return false
	}
}

// The two present-set policies are intentionally different and must stay
// separate: teacher summaries count excused as attended, student and HOD
// views do not. Merging them would silently change reported percentages.
var (
	TeacherPresentSet  = []AttendanceStatus{StatusPresent, StatusLate, StatusExcused}
	StandardPresentSet = []AttendanceStatus{StatusPresent, StatusLate}
)

// AttendanceMark is the per-student record of one session, unique per
// (session, student). MarkedAt is set on first creation and never
// refreshed by later status changes.
type AttendanceMark struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	SessionID uint               `json:"session_id" gorm:"not null;uniqueIndex:idx_marks_session_student"`
	Session   *AttendanceSession `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StudentID uint               `json:"student_id" gorm:"not null;uniqueIndex:idx_marks_session_student"`
	Student   *User              `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Status    AttendanceStatus   `json:"status" gorm:"size:10;not null"`
	MarkedAt  time.Time          `json:"marked_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
