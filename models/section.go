package models

import "time"

type Section struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	CourseID uint    `json:"course_id" gorm:"not null;uniqueIndex:idx_sections_course_name"`
	Course   *Course `json:"course,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Name     string  `json:"name" gorm:"size:50;not null;uniqueIndex:idx_sections_course_name"` // e.g. "A"
	Semester string  `json:"semester" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label is the "CODE-NAME" form the report endpoints use. Needs Course
// preloaded; falls back to the bare section name without it.
func (s *Section) Label() string {
	if s.Course != nil {
		return s.Course.Code + "-" + s.Name
	}
	return s.Name
}
