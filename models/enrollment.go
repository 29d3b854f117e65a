package models

import "time"

// Enrollment defines the valid-student set for marking and the
// denominator set for per-section reports.
type Enrollment struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	StudentID uint     `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollments_student_section"`
	Student   *User    `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	SectionID uint     `json:"section_id" gorm:"not null;uniqueIndex:idx_enrollments_student_section"`
	Section   *Section `json:"section,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
