package models

import "time"

// TeachingAssignment is the authorization anchor: a teacher may act on a
// session only if a (teacher, section) row exists for that session's
// section.
type TeachingAssignment struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	TeacherID uint     `json:"teacher_id" gorm:"not null;uniqueIndex:idx_assignments_teacher_section"`
	Teacher   *User    `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
	SectionID uint     `json:"section_id" gorm:"not null;uniqueIndex:idx_assignments_teacher_section"`
	Section   *Section `json:"section,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
