package models

import "time"

// A course code repeats across departments, so uniqueness is on the pair.
type Course struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Code         string      `json:"code" gorm:"size:20;not null;uniqueIndex:idx_courses_code_department"`
	Name         string      `json:"name" gorm:"size:200;not null"`
	DepartmentID uint        `json:"department_id" gorm:"not null;uniqueIndex:idx_courses_code_department"`
	Department   *Department `json:"department,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
