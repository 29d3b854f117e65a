package models

import "time"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Role     Role   `json:"role" gorm:"size:20;not null"`
	Name     string `json:"name" gorm:"size:120"`

	EmployeeID string `json:"employee_id,omitempty" gorm:"size:50"` // teacher/HOD
	RollNumber string `json:"roll_number,omitempty" gorm:"size:50"` // student

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
