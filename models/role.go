package models

import "fmt"

// Role is the closed set of account roles. Unknown values are rejected
// once, at the authentication boundary, so handlers never see a role
// outside this set.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleHOD     Role = "hod"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleHOD:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }
