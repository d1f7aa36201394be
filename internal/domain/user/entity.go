package user

import (
	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// LeaveBalance holds the remaining leave days per leave type.
// Never decremented below zero.
type LeaveBalance struct {
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
}

// User is an employee account. The JSON tags define the persisted shape in
// the state mirror, so they stay camelCase.
type User struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"passwordHash,omitempty"`
	Role          Role       `json:"role"`
	Name          string     `json:"name"`
	Department    string     `json:"department"`
	AssignedShift shift.Type `json:"assignedShift,omitempty"`

	LeaveBalance    LeaveBalance `json:"leaveBalance"`
	PermissionsUsed int          `json:"permissionsUsed"` // resets monthly
}

// FindByID returns the user with the given id, if present.
func FindByID(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
