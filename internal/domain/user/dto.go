package user

import (
	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
	"github.com/smartattend/attendance-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID              string       `json:"id"`
	Username        string       `json:"username"`
	Role            string       `json:"role"`
	Name            string       `json:"name"`
	Department      string       `json:"department"`
	AssignedShift   string       `json:"assigned_shift,omitempty"`
	LeaveBalance    LeaveBalance `json:"leave_balance"`
	PermissionsUsed int          `json:"permissions_used"`
}

// ToResponse maps a User entity to its API shape.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Role:            string(u.Role),
		Name:            u.Name,
		Department:      u.Department,
		AssignedShift:   string(u.AssignedShift),
		LeaveBalance:    u.LeaveBalance,
		PermissionsUsed: u.PermissionsUsed,
	}
}

// CreateUserRequest represents an admin request to add an employee.
// New accounts start with the standard leave balance (casual 5, sick 4).
type CreateUserRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	Role          string `json:"role"`
	AssignedShift string `json:"assigned_shift,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleUser)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if r.AssignedShift != "" && !shift.Valid(shift.Type(r.AssignedShift)) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_shift",
			Message: "invalid shift type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

