package user

import (
	"context"
)

// Service defines business logic for employee directory management.
type Service interface {
	// List returns every employee account.
	List(ctx context.Context) ([]UserResponse, error)

	// Me returns the caller's own profile, including the live leave
	// balance and permission counter.
	Me(ctx context.Context, id string) (UserResponse, error)

	// Create adds an employee account with the standard leave balance.
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Remove deletes an employee account.
	Remove(ctx context.Context, id string) error
}
