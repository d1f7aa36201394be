package leave

import (
	"context"
)

// Service defines the leave/permission ledger operations.
type Service interface {
	// SubmitLeave appends a PENDING leave request for the user.
	SubmitLeave(ctx context.Context, userID string, req SubmitLeaveRequest) (LeaveResponse, error)

	// SubmitPermission appends a PENDING permission request for the user.
	SubmitPermission(ctx context.Context, userID string, req SubmitPermissionRequest) (PermissionResponse, error)

	// DecideLeave transitions a leave request to APPROVED or REJECTED.
	// The balance debit fires only on the PENDING -> APPROVED edge.
	DecideLeave(ctx context.Context, id string, decision Status) (LeaveResponse, error)

	// DecidePermission transitions a permission request; approval of a
	// pending request increments the user's monthly counter by one.
	DecidePermission(ctx context.Context, id string, decision Status) (PermissionResponse, error)

	// MyLeaves returns the user's leave requests.
	MyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)

	// MyPermissions returns the user's permission requests.
	MyPermissions(ctx context.Context, userID string) ([]PermissionResponse, error)

	// ListLeaves returns all leave requests (admin).
	ListLeaves(ctx context.Context) ([]LeaveResponse, error)

	// ListPermissions returns all permission requests (admin).
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
}
