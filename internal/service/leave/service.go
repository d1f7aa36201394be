package leave

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartattend/attendance-backend-go/internal/domain/leave"
	"github.com/smartattend/attendance-backend-go/internal/pkg/metrics"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type LeaveServiceImpl struct {
	store *state.Store
	now   func() time.Time
}

func NewLeaveService(store *state.Store, now func() time.Time) leave.Service {
	if now == nil {
		now = time.Now
	}
	return &LeaveServiceImpl{store: store, now: now}
}

// SubmitLeave implements leave.Service.
func (s *LeaveServiceImpl) SubmitLeave(ctx context.Context, userID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	created := leave.LeaveRequest{
		ID:        "leave_" + uuid.NewString(),
		UserID:    userID,
		Type:      leave.RequestType(req.Type),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		next.Leaves = append(next.Leaves, created)
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToLeaveResponse(created), nil
}

// SubmitPermission implements leave.Service.
func (s *LeaveServiceImpl) SubmitPermission(ctx context.Context, userID string, req leave.SubmitPermissionRequest) (leave.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PermissionResponse{}, err
	}

	created := leave.PermissionRequest{
		ID:        "perm_" + uuid.NewString(),
		UserID:    userID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		next.Permissions = append(next.Permissions, created)
		return nil
	})
	if err != nil {
		return leave.PermissionResponse{}, err
	}
	return leave.ToPermissionResponse(created), nil
}

// DecideLeave implements leave.Service. The balance debit fires only on
// the PENDING to APPROVED edge; re-deciding a processed request rewrites
// status and updatedAt without touching balances.
func (s *LeaveServiceImpl) DecideLeave(ctx context.Context, id string, decision leave.Status) (leave.LeaveResponse, error) {
	var decided leave.LeaveRequest

	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		out, debit, found := leave.TransitionLeave(next.Leaves, id, decision, s.now())
		if !found {
			return leave.ErrLeaveRequestNotFound
		}
		next.Leaves = out
		if debit != nil {
			next.Users = leave.ApplyDebit(next.Users, *debit)
		}
		for _, l := range out {
			if l.ID == id {
				decided = l
				break
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	metrics.LedgerTransitions.WithLabelValues("leave", string(decision)).Inc()
	return leave.ToLeaveResponse(decided), nil
}

// DecidePermission implements leave.Service.
func (s *LeaveServiceImpl) DecidePermission(ctx context.Context, id string, decision leave.Status) (leave.PermissionResponse, error) {
	var decided leave.PermissionRequest

	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		out, incrementUserID, found := leave.TransitionPermission(next.Permissions, id, decision, s.now())
		if !found {
			return leave.ErrPermissionRequestNotFound
		}
		next.Permissions = out
		if incrementUserID != "" {
			next.Users = leave.ApplyPermissionUse(next.Users, incrementUserID)
		}
		for _, p := range out {
			if p.ID == id {
				decided = p
				break
			}
		}
		return nil
	})
	if err != nil {
		return leave.PermissionResponse{}, err
	}

	metrics.LedgerTransitions.WithLabelValues("permission", string(decision)).Inc()
	return leave.ToPermissionResponse(decided), nil
}

// MyLeaves implements leave.Service.
func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	snap := s.store.Snapshot()

	out := make([]leave.LeaveResponse, 0)
	for i := len(snap.Leaves) - 1; i >= 0; i-- {
		if snap.Leaves[i].UserID == userID {
			out = append(out, leave.ToLeaveResponse(snap.Leaves[i]))
		}
	}
	return out, nil
}

// MyPermissions implements leave.Service.
func (s *LeaveServiceImpl) MyPermissions(ctx context.Context, userID string) ([]leave.PermissionResponse, error) {
	snap := s.store.Snapshot()

	out := make([]leave.PermissionResponse, 0)
	for i := len(snap.Permissions) - 1; i >= 0; i-- {
		if snap.Permissions[i].UserID == userID {
			out = append(out, leave.ToPermissionResponse(snap.Permissions[i]))
		}
	}
	return out, nil
}

// ListLeaves implements leave.Service.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	snap := s.store.Snapshot()

	out := make([]leave.LeaveResponse, 0, len(snap.Leaves))
	for i := len(snap.Leaves) - 1; i >= 0; i-- {
		out = append(out, leave.ToLeaveResponse(snap.Leaves[i]))
	}
	return out, nil
}

// ListPermissions implements leave.Service.
func (s *LeaveServiceImpl) ListPermissions(ctx context.Context) ([]leave.PermissionResponse, error) {
	snap := s.store.Snapshot()

	out := make([]leave.PermissionResponse, 0, len(snap.Permissions))
	for i := len(snap.Permissions) - 1; i >= 0; i-- {
		out = append(out, leave.ToPermissionResponse(snap.Permissions[i]))
	}
	return out, nil
}
