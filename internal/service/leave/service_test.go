package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartattend/attendance-backend-go/internal/domain/leave"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/pkg/kv"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

func newLedger(t *testing.T) (leave.Service, *state.Store) {
	t.Helper()
	seed := &state.Snapshot{
		Users: []user.User{
			{ID: "1", Username: "kavin", Name: "Kavin", LeaveBalance: user.LeaveBalance{Casual: 5, Sick: 4}},
		},
	}
	store := state.Load(context.Background(), kv.NewMemory(), seed)
	clock := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return NewLeaveService(store, func() time.Time { return clock }), store
}

func balance(t *testing.T, store *state.Store, userID string) user.LeaveBalance {
	t.Helper()
	u, ok := user.FindByID(store.Snapshot().Users, userID)
	require.True(t, ok)
	return u.LeaveBalance
}

func TestApproveThreeDayCasualLeaveDebitsBalance(t *testing.T) {
	svc, store := newLedger(t)
	ctx := context.Background()

	submitted, err := svc.SubmitLeave(ctx, "1", leave.SubmitLeaveRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "family function",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), submitted.Status)

	decided, err := svc.DecideLeave(ctx, submitted.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	assert.NotEmpty(t, decided.UpdatedAt)

	assert.Equal(t, user.LeaveBalance{Casual: 2, Sick: 4}, balance(t, store, "1"))
}

func TestReApprovalDoesNotDebitTwice(t *testing.T) {
	svc, store := newLedger(t)
	ctx := context.Background()

	submitted, err := svc.SubmitLeave(ctx, "1", leave.SubmitLeaveRequest{
		Type:      string(leave.TypeSick),
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
		Reason:    "fever",
	})
	require.NoError(t, err)

	_, err = svc.DecideLeave(ctx, submitted.ID, leave.StatusApproved)
	require.NoError(t, err)
	require.Equal(t, user.LeaveBalance{Casual: 5, Sick: 3}, balance(t, store, "1"))

	_, err = svc.DecideLeave(ctx, submitted.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, user.LeaveBalance{Casual: 5, Sick: 3}, balance(t, store, "1"))
}

func TestRejectionNeverTouchesBalance(t *testing.T) {
	svc, store := newLedger(t)
	ctx := context.Background()

	submitted, err := svc.SubmitLeave(ctx, "1", leave.SubmitLeaveRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2026-03-10",
		EndDate:   "2026-03-20",
		Reason:    "trip",
	})
	require.NoError(t, err)

	decided, err := svc.DecideLeave(ctx, submitted.ID, leave.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)
	assert.Equal(t, user.LeaveBalance{Casual: 5, Sick: 4}, balance(t, store, "1"))
}

func TestApprovalDebitFloorsAtZero(t *testing.T) {
	svc, store := newLedger(t)
	ctx := context.Background()

	submitted, err := svc.SubmitLeave(ctx, "1", leave.SubmitLeaveRequest{
		Type:      string(leave.TypeCasual),
		StartDate: "2026-03-01",
		EndDate:   "2026-03-10",
		Reason:    "long trip",
	})
	require.NoError(t, err)

	_, err = svc.DecideLeave(ctx, submitted.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, user.LeaveBalance{Casual: 0, Sick: 4}, balance(t, store, "1"))
}

func TestDecideUnknownLeaveRequest(t *testing.T) {
	svc, _ := newLedger(t)

	_, err := svc.DecideLeave(context.Background(), "leave_missing", leave.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestPermissionApprovalIncrementsCounterOnce(t *testing.T) {
	svc, store := newLedger(t)
	ctx := context.Background()

	submitted, err := svc.SubmitPermission(ctx, "1", leave.SubmitPermissionRequest{
		Date:      "2026-03-05",
		StartTime: "14:00",
		EndTime:   "16:00",
		Reason:    "bank visit",
	})
	require.NoError(t, err)

	_, err = svc.DecidePermission(ctx, submitted.ID, leave.StatusApproved)
	require.NoError(t, err)

	_, err = svc.DecidePermission(ctx, submitted.ID, leave.StatusApproved)
	require.NoError(t, err)

	u, ok := user.FindByID(store.Snapshot().Users, "1")
	require.True(t, ok)
	assert.Equal(t, 1, u.PermissionsUsed)
}

func TestPermissionRejectionIsANoOpOnCounter(t *testing.T) {
	svc, store := newLedger(t)
	ctx := context.Background()

	submitted, err := svc.SubmitPermission(ctx, "1", leave.SubmitPermissionRequest{
		Date:      "2026-03-05",
		StartTime: "14:00",
		EndTime:   "16:00",
		Reason:    "errand",
	})
	require.NoError(t, err)

	decided, err := svc.DecidePermission(ctx, submitted.ID, leave.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)

	u, ok := user.FindByID(store.Snapshot().Users, "1")
	require.True(t, ok)
	assert.Zero(t, u.PermissionsUsed)
}

func TestMyLeavesFiltersByUser(t *testing.T) {
	svc, _ := newLedger(t)
	ctx := context.Background()

	_, err := svc.SubmitLeave(ctx, "1", leave.SubmitLeaveRequest{
		Type: string(leave.TypeCasual), StartDate: "2026-03-10", EndDate: "2026-03-10", Reason: "a",
	})
	require.NoError(t, err)
	_, err = svc.SubmitLeave(ctx, "2", leave.SubmitLeaveRequest{
		Type: string(leave.TypeCasual), StartDate: "2026-03-11", EndDate: "2026-03-11", Reason: "b",
	})
	require.NoError(t, err)

	mine, err := svc.MyLeaves(ctx, "1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "1", mine[0].UserID)

	all, err := svc.ListLeaves(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmitLeaveRejectsInvalidPayload(t *testing.T) {
	svc, _ := newLedger(t)

	_, err := svc.SubmitLeave(context.Background(), "1", leave.SubmitLeaveRequest{
		Type:      "UNPAID",
		StartDate: "10-03-2026",
		EndDate:   "2026-03-12",
	})
	assert.Error(t, err)
}
