package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartattend/attendance-backend-go/internal/domain/broadcast"
	"github.com/smartattend/attendance-backend-go/internal/pkg/kv"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

func newBoard(t *testing.T) broadcast.Service {
	t.Helper()
	store := state.Load(context.Background(), kv.NewMemory(), &state.Snapshot{})
	clock := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	return NewBroadcastService(store, func() time.Time { return clock })
}

func TestSendAndListNewestFirst(t *testing.T) {
	svc := newBoard(t)
	ctx := context.Background()

	first, err := svc.Send(ctx, "admin", broadcast.SendRequest{Title: "Maintenance", Message: "Plant shutdown Saturday"})
	require.NoError(t, err)
	assert.Equal(t, "admin", first.SenderID)
	assert.NotEmpty(t, first.Timestamp)

	second, err := svc.Send(ctx, "admin", broadcast.SendRequest{Title: "Reminder", Message: "Submit timesheets"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestSendRejectsEmptyTitle(t *testing.T) {
	svc := newBoard(t)

	_, err := svc.Send(context.Background(), "admin", broadcast.SendRequest{Message: "no title"})
	assert.Error(t, err)
}

func TestRemoveBroadcast(t *testing.T) {
	svc := newBoard(t)
	ctx := context.Background()

	msg, err := svc.Send(ctx, "admin", broadcast.SendRequest{Title: "t", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, msg.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Remove(ctx, msg.ID), broadcast.ErrBroadcastNotFound)
}
