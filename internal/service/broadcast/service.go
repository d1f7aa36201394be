package broadcast

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartattend/attendance-backend-go/internal/domain/broadcast"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type BroadcastServiceImpl struct {
	store *state.Store
	now   func() time.Time
}

func NewBroadcastService(store *state.Store, now func() time.Time) broadcast.Service {
	if now == nil {
		now = time.Now
	}
	return &BroadcastServiceImpl{store: store, now: now}
}

// Send implements broadcast.Service.
func (s *BroadcastServiceImpl) Send(ctx context.Context, senderID string, req broadcast.SendRequest) (broadcast.Message, error) {
	if err := req.Validate(); err != nil {
		return broadcast.Message{}, err
	}

	msg := broadcast.Message{
		ID:        "bc_" + uuid.NewString(),
		SenderID:  senderID,
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: s.now().Format(time.RFC3339),
	}

	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		next.Broadcasts = append(next.Broadcasts, msg)
		return nil
	})
	if err != nil {
		return broadcast.Message{}, err
	}
	return msg, nil
}

// List implements broadcast.Service. Newest messages come first.
func (s *BroadcastServiceImpl) List(ctx context.Context) ([]broadcast.Message, error) {
	snap := s.store.Snapshot()

	out := make([]broadcast.Message, 0, len(snap.Broadcasts))
	for i := len(snap.Broadcasts) - 1; i >= 0; i-- {
		out = append(out, snap.Broadcasts[i])
	}
	return out, nil
}

// Remove implements broadcast.Service.
func (s *BroadcastServiceImpl) Remove(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(next *state.Snapshot) error {
		out := next.Broadcasts[:0:0]
		found := false
		for _, b := range next.Broadcasts {
			if b.ID == id {
				found = true
				continue
			}
			out = append(out, b)
		}
		if !found {
			return broadcast.ErrBroadcastNotFound
		}
		next.Broadcasts = out
		return nil
	})
}
