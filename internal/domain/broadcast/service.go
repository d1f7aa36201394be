package broadcast

import (
	"context"
)

// Service defines broadcast announcement operations.
type Service interface {
	// Send appends a broadcast authored by the sender (admin).
	Send(ctx context.Context, senderID string, req SendRequest) (Message, error)

	// List returns all broadcasts, newest last.
	List(ctx context.Context) ([]Message, error)

	// Remove deletes a broadcast (admin).
	Remove(ctx context.Context, id string) error
}
