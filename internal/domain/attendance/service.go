package attendance

import (
	"context"
)

// Service defines business logic for attendance operations.
type Service interface {
	// CheckIn records today's check-in for the user. Rejected without any
	// state change if a record already exists for today, or today is a
	// weekly off day or a configured holiday.
	CheckIn(ctx context.Context, userID string) (RecordResponse, error)

	// CheckOut merges the check-out time into today's open record. Status
	// and lateness are never recomputed at checkout.
	CheckOut(ctx context.Context, userID string) (RecordResponse, error)

	// Today returns the live dashboard status for the user.
	Today(ctx context.Context, userID string) (TodayResponse, error)

	// History returns all attendance records for the user.
	History(ctx context.Context, userID string) ([]RecordResponse, error)
}
