package holiday

import (
	"context"
)

// Service defines holiday calendar management.
type Service interface {
	// List returns all configured holidays.
	List(ctx context.Context) ([]Holiday, error)

	// Create adds a holiday (admin).
	Create(ctx context.Context, req UpsertHolidayRequest) (Holiday, error)

	// Update rewrites a holiday (admin).
	Update(ctx context.Context, id string, req UpsertHolidayRequest) (Holiday, error)

	// Remove deletes a holiday (admin).
	Remove(ctx context.Context, id string) error
}
