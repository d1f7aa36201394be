package holiday

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartattend/attendance-backend-go/internal/domain/holiday"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type HolidayServiceImpl struct {
	store *state.Store
}

func NewHolidayService(store *state.Store) holiday.Service {
	return &HolidayServiceImpl{store: store}
}

// List implements holiday.Service.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	snap := s.store.Snapshot()

	out := make([]holiday.Holiday, len(snap.Holidays))
	copy(out, snap.Holidays)
	return out, nil
}

// Create implements holiday.Service.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	created := holiday.Holiday{
		ID:   "h_" + uuid.NewString(),
		Date: req.Date,
		Name: req.Name,
	}

	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		next.Holidays = append(next.Holidays, created)
		return nil
	})
	if err != nil {
		return holiday.Holiday{}, err
	}
	return created, nil
}

// Update implements holiday.Service.
func (s *HolidayServiceImpl) Update(ctx context.Context, id string, req holiday.UpsertHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	var updated holiday.Holiday
	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		for i, h := range next.Holidays {
			if h.ID == id {
				h.Date = req.Date
				h.Name = req.Name
				next.Holidays[i] = h
				updated = h
				return nil
			}
		}
		return holiday.ErrHolidayNotFound
	})
	if err != nil {
		return holiday.Holiday{}, err
	}
	return updated, nil
}

// Remove implements holiday.Service.
func (s *HolidayServiceImpl) Remove(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(next *state.Snapshot) error {
		out := next.Holidays[:0:0]
		found := false
		for _, h := range next.Holidays {
			if h.ID == id {
				found = true
				continue
			}
			out = append(out, h)
		}
		if !found {
			return holiday.ErrHolidayNotFound
		}
		next.Holidays = out
		return nil
	})
}
