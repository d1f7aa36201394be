package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartattend/attendance-backend-go/internal/domain/attendance"
	"github.com/smartattend/attendance-backend-go/internal/domain/holiday"
	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
	"github.com/smartattend/attendance-backend-go/internal/domain/user"
	"github.com/smartattend/attendance-backend-go/internal/pkg/metrics"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

type AttendanceServiceImpl struct {
	store   *state.Store
	restDay time.Weekday
	now     func() time.Time
}

func NewAttendanceService(store *state.Store, restDay time.Weekday, now func() time.Time) attendance.Service {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		store:   store,
		restDay: restDay,
		now:     now,
	}
}

// CheckIn implements attendance.Service. The shift is the user's assigned
// shift when one is set, otherwise it is detected from the wall clock at
// the moment of check-in. Status and lateness are fixed here; nothing
// recomputes them later.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.RecordResponse, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	var created attendance.Record
	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		if _, exists := attendance.Find(next.Records, userID, date); exists {
			metrics.CheckInRejections.WithLabelValues("duplicate").Inc()
			return attendance.ErrAlreadyCheckedIn
		}
		if holiday.IsWeeklyOff(date, s.restDay) {
			metrics.CheckInRejections.WithLabelValues("weekly_off").Inc()
			return attendance.ErrWeeklyOff
		}
		if _, ok := holiday.Find(next.Holidays, date); ok {
			metrics.CheckInRejections.WithLabelValues("holiday").Inc()
			return attendance.ErrHoliday
		}

		detected, err := shift.Classify(clock)
		if err != nil {
			return err
		}
		resolved := detected
		if u, ok := user.FindByID(next.Users, userID); ok && u.AssignedShift != "" {
			resolved = u.AssignedShift
		}
		late, err := shift.LateMinutes(clock, resolved)
		if err != nil {
			return err
		}

		status := attendance.StatusPresent
		if late > 0 {
			status = attendance.StatusLatePresent
		}

		created = attendance.Record{
			ID:          "rec_" + uuid.NewString(),
			UserID:      userID,
			Date:        date,
			CheckIn:     &clock,
			Shift:       resolved,
			Status:      status,
			LateMinutes: late,
		}
		next.Records = attendance.Upsert(next.Records, created)
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	metrics.CheckIns.WithLabelValues(string(created.Status)).Inc()
	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.Service. Only the check-out time is
// merged into today's open record.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.RecordResponse, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	var updated attendance.Record
	err := s.store.Update(ctx, func(next *state.Snapshot) error {
		rec, exists := attendance.Find(next.Records, userID, date)
		if !exists || rec.CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}
		if rec.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		rec.CheckOut = &clock
		next.Records = attendance.Upsert(next.Records, rec)
		updated = rec
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

// Today implements attendance.Service.
func (s *AttendanceServiceImpl) Today(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	detected, err := shift.Classify(clock)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	resp := attendance.TodayResponse{
		Date:          date,
		Time:          clock,
		DetectedShift: string(detected),
		WeeklyOff:     holiday.IsWeeklyOff(date, s.restDay),
	}
	if window, ok := shift.Times[detected]; ok {
		resp.ShiftLabel = window.Label
	}

	snap := s.store.Snapshot()
	if h, ok := holiday.Find(snap.Holidays, date); ok {
		name := h.Name
		resp.Holiday = &name
	}
	if rec, ok := attendance.Find(snap.Records, userID, date); ok {
		r := attendance.ToResponse(rec)
		resp.Record = &r
	}
	return resp, nil
}

// History implements attendance.Service. Records come back newest first.
func (s *AttendanceServiceImpl) History(ctx context.Context, userID string) ([]attendance.RecordResponse, error) {
	snap := s.store.Snapshot()

	out := make([]attendance.RecordResponse, 0)
	for i := len(snap.Records) - 1; i >= 0; i-- {
		if snap.Records[i].UserID == userID {
			out = append(out, attendance.ToResponse(snap.Records[i]))
		}
	}
	return out, nil
}
