package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

// ShiftJobs contains shift-clock cron jobs. They only read state and log;
// attendance records are never mutated from here.
type ShiftJobs struct {
	store *state.Store
	now   func() time.Time
	last  shift.Type
}

// NewShiftJobs creates shift cron jobs
func NewShiftJobs(store *state.Store, now func() time.Time) *ShiftJobs {
	return &ShiftJobs{store: store, now: now}
}

// RegisterJobs registers all shift-related cron jobs
func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("track_shift_transitions", 1*time.Minute, j.TrackShiftTransitions)
	scheduler.AddJob("log_daily_attendance_summary", 1*time.Hour, j.LogDailyAttendanceSummary)
}

// TrackShiftTransitions logs whenever the wall clock crosses into a new
// shift window.
func (j *ShiftJobs) TrackShiftTransitions(ctx context.Context) error {
	now := j.now()
	current := shift.ClassifyMinute(now.Hour()*60 + now.Minute())
	if current == j.last {
		return nil
	}
	if j.last != "" {
		slog.Info("Shift window changed", "from", j.last, "to", current)
	}
	j.last = current
	return nil
}

// LogDailyAttendanceSummary logs how many of today's records are checked
// in, checked out, or absent.
func (j *ShiftJobs) LogDailyAttendanceSummary(ctx context.Context) error {
	today := j.now().Format("2006-01-02")
	snap := j.store.Snapshot()

	var checkedIn, checkedOut, absent int
	for _, rec := range snap.Records {
		if rec.Date != today {
			continue
		}
		switch {
		case rec.CheckOut != nil:
			checkedOut++
		case rec.CheckIn != nil:
			checkedIn++
		default:
			absent++
		}
	}

	slog.Info("Daily attendance summary",
		"date", today,
		"on_site", checkedIn,
		"completed", checkedOut,
		"absent", absent,
		"total_users", len(snap.Users),
	)
	return nil
}
