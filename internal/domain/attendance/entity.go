package attendance

import (
	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
)

type Status string

const (
	StatusPresent     Status = "PRESENT"
	StatusLatePresent Status = "LATE PRESENT"
	StatusAbsent      Status = "ABSENT"
	StatusWeekOff     Status = "WEEK_OFF"
	StatusHoliday     Status = "HOLIDAY"
)

// Record is one attendance entry. (UserID, Date) is the natural key: at
// most one record exists per user per calendar date.
//
// Shift, Status and LateMinutes are computed once at check-in and never
// recomputed afterwards; historical records stay stable even if shift
// definitions change later. JSON tags define the persisted shape.
type Record struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	Date     string     `json:"date"` // YYYY-MM-DD
	CheckIn  *string    `json:"checkIn"`
	CheckOut *string    `json:"checkOut"`
	Shift    shift.Type `json:"shift"`
	Status   Status     `json:"status"`
	LateMinutes int     `json:"lateMinutes"`
}

// Find returns the record for (userID, date), if present.
func Find(records []Record, userID, date string) (Record, bool) {
	for _, r := range records {
		if r.UserID == userID && r.Date == date {
			return r, true
		}
	}
	return Record{}, false
}

// Upsert replaces any existing record for the new record's (userID, date)
// key and appends, preserving the at-most-one-per-key invariant.
func Upsert(records []Record, rec Record) []Record {
	out := make([]Record, 0, len(records)+1)
	for _, r := range records {
		if r.UserID == rec.UserID && r.Date == rec.Date {
			continue
		}
		out = append(out, r)
	}
	return append(out, rec)
}
