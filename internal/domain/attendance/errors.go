package attendance

import "errors"

// Attendance domain errors. Rejections leave state untouched; the UI is
// expected to disable the action before it gets here.
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrWeeklyOff         = errors.New("today is a weekly off day")
	ErrHoliday           = errors.New("today is a public holiday")
)
