package holiday

import (
	"time"
)

// IsWeeklyOff reports whether the date's weekday is the designated rest
// day. Malformed dates are never off days.
func IsWeeklyOff(date string, restDay time.Weekday) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return d.Weekday() == restDay
}

// Find returns the configured holiday matching the date, if any.
func Find(holidays []Holiday, date string) (Holiday, bool) {
	for _, h := range holidays {
		if h.Date == date {
			return h, true
		}
	}
	return Holiday{}, false
}

// IsNonWorkingDay reports whether the date is blocked for check-in: either
// the weekly rest day or a configured holiday.
func IsNonWorkingDay(holidays []Holiday, date string, restDay time.Weekday) bool {
	if IsWeeklyOff(date, restDay) {
		return true
	}
	_, ok := Find(holidays, date)
	return ok
}
