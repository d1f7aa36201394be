package attendance

// RecordResponse represents an attendance record in API responses.
type RecordResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	CheckIn     *string `json:"check_in"`
	CheckOut    *string `json:"check_out"`
	Shift       string  `json:"shift"`
	Status      string  `json:"status"`
	LateMinutes int     `json:"late_minutes"`
}

// ToResponse maps a Record entity to its API shape.
func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.Date,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Shift:       string(r.Shift),
		Status:      string(r.Status),
		LateMinutes: r.LateMinutes,
	}
}

// TodayResponse is the live dashboard status: the current wall clock, the
// shift the clock currently falls in, today's record if one exists, and
// whether check-in is blocked by a non-working day.
type TodayResponse struct {
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	DetectedShift string          `json:"detected_shift"`
	ShiftLabel    string          `json:"shift_label,omitempty"`
	WeeklyOff     bool            `json:"weekly_off"`
	Holiday       *string         `json:"holiday,omitempty"`
	Record        *RecordResponse `json:"record,omitempty"`
}
